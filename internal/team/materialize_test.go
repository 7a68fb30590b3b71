package team

import (
	"errors"
	"testing"

	"github.com/kantodex/gen1-team-backend/pkg/gen1"
)

var pikachuBase = gen1.BaseStats{HP: 35, Attack: 55, Defense: 30, Special: 50, Speed: 90}

func TestMaterializeStatsDoesNotMutateMember(t *testing.T) {
	m := &Member{
		Nickname:  "Sparky",
		Level:     50,
		IVAttack:  15, IVDefense: 15, IVSpeed: 15, IVSpecial: 15,
		CurrentHP: 42,
	}
	before := *m

	stats, err := MaterializeStats(m, pikachuBase)
	if err != nil {
		t.Fatalf("MaterializeStats: %v", err)
	}
	if *m != before {
		t.Fatalf("成员被修改: %+v -> %+v", before, *m)
	}
	if m.CurrentHP != 42 {
		t.Fatalf("CurrentHP 被改写为 %d", m.CurrentHP)
	}
	if stats.HP <= 0 || stats.Speed <= 0 {
		t.Fatalf("能力值非正: %+v", stats)
	}
}

func TestMaterializeStatsIdempotent(t *testing.T) {
	m := &Member{Nickname: "Sparky", Level: 81, IVAttack: 8, IVDefense: 13, IVSpeed: 5, IVSpecial: 9, EVHP: 22850, EVAttack: 23140, EVDefense: 17280, EVSpeed: 24795, EVSpecial: 19625}

	first, err := MaterializeStats(m, pikachuBase)
	if err != nil {
		t.Fatalf("第一次 MaterializeStats: %v", err)
	}
	second, err := MaterializeStats(m, pikachuBase)
	if err != nil {
		t.Fatalf("第二次 MaterializeStats: %v", err)
	}
	if first != second {
		t.Fatalf("两次推导结果不同: %+v vs %+v", first, second)
	}
}

func TestMaterializeStatsFloorValues(t *testing.T) {
	// 全零入参在1级时取到公式下界: 非HP为5, HP为 level+10
	m := &Member{Nickname: "Floor", Level: 1}
	stats, err := MaterializeStats(m, gen1.BaseStats{})
	if err != nil {
		t.Fatalf("MaterializeStats: %v", err)
	}
	if stats.Attack != 5 || stats.Defense != 5 || stats.Special != 5 || stats.Speed != 5 {
		t.Fatalf("非HP下界应为5: %+v", stats)
	}
	if stats.HP != 11 {
		t.Fatalf("HP下界应为11, got %d", stats.HP)
	}
}

func TestMaterializeStatsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		m    Member
	}{
		{"等级为零", Member{Level: 0}},
		{"等级过高", Member{Level: 101}},
		{"个体值越界", Member{Level: 50, IVAttack: 16}},
		{"努力值为负", Member{Level: 50, EVSpeed: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := MaterializeStats(&tc.m, pikachuBase); !errors.Is(err, gen1.ErrInvalidInput) {
				t.Fatalf("want ErrInvalidInput, got %v", err)
			}
		})
	}
}
