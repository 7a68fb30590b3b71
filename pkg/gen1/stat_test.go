package gen1

import (
	"errors"
	"math"
	"testing"
)

func TestComputeStatZeroFloor(t *testing.T) {
	// 全零输入在1级时的精确值，用于钉死向下取整语义
	got, err := ComputeStat(0, 0, 0, 1, false)
	if err != nil {
		t.Fatalf("ComputeStat 返回错误: %v", err)
	}
	if got != 5 {
		t.Errorf("非HP全零输入: 期望 5, 得到 %d", got)
	}

	got, err = ComputeStat(0, 0, 0, 1, true)
	if err != nil {
		t.Fatalf("ComputeStat 返回错误: %v", err)
	}
	if got != 11 {
		t.Errorf("HP全零输入: 期望 11, 得到 %d", got)
	}
}

func TestComputeStatGoldenValues(t *testing.T) {
	cases := []struct {
		name  string
		base  int
		iv    int
		ev    int
		level int
		isHP  bool
		want  int
	}{
		// floor(sqrt(65535)) = 255, 255/4 = 63
		{"满努力满个体上限", 0, 15, 65535, 100, false, (15*2 + 63) + 5},
		{"满努力满个体上限HP", 0, 15, 65535, 100, true, (15*2 + 63) + 100 + 10},
		// 皮卡丘 速度种族值90, 50级
		{"皮卡丘速度", 90, 15, 0, 50, false, ((90+15)*2)*50/100 + 5},
		// 卡比兽 HP种族值160, 100级满练
		{"卡比兽HP满练", 160, 15, 65535, 100, true, ((160+15)*2+63) + 100 + 10},
		// 63*50/100 会触发中间截断: (0+0)*2+63 = 63, 63*50/100 = 31
		{"中间截断", 0, 0, 65535, 50, false, 36},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeStat(tc.base, tc.iv, tc.ev, tc.level, tc.isHP)
			if err != nil {
				t.Fatalf("ComputeStat 返回错误: %v", err)
			}
			if got != tc.want {
				t.Errorf("期望 %d, 得到 %d", tc.want, got)
			}
		})
	}
}

func TestComputeStatDeterministic(t *testing.T) {
	first, err := ComputeStat(100, 7, 12345, 63, true)
	if err != nil {
		t.Fatalf("ComputeStat 返回错误: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := ComputeStat(100, 7, 12345, 63, true)
		if err != nil {
			t.Fatalf("ComputeStat 返回错误: %v", err)
		}
		if again != first {
			t.Fatalf("重复调用结果不一致: %d != %d", again, first)
		}
	}
	if first < 1 {
		t.Errorf("结果必须不小于1, 得到 %d", first)
	}
}

func TestComputeStatInvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		base  int
		iv    int
		ev    int
		level int
	}{
		{"等级为0", 50, 0, 0, 0},
		{"等级超过100", 50, 0, 0, 101},
		{"个体值超上限", 50, 16, 0, 50},
		{"个体值为负", 50, -1, 0, 50},
		{"努力值为负", 50, 0, -1, 50},
		{"努力值超上限", 50, 0, 65536, 50},
		{"种族值为负", -1, 0, 0, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeStat(tc.base, tc.iv, tc.ev, tc.level, false)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("期望 ErrInvalidInput, 得到 %v", err)
			}
		})
	}
}

func TestHPIVBitRule(t *testing.T) {
	cases := []struct {
		attack, defense, speed, special int
		want                            int
	}{
		{0, 0, 0, 0, 0},
		{15, 15, 15, 15, 15},
		{1, 0, 0, 0, 8},
		{0, 1, 0, 0, 4},
		{0, 0, 1, 0, 2},
		{0, 0, 0, 1, 1},
		{14, 14, 14, 14, 0}, // 偶数个体值不贡献任何位
		{15, 14, 13, 12, 10},
	}

	for _, tc := range cases {
		got := HPIV(tc.attack, tc.defense, tc.speed, tc.special)
		if got != tc.want {
			t.Errorf("HPIV(%d,%d,%d,%d): 期望 %d, 得到 %d",
				tc.attack, tc.defense, tc.speed, tc.special, tc.want, got)
		}
	}
}

func TestComputeAllMatchesSingleCalls(t *testing.T) {
	base := BaseStats{HP: 45, Attack: 49, Defense: 49, Special: 65, Speed: 45} // 妙蛙种子
	ivs := IVSpread{Attack: 8, Defense: 12, Speed: 13, Special: 5}
	evs := EVSpread{HP: 2000, Attack: 3000, Defense: 4000, Speed: 5000, Special: 6000}

	block, err := ComputeAll(base, ivs, evs, 50)
	if err != nil {
		t.Fatalf("ComputeAll 返回错误: %v", err)
	}

	hpIV := HPIV(ivs.Attack, ivs.Defense, ivs.Speed, ivs.Special)
	wantHP, _ := ComputeStat(base.HP, hpIV, evs.HP, 50, true)
	if block.HP != wantHP {
		t.Errorf("HP: 期望 %d, 得到 %d", wantHP, block.HP)
	}
	wantSpeed, _ := ComputeStat(base.Speed, ivs.Speed, evs.Speed, 50, false)
	if block.Speed != wantSpeed {
		t.Errorf("速度: 期望 %d, 得到 %d", wantSpeed, block.Speed)
	}

	for name, v := range map[string]int{
		"hp": block.HP, "attack": block.Attack, "defense": block.Defense,
		"special": block.Special, "speed": block.Speed,
	} {
		if v < 1 {
			t.Errorf("%s 必须不小于1, 得到 %d", name, v)
		}
	}
}

func TestIsqrtExact(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 15, 16, 17, 255, 256, 65024, 65025, 65026, 65535} {
		want := int(math.Sqrt(float64(n)))
		// math.Sqrt 在此范围内可作为参考，但实现必须精确地向下取整
		for (want+1)*(want+1) <= n {
			want++
		}
		for want*want > n {
			want--
		}
		if got := isqrt(n); got != want {
			t.Errorf("isqrt(%d): 期望 %d, 得到 %d", n, want, got)
		}
	}
}
