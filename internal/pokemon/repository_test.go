package pokemon

import (
	"errors"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestNewRepositoryLookup(t *testing.T) {
	species := []Species{
		{PokedexNumber: 25, Name: "Pikachu", Type1: "Electric", BaseHP: 35, BaseAttack: 55, BaseDefense: 30, BaseSpecial: 50, BaseSpeed: 90},
		{PokedexNumber: 1, Name: "Bulbasaur", Type1: "Grass", BaseHP: 45, BaseAttack: 49, BaseDefense: 49, BaseSpecial: 65, BaseSpeed: 45},
	}
	repo, err := NewRepository(species, nil)
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}

	if repo.Count() != 2 {
		t.Fatalf("Count = %d, want 2", repo.Count())
	}

	// 编号列表无关输入顺序，始终升序
	numbers := repo.Numbers()
	if numbers[0] != 1 || numbers[1] != 25 {
		t.Fatalf("Numbers = %v, want [1 25]", numbers)
	}

	info, err := repo.InfoByNumber(25)
	if err != nil {
		t.Fatalf("InfoByNumber(25): %v", err)
	}
	if info.Name != "Pikachu" || info.Base.Speed != 90 {
		t.Fatalf("Info = %+v", info)
	}

	if _, err := repo.InfoByNumber(151); !errors.Is(err, ErrSpeciesNotFound) {
		t.Fatalf("未知编号应返回 ErrSpeciesNotFound, got %v", err)
	}
}

func TestNewRepositoryRejectsBadData(t *testing.T) {
	valid := Species{PokedexNumber: 1, Name: "Bulbasaur", Type1: "Grass"}

	cases := []struct {
		name    string
		species []Species
		learned []LearnedMove
	}{
		{"编号重复", []Species{valid, {PokedexNumber: 1, Name: "Clone", Type1: "Grass"}}, nil},
		{"编号非法", []Species{{PokedexNumber: 0, Name: "Zero", Type1: "Normal"}}, nil},
		{"种族值为负", []Species{{PokedexNumber: 2, Name: "Bad", Type1: "Normal", BaseHP: -1}}, nil},
		{"学习表引用未知种族", []Species{valid}, []LearnedMove{{PokedexNumber: 99, MoveID: 33}}},
		{"学习等级越界", []Species{valid}, []LearnedMove{{PokedexNumber: 1, MoveID: 33, LearnLevel: intPtr(101)}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRepository(tc.species, tc.learned); err == nil {
				t.Fatal("构造应失败")
			}
		})
	}
}

func TestLearnedMovesOfSortedAndCopied(t *testing.T) {
	species := []Species{{PokedexNumber: 1, Name: "Bulbasaur", Type1: "Grass"}}
	learned := []LearnedMove{
		{PokedexNumber: 1, MoveID: 75, LearnLevel: intPtr(27)},
		{PokedexNumber: 1, MoveID: 45},
		{PokedexNumber: 1, MoveID: 73, LearnLevel: intPtr(7)},
		{PokedexNumber: 1, MoveID: 33},
	}
	repo, err := NewRepository(species, learned)
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}

	ls, err := repo.LearnedMovesOf(1)
	if err != nil {
		t.Fatalf("LearnedMovesOf(1): %v", err)
	}
	wantIDs := []uint{33, 45, 73, 75}
	if len(ls) != len(wantIDs) {
		t.Fatalf("学习表长度 = %d, want %d", len(ls), len(wantIDs))
	}
	for i, l := range ls {
		if l.MoveID != wantIDs[i] {
			t.Fatalf("第 %d 项 = %d, want %d", i, l.MoveID, wantIDs[i])
		}
	}

	// 返回的是拷贝，调用方修改不影响仓库内部数据
	ls[0].MoveID = 999
	again, _ := repo.LearnedMovesOf(1)
	if again[0].MoveID != 33 {
		t.Fatalf("仓库内部数据被外部修改: %v", again[0].MoveID)
	}
}
