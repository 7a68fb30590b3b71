package move

import (
	"errors"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestNewRepositoryLookup(t *testing.T) {
	moves := []Move{
		{MoveID: 85, Name: "Thunderbolt", Type: "Electric", Power: intPtr(95), Accuracy: 100, PP: 15},
		{MoveID: 45, Name: "Growl", Type: "Normal", Accuracy: 100, PP: 40},
	}
	repo, err := NewRepository(moves)
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}

	if repo.Count() != 2 {
		t.Fatalf("Count = %d, want 2", repo.Count())
	}
	ids := repo.IDs()
	if ids[0] != 45 || ids[1] != 85 {
		t.Fatalf("IDs = %v, want [45 85]", ids)
	}

	info, err := repo.InfoByID(45)
	if err != nil {
		t.Fatalf("InfoByID(45): %v", err)
	}
	if info.Name != "Growl" || info.Power != nil {
		t.Fatalf("Info = %+v", info)
	}

	if !repo.Has(85) || repo.Has(999) {
		t.Fatal("Has 判断错误")
	}
	if _, err := repo.InfoByID(999); !errors.Is(err, ErrMoveNotFound) {
		t.Fatalf("未知ID应返回 ErrMoveNotFound, got %v", err)
	}
}

func TestNewRepositoryRejectsBadData(t *testing.T) {
	cases := []struct {
		name  string
		moves []Move
	}{
		{"ID为零", []Move{{MoveID: 0, Name: "Bad", Type: "Normal", Accuracy: 100, PP: 10}}},
		{"ID重复", []Move{
			{MoveID: 33, Name: "Tackle", Type: "Normal", Accuracy: 95, PP: 35},
			{MoveID: 33, Name: "Clone", Type: "Normal", Accuracy: 95, PP: 35},
		}},
		{"命中率越界", []Move{{MoveID: 1, Name: "Bad", Type: "Normal", Accuracy: 101, PP: 10}}},
		{"威力为负", []Move{{MoveID: 1, Name: "Bad", Type: "Normal", Power: intPtr(-1), Accuracy: 100, PP: 10}}},
		{"PP为零", []Move{{MoveID: 1, Name: "Bad", Type: "Normal", Accuracy: 100, PP: 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRepository(tc.moves); err == nil {
				t.Fatal("构造应失败")
			}
		})
	}
}
