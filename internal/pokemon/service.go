package pokemon

import (
	"github.com/kantodex/gen1-team-backend/internal/move"
	"github.com/kantodex/gen1-team-backend/pkg/gen1"
)

// --- Service-Level Data Transfer Objects (DTOs) ---

// SpeciesDTO 包含了图鉴API所需的种族数据
type SpeciesDTO struct {
	Number     int
	Name       string
	Type1      string
	Type2      *string
	Base       gen1.BaseStats
	FlavorText string
}

// LearnsetMoveDTO 是种族自身学习表中的一条记录（不含进化链继承）
type LearnsetMoveDTO struct {
	MoveID   uint
	Name     string
	Type     string
	Power    *int
	Accuracy int
	PP       int
	Level    *int
	Effect   string
}

// GetAllSpecies 返回全部种族的图鉴数据，按图鉴编号升序。
func GetAllSpecies() []SpeciesDTO {
	repo := GlobalRepository()
	numbers := repo.Numbers()

	out := make([]SpeciesDTO, 0, len(numbers))
	for _, n := range numbers {
		info, err := repo.InfoByNumber(n)
		if err != nil {
			continue
		}
		out = append(out, SpeciesDTO{
			Number:     n,
			Name:       info.Name,
			Type1:      info.Type1,
			Type2:      info.Type2,
			Base:       info.Base,
			FlavorText: info.FlavorText,
		})
	}
	return out
}

// GetSpeciesByNumber 按图鉴编号返回单个种族的数据。
func GetSpeciesByNumber(number int) (*SpeciesDTO, error) {
	info, err := GlobalRepository().InfoByNumber(number)
	if err != nil {
		return nil, err
	}
	return &SpeciesDTO{
		Number:     number,
		Name:       info.Name,
		Type1:      info.Type1,
		Type2:      info.Type2,
		Base:       info.Base,
		FlavorText: info.FlavorText,
	}, nil
}

// GetOwnLearnset 返回种族自身的学习表，可选按最高等级过滤。
// maxLevel 为空时返回全部；初始技能(无等级)不受过滤影响。
func GetOwnLearnset(number int, maxLevel *int) ([]LearnsetMoveDTO, error) {
	learned, err := GlobalRepository().LearnedMovesOf(number)
	if err != nil {
		return nil, err
	}

	moveRepo := move.GlobalRepository()
	out := make([]LearnsetMoveDTO, 0, len(learned))
	for _, l := range learned {
		if maxLevel != nil && l.Level != nil && *l.Level > *maxLevel {
			continue
		}
		info, err := moveRepo.InfoByID(l.MoveID)
		if err != nil {
			// 学习表引用了不存在的招式，属于数据完整性问题
			return nil, err
		}
		out = append(out, LearnsetMoveDTO{
			MoveID:   l.MoveID,
			Name:     info.Name,
			Type:     info.Type,
			Power:    info.Power,
			Accuracy: info.Accuracy,
			PP:       info.PP,
			Level:    l.Level,
			Effect:   info.Effect,
		})
	}
	return out, nil
}
