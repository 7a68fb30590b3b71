package team

import (
	"fmt"

	"github.com/kantodex/gen1-team-backend/pkg/gen1"
)

// MaterializeStats 依据成员的等级、个体值与努力值，即时推导五项实战能力值。
// 纯函数：不修改成员（尤其不改写CurrentHP），重复调用结果逐位一致。
// 入参越界时返回 gen1.ErrInvalidInput，不产生部分结果。
func MaterializeStats(m *Member, base gen1.BaseStats) (gen1.StatBlock, error) {
	block, err := gen1.ComputeAll(
		base,
		gen1.IVSpread{
			Attack:  m.IVAttack,
			Defense: m.IVDefense,
			Speed:   m.IVSpeed,
			Special: m.IVSpecial,
		},
		gen1.EVSpread{
			HP:      m.EVHP,
			Attack:  m.EVAttack,
			Defense: m.EVDefense,
			Speed:   m.EVSpeed,
			Special: m.EVSpecial,
		},
		m.Level,
	)
	if err != nil {
		return gen1.StatBlock{}, fmt.Errorf("成员 %q 的能力值推导失败: %w", m.Nickname, err)
	}
	return block, nil
}
