package gen1

import (
	"errors"
	"fmt"
)

// 一代数值的合法范围
const (
	MinLevel = 1
	MaxLevel = 100
	MaxIV    = 15
	MaxEV    = 65535
)

// ErrInvalidInput 表示能力值计算的入参超出了一代的合法范围。
// 计算器自身从不对入参做静默截断，越界一律报错，由调用方决定如何处理。
var ErrInvalidInput = errors.New("能力值计算参数超出合法范围")

// StatBlock 是一只宝可梦在当前等级下的五项实战能力值。
// 它只在读取时即时计算，从不落库。
type StatBlock struct {
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Special int `json:"special"`
	Speed   int `json:"speed"`
}

// BaseStats 是一个种族的五项种族值。
type BaseStats struct {
	HP      int
	Attack  int
	Defense int
	Special int
	Speed   int
}

// IVSpread 是存储在队伍成员上的四项个体值。
// 一代中HP个体值不单独存储，由其余四项的最低位推导得出。
type IVSpread struct {
	Attack  int
	Defense int
	Speed   int
	Special int
}

// EVSpread 是五项努力值。
type EVSpread struct {
	HP      int
	Attack  int
	Defense int
	Speed   int
	Special int
}

// HPIV 按一代的位组合规则，从四项存储的个体值推导HP个体值。
// 位分配: 攻击最低位为第3位，防御为第2位，速度为第1位，特殊为第0位。
func HPIV(attack, defense, speed, special int) int {
	return (attack&1)<<3 | (defense&1)<<2 | (speed&1)<<1 | special&1
}

// ComputeStat 按一代公式计算单项能力值。
//
//	非HP: floor(((base+iv)*2 + floor(sqrt(ev))/4) * level / 100) + 5
//	HP:   floor(((base+iv)*2 + floor(sqrt(ev))/4) * level / 100) + level + 10
//
// 全程整数运算，所有除法向零取整，与原始游戏的定点算法逐位一致。
func ComputeStat(base, iv, ev, level int, isHP bool) (int, error) {
	if base < 0 {
		return 0, fmt.Errorf("%w: 种族值 %d 不能为负", ErrInvalidInput, base)
	}
	if iv < 0 || iv > MaxIV {
		return 0, fmt.Errorf("%w: 个体值 %d 不在 [0, %d] 内", ErrInvalidInput, iv, MaxIV)
	}
	if ev < 0 || ev > MaxEV {
		return 0, fmt.Errorf("%w: 努力值 %d 不在 [0, %d] 内", ErrInvalidInput, ev, MaxEV)
	}
	if level < MinLevel || level > MaxLevel {
		return 0, fmt.Errorf("%w: 等级 %d 不在 [%d, %d] 内", ErrInvalidInput, level, MinLevel, MaxLevel)
	}

	term := (base+iv)*2 + isqrt(ev)/4
	stat := term * level / 100
	if isHP {
		stat += level + 10
	} else {
		stat += 5
	}
	// 公式本身保证结果不小于1（HP至少为 level+10，其余至少为5）
	return stat, nil
}

// ComputeAll 计算完整的五项能力值。HP个体值由其余四项推导。
func ComputeAll(base BaseStats, ivs IVSpread, evs EVSpread, level int) (StatBlock, error) {
	hpIV := HPIV(ivs.Attack, ivs.Defense, ivs.Speed, ivs.Special)

	hp, err := ComputeStat(base.HP, hpIV, evs.HP, level, true)
	if err != nil {
		return StatBlock{}, err
	}
	attack, err := ComputeStat(base.Attack, ivs.Attack, evs.Attack, level, false)
	if err != nil {
		return StatBlock{}, err
	}
	defense, err := ComputeStat(base.Defense, ivs.Defense, evs.Defense, level, false)
	if err != nil {
		return StatBlock{}, err
	}
	special, err := ComputeStat(base.Special, ivs.Special, evs.Special, level, false)
	if err != nil {
		return StatBlock{}, err
	}
	speed, err := ComputeStat(base.Speed, ivs.Speed, evs.Speed, level, false)
	if err != nil {
		return StatBlock{}, err
	}

	return StatBlock{HP: hp, Attack: attack, Defense: defense, Special: special, Speed: speed}, nil
}

// isqrt 返回 floor(sqrt(n))，纯整数实现，避免浮点误差影响边界值。
func isqrt(n int) int {
	if n < 2 {
		return n
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
