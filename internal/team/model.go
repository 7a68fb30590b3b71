package team

import "gorm.io/gorm"

// Status 定义了队伍成员的异常状态枚举
type Status string

const (
	StatusHealthy   Status = "Healthy"
	StatusPoisoned  Status = "Poisoned"
	StatusBurned    Status = "Burned"
	StatusParalyzed Status = "Paralyzed"
	StatusAsleep    Status = "Asleep"
	StatusFrozen    Status = "Frozen"
	StatusFainted   Status = "Fainted"
)

// Team 定义了用户组建的队伍。
// 对外通过UUID标识，内部主键不暴露。删除队伍时级联删除全部成员。
type Team struct {
	gorm.Model

	// UUID 是队伍对外的唯一标识
	UUID string `gorm:"uniqueIndex;type:varchar(36)" json:"uuid"`

	// Name 是队伍名称
	Name string `json:"name"`

	// Members 是队伍的成员，一支队伍1-6只
	Members []Member `gorm:"constraint:OnDelete:CASCADE" json:"members"`
}

// Member 定义了队伍中的一只宝可梦。
// 五项实战能力值从不落库，每次读取时由能力值计算器即时推导。
type Member struct {
	gorm.Model

	// TeamID 是所属队伍的内部主键
	TeamID uint `gorm:"index;not null" json:"team_id"`

	// SpeciesNumber 是种族的图鉴编号
	SpeciesNumber int `gorm:"not null" json:"species_number"`

	// Nickname 是昵称，可以为空
	Nickname string `json:"nickname"`

	// Level 是等级，取值范围 [1, 100]
	Level int `json:"level"`

	// --- 四项存储的个体值，取值范围 [0, 15]；HP个体值由这四项推导，不存储 ---

	IVAttack  int `json:"iv_attack"`
	IVDefense int `json:"iv_defense"`
	IVSpeed   int `json:"iv_speed"`
	IVSpecial int `json:"iv_special"`

	// --- 五项努力值，取值范围 [0, 65535] ---

	EVHP      int `json:"ev_hp"`
	EVAttack  int `json:"ev_attack"`
	EVDefense int `json:"ev_defense"`
	EVSpeed   int `json:"ev_speed"`
	EVSpecial int `json:"ev_special"`

	// CurrentHP 是当前HP，属于对战状态信息，能力值计算从不改写它
	CurrentHP int `json:"current_hp"`

	// StatusCondition 是异常状态
	StatusCondition Status `json:"status"`

	// --- 四个招式槽，一代最多携带4个招式，空槽为空值 ---

	Move1ID *uint `json:"move1_id"`
	Move2ID *uint `json:"move2_id"`
	Move3ID *uint `json:"move3_id"`
	Move4ID *uint `json:"move4_id"`
}

// MoveSlots 按槽位顺序返回成员携带的招式ID（含空槽）。
func (m *Member) MoveSlots() [4]*uint {
	return [4]*uint{m.Move1ID, m.Move2ID, m.Move3ID, m.Move4ID}
}

// SetMoveSlots 按槽位顺序写入招式ID，超出4个的部分被忽略。
func (m *Member) SetMoveSlots(slots []*uint) {
	padded := make([]*uint, 4)
	copy(padded, slots)
	m.Move1ID, m.Move2ID, m.Move3ID, m.Move4ID = padded[0], padded[1], padded[2], padded[3]
}
