package evolution

import "gorm.io/gorm"

// Method 定义了进化方式的枚举类型
type Method string

const (
	// MethodLevelUp 表示等级提升进化
	MethodLevelUp Method = "LEVEL_UP"
	// MethodItem 表示使用道具进化
	MethodItem Method = "ITEM"
	// MethodTrade 表示通信交换进化
	MethodTrade Method = "TRADE"
)

// Edge 定义了一条有向进化边 (from -> to)。
// 一代的进化图是森林：每个种族至多有一个前置进化，且不存在环。
// 这一不变量在构图时强制校验。
type Edge struct {
	gorm.Model

	// FromNumber 是进化前种族的图鉴编号
	FromNumber int `gorm:"index;not null" json:"from_number"`

	// ToNumber 是进化后种族的图鉴编号
	ToNumber int `gorm:"index;not null" json:"to_number"`

	// EvolutionMethod 记录进化方式
	EvolutionMethod Method `json:"method"`

	// MinLevel 是等级进化所需的最低等级，其他方式为空
	MinLevel *int `json:"min_level"`

	// RequiredItem 是道具进化所需的道具名，其他方式为空
	RequiredItem *string `json:"required_item"`

	// Trade 标记是否为通信进化
	Trade bool `json:"trade"`
}
