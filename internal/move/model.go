package move

import "gorm.io/gorm"

// Move 定义了数据库中招式的数据结构。
// 与种族数据一样，招式数据导入后视为只读。
type Move struct {
	gorm.Model

	// MoveID 是招式的业务ID，与一代内部编号一致
	MoveID uint `gorm:"uniqueIndex;not null" json:"id"`

	// Name 是招式的英文名称, 例如 "Tackle"
	Name string `json:"name"`

	// Type 是招式属性, 例如 "Normal"
	Type string `json:"type"`

	// Power 是招式威力，变化类招式为空
	Power *int `json:"power"`

	// Accuracy 是命中率，取值范围 [0, 100]
	Accuracy int `json:"accuracy"`

	// PP 是使用次数上限
	PP int `json:"pp"`

	// Effect 是附加效果描述，可以为空
	Effect string `json:"effect"`
}
