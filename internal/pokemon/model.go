package pokemon

import "gorm.io/gorm"

// Species 定义了数据库中宝可梦种族的数据结构。
// 种族数据在初始化导入后视为只读，正常运行期间不会被修改。
type Species struct {
	// gorm.Model 包含 ID, CreatedAt, UpdatedAt, DeletedAt
	gorm.Model

	// PokedexNumber 是一代图鉴编号 (1-151)
	// 我们将使用它作为业务逻辑中的主键
	PokedexNumber int `gorm:"uniqueIndex;not null" json:"pokedex_number"`

	// Name 是种族的英文名称, 例如 "Bulbasaur"
	Name string `json:"name"`

	// Type1 是第一属性, 例如 "Grass"
	Type1 string `json:"type1"`

	// Type2 是第二属性，单属性的种族为空
	Type2 *string `json:"type2"`

	// --- 以下是一代的五项种族值 ---

	BaseHP      int `json:"base_hp"`
	BaseAttack  int `json:"base_attack"`
	BaseDefense int `json:"base_defense"`
	BaseSpecial int `json:"base_special"`
	BaseSpeed   int `json:"base_speed"`

	// FlavorText 是图鉴描述
	FlavorText string `json:"flavor_text"`
}

// LearnedMove 定义了种族与招式之间的多对多关联。
// LearnLevel 为空表示初始技能，无等级门槛。
type LearnedMove struct {
	gorm.Model

	// PokedexNumber 是学会该招式的种族的图鉴编号
	PokedexNumber int `gorm:"index;not null" json:"pokedex_number"`

	// MoveID 是招式的业务ID
	MoveID uint `gorm:"index;not null" json:"move_id"`

	// LearnLevel 是自然学会该招式的最低等级，空值表示初始技能
	LearnLevel *int `json:"learn_level"`
}
