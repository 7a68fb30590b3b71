package pokemon

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kantodex/gen1-team-backend/internal/platform/database"
)

// seedSpecies 对应 species.json 中的一条记录
type seedSpecies struct {
	Number     int     `json:"number"`
	Name       string  `json:"name"`
	Type1      string  `json:"type1"`
	Type2      *string `json:"type2"`
	HP         int     `json:"hp"`
	Attack     int     `json:"attack"`
	Defense    int     `json:"defense"`
	Special    int     `json:"special"`
	Speed      int     `json:"speed"`
	FlavorText string  `json:"flavor_text"`
}

// seedLearned 对应 learnsets.json 中的一条记录，level为空表示初始技能
type seedLearned struct {
	Pokemon int  `json:"pokemon"`
	Move    uint `json:"move"`
	Level   *int `json:"level"`
}

// PrimeCachedDB 负责初始化pokemon模块的数据库和内存仓库
func PrimeCachedDB(dataDir string) error {
	// 1. 迁移数据库表结构
	if err := migrateDB(); err != nil {
		return err
	}
	// 2. 表为空时导入种子数据
	if err := seedIfEmpty(dataDir); err != nil {
		return err
	}
	// 3. 从数据库加载静态数据到内存仓库
	return InitializeRepository()
}

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&Species{}, &LearnedMove{}); err != nil {
		return fmt.Errorf("无法迁移pokemon表: %w", err)
	}
	fmt.Println("Pokemon数据库表迁移成功。")
	return nil
}

// seedIfEmpty 在种族表为空时从种子文件导入数据
func seedIfEmpty(dataDir string) error {
	var count int64
	if err := database.DB.Model(&Species{}).Count(&count).Error; err != nil {
		return fmt.Errorf("无法检查种族表状态: %w", err)
	}
	if count > 0 {
		return nil
	}

	species, err := loadSpeciesSeed(filepath.Join(dataDir, "species.json"))
	if err != nil {
		return err
	}
	if err := database.DB.Create(&species).Error; err != nil {
		return fmt.Errorf("导入种族种子数据失败: %w", err)
	}

	learned, err := loadLearnsetSeed(filepath.Join(dataDir, "learnsets.json"))
	if err != nil {
		return err
	}
	if err := database.DB.Create(&learned).Error; err != nil {
		return fmt.Errorf("导入学习表种子数据失败: %w", err)
	}

	fmt.Printf("成功导入 %d 个种族、%d 条学习记录。\n", len(species), len(learned))
	return nil
}

func loadSpeciesSeed(path string) ([]Species, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取种族种子数据 %s: %w", path, err)
	}
	var seeds []seedSpecies
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("种族种子数据格式错误: %w", err)
	}

	out := make([]Species, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, Species{
			PokedexNumber: s.Number,
			Name:          s.Name,
			Type1:         s.Type1,
			Type2:         s.Type2,
			BaseHP:        s.HP,
			BaseAttack:    s.Attack,
			BaseDefense:   s.Defense,
			BaseSpecial:   s.Special,
			BaseSpeed:     s.Speed,
			FlavorText:    s.FlavorText,
		})
	}
	return out, nil
}

func loadLearnsetSeed(path string) ([]LearnedMove, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取学习表种子数据 %s: %w", path, err)
	}
	var seeds []seedLearned
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("学习表种子数据格式错误: %w", err)
	}

	out := make([]LearnedMove, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, LearnedMove{
			PokedexNumber: s.Pokemon,
			MoveID:        s.Move,
			LearnLevel:    s.Level,
		})
	}
	return out, nil
}
