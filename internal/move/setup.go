package move

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kantodex/gen1-team-backend/internal/platform/database"
)

// seedMove 对应 moves.json 中的一条记录
type seedMove struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Power    *int   `json:"power"`
	Accuracy int    `json:"accuracy"`
	PP       int    `json:"pp"`
	Effect   string `json:"effect"`
}

// PrimeCachedDB 负责初始化move模块的数据库和内存仓库
func PrimeCachedDB(dataDir string) error {
	if err := migrateDB(); err != nil {
		return err
	}
	if err := seedIfEmpty(dataDir); err != nil {
		return err
	}
	return InitializeRepository()
}

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&Move{}); err != nil {
		return fmt.Errorf("无法迁移move表: %w", err)
	}
	fmt.Println("Move数据库表迁移成功。")
	return nil
}

// seedIfEmpty 在招式表为空时从种子文件导入数据
func seedIfEmpty(dataDir string) error {
	var count int64
	if err := database.DB.Model(&Move{}).Count(&count).Error; err != nil {
		return fmt.Errorf("无法检查招式表状态: %w", err)
	}
	if count > 0 {
		return nil
	}

	path := filepath.Join(dataDir, "moves.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("无法读取招式种子数据 %s: %w", path, err)
	}

	var seeds []seedMove
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("招式种子数据格式错误: %w", err)
	}

	moves := make([]Move, 0, len(seeds))
	for _, s := range seeds {
		moves = append(moves, Move{
			MoveID:   s.ID,
			Name:     s.Name,
			Type:     s.Type,
			Power:    s.Power,
			Accuracy: s.Accuracy,
			PP:       s.PP,
			Effect:   s.Effect,
		})
	}
	if err := database.DB.Create(&moves).Error; err != nil {
		return fmt.Errorf("导入招式种子数据失败: %w", err)
	}

	fmt.Printf("成功导入 %d 个招式。\n", len(moves))
	return nil
}
