package team

import (
	"fmt"

	"github.com/kantodex/gen1-team-backend/internal/platform/database"
)

// PrimeModule 负责初始化team模块。
// 队伍数据由用户动态创建，这里只需要迁移表结构，不做种子导入。
func PrimeModule() error {
	if err := database.DB.AutoMigrate(&Team{}, &Member{}); err != nil {
		return fmt.Errorf("无法迁移team表: %w", err)
	}
	fmt.Println("Team数据库表迁移成功。")
	return nil
}
