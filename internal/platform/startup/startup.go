package startup

import (
	"fmt"
	"time"

	"github.com/kantodex/gen1-team-backend/internal/evolution"
	"github.com/kantodex/gen1-team-backend/internal/move"
	"github.com/kantodex/gen1-team-backend/internal/platform/config"
	"github.com/kantodex/gen1-team-backend/internal/platform/database"
	"github.com/kantodex/gen1-team-backend/internal/platform/metadata"
	"github.com/kantodex/gen1-team-backend/internal/pokemon"
	"github.com/kantodex/gen1-team-backend/internal/team"
)

// seedVersion 标记当前打包的种子数据集修订号，换数据时同步更新。
const seedVersion = "gen1-v1"

// InitializeApplication 是应用首次启动时执行的总入口。
// 初始化顺序有依赖：招式、种族仓库必须先于进化图构造，
// 进化图必须先于血统缓存预热。
func InitializeApplication() error {
	fmt.Println("开始应用首次初始化...")

	dataDir := config.Cfg.Data.Dir

	if err := metadata.PrimeDB(); err != nil {
		return err
	}
	if err := move.PrimeCachedDB(dataDir); err != nil {
		return err
	}
	if err := pokemon.PrimeCachedDB(dataDir); err != nil {
		return err
	}
	if err := verifyLearnsetIntegrity(); err != nil {
		return err
	}
	if err := evolution.PrimeModule(dataDir); err != nil {
		return err
	}
	if err := team.PrimeModule(); err != nil {
		return err
	}
	if err := evolution.WarmupCache(); err != nil {
		return err
	}
	if err := recordSeedVersion(); err != nil {
		return err
	}

	fmt.Println("应用初始化完成！")
	return nil
}

// recordSeedVersion 把本次加载的种子数据修订号写入metadata表。
func recordSeedVersion() error {
	previous, err := metadata.GetSeedVersion(database.DB)
	if err != nil {
		return fmt.Errorf("无法读取种子数据版本: %w", err)
	}
	if previous != "" && previous != seedVersion {
		fmt.Printf("检测到种子数据版本变更: %s -> %s\n", previous, seedVersion)
	}
	if err := metadata.SetSeedVersion(database.DB, seedVersion); err != nil {
		return fmt.Errorf("无法记录种子数据版本: %w", err)
	}
	return metadata.SetValue(database.DB, metadata.SeededAtKey, time.Now().Format(time.RFC3339))
}

// RebuildCache 是一个专门用于在运行时热重建Redis缓存的函数。
// 种族数据只读，重建只需重新预热血统缓存。
func RebuildCache() error {
	fmt.Println("开始缓存热重建...")

	if err := evolution.WarmupCache(); err != nil {
		return err
	}

	fmt.Println("缓存热重建完成。")
	return nil
}

// verifyLearnsetIntegrity 校验学习表引用的招式全部存在。
// 引用完整性在启动期一次性检查，运行期的查询可以假定数据自洽。
func verifyLearnsetIntegrity() error {
	pokemonRepo := pokemon.GlobalRepository()
	moveRepo := move.GlobalRepository()

	for _, number := range pokemonRepo.Numbers() {
		learned, err := pokemonRepo.LearnedMovesOf(number)
		if err != nil {
			return err
		}
		for _, l := range learned {
			if !moveRepo.Has(l.MoveID) {
				return fmt.Errorf("图鉴编号 %d 的学习表引用了不存在的招式 %d: %w",
					number, l.MoveID, move.ErrMoveNotFound)
			}
		}
	}
	return nil
}
