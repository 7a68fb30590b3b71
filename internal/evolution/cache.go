package evolution

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/kantodex/gen1-team-backend/internal/platform/database"
	"github.com/kantodex/gen1-team-backend/internal/pokemon"
)

// LineageKey 是一个Redis Hash，按图鉴编号缓存合并后的进化链招式表。
// 种族数据只读，因此缓存没有失效问题，只在启动和Redis恢复时整体重建。
const LineageKey = "pokemon_lineage"

// WarmupCache 为全部种族预计算进化链招式表并写入Redis。
// 注意：解析器本身是纯内存计算，缓存只是省去重复合并的开销；
// Redis不可用时各接口直接回退到即时计算。
func WarmupCache() error {
	repo := pokemon.GlobalRepository()
	if repo == nil || globalResolver == nil {
		return fmt.Errorf("进化模块尚未初始化，无法预热缓存")
	}

	pipe := database.RDB.Pipeline()
	pipe.Del(database.Ctx, LineageKey)

	count := 0
	for _, number := range repo.Numbers() {
		lineage, err := globalResolver.MovesWithLineage(number)
		if err != nil {
			return fmt.Errorf("预计算图鉴编号 %d 的进化链招式表失败: %w", number, err)
		}
		payload, err := json.Marshal(lineage)
		if err != nil {
			return fmt.Errorf("序列化图鉴编号 %d 的进化链招式表失败: %w", number, err)
		}
		pipe.HSet(database.Ctx, LineageKey, strconv.Itoa(number), payload)
		count++
	}

	if _, err := pipe.Exec(database.Ctx); err != nil {
		return fmt.Errorf("预热进化链招式缓存到Redis失败: %w", err)
	}

	fmt.Printf("成功预热 %d 个种族的进化链招式缓存。\n", count)
	return nil
}

// cachedLineage 尝试从Redis读取某个种族的进化链招式表。
// 读不到或反序列化失败都按缓存未命中处理，由调用方回退到即时计算。
func cachedLineage(number int) ([]LineageMove, bool) {
	raw, err := database.RDB.HGet(database.Ctx, LineageKey, strconv.Itoa(number)).Result()
	if err != nil {
		return nil, false
	}
	var lineage []LineageMove
	if err := json.Unmarshal([]byte(raw), &lineage); err != nil {
		fmt.Printf("警告: 图鉴编号 %d 的进化链缓存损坏，回退到即时计算: %v\n", number, err)
		return nil, false
	}
	return lineage, true
}
