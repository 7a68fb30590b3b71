package evolution

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kantodex/gen1-team-backend/internal/platform/database"
	"github.com/kantodex/gen1-team-backend/internal/pokemon"
)

// 模块级单例：进化图与解析器在启动时构造，之后只读
var globalGraph *Graph
var globalResolver *Resolver

// seedEdge 对应 evolutions.json 中的一条记录
type seedEdge struct {
	From         int     `json:"from"`
	To           int     `json:"to"`
	Method       Method  `json:"method"`
	MinLevel     *int    `json:"min_level"`
	RequiredItem *string `json:"required_item"`
	Trade        bool    `json:"trade"`
}

// PrimeModule 负责初始化evolution模块：迁移表结构、导入种子数据、构图。
// 必须在pokemon模块初始化之后调用，因为构图需要种族总数。
func PrimeModule(dataDir string) error {
	if err := migrateDB(); err != nil {
		return err
	}
	if err := seedIfEmpty(dataDir); err != nil {
		return err
	}
	return InitializeGraph()
}

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&Edge{}); err != nil {
		return fmt.Errorf("无法迁移evolution表: %w", err)
	}
	fmt.Println("Evolution数据库表迁移成功。")
	return nil
}

// seedIfEmpty 在进化表为空时从种子文件导入数据
func seedIfEmpty(dataDir string) error {
	var count int64
	if err := database.DB.Model(&Edge{}).Count(&count).Error; err != nil {
		return fmt.Errorf("无法检查进化表状态: %w", err)
	}
	if count > 0 {
		return nil
	}

	path := filepath.Join(dataDir, "evolutions.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("无法读取进化种子数据 %s: %w", path, err)
	}

	var seeds []seedEdge
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("进化种子数据格式错误: %w", err)
	}

	edges := make([]Edge, 0, len(seeds))
	for _, s := range seeds {
		edges = append(edges, Edge{
			FromNumber:      s.From,
			ToNumber:        s.To,
			EvolutionMethod: s.Method,
			MinLevel:        s.MinLevel,
			RequiredItem:    s.RequiredItem,
			Trade:           s.Trade,
		})
	}
	if err := database.DB.Create(&edges).Error; err != nil {
		return fmt.Errorf("导入进化种子数据失败: %w", err)
	}

	fmt.Printf("成功导入 %d 条进化边。\n", len(edges))
	return nil
}

// InitializeGraph 从数据库加载进化边，构造内存图与解析器。
// 应用启动时调用且仅调用一次。
func InitializeGraph() error {
	repo := pokemon.GlobalRepository()
	if repo == nil {
		return fmt.Errorf("种族仓库尚未初始化，无法构造进化图")
	}

	var edgesFromDB []Edge
	if err := database.DB.Find(&edgesFromDB).Error; err != nil {
		return fmt.Errorf("无法从数据库加载进化边: %w", err)
	}

	graph, err := NewGraph(edgesFromDB, repo.Count())
	if err != nil {
		return fmt.Errorf("进化图构造失败: %w", err)
	}

	globalGraph = graph
	globalResolver = NewResolver(graph, repo)

	fmt.Printf("进化图初始化成功，加载了 %d 条进化边。\n", len(edgesFromDB))
	return nil
}

// GlobalGraph 返回启动时构造的只读进化图。
func GlobalGraph() *Graph {
	return globalGraph
}
