package evolution

import (
	"errors"
	"fmt"
)

// ErrCycleDetected 表示进化图中存在环。
// 合法数据中这不应该发生，一旦出现视为致命的数据完整性错误，不做重试。
var ErrCycleDetected = errors.New("进化图中检测到环")

// Link 是一条出边的元数据，用于展示"进化去向"。
type Link struct {
	ToNumber     int
	Method       Method
	MinLevel     *int
	RequiredItem *string
	Trade        bool
}

// Graph 是进化关系的只读内存视图。
// 一代没有汇聚进化，因此前驱关系退化为父指针链；
// 但对外接口仍按"祖先序列"表达，未来出现分支进化时无需改动接口。
type Graph struct {
	parent       map[int]int    // to -> from
	children     map[int][]Link // from -> 出边
	speciesCount int
}

// NewGraph 从进化边集合构图。speciesCount 用作遍历深度上界。
// 构造期强制森林不变量：同一 (from, to) 至多一条边，每个种族至多一个前驱。
func NewGraph(edges []Edge, speciesCount int) (*Graph, error) {
	if speciesCount <= 0 {
		return nil, fmt.Errorf("种族总数必须为正数")
	}

	g := &Graph{
		parent:       make(map[int]int, len(edges)),
		children:     make(map[int][]Link),
		speciesCount: speciesCount,
	}

	seen := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		if e.FromNumber <= 0 || e.ToNumber <= 0 {
			return nil, fmt.Errorf("进化边 %d -> %d 的图鉴编号非法", e.FromNumber, e.ToNumber)
		}
		if e.FromNumber == e.ToNumber {
			return nil, fmt.Errorf("进化边 %d -> %d 指向自身: %w", e.FromNumber, e.ToNumber, ErrCycleDetected)
		}
		key := [2]int{e.FromNumber, e.ToNumber}
		if seen[key] {
			return nil, fmt.Errorf("进化边 %d -> %d 重复", e.FromNumber, e.ToNumber)
		}
		seen[key] = true

		if prev, ok := g.parent[e.ToNumber]; ok {
			return nil, fmt.Errorf("种族 %d 存在多个前置进化 (%d 和 %d)，违反森林不变量", e.ToNumber, prev, e.FromNumber)
		}
		g.parent[e.ToNumber] = e.FromNumber
		g.children[e.FromNumber] = append(g.children[e.FromNumber], Link{
			ToNumber:     e.ToNumber,
			Method:       e.EvolutionMethod,
			MinLevel:     e.MinLevel,
			RequiredItem: e.RequiredItem,
			Trade:        e.Trade,
		})
	}

	return g, nil
}

// PredecessorsOf 返回某个种族的全部祖先，最近的祖先在前。
// 没有前置进化时返回空序列。遍历步数以种族总数为上界，
// 超出上界说明父指针链成环，返回 ErrCycleDetected。
func (g *Graph) PredecessorsOf(number int) ([]int, error) {
	var ancestors []int
	current := number
	for steps := 0; ; steps++ {
		if steps > g.speciesCount {
			return nil, fmt.Errorf("种族 %d 的祖先链超过种族总数 %d: %w", number, g.speciesCount, ErrCycleDetected)
		}
		prev, ok := g.parent[current]
		if !ok {
			return ancestors, nil
		}
		ancestors = append(ancestors, prev)
		current = prev
	}
}

// SuccessorsOf 返回某个种族的直接进化去向（含方式元数据）。
func (g *Graph) SuccessorsOf(number int) []Link {
	links := g.children[number]
	out := make([]Link, len(links))
	copy(out, links)
	return out
}
