package evolution

import (
	"sort"

	"github.com/kantodex/gen1-team-backend/internal/pokemon"
)

// LearnsetSource 是解析器对种族学习表的只读依赖。
// 生产环境由 pokemon.Repository 满足，测试中可以用内存构造的仓库直接替代。
type LearnsetSource interface {
	LearnedMovesOf(number int) ([]pokemon.Learned, error)
}

// LineageMove 是进化链合并后的一条可学习招式。
// SourceNumber 标记该招式实际来自链上的哪个种族。
type LineageMove struct {
	MoveID       uint `json:"move_id"`
	SourceNumber int  `json:"source_number"`
	Level        *int `json:"level"`
}

// Resolver 负责沿进化链向前回溯，合并所有祖先的学习表。
// 它是纯读取组件：不写任何状态，同样的数据重复调用结果完全一致。
type Resolver struct {
	graph     *Graph
	learnsets LearnsetSource
}

// NewResolver 显式注入进化图与学习表来源，构造解析器。
func NewResolver(graph *Graph, learnsets LearnsetSource) *Resolver {
	return &Resolver{graph: graph, learnsets: learnsets}
}

// candidate 记录合并过程中某个招式当前的最优来源
type candidate struct {
	level    *int
	source   int
	distance int // 0 = 目标种族自身，1 = 最近的祖先，依此类推
}

// MovesWithLineage 返回目标种族可学习的全部招式，含从祖先继承的部分。
// 去重规则：同一招式只保留一条——初始技能(无等级)优先于有等级的记录；
// 等级更低者优先；完全同级时更接近目标种族的来源优先。
func (r *Resolver) MovesWithLineage(number int) ([]LineageMove, error) {
	own, err := r.learnsets.LearnedMovesOf(number)
	if err != nil {
		return nil, err
	}

	ancestors, err := r.graph.PredecessorsOf(number)
	if err != nil {
		return nil, err
	}

	best := make(map[uint]candidate)
	merge := func(ls []pokemon.Learned, source, distance int) {
		for _, l := range ls {
			next := candidate{level: l.Level, source: source, distance: distance}
			prev, ok := best[l.MoveID]
			if !ok || better(next, prev) {
				best[l.MoveID] = next
			}
		}
	}

	merge(own, number, 0)
	for i, ancestor := range ancestors {
		ls, err := r.learnsets.LearnedMovesOf(ancestor)
		if err != nil {
			// 祖先缺失属于数据完整性问题，立即上抛，不返回部分结果
			return nil, err
		}
		merge(ls, ancestor, i+1)
	}

	out := make([]LineageMove, 0, len(best))
	for moveID, c := range best {
		out = append(out, LineageMove{MoveID: moveID, SourceNumber: c.source, Level: c.level})
	}

	// 输出顺序确定：初始技能在前，之后按等级、招式ID升序
	sort.Slice(out, func(i, j int) bool {
		li, lj := out[i].Level, out[j].Level
		if (li == nil) != (lj == nil) {
			return li == nil
		}
		if li != nil && *li != *lj {
			return *li < *lj
		}
		return out[i].MoveID < out[j].MoveID
	})
	return out, nil
}

// better 判断 next 是否应该取代 prev 成为某个招式的保留项。
// 注意调用方按距离从近到远合并，因此同级比较时 prev 一定不比 next 远。
func better(next, prev candidate) bool {
	switch {
	case next.level == nil && prev.level != nil:
		return true
	case next.level != nil && prev.level == nil:
		return false
	case next.level == nil && prev.level == nil:
		return next.distance < prev.distance
	default:
		if *next.level != *prev.level {
			return *next.level < *prev.level
		}
		return next.distance < prev.distance
	}
}
