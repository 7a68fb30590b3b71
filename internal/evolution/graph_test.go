package evolution

import (
	"errors"
	"testing"
)

func intPtr(v int) *int { return &v }

func levelEdge(from, to, minLevel int) Edge {
	return Edge{
		FromNumber:      from,
		ToNumber:        to,
		EvolutionMethod: MethodLevelUp,
		MinLevel:        intPtr(minLevel),
	}
}

func TestPredecessorsOfBaseForm(t *testing.T) {
	g, err := NewGraph([]Edge{levelEdge(1, 2, 16), levelEdge(2, 3, 32)}, 3)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}

	ancestors, err := g.PredecessorsOf(1)
	if err != nil {
		t.Fatalf("PredecessorsOf(1): %v", err)
	}
	if len(ancestors) != 0 {
		t.Fatalf("基础形态不应有祖先，却得到 %v", ancestors)
	}
}

func TestPredecessorsOfNearestFirst(t *testing.T) {
	g, err := NewGraph([]Edge{levelEdge(1, 2, 16), levelEdge(2, 3, 32)}, 3)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}

	ancestors, err := g.PredecessorsOf(3)
	if err != nil {
		t.Fatalf("PredecessorsOf(3): %v", err)
	}
	want := []int{2, 1}
	if len(ancestors) != len(want) {
		t.Fatalf("祖先 = %v, want %v", ancestors, want)
	}
	for i := range want {
		if ancestors[i] != want[i] {
			t.Fatalf("祖先 = %v, want %v", ancestors, want)
		}
	}
}

func TestPredecessorsOfChainLength(t *testing.T) {
	// N个种族构成一条链，末端应有 N-1 个祖先
	const n = 10
	edges := make([]Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, levelEdge(i, i+1, 10))
	}
	g, err := NewGraph(edges, n)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}

	ancestors, err := g.PredecessorsOf(n)
	if err != nil {
		t.Fatalf("PredecessorsOf(%d): %v", n, err)
	}
	if len(ancestors) != n-1 {
		t.Fatalf("祖先数量 = %d, want %d", len(ancestors), n-1)
	}
	for i, a := range ancestors {
		if a != n-1-i {
			t.Fatalf("第 %d 个祖先 = %d, want %d", i, a, n-1-i)
		}
	}
}

func TestNewGraphRejectsSelfLoop(t *testing.T) {
	_, err := NewGraph([]Edge{levelEdge(5, 5, 10)}, 5)
	if !errors.Is(err, ErrCycleDetected) {
		t.Fatalf("自环应返回 ErrCycleDetected, got %v", err)
	}
}

func TestNewGraphRejectsDuplicateEdge(t *testing.T) {
	_, err := NewGraph([]Edge{levelEdge(1, 2, 16), levelEdge(1, 2, 20)}, 2)
	if err == nil {
		t.Fatal("重复边应构图失败")
	}
}

func TestNewGraphRejectsMultiplePredecessors(t *testing.T) {
	_, err := NewGraph([]Edge{levelEdge(1, 3, 16), levelEdge(2, 3, 20)}, 3)
	if err == nil {
		t.Fatal("同一种族有两个前驱应构图失败")
	}
}

func TestPredecessorsOfDetectsCycle(t *testing.T) {
	// 1 -> 2 -> 3 -> 1 构成环，但每个节点仍只有一个前驱，
	// 只有在遍历时才能发现。
	g, err := NewGraph([]Edge{levelEdge(1, 2, 10), levelEdge(2, 3, 20), levelEdge(3, 1, 30)}, 3)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}

	_, err = g.PredecessorsOf(1)
	if !errors.Is(err, ErrCycleDetected) {
		t.Fatalf("环应返回 ErrCycleDetected, got %v", err)
	}
}

func TestSuccessorsOfBranching(t *testing.T) {
	stone := "Water Stone"
	edges := []Edge{
		{FromNumber: 133, ToNumber: 134, EvolutionMethod: MethodItem, RequiredItem: &stone},
		levelEdge(1, 2, 16),
	}
	g, err := NewGraph(edges, 200)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}

	links := g.SuccessorsOf(133)
	if len(links) != 1 {
		t.Fatalf("出边数量 = %d, want 1", len(links))
	}
	if links[0].ToNumber != 134 || links[0].Method != MethodItem {
		t.Fatalf("出边 = %+v", links[0])
	}
	if links[0].RequiredItem == nil || *links[0].RequiredItem != stone {
		t.Fatalf("RequiredItem = %v", links[0].RequiredItem)
	}

	if got := g.SuccessorsOf(134); len(got) != 0 {
		t.Fatalf("末端形态不应有出边，却得到 %v", got)
	}
}
