package evolution

import (
	"testing"

	"github.com/kantodex/gen1-team-backend/internal/pokemon"
)

// testSpecies 构造一个只填编号和名字的种族记录，种族值全零即可。
func testSpecies(number int, name string) pokemon.Species {
	return pokemon.Species{PokedexNumber: number, Name: name, Type1: "Normal"}
}

func learnedAt(number int, moveID uint, level int) pokemon.LearnedMove {
	return pokemon.LearnedMove{PokedexNumber: number, MoveID: moveID, LearnLevel: &level}
}

func learnedInnate(number int, moveID uint) pokemon.LearnedMove {
	return pokemon.LearnedMove{PokedexNumber: number, MoveID: moveID}
}

// newTestResolver 用内存仓库和给定的进化边构造一个解析器。
func newTestResolver(t *testing.T, species []pokemon.Species, learned []pokemon.LearnedMove, edges []Edge) *Resolver {
	t.Helper()
	repo, err := pokemon.NewRepository(species, learned)
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}
	graph, err := NewGraph(edges, repo.Count())
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	return NewResolver(graph, repo)
}

func TestMovesWithLineageBaseFormEqualsOwnSet(t *testing.T) {
	species := []pokemon.Species{testSpecies(1, "Bulbasaur"), testSpecies(2, "Ivysaur")}
	learned := []pokemon.LearnedMove{
		learnedInnate(1, 33),
		learnedAt(1, 73, 7),
		learnedInnate(2, 33),
	}
	r := newTestResolver(t, species, learned, []Edge{levelEdge(1, 2, 16)})

	moves, err := r.MovesWithLineage(1)
	if err != nil {
		t.Fatalf("MovesWithLineage(1): %v", err)
	}
	if len(moves) != 2 {
		t.Fatalf("基础形态的血统招式数 = %d, want 2", len(moves))
	}
	for _, m := range moves {
		if m.SourceNumber != 1 {
			t.Fatalf("基础形态的招式来源应为自身, got %+v", m)
		}
	}
}

func TestMovesWithLineageInheritsFromAncestors(t *testing.T) {
	species := []pokemon.Species{
		testSpecies(1, "Bulbasaur"), testSpecies(2, "Ivysaur"), testSpecies(3, "Venusaur"),
	}
	learned := []pokemon.LearnedMove{
		learnedAt(1, 77, 20), // 只有一段学的招式
		learnedInnate(2, 33),
		learnedAt(3, 76, 65),
	}
	r := newTestResolver(t, species, learned, []Edge{levelEdge(1, 2, 16), levelEdge(2, 3, 32)})

	moves, err := r.MovesWithLineage(3)
	if err != nil {
		t.Fatalf("MovesWithLineage(3): %v", err)
	}
	bySource := make(map[uint]int)
	for _, m := range moves {
		bySource[m.MoveID] = m.SourceNumber
	}
	if len(moves) != 3 {
		t.Fatalf("血统招式数 = %d, want 3: %+v", len(moves), moves)
	}
	if bySource[77] != 1 {
		t.Fatalf("招式77应来自种族1, got %d", bySource[77])
	}
	if bySource[33] != 2 {
		t.Fatalf("招式33应来自种族2, got %d", bySource[33])
	}
	if bySource[76] != 3 {
		t.Fatalf("招式76应来自种族3, got %d", bySource[76])
	}
}

func TestMovesWithLineageDeduplication(t *testing.T) {
	species := []pokemon.Species{
		testSpecies(1, "Base"), testSpecies(2, "Mid"), testSpecies(3, "Final"),
	}
	learned := []pokemon.LearnedMove{
		// 招式10: 祖先是初始技能，目标自己40级才学，初始技能应胜出
		learnedInnate(1, 10),
		learnedAt(3, 10, 40),
		// 招式20: 祖先15级学，目标30级学，较低等级胜出
		learnedAt(1, 20, 15),
		learnedAt(3, 20, 30),
		// 招式30: 两个祖先同在25级学，较近的祖先(2)胜出
		learnedAt(1, 30, 25),
		learnedAt(2, 30, 25),
	}
	r := newTestResolver(t, species, learned, []Edge{levelEdge(1, 2, 16), levelEdge(2, 3, 32)})

	moves, err := r.MovesWithLineage(3)
	if err != nil {
		t.Fatalf("MovesWithLineage(3): %v", err)
	}
	got := make(map[uint]LineageMove)
	for _, m := range moves {
		if _, dup := got[m.MoveID]; dup {
			t.Fatalf("招式 %d 出现了多条记录", m.MoveID)
		}
		got[m.MoveID] = m
	}

	if m := got[10]; m.Level != nil || m.SourceNumber != 1 {
		t.Fatalf("招式10 = %+v, want 初始技能来自种族1", m)
	}
	if m := got[20]; m.Level == nil || *m.Level != 15 || m.SourceNumber != 1 {
		t.Fatalf("招式20 = %+v, want 15级来自种族1", m)
	}
	if m := got[30]; m.Level == nil || *m.Level != 25 || m.SourceNumber != 2 {
		t.Fatalf("招式30 = %+v, want 25级来自较近的种族2", m)
	}
}

func TestMovesWithLineageDeterministicOrder(t *testing.T) {
	species := []pokemon.Species{testSpecies(1, "Base"), testSpecies(2, "Final")}
	learned := []pokemon.LearnedMove{
		learnedAt(1, 50, 30),
		learnedAt(1, 40, 10),
		learnedInnate(2, 99),
		learnedInnate(2, 5),
		learnedAt(2, 60, 10),
	}
	r := newTestResolver(t, species, learned, []Edge{levelEdge(1, 2, 16)})

	moves, err := r.MovesWithLineage(2)
	if err != nil {
		t.Fatalf("MovesWithLineage(2): %v", err)
	}

	// 初始技能在前按ID升序，之后按(等级, ID)升序
	wantIDs := []uint{5, 99, 40, 60, 50}
	if len(moves) != len(wantIDs) {
		t.Fatalf("招式数 = %d, want %d", len(moves), len(wantIDs))
	}
	for i, m := range moves {
		if m.MoveID != wantIDs[i] {
			t.Fatalf("第 %d 项 = %d, want %d (全部: %+v)", i, m.MoveID, wantIDs[i], moves)
		}
	}

	// 纯读取组件，重复调用结果逐项一致
	again, err := r.MovesWithLineage(2)
	if err != nil {
		t.Fatalf("第二次 MovesWithLineage(2): %v", err)
	}
	if len(again) != len(moves) {
		t.Fatalf("两次调用结果长度不同: %d vs %d", len(again), len(moves))
	}
	for i := range moves {
		if moves[i] != again[i] {
			t.Fatalf("两次调用第 %d 项不同: %+v vs %+v", i, moves[i], again[i])
		}
	}
}

func TestMovesWithLineageUnknownSpecies(t *testing.T) {
	species := []pokemon.Species{testSpecies(1, "Base")}
	r := newTestResolver(t, species, nil, nil)

	if _, err := r.MovesWithLineage(999); err == nil {
		t.Fatal("未知种族应返回错误")
	}
}
