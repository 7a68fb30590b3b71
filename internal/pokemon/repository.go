package pokemon

import (
	"errors"
	"fmt"
	"sort"

	"github.com/kantodex/gen1-team-backend/internal/platform/database"
	"github.com/kantodex/gen1-team-backend/pkg/gen1"
)

// ErrSpeciesNotFound 表示图鉴编号没有对应的种族数据。
var ErrSpeciesNotFound = errors.New("找不到对应的种族数据")

// Info 持有种族的静态数据，在程序启动时加载到内存中
type Info struct {
	Name       string
	Type1      string
	Type2      *string
	Base       gen1.BaseStats
	FlavorText string
}

// Learned 是内存仓库中的一条可学习招式记录。
// Level 为空表示初始技能。
type Learned struct {
	MoveID uint
	Level  *int
}

// Repository 是宝可梦种族数据的只读内存仓库。
// 它在启动时一次性构造，之后只读，可被任意多个请求并发访问。
type Repository struct {
	numberToIndex map[int]int
	indexToNumber []int
	indexToInfo   []Info
	learnsets     map[int][]Learned
}

// NewRepository 从种族与学习表记录构造内存仓库。
// 所有字段约束在构造期校验，而不是等到使用时才发现脏数据。
func NewRepository(species []Species, learned []LearnedMove) (*Repository, error) {
	repo := &Repository{
		numberToIndex: make(map[int]int, len(species)),
		indexToNumber: make([]int, 0, len(species)),
		indexToInfo:   make([]Info, 0, len(species)),
		learnsets:     make(map[int][]Learned),
	}

	sorted := make([]Species, len(species))
	copy(sorted, species)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PokedexNumber < sorted[j].PokedexNumber })

	for _, s := range sorted {
		if s.PokedexNumber <= 0 {
			return nil, fmt.Errorf("种族 %q 的图鉴编号 %d 非法", s.Name, s.PokedexNumber)
		}
		if _, dup := repo.numberToIndex[s.PokedexNumber]; dup {
			return nil, fmt.Errorf("图鉴编号 %d 重复", s.PokedexNumber)
		}
		if s.BaseHP < 0 || s.BaseAttack < 0 || s.BaseDefense < 0 || s.BaseSpecial < 0 || s.BaseSpeed < 0 {
			return nil, fmt.Errorf("种族 %q 存在为负的种族值", s.Name)
		}
		repo.numberToIndex[s.PokedexNumber] = len(repo.indexToNumber)
		repo.indexToNumber = append(repo.indexToNumber, s.PokedexNumber)
		repo.indexToInfo = append(repo.indexToInfo, Info{
			Name:  s.Name,
			Type1: s.Type1,
			Type2: s.Type2,
			Base: gen1.BaseStats{
				HP:      s.BaseHP,
				Attack:  s.BaseAttack,
				Defense: s.BaseDefense,
				Special: s.BaseSpecial,
				Speed:   s.BaseSpeed,
			},
			FlavorText: s.FlavorText,
		})
	}

	for _, lm := range learned {
		if _, ok := repo.numberToIndex[lm.PokedexNumber]; !ok {
			return nil, fmt.Errorf("学习表引用了不存在的图鉴编号 %d: %w", lm.PokedexNumber, ErrSpeciesNotFound)
		}
		if lm.LearnLevel != nil && (*lm.LearnLevel < gen1.MinLevel || *lm.LearnLevel > gen1.MaxLevel) {
			return nil, fmt.Errorf("图鉴编号 %d 的招式 %d 学习等级 %d 非法", lm.PokedexNumber, lm.MoveID, *lm.LearnLevel)
		}
		repo.learnsets[lm.PokedexNumber] = append(repo.learnsets[lm.PokedexNumber], Learned{
			MoveID: lm.MoveID,
			Level:  lm.LearnLevel,
		})
	}

	// 学习表内部排序：初始技能在前，之后按等级、招式ID升序，保证遍历顺序确定
	for number := range repo.learnsets {
		sortLearned(repo.learnsets[number])
	}

	return repo, nil
}

func sortLearned(ls []Learned) {
	sort.Slice(ls, func(i, j int) bool {
		li, lj := ls[i].Level, ls[j].Level
		if (li == nil) != (lj == nil) {
			return li == nil
		}
		if li != nil && *li != *lj {
			return *li < *lj
		}
		return ls[i].MoveID < ls[j].MoveID
	})
}

// Count 返回仓库中的种族总数。
func (r *Repository) Count() int {
	return len(r.indexToNumber)
}

// Numbers 返回全部图鉴编号，升序。
func (r *Repository) Numbers() []int {
	out := make([]int, len(r.indexToNumber))
	copy(out, r.indexToNumber)
	return out
}

// InfoByNumber 按图鉴编号查询种族静态数据。
func (r *Repository) InfoByNumber(number int) (Info, error) {
	idx, ok := r.numberToIndex[number]
	if !ok {
		return Info{}, fmt.Errorf("图鉴编号 %d: %w", number, ErrSpeciesNotFound)
	}
	return r.indexToInfo[idx], nil
}

// BaseStatsByNumber 按图鉴编号查询种族值。
func (r *Repository) BaseStatsByNumber(number int) (gen1.BaseStats, error) {
	info, err := r.InfoByNumber(number)
	if err != nil {
		return gen1.BaseStats{}, err
	}
	return info.Base, nil
}

// LearnedMovesOf 返回某个种族自己的完整学习表（不含进化链继承）。
// 返回的切片是内部数据的拷贝，调用方可以随意修改。
func (r *Repository) LearnedMovesOf(number int) ([]Learned, error) {
	if _, ok := r.numberToIndex[number]; !ok {
		return nil, fmt.Errorf("图鉴编号 %d: %w", number, ErrSpeciesNotFound)
	}
	ls := r.learnsets[number]
	out := make([]Learned, len(ls))
	copy(out, ls)
	return out, nil
}

// --- 模块级单例，供handler与其他模块使用 ---

var globalRepository *Repository

// InitializeRepository 从SQLite加载种族静态数据，初始化内存仓库。
// 这个函数应该在应用启动时且仅调用一次。
func InitializeRepository() error {
	var speciesFromDB []Species
	if err := database.DB.Order("pokedex_number asc").Find(&speciesFromDB).Error; err != nil {
		return fmt.Errorf("无法从数据库加载种族静态数据: %w", err)
	}
	if len(speciesFromDB) == 0 {
		return fmt.Errorf("种族静态数据为空，无法初始化仓库")
	}

	var learnedFromDB []LearnedMove
	if err := database.DB.Find(&learnedFromDB).Error; err != nil {
		return fmt.Errorf("无法从数据库加载学习表数据: %w", err)
	}

	repo, err := NewRepository(speciesFromDB, learnedFromDB)
	if err != nil {
		return fmt.Errorf("种族仓库构造失败: %w", err)
	}
	globalRepository = repo

	fmt.Printf("种族仓库 (Repository) 初始化成功，加载了 %d 个种族、%d 条学习记录。\n",
		repo.Count(), len(learnedFromDB))
	return nil
}

// GlobalRepository 返回启动时构造的只读仓库实例。
func GlobalRepository() *Repository {
	return globalRepository
}
