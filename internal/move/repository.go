package move

import (
	"errors"
	"fmt"
	"sort"

	"github.com/kantodex/gen1-team-backend/internal/platform/database"
)

// ErrMoveNotFound 表示招式ID没有对应的招式数据。
var ErrMoveNotFound = errors.New("找不到对应的招式数据")

// Info 持有招式的静态数据，在程序启动时加载到内存中
type Info struct {
	Name     string
	Type     string
	Power    *int
	Accuracy int
	PP       int
	Effect   string
}

// Repository 是招式数据的只读内存仓库，启动后不再变更。
type Repository struct {
	idToInfo map[uint]Info
	ids      []uint
}

// NewRepository 从招式记录构造内存仓库，并在构造期校验字段约束。
func NewRepository(moves []Move) (*Repository, error) {
	repo := &Repository{
		idToInfo: make(map[uint]Info, len(moves)),
		ids:      make([]uint, 0, len(moves)),
	}

	for _, m := range moves {
		if m.MoveID == 0 {
			return nil, fmt.Errorf("招式 %q 的ID非法", m.Name)
		}
		if _, dup := repo.idToInfo[m.MoveID]; dup {
			return nil, fmt.Errorf("招式ID %d 重复", m.MoveID)
		}
		if m.Accuracy < 0 || m.Accuracy > 100 {
			return nil, fmt.Errorf("招式 %q 的命中率 %d 不在 [0, 100] 内", m.Name, m.Accuracy)
		}
		if m.Power != nil && *m.Power < 0 {
			return nil, fmt.Errorf("招式 %q 的威力不能为负", m.Name)
		}
		if m.PP <= 0 {
			return nil, fmt.Errorf("招式 %q 的PP必须为正", m.Name)
		}
		repo.idToInfo[m.MoveID] = Info{
			Name:     m.Name,
			Type:     m.Type,
			Power:    m.Power,
			Accuracy: m.Accuracy,
			PP:       m.PP,
			Effect:   m.Effect,
		}
		repo.ids = append(repo.ids, m.MoveID)
	}

	sort.Slice(repo.ids, func(i, j int) bool { return repo.ids[i] < repo.ids[j] })
	return repo, nil
}

// Count 返回仓库中的招式总数。
func (r *Repository) Count() int {
	return len(r.ids)
}

// IDs 返回全部招式ID，升序。
func (r *Repository) IDs() []uint {
	out := make([]uint, len(r.ids))
	copy(out, r.ids)
	return out
}

// Has 判断招式ID是否存在。
func (r *Repository) Has(id uint) bool {
	_, ok := r.idToInfo[id]
	return ok
}

// InfoByID 按招式ID查询静态数据。
func (r *Repository) InfoByID(id uint) (Info, error) {
	info, ok := r.idToInfo[id]
	if !ok {
		return Info{}, fmt.Errorf("招式ID %d: %w", id, ErrMoveNotFound)
	}
	return info, nil
}

// --- 模块级单例 ---

var globalRepository *Repository

// InitializeRepository 从数据库加载招式静态数据，初始化内存仓库。
// 应用启动时调用且仅调用一次。
func InitializeRepository() error {
	var movesFromDB []Move
	if err := database.DB.Order("move_id asc").Find(&movesFromDB).Error; err != nil {
		return fmt.Errorf("无法从数据库加载招式静态数据: %w", err)
	}
	if len(movesFromDB) == 0 {
		return fmt.Errorf("招式静态数据为空，无法初始化仓库")
	}

	repo, err := NewRepository(movesFromDB)
	if err != nil {
		return fmt.Errorf("招式仓库构造失败: %w", err)
	}
	globalRepository = repo

	fmt.Printf("招式仓库 (Repository) 初始化成功，加载了 %d 个招式。\n", repo.Count())
	return nil
}

// GlobalRepository 返回启动时构造的只读仓库实例。
func GlobalRepository() *Repository {
	return globalRepository
}
