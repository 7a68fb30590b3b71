package move

// --- Service-Level Data Transfer Objects (DTOs) ---

// MoveDTO 包含了招式API所需的全部数据
type MoveDTO struct {
	ID       uint
	Name     string
	Type     string
	Power    *int
	Accuracy int
	PP       int
	Effect   string
}

// GetAllMoves 返回全部招式，按招式ID升序。
func GetAllMoves() []MoveDTO {
	repo := GlobalRepository()

	out := make([]MoveDTO, 0, repo.Count())
	for _, id := range repo.IDs() {
		info, err := repo.InfoByID(id)
		if err != nil {
			continue
		}
		out = append(out, MoveDTO{
			ID:       id,
			Name:     info.Name,
			Type:     info.Type,
			Power:    info.Power,
			Accuracy: info.Accuracy,
			PP:       info.PP,
			Effect:   info.Effect,
		})
	}
	return out
}

// GetMoveByID 按招式ID返回单个招式的数据。
func GetMoveByID(id uint) (*MoveDTO, error) {
	info, err := GlobalRepository().InfoByID(id)
	if err != nil {
		return nil, err
	}
	return &MoveDTO{
		ID:       id,
		Name:     info.Name,
		Type:     info.Type,
		Power:    info.Power,
		Accuracy: info.Accuracy,
		PP:       info.PP,
		Effect:   info.Effect,
	}, nil
}
