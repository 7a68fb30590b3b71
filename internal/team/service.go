package team

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/kantodex/gen1-team-backend/internal/evolution"
	"github.com/kantodex/gen1-team-backend/internal/move"
	"github.com/kantodex/gen1-team-backend/internal/pokemon"
	"github.com/kantodex/gen1-team-backend/pkg/gen1"
)

// MaxMembers 是一支队伍的成员上限
const MaxMembers = 6

// ErrTeamFull 表示队伍已满6只，无法再加入成员。
var ErrTeamFull = errors.New("队伍成员已达上限")

// ErrLastMember 表示不能删除队伍的最后一只成员。
var ErrLastMember = errors.New("不能删除队伍的最后一只成员")

// ErrMoveNotLearnable 表示该种族在当前等级无法学会指定招式。
var ErrMoveNotLearnable = errors.New("该等级无法学会指定招式")

// --- Service-Level Data Transfer Objects (DTOs) ---

// MemberDTO 是带种族信息与即时计算能力值的成员数据包
type MemberDTO struct {
	Member      Member
	SpeciesName string
	Type1       string
	Type2       *string
	Stats       gen1.StatBlock
}

// TeamDTO 是队伍及其全部成员的数据包
type TeamDTO struct {
	UUID    string
	Name    string
	Members []MemberDTO
}

// MemberInput 是创建成员时的业务输入
type MemberInput struct {
	SpeciesNumber int
	Nickname      string
	Level         int
	IVAttack      int
	IVDefense     int
	IVSpeed       int
	IVSpecial     int
	EVHP          int
	EVAttack      int
	EVDefense     int
	EVSpeed       int
	EVSpecial     int
	MoveIDs       []uint
}

// MemberUpdate 是更新成员时的业务输入，空指针字段表示不修改
type MemberUpdate struct {
	Nickname  *string
	Level     *int
	CurrentHP *int
	Status    *Status
	EVHP      *int
	EVAttack  *int
	EVDefense *int
	EVSpeed   *int
	EVSpecial *int
}

// --- 队伍操作 ---

// NewTeam 创建一支空队伍，分配对外UUID。
func NewTeam(name string) (*Team, error) {
	t := &Team{UUID: uuid.NewString(), Name: name}
	if err := createTeam(t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetTeam 返回队伍及其全部成员（含即时计算的能力值）。
func GetTeam(teamUUID string) (*TeamDTO, error) {
	t, err := teamByUUID(teamUUID)
	if err != nil {
		return nil, err
	}
	return buildTeamDTO(t)
}

// ListTeams 返回全部队伍。
func ListTeams() ([]TeamDTO, error) {
	teams, err := allTeams()
	if err != nil {
		return nil, err
	}
	out := make([]TeamDTO, 0, len(teams))
	for i := range teams {
		dto, err := buildTeamDTO(&teams[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *dto)
	}
	return out, nil
}

// RenameTeam 修改队伍名称。
func RenameTeam(teamUUID, name string) (*Team, error) {
	t, err := teamByUUID(teamUUID)
	if err != nil {
		return nil, err
	}
	t.Name = name
	if err := saveTeam(t); err != nil {
		return nil, err
	}
	return t, nil
}

// RemoveTeam 删除队伍并级联删除其全部成员。
func RemoveTeam(teamUUID string) error {
	t, err := teamByUUID(teamUUID)
	if err != nil {
		return err
	}
	return deleteTeam(t)
}

// --- 成员操作 ---

// AddMember 向队伍加入一只宝可梦。
// 业务规则：队伍至多6只；全零个体值视为未指定，自动随机生成；
// CurrentHP初始化为计算出的HP上限；招式槽必须是该种族(含进化链)可学会的招式。
func AddMember(teamUUID string, in MemberInput) (*MemberDTO, error) {
	t, err := teamByUUID(teamUUID)
	if err != nil {
		return nil, err
	}

	count, err := memberCount(t.ID)
	if err != nil {
		return nil, err
	}
	if count >= MaxMembers {
		return nil, fmt.Errorf("队伍 %s 已有 %d 只成员: %w", teamUUID, count, ErrTeamFull)
	}

	base, err := pokemon.GlobalRepository().BaseStatsByNumber(in.SpeciesNumber)
	if err != nil {
		return nil, err
	}

	m := &Member{
		TeamID:          t.ID,
		SpeciesNumber:   in.SpeciesNumber,
		Nickname:        in.Nickname,
		Level:           in.Level,
		IVAttack:        in.IVAttack,
		IVDefense:       in.IVDefense,
		IVSpeed:         in.IVSpeed,
		IVSpecial:       in.IVSpecial,
		EVHP:            in.EVHP,
		EVAttack:        in.EVAttack,
		EVDefense:       in.EVDefense,
		EVSpeed:         in.EVSpeed,
		EVSpecial:       in.EVSpecial,
		StatusCondition: StatusHealthy,
	}

	// 全零个体值视为未指定，按一代习惯随机生成
	if m.IVAttack == 0 && m.IVDefense == 0 && m.IVSpeed == 0 && m.IVSpecial == 0 {
		m.IVAttack = rand.Intn(gen1.MaxIV + 1)
		m.IVDefense = rand.Intn(gen1.MaxIV + 1)
		m.IVSpeed = rand.Intn(gen1.MaxIV + 1)
		m.IVSpecial = rand.Intn(gen1.MaxIV + 1)
	}

	if err := validateMoveSelection(in.SpeciesNumber, in.Level, in.MoveIDs); err != nil {
		return nil, err
	}
	slots := make([]*uint, 0, len(in.MoveIDs))
	for _, id := range in.MoveIDs {
		moveID := id
		slots = append(slots, &moveID)
	}
	m.SetMoveSlots(slots)

	// 能力值推导同时完成范围校验，越界输入在落库前被拒绝
	stats, err := MaterializeStats(m, base)
	if err != nil {
		return nil, err
	}
	m.CurrentHP = stats.HP

	if err := createMember(m); err != nil {
		return nil, err
	}
	return buildMemberDTO(m)
}

// GetMember 返回队伍成员及其即时计算的能力值。
func GetMember(teamUUID string, memberID uint) (*MemberDTO, error) {
	t, err := teamByUUID(teamUUID)
	if err != nil {
		return nil, err
	}
	m, err := memberByID(t.ID, memberID)
	if err != nil {
		return nil, err
	}
	return buildMemberDTO(m)
}

// UpdateMember 部分更新队伍成员。
// CurrentHP属于对战状态，由这里（修改它的进程）收敛到 [0, HP上限]。
func UpdateMember(teamUUID string, memberID uint, up MemberUpdate) (*MemberDTO, error) {
	t, err := teamByUUID(teamUUID)
	if err != nil {
		return nil, err
	}
	m, err := memberByID(t.ID, memberID)
	if err != nil {
		return nil, err
	}

	if up.Nickname != nil {
		m.Nickname = *up.Nickname
	}
	if up.Level != nil {
		m.Level = *up.Level
	}
	if up.Status != nil {
		m.StatusCondition = *up.Status
	}
	if up.EVHP != nil {
		m.EVHP = *up.EVHP
	}
	if up.EVAttack != nil {
		m.EVAttack = *up.EVAttack
	}
	if up.EVDefense != nil {
		m.EVDefense = *up.EVDefense
	}
	if up.EVSpeed != nil {
		m.EVSpeed = *up.EVSpeed
	}
	if up.EVSpecial != nil {
		m.EVSpecial = *up.EVSpecial
	}

	base, err := pokemon.GlobalRepository().BaseStatsByNumber(m.SpeciesNumber)
	if err != nil {
		return nil, err
	}
	stats, err := MaterializeStats(m, base)
	if err != nil {
		return nil, err
	}

	if up.CurrentHP != nil {
		m.CurrentHP = *up.CurrentHP
	}
	// 收敛对战状态HP，上限随等级/努力值变化而变化
	if m.CurrentHP < 0 {
		m.CurrentHP = 0
	}
	if m.CurrentHP > stats.HP {
		m.CurrentHP = stats.HP
	}

	if err := saveMember(m); err != nil {
		return nil, err
	}
	return buildMemberDTO(m)
}

// RemoveMember 从队伍删除一只成员，但不允许删空队伍。
func RemoveMember(teamUUID string, memberID uint) error {
	t, err := teamByUUID(teamUUID)
	if err != nil {
		return err
	}
	m, err := memberByID(t.ID, memberID)
	if err != nil {
		return err
	}

	count, err := memberCount(t.ID)
	if err != nil {
		return err
	}
	if count <= 1 {
		return fmt.Errorf("队伍 %s: %w", teamUUID, ErrLastMember)
	}
	return deleteMember(m)
}

// UpdateMemberMoves 更新成员的招式槽，最多4个，且必须在当前等级可学会。
func UpdateMemberMoves(teamUUID string, memberID uint, moveIDs []uint) (*MemberDTO, error) {
	t, err := teamByUUID(teamUUID)
	if err != nil {
		return nil, err
	}
	m, err := memberByID(t.ID, memberID)
	if err != nil {
		return nil, err
	}

	if err := validateMoveSelection(m.SpeciesNumber, m.Level, moveIDs); err != nil {
		return nil, err
	}

	slots := make([]*uint, 0, len(moveIDs))
	for _, id := range moveIDs {
		moveID := id
		slots = append(slots, &moveID)
	}
	m.SetMoveSlots(slots)

	if err := saveMember(m); err != nil {
		return nil, err
	}
	return buildMemberDTO(m)
}

// MemberCount 返回队伍当前成员数及可增可删标记。
func MemberCount(teamUUID string) (int64, error) {
	t, err := teamByUUID(teamUUID)
	if err != nil {
		return 0, err
	}
	return memberCount(t.ID)
}

// --- 内部辅助函数 ---

// validateMoveSelection 校验招式槽：去重后至多4个，每个招式都必须存在，
// 且在该种族(含进化链继承)的学习表中、于当前等级可学会。
func validateMoveSelection(speciesNumber, level int, moveIDs []uint) error {
	unique := make([]uint, 0, len(moveIDs))
	seen := make(map[uint]bool, len(moveIDs))
	for _, id := range moveIDs {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	if len(unique) > 4 {
		return fmt.Errorf("招式槽至多4个: %w", gen1.ErrInvalidInput)
	}
	if len(unique) == 0 {
		return nil
	}

	moveRepo := move.GlobalRepository()
	lineage, err := evolution.ResolveLineage(speciesNumber)
	if err != nil {
		return err
	}

	learnable := make(map[uint]bool, len(lineage))
	for _, lm := range lineage {
		if lm.Level == nil || *lm.Level <= level {
			learnable[lm.MoveID] = true
		}
	}

	for _, id := range unique {
		info, err := moveRepo.InfoByID(id)
		if err != nil {
			return err
		}
		if !learnable[id] {
			return fmt.Errorf("%d 级无法学会 %s: %w", level, info.Name, ErrMoveNotLearnable)
		}
	}
	return nil
}

func buildMemberDTO(m *Member) (*MemberDTO, error) {
	info, err := pokemon.GlobalRepository().InfoByNumber(m.SpeciesNumber)
	if err != nil {
		return nil, err
	}
	stats, err := MaterializeStats(m, info.Base)
	if err != nil {
		return nil, err
	}
	return &MemberDTO{
		Member:      *m,
		SpeciesName: info.Name,
		Type1:       info.Type1,
		Type2:       info.Type2,
		Stats:       stats,
	}, nil
}

func buildTeamDTO(t *Team) (*TeamDTO, error) {
	dto := &TeamDTO{UUID: t.UUID, Name: t.Name, Members: make([]MemberDTO, 0, len(t.Members))}
	for i := range t.Members {
		memberDTO, err := buildMemberDTO(&t.Members[i])
		if err != nil {
			return nil, err
		}
		dto.Members = append(dto.Members, *memberDTO)
	}
	return dto, nil
}
