package team

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kantodex/gen1-team-backend/internal/move"
	"github.com/kantodex/gen1-team-backend/internal/pokemon"
	"github.com/kantodex/gen1-team-backend/pkg/gen1"
)

// --- API请求/响应模型 ---

type createTeamRequest struct {
	Name string `json:"name" binding:"required"`
}

type createMemberRequest struct {
	SpeciesNumber int    `json:"species_number" binding:"required"`
	Nickname      string `json:"nickname"`
	Level         int    `json:"level" binding:"required"`
	IVAttack      int    `json:"iv_attack"`
	IVDefense     int    `json:"iv_defense"`
	IVSpeed       int    `json:"iv_speed"`
	IVSpecial     int    `json:"iv_special"`
	EVHP          int    `json:"ev_hp"`
	EVAttack      int    `json:"ev_attack"`
	EVDefense     int    `json:"ev_defense"`
	EVSpeed       int    `json:"ev_speed"`
	EVSpecial     int    `json:"ev_special"`
	MoveIDs       []uint `json:"move_ids"`
}

type updateMemberRequest struct {
	Nickname  *string `json:"nickname"`
	Level     *int    `json:"level"`
	CurrentHP *int    `json:"current_hp"`
	Status    *Status `json:"status"`
	EVHP      *int    `json:"ev_hp"`
	EVAttack  *int    `json:"ev_attack"`
	EVDefense *int    `json:"ev_defense"`
	EVSpeed   *int    `json:"ev_speed"`
	EVSpecial *int    `json:"ev_special"`
}

type updateMovesRequest struct {
	MoveIDs []uint `json:"move_ids"`
}

type memberResponse struct {
	ID            uint           `json:"id"`
	SpeciesNumber int            `json:"species_number"`
	SpeciesName   string         `json:"species_name"`
	Type1         string         `json:"type1"`
	Type2         *string        `json:"type2"`
	Nickname      string         `json:"nickname"`
	Level         int            `json:"level"`
	IVAttack      int            `json:"iv_attack"`
	IVDefense     int            `json:"iv_defense"`
	IVSpeed       int            `json:"iv_speed"`
	IVSpecial     int            `json:"iv_special"`
	EVHP          int            `json:"ev_hp"`
	EVAttack      int            `json:"ev_attack"`
	EVDefense     int            `json:"ev_defense"`
	EVSpeed       int            `json:"ev_speed"`
	EVSpecial     int            `json:"ev_special"`
	CurrentHP     int            `json:"current_hp"`
	Status        Status         `json:"status"`
	MoveIDs       []*uint        `json:"move_ids"`
	Stats         gen1.StatBlock `json:"stats"`
}

type teamResponse struct {
	UUID    string           `json:"uuid"`
	Name    string           `json:"name"`
	Members []memberResponse `json:"members"`
}

// formatMember 将服务层DTO格式化为API响应
func formatMember(dto MemberDTO) memberResponse {
	slots := dto.Member.MoveSlots()
	return memberResponse{
		ID:            dto.Member.ID,
		SpeciesNumber: dto.Member.SpeciesNumber,
		SpeciesName:   dto.SpeciesName,
		Type1:         dto.Type1,
		Type2:         dto.Type2,
		Nickname:      dto.Member.Nickname,
		Level:         dto.Member.Level,
		IVAttack:      dto.Member.IVAttack,
		IVDefense:     dto.Member.IVDefense,
		IVSpeed:       dto.Member.IVSpeed,
		IVSpecial:     dto.Member.IVSpecial,
		EVHP:          dto.Member.EVHP,
		EVAttack:      dto.Member.EVAttack,
		EVDefense:     dto.Member.EVDefense,
		EVSpeed:       dto.Member.EVSpeed,
		EVSpecial:     dto.Member.EVSpecial,
		CurrentHP:     dto.Member.CurrentHP,
		Status:        dto.Member.StatusCondition,
		MoveIDs:       slots[:],
		Stats:         dto.Stats,
	}
}

func formatTeam(dto TeamDTO) teamResponse {
	resp := teamResponse{UUID: dto.UUID, Name: dto.Name, Members: []memberResponse{}}
	for _, m := range dto.Members {
		resp.Members = append(resp.Members, formatMember(m))
	}
	return resp
}

// respondError 按错误类别翻译为HTTP状态码
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTeamNotFound), errors.Is(err, ErrMemberNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, gen1.ErrInvalidInput),
		errors.Is(err, pokemon.ErrSpeciesNotFound),
		errors.Is(err, move.ErrMoveNotFound),
		errors.Is(err, ErrMoveNotLearnable),
		errors.Is(err, ErrTeamFull),
		errors.Is(err, ErrLastMember):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "服务器内部错误"})
	}
}

// --- 控制器函数 ---

// CreateTeam 创建一支新队伍
func CreateTeam(c *gin.Context) {
	var req createTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "队伍名称不能为空"})
		return
	}

	t, err := NewTeam(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"uuid": t.UUID, "name": t.Name})
}

// GetTeams 获取全部队伍
func GetTeams(c *gin.Context) {
	teams, err := ListTeams()
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]teamResponse, 0, len(teams))
	for _, dto := range teams {
		responses = append(responses, formatTeam(dto))
	}
	c.JSON(http.StatusOK, responses)
}

// GetTeamByUUID 获取单支队伍及其成员
func GetTeamByUUID(c *gin.Context) {
	dto, err := GetTeam(c.Param("uuid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, formatTeam(*dto))
}

// UpdateTeam 修改队伍名称
func UpdateTeam(c *gin.Context) {
	var req createTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "队伍名称不能为空"})
		return
	}

	t, err := RenameTeam(c.Param("uuid"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"uuid": t.UUID, "name": t.Name})
}

// DeleteTeam 删除队伍及其全部成员
func DeleteTeam(c *gin.Context) {
	if err := RemoveTeam(c.Param("uuid")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "队伍已删除"})
}

// CreateMember 向队伍加入一只宝可梦
func CreateMember(c *gin.Context) {
	var req createMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	dto, err := AddMember(c.Param("uuid"), MemberInput{
		SpeciesNumber: req.SpeciesNumber,
		Nickname:      req.Nickname,
		Level:         req.Level,
		IVAttack:      req.IVAttack,
		IVDefense:     req.IVDefense,
		IVSpeed:       req.IVSpeed,
		IVSpecial:     req.IVSpecial,
		EVHP:          req.EVHP,
		EVAttack:      req.EVAttack,
		EVDefense:     req.EVDefense,
		EVSpeed:       req.EVSpeed,
		EVSpecial:     req.EVSpecial,
		MoveIDs:       req.MoveIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, formatMember(*dto))
}

// GetMembers 获取队伍全部成员（含即时计算的能力值）
func GetMembers(c *gin.Context) {
	dto, err := GetTeam(c.Param("uuid"))
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]memberResponse, 0, len(dto.Members))
	for _, m := range dto.Members {
		responses = append(responses, formatMember(m))
	}
	c.JSON(http.StatusOK, responses)
}

// GetMemberByID 获取单只成员
func GetMemberByID(c *gin.Context) {
	memberID, err := parseMemberID(c)
	if err != nil {
		return
	}
	dto, err := GetMember(c.Param("uuid"), memberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, formatMember(*dto))
}

// GetMemberStats 只返回成员即时计算的五项能力值
func GetMemberStats(c *gin.Context) {
	memberID, err := parseMemberID(c)
	if err != nil {
		return
	}
	dto, err := GetMember(c.Param("uuid"), memberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Stats)
}

// UpdateMemberByID 部分更新成员
func UpdateMemberByID(c *gin.Context) {
	memberID, err := parseMemberID(c)
	if err != nil {
		return
	}

	var req updateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	dto, err := UpdateMember(c.Param("uuid"), memberID, MemberUpdate{
		Nickname:  req.Nickname,
		Level:     req.Level,
		CurrentHP: req.CurrentHP,
		Status:    req.Status,
		EVHP:      req.EVHP,
		EVAttack:  req.EVAttack,
		EVDefense: req.EVDefense,
		EVSpeed:   req.EVSpeed,
		EVSpecial: req.EVSpecial,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, formatMember(*dto))
}

// DeleteMemberByID 从队伍删除一只成员
func DeleteMemberByID(c *gin.Context) {
	memberID, err := parseMemberID(c)
	if err != nil {
		return
	}
	if err := RemoveMember(c.Param("uuid"), memberID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "成员已删除"})
}

// UpdateMemberMovesByID 更新成员的招式槽
func UpdateMemberMovesByID(c *gin.Context) {
	memberID, err := parseMemberID(c)
	if err != nil {
		return
	}

	var req updateMovesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	dto, err := UpdateMemberMoves(c.Param("uuid"), memberID, req.MoveIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, formatMember(*dto))
}

// GetMemberCount 获取队伍当前成员数
func GetMemberCount(c *gin.Context) {
	count, err := MemberCount(c.Param("uuid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":        count,
		"can_add_more": count < MaxMembers,
		"can_remove":   count > 1,
	})
}

func parseMemberID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("memberId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "成员ID必须是正整数"})
		return 0, err
	}
	return uint(id), nil
}
