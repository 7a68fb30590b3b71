package evolution

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kantodex/gen1-team-backend/internal/pokemon"
)

// --- API响应模型 ---

type LineageMoveResponse struct {
	MoveID       uint   `json:"move_id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Power        *int   `json:"power"`
	Accuracy     int    `json:"accuracy"`
	PP           int    `json:"pp"`
	Level        *int   `json:"level"`
	LearnMethod  string `json:"learn_method"`
	SourceNumber int    `json:"source_number"`
	SourceName   string `json:"source_name"`
	Inherited    bool   `json:"inherited"`
}

type LineageResponse struct {
	Number     int                   `json:"pokedex_number"`
	TotalMoves int                   `json:"total_moves"`
	Moves      []LineageMoveResponse `json:"moves"`
}

type StageResponse struct {
	Number int    `json:"pokedex_number"`
	Name   string `json:"name"`
}

type SuccessorResponse struct {
	Number       int     `json:"pokedex_number"`
	Name         string  `json:"name"`
	Method       string  `json:"method"`
	MinLevel     *int    `json:"min_level"`
	RequiredItem *string `json:"required_item"`
	Trade        bool    `json:"trade"`
}

type ChainResponse struct {
	Number       int                 `json:"pokedex_number"`
	Name         string              `json:"name"`
	Predecessors []StageResponse     `json:"predecessors"`
	Successors   []SuccessorResponse `json:"successors"`
}

// formatLineageMove 将服务层DTO格式化为API响应
func formatLineageMove(dto LineageMoveDTO) LineageMoveResponse {
	method := "LEVEL_UP"
	if dto.Level == nil {
		method = "START"
	}
	return LineageMoveResponse{
		MoveID:       dto.MoveID,
		Name:         dto.Name,
		Type:         dto.Type,
		Power:        dto.Power,
		Accuracy:     dto.Accuracy,
		PP:           dto.PP,
		Level:        dto.Level,
		LearnMethod:  method,
		SourceNumber: dto.SourceNumber,
		SourceName:   dto.SourceName,
		Inherited:    dto.Inherited,
	}
}

// --- 控制器函数 ---

// GetLineage 获取某个种族合并进化链后的完整招式表
func GetLineage(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "图鉴编号必须是整数"})
		return
	}

	moves, err := GetLineageMoves(number)
	if err != nil {
		if errors.Is(err, pokemon.ErrSpeciesNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("找不到图鉴编号为 %d 的种族", number)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取进化链招式表失败"})
		return
	}

	resp := LineageResponse{Number: number, TotalMoves: len(moves)}
	for _, dto := range moves {
		resp.Moves = append(resp.Moves, formatLineageMove(dto))
	}
	c.JSON(http.StatusOK, resp)
}

// GetEvolutionChain 获取某个种族的进化信息
func GetEvolutionChain(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "图鉴编号必须是整数"})
		return
	}

	chain, err := GetChain(number)
	if err != nil {
		if errors.Is(err, pokemon.ErrSpeciesNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("找不到图鉴编号为 %d 的种族", number)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取进化信息失败"})
		return
	}

	resp := ChainResponse{
		Number:       chain.Number,
		Name:         chain.Name,
		Predecessors: []StageResponse{},
		Successors:   []SuccessorResponse{},
	}
	for _, p := range chain.Predecessors {
		resp.Predecessors = append(resp.Predecessors, StageResponse(p))
	}
	for _, s := range chain.Successors {
		resp.Successors = append(resp.Successors, SuccessorResponse{
			Number:       s.Number,
			Name:         s.Name,
			Method:       string(s.Method),
			MinLevel:     s.MinLevel,
			RequiredItem: s.RequiredItem,
			Trade:        s.Trade,
		})
	}
	c.JSON(http.StatusOK, resp)
}
