package pokemon

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kantodex/gen1-team-backend/internal/move"
	"github.com/kantodex/gen1-team-backend/pkg/gen1"
)

// --- API响应模型 ---

type SpeciesResponse struct {
	Number     int     `json:"pokedex_number"`
	Name       string  `json:"name"`
	Type1      string  `json:"type1"`
	Type2      *string `json:"type2"`
	BaseHP     int     `json:"base_hp"`
	BaseAtk    int     `json:"base_attack"`
	BaseDef    int     `json:"base_defense"`
	BaseSpc    int     `json:"base_special"`
	BaseSpe    int     `json:"base_speed"`
	FlavorText string  `json:"flavor_text"`
}

type LearnsetMoveResponse struct {
	MoveID   uint   `json:"move_id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Power    *int   `json:"power"`
	Accuracy int    `json:"accuracy"`
	PP       int    `json:"pp"`
	Level    *int   `json:"level"`
	Effect   string `json:"effect"`
}

// formatSpecies 将服务层DTO格式化为API响应
func formatSpecies(dto SpeciesDTO) SpeciesResponse {
	return SpeciesResponse{
		Number:     dto.Number,
		Name:       dto.Name,
		Type1:      dto.Type1,
		Type2:      dto.Type2,
		BaseHP:     dto.Base.HP,
		BaseAtk:    dto.Base.Attack,
		BaseDef:    dto.Base.Defense,
		BaseSpc:    dto.Base.Special,
		BaseSpe:    dto.Base.Speed,
		FlavorText: dto.FlavorText,
	}
}

// --- 控制器函数 ---

// GetPokedex 获取完整图鉴列表
func GetPokedex(c *gin.Context) {
	var responses []SpeciesResponse
	for _, dto := range GetAllSpecies() {
		responses = append(responses, formatSpecies(dto))
	}
	c.JSON(http.StatusOK, responses)
}

// GetSpecies 根据图鉴编号获取单个种族的信息
func GetSpecies(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "图鉴编号必须是整数"})
		return
	}

	dto, err := GetSpeciesByNumber(number)
	if err != nil {
		if errors.Is(err, ErrSpeciesNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("找不到图鉴编号为 %d 的种族", number)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "图鉴查询失败"})
		return
	}
	c.JSON(http.StatusOK, formatSpecies(*dto))
}

// GetLearnset 获取种族自身的学习表，支持 ?max_level= 过滤
func GetLearnset(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "图鉴编号必须是整数"})
		return
	}

	var maxLevel *int
	if raw := c.Query("max_level"); raw != "" {
		lv, err := strconv.Atoi(raw)
		if err != nil || lv < gen1.MinLevel || lv > gen1.MaxLevel {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_level 必须是 [1, 100] 内的整数"})
			return
		}
		maxLevel = &lv
	}

	learnset, err := GetOwnLearnset(number, maxLevel)
	if err != nil {
		if errors.Is(err, ErrSpeciesNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("找不到图鉴编号为 %d 的种族", number)})
			return
		}
		if errors.Is(err, move.ErrMoveNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "学习表数据不完整"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "学习表查询失败"})
		return
	}

	responses := make([]LearnsetMoveResponse, 0, len(learnset))
	for _, dto := range learnset {
		responses = append(responses, LearnsetMoveResponse(dto))
	}
	c.JSON(http.StatusOK, responses)
}
