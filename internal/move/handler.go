package move

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// --- API响应模型 ---

type MoveResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Power    *int   `json:"power"`
	Accuracy int    `json:"accuracy"`
	PP       int    `json:"pp"`
	Effect   string `json:"effect"`
}

// --- 控制器函数 ---

// GetMovedex 获取完整招式列表
func GetMovedex(c *gin.Context) {
	var responses []MoveResponse
	for _, dto := range GetAllMoves() {
		responses = append(responses, MoveResponse(dto))
	}
	c.JSON(http.StatusOK, responses)
}

// GetMove 根据ID获取单个招式的信息
func GetMove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "招式ID必须是正整数"})
		return
	}

	dto, err := GetMoveByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrMoveNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("找不到ID为 %d 的招式", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "招式查询失败"})
		return
	}
	c.JSON(http.StatusOK, MoveResponse(*dto))
}
