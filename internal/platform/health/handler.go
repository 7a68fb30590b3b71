package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kantodex/gen1-team-backend/internal/platform/database"
)

// GetHealth 返回服务的健康状况。
// 数据库不可用视为服务不可用；Redis不可用只会降级到纯内存计算，仍然返回200。
func GetHealth(c *gin.Context) {
	sqlDB, err := database.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unavailable",
			"database": "down",
		})
		return
	}

	redisStatus := "up"
	if !database.IsRedisHealthy() {
		redisStatus = "down"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "up",
		"redis":    redisStatus,
	})
}
