package api

import (
	"github.com/gin-gonic/gin"

	"github.com/kantodex/gen1-team-backend/internal/evolution"
	"github.com/kantodex/gen1-team-backend/internal/move"
	"github.com/kantodex/gen1-team-backend/internal/platform/health"
	"github.com/kantodex/gen1-team-backend/internal/pokemon"
	"github.com/kantodex/gen1-team-backend/internal/team"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/health", health.GetHealth)

		// 图鉴相关的路由组
		pokemonRoutes := api.Group("/pokemon")
		{
			pokemonRoutes.GET("", pokemon.GetPokedex)
			pokemonRoutes.GET("/:number", pokemon.GetSpecies)
			pokemonRoutes.GET("/:number/moves", pokemon.GetLearnset)
			pokemonRoutes.GET("/:number/moves/lineage", evolution.GetLineage)
			pokemonRoutes.GET("/:number/evolutions", evolution.GetEvolutionChain)
		}

		// 招式相关的路由组
		moveRoutes := api.Group("/moves")
		{
			moveRoutes.GET("", move.GetMovedex)
			moveRoutes.GET("/:id", move.GetMove)
		}

		// 队伍与成员相关的路由组
		teamRoutes := api.Group("/teams")
		{
			teamRoutes.POST("", team.CreateTeam)
			teamRoutes.GET("", team.GetTeams)
			teamRoutes.GET("/:uuid", team.GetTeamByUUID)
			teamRoutes.PUT("/:uuid", team.UpdateTeam)
			teamRoutes.DELETE("/:uuid", team.DeleteTeam)

			teamRoutes.POST("/:uuid/pokemon", team.CreateMember)
			teamRoutes.GET("/:uuid/pokemon", team.GetMembers)
			teamRoutes.GET("/:uuid/pokemon/count", team.GetMemberCount)
			teamRoutes.GET("/:uuid/pokemon/:memberId", team.GetMemberByID)
			teamRoutes.GET("/:uuid/pokemon/:memberId/stats", team.GetMemberStats)
			teamRoutes.PUT("/:uuid/pokemon/:memberId", team.UpdateMemberByID)
			teamRoutes.DELETE("/:uuid/pokemon/:memberId", team.DeleteMemberByID)
			teamRoutes.PUT("/:uuid/pokemon/:memberId/moves", team.UpdateMemberMovesByID)
		}
	}
}
