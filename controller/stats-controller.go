package controller

import (
	"cpl/app_error"
	"cpl/service"
	"strconv"
	"time"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StatsController struct {
	statsService *service.StatsService
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{statsService: service.NewStatsService(db)}
}

func setupStatsController(db *gorm.DB, cacheStore persistence.CacheStore) []RouteInfo {
	e := NewStatsController(db)
	basePath := "/stats"
	routes := []RouteInfo{
		{Method: "GET", Path: "/head-to-head", HandlerFunc: cache.CachePage(cacheStore, time.Minute, e.getHeadToHeadHandler())},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetHeadToHead
// @Description Lifetime head-to-head aggregate between two teams across all seasons
// @Tags stats
// @Produce json
// @Param team1_id query int true "First Team Id"
// @Param team2_id query int true "Second Team Id"
// @Success 200 {object} standings.HeadToHead
// @Router /stats/head-to-head [get]
func (e *StatsController) getHeadToHeadHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		team1Id, err := strconv.Atoi(c.Query("team1_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		team2Id, err := strconv.Atoi(c.Query("team2_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		headToHead, err := e.statsService.GetHeadToHead(team1Id, team2Id)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, headToHead)
	}
}
