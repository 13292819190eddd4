package controller

import (
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RouteInfo struct {
	Method      string
	Path        string
	HandlerFunc gin.HandlerFunc
}

func SetRoutes(r *gin.Engine, db *gorm.DB, cacheStore persistence.CacheStore) {
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupCountryController(db)...)
	routes = append(routes, setupPlayerController(db)...)
	routes = append(routes, setupTeamController(db)...)
	routes = append(routes, setupSeasonController(db, cacheStore)...)
	routes = append(routes, setupMatchController(db)...)
	routes = append(routes, setupRosterController(db)...)
	routes = append(routes, setupStatsController(db, cacheStore)...)
	for _, route := range routes {
		r.Handle(route.Method, "/api"+route.Path, route.HandlerFunc)
	}
}
