package controller

import (
	"cpl/app_error"
	"cpl/repository"
	"cpl/service"
	"cpl/utils"
	"strconv"
	"time"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SeasonController struct {
	seasonService *service.SeasonService
}

func NewSeasonController(db *gorm.DB) *SeasonController {
	return &SeasonController{seasonService: service.NewSeasonService(db)}
}

func setupSeasonController(db *gorm.DB, cacheStore persistence.CacheStore) []RouteInfo {
	e := NewSeasonController(db)
	basePath := "/seasons"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getSeasonsHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createSeasonHandler()},
		{Method: "GET", Path: "/:season_id", HandlerFunc: e.getSeasonHandler()},
		{Method: "PATCH", Path: "/:season_id", HandlerFunc: e.updateSeasonHandler()},
		{Method: "DELETE", Path: "/:season_id", HandlerFunc: e.deleteSeasonHandler()},
		{Method: "GET", Path: "/:season_id/league-table",
			HandlerFunc: cache.CachePage(cacheStore, 30*time.Second, e.getLeagueTableHandler())},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetSeasons
// @Description Lists all seasons, newest first
// @Tags season
// @Produce json
// @Success 200 {array} SeasonResponse
// @Router /seasons [get]
func (e *SeasonController) getSeasonsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		seasons, err := e.seasonService.GetAll()
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, utils.Map(seasons, toSeasonResponse))
	}
}

// @id GetSeason
// @Description Fetches a season by id
// @Tags season
// @Produce json
// @Param season_id path int true "Season Id"
// @Success 200 {object} SeasonResponse
// @Router /seasons/{season_id} [get]
func (e *SeasonController) getSeasonHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		seasonId, err := strconv.Atoi(c.Param("season_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		season, err := e.seasonService.GetById(seasonId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, toSeasonResponse(season))
	}
}

// @id CreateSeason
// @Description Creates a season
// @Tags season
// @Accept json
// @Produce json
// @Param season body SeasonCreate true "Season to create"
// @Success 201 {object} SeasonResponse
// @Router /seasons [post]
func (e *SeasonController) createSeasonHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var seasonCreate SeasonCreate
		if err := c.BindJSON(&seasonCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		season, err := e.seasonService.Create(seasonCreate.toModel())
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(201, toSeasonResponse(season))
	}
}

// @id UpdateSeason
// @Description Partially updates a season
// @Tags season
// @Accept json
// @Produce json
// @Param season_id path int true "Season Id"
// @Param season body SeasonUpdate true "Fields to update"
// @Success 200 {object} SeasonResponse
// @Router /seasons/{season_id} [patch]
func (e *SeasonController) updateSeasonHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		seasonId, err := strconv.Atoi(c.Param("season_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var seasonUpdate SeasonUpdate
		if err := c.BindJSON(&seasonUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		season, err := e.seasonService.Update(seasonId, seasonUpdate.toUpdate())
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, toSeasonResponse(season))
	}
}

// @id DeleteSeason
// @Description Soft-deletes a season
// @Tags season
// @Param season_id path int true "Season Id"
// @Router /seasons/{season_id} [delete]
func (e *SeasonController) deleteSeasonHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		seasonId, err := strconv.Atoi(c.Param("season_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.seasonService.Delete(seasonId); err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.Status(204)
	}
}

// @id GetLeagueTable
// @Description Ranked league table for the season, with the winner once decided
// @Tags season
// @Produce json
// @Param season_id path int true "Season Id"
// @Success 200 {object} standings.LeagueTable
// @Router /seasons/{season_id}/league-table [get]
func (e *SeasonController) getLeagueTableHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		seasonId, err := strconv.Atoi(c.Param("season_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		table, err := e.seasonService.GetLeagueTable(seasonId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, table)
	}
}

type SeasonCreate struct {
	Name      string     `json:"name" binding:"required,min=3,max=255"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	LogoUrl   *string    `json:"logo_url"`
}

type SeasonUpdate struct {
	Name      *string                  `json:"name"`
	StartDate *time.Time               `json:"start_date"`
	EndDate   *time.Time               `json:"end_date"`
	LogoUrl   *string                  `json:"logo_url"`
	Status    *repository.SeasonStatus `json:"status" binding:"omitempty,oneof=UPCOMING ONGOING COMPLETED"`
}

type SeasonResponse struct {
	Id        int                     `json:"id"`
	Name      string                  `json:"name"`
	StartDate *time.Time              `json:"start_date"`
	EndDate   *time.Time              `json:"end_date"`
	LogoUrl   *string                 `json:"logo_url"`
	Status    repository.SeasonStatus `json:"status"`
}

func (e *SeasonCreate) toModel() *repository.Season {
	return &repository.Season{
		Name:      e.Name,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		LogoUrl:   e.LogoUrl,
	}
}

func (e *SeasonUpdate) toUpdate() *service.SeasonUpdate {
	return &service.SeasonUpdate{
		Name:      e.Name,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		LogoUrl:   e.LogoUrl,
		Status:    e.Status,
	}
}

func toSeasonResponse(season *repository.Season) *SeasonResponse {
	return &SeasonResponse{
		Id:        season.Id,
		Name:      season.Name,
		StartDate: season.StartDate,
		EndDate:   season.EndDate,
		LogoUrl:   season.LogoUrl,
		Status:    season.Status,
	}
}
