package controller

import (
	"cpl/app_error"
	"cpl/repository"
	"cpl/service"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RosterController struct {
	rosterService *service.RosterService
}

func NewRosterController(db *gorm.DB) *RosterController {
	return &RosterController{rosterService: service.NewRosterService(db)}
}

func setupRosterController(db *gorm.DB) []RouteInfo {
	e := NewRosterController(db)
	basePath := "/rosters"
	routes := []RouteInfo{
		{Method: "POST", Path: "", HandlerFunc: e.assignPlayerHandler()},
		{Method: "DELETE", Path: "", HandlerFunc: e.removePlayerHandler()},
		{Method: "GET", Path: "/seasons/:season_id", HandlerFunc: e.getSeasonRostersHandler()},
		{Method: "GET", Path: "/seasons/:season_id/teams/:team_id", HandlerFunc: e.getTeamRosterHandler()},
		{Method: "GET", Path: "/players/:player_id/history", HandlerFunc: e.getPlayerHistoryHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id AssignPlayer
// @Description Assigns a player to a team for a season, replacing any previous assignment in that season
// @Tags roster
// @Accept json
// @Produce json
// @Param assignment body RosterAssign true "Assignment"
// @Success 201 {object} RosterResponse
// @Router /rosters [post]
func (e *RosterController) assignPlayerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var assign RosterAssign
		if err := c.BindJSON(&assign); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		roster, err := e.rosterService.AssignPlayer(assign.SeasonId, assign.TeamId, assign.PlayerId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(201, toRosterResponse(roster))
	}
}

// @id RemovePlayer
// @Description Removes a player's active assignment for a season
// @Tags roster
// @Accept json
// @Param removal body RosterRemove true "Removal"
// @Router /rosters [delete]
func (e *RosterController) removePlayerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var remove RosterRemove
		if err := c.BindJSON(&remove); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.rosterService.RemovePlayer(remove.SeasonId, remove.PlayerId); err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.Status(204)
	}
}

// @id GetSeasonRosters
// @Description All team rosters for a season
// @Tags roster
// @Produce json
// @Param season_id path int true "Season Id"
// @Success 200 {object} SeasonRostersResponse
// @Router /rosters/seasons/{season_id} [get]
func (e *RosterController) getSeasonRostersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		seasonId, err := strconv.Atoi(c.Param("season_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		rosters, err := e.rosterService.GetSeasonRosters(seasonId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, SeasonRostersResponse{SeasonId: seasonId, Rosters: rosters})
	}
}

// @id GetTeamRoster
// @Description A team's players for a season
// @Tags roster
// @Produce json
// @Param season_id path int true "Season Id"
// @Param team_id path int true "Team Id"
// @Success 200 {object} TeamRosterResponse
// @Router /rosters/seasons/{season_id}/teams/{team_id} [get]
func (e *RosterController) getTeamRosterHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		seasonId, err := strconv.Atoi(c.Param("season_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		teamId, err := strconv.Atoi(c.Param("team_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		players, err := e.rosterService.GetTeamRoster(seasonId, teamId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, TeamRosterResponse{TeamId: teamId, SeasonId: seasonId, Players: players})
	}
}

// @id GetPlayerHistory
// @Description A player's season-by-season team history, newest season first
// @Tags roster
// @Produce json
// @Param player_id path int true "Player Id"
// @Success 200 {object} PlayerHistoryResponse
// @Router /rosters/players/{player_id}/history [get]
func (e *RosterController) getPlayerHistoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		playerId, err := strconv.Atoi(c.Param("player_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		seasons, err := e.rosterService.GetPlayerHistory(playerId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, PlayerHistoryResponse{PlayerId: playerId, Seasons: seasons})
	}
}

type RosterAssign struct {
	SeasonId int `json:"season_id" binding:"required"`
	TeamId   int `json:"team_id" binding:"required"`
	PlayerId int `json:"player_id" binding:"required"`
}

type RosterRemove struct {
	SeasonId int `json:"season_id" binding:"required"`
	PlayerId int `json:"player_id" binding:"required"`
}

type RosterResponse struct {
	Id       int `json:"id"`
	SeasonId int `json:"season_id"`
	TeamId   int `json:"team_id"`
	PlayerId int `json:"player_id"`
}

type TeamRosterResponse struct {
	TeamId   int                            `json:"team_id"`
	SeasonId int                            `json:"season_id"`
	Players  []*repository.TeamRosterPlayer `json:"players"`
}

type PlayerHistoryResponse struct {
	PlayerId int                                   `json:"player_id"`
	Seasons  []*repository.PlayerSeasonHistoryItem `json:"seasons"`
}

type SeasonRostersResponse struct {
	SeasonId int                            `json:"season_id"`
	Rosters  []*repository.SeasonRosterItem `json:"rosters"`
}

func toRosterResponse(roster *repository.Roster) *RosterResponse {
	return &RosterResponse{
		Id:       roster.Id,
		SeasonId: roster.SeasonId,
		TeamId:   roster.TeamId,
		PlayerId: roster.PlayerId,
	}
}
