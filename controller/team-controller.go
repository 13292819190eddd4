package controller

import (
	"cpl/app_error"
	"cpl/repository"
	"cpl/service"
	"cpl/utils"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TeamController struct {
	teamService *service.TeamService
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{teamService: service.NewTeamService(db)}
}

func setupTeamController(db *gorm.DB) []RouteInfo {
	e := NewTeamController(db)
	basePath := "/teams"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getTeamsHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createTeamHandler()},
		{Method: "GET", Path: "/:team_id", HandlerFunc: e.getTeamHandler()},
		{Method: "PATCH", Path: "/:team_id", HandlerFunc: e.updateTeamHandler()},
		{Method: "DELETE", Path: "/:team_id", HandlerFunc: e.deleteTeamHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetTeams
// @Description Lists all teams
// @Tags team
// @Produce json
// @Success 200 {array} TeamResponse
// @Router /teams [get]
func (e *TeamController) getTeamsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		teams, err := e.teamService.GetAll()
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, utils.Map(teams, toTeamResponse))
	}
}

// @id GetTeam
// @Description Fetches a team by id
// @Tags team
// @Produce json
// @Param team_id path int true "Team Id"
// @Success 200 {object} TeamResponse
// @Router /teams/{team_id} [get]
func (e *TeamController) getTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamId, err := strconv.Atoi(c.Param("team_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		team, err := e.teamService.GetById(teamId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, toTeamResponse(team))
	}
}

// @id CreateTeam
// @Description Creates a team
// @Tags team
// @Accept json
// @Produce json
// @Param team body TeamCreate true "Team to create"
// @Success 201 {object} TeamResponse
// @Router /teams [post]
func (e *TeamController) createTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var teamCreate TeamCreate
		if err := c.BindJSON(&teamCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		team, err := e.teamService.Create(teamCreate.toModel())
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(201, toTeamResponse(team))
	}
}

// @id UpdateTeam
// @Description Partially updates a team
// @Tags team
// @Accept json
// @Produce json
// @Param team_id path int true "Team Id"
// @Param team body TeamUpdate true "Fields to update"
// @Success 200 {object} TeamResponse
// @Router /teams/{team_id} [patch]
func (e *TeamController) updateTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamId, err := strconv.Atoi(c.Param("team_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var teamUpdate TeamUpdate
		if err := c.BindJSON(&teamUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		team, err := e.teamService.Update(teamId, teamUpdate.toUpdate())
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, toTeamResponse(team))
	}
}

// @id DeleteTeam
// @Description Soft-deletes a team
// @Tags team
// @Param team_id path int true "Team Id"
// @Router /teams/{team_id} [delete]
func (e *TeamController) deleteTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamId, err := strconv.Atoi(c.Param("team_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.teamService.Delete(teamId); err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.Status(204)
	}
}

type TeamCreate struct {
	Name    string  `json:"name" binding:"required"`
	Slogan  *string `json:"slogan"`
	LogoUrl *string `json:"logo_url"`
}

type TeamUpdate struct {
	Name    *string `json:"name"`
	Slogan  *string `json:"slogan"`
	LogoUrl *string `json:"logo_url"`
}

type TeamResponse struct {
	Id      int     `json:"id"`
	Name    string  `json:"name"`
	Slogan  *string `json:"slogan"`
	LogoUrl *string `json:"logo_url"`
}

func (e *TeamCreate) toModel() *repository.Team {
	return &repository.Team{
		Name:    e.Name,
		Slogan:  e.Slogan,
		LogoUrl: e.LogoUrl,
	}
}

func (e *TeamUpdate) toUpdate() *service.TeamUpdate {
	return &service.TeamUpdate{
		Name:    e.Name,
		Slogan:  e.Slogan,
		LogoUrl: e.LogoUrl,
	}
}

func toTeamResponse(team *repository.Team) *TeamResponse {
	return &TeamResponse{
		Id:      team.Id,
		Name:    team.Name,
		Slogan:  team.Slogan,
		LogoUrl: team.LogoUrl,
	}
}
