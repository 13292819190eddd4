package controller

import (
	"cpl/app_error"
	"cpl/repository"
	"cpl/service"
	"cpl/utils"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PlayerController struct {
	playerService *service.PlayerService
}

func NewPlayerController(db *gorm.DB) *PlayerController {
	return &PlayerController{playerService: service.NewPlayerService(db)}
}

func setupPlayerController(db *gorm.DB) []RouteInfo {
	e := NewPlayerController(db)
	basePath := "/players"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getPlayersHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createPlayerHandler()},
		{Method: "GET", Path: "/:player_id", HandlerFunc: e.getPlayerHandler()},
		{Method: "PATCH", Path: "/:player_id", HandlerFunc: e.updatePlayerHandler()},
		{Method: "DELETE", Path: "/:player_id", HandlerFunc: e.deletePlayerHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetPlayers
// @Description Lists all players
// @Tags player
// @Produce json
// @Success 200 {array} PlayerResponse
// @Router /players [get]
func (e *PlayerController) getPlayersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		players, err := e.playerService.GetAll()
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, utils.Map(players, toPlayerResponse))
	}
}

// @id GetPlayer
// @Description Fetches a player by id
// @Tags player
// @Produce json
// @Param player_id path int true "Player Id"
// @Success 200 {object} PlayerResponse
// @Router /players/{player_id} [get]
func (e *PlayerController) getPlayerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		playerId, err := strconv.Atoi(c.Param("player_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		player, err := e.playerService.GetById(playerId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, toPlayerResponse(player))
	}
}

// @id CreatePlayer
// @Description Creates a player
// @Tags player
// @Accept json
// @Produce json
// @Param player body PlayerCreate true "Player to create"
// @Success 201 {object} PlayerResponse
// @Router /players [post]
func (e *PlayerController) createPlayerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var playerCreate PlayerCreate
		if err := c.BindJSON(&playerCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		player, err := e.playerService.Create(playerCreate.toModel())
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(201, toPlayerResponse(player))
	}
}

// @id UpdatePlayer
// @Description Partially updates a player
// @Tags player
// @Accept json
// @Produce json
// @Param player_id path int true "Player Id"
// @Param player body PlayerUpdate true "Fields to update"
// @Success 200 {object} PlayerResponse
// @Router /players/{player_id} [patch]
func (e *PlayerController) updatePlayerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		playerId, err := strconv.Atoi(c.Param("player_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var playerUpdate PlayerUpdate
		if err := c.BindJSON(&playerUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		player, err := e.playerService.Update(playerId, playerUpdate.toUpdate())
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, toPlayerResponse(player))
	}
}

// @id DeletePlayer
// @Description Soft-deletes a player
// @Tags player
// @Param player_id path int true "Player Id"
// @Router /players/{player_id} [delete]
func (e *PlayerController) deletePlayerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		playerId, err := strconv.Atoi(c.Param("player_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.playerService.Delete(playerId); err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.Status(204)
	}
}

type PlayerCreate struct {
	FirstName     string     `json:"first_name" binding:"required"`
	LastName      string     `json:"last_name" binding:"required"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	AvatarUrl     *string    `json:"avatar_url"`
	NationalityId *int       `json:"nationality_id"`
}

type PlayerUpdate struct {
	FirstName     *string    `json:"first_name"`
	LastName      *string    `json:"last_name"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	AvatarUrl     *string    `json:"avatar_url"`
	NationalityId *int       `json:"nationality_id"`
}

type PlayerResponse struct {
	Id            int        `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	AvatarUrl     *string    `json:"avatar_url"`
	NationalityId *int       `json:"nationality_id"`
}

func (e *PlayerCreate) toModel() *repository.Player {
	return &repository.Player{
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		DateOfBirth:   e.DateOfBirth,
		AvatarUrl:     e.AvatarUrl,
		NationalityId: e.NationalityId,
	}
}

func (e *PlayerUpdate) toUpdate() *service.PlayerUpdate {
	return &service.PlayerUpdate{
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		DateOfBirth:   e.DateOfBirth,
		AvatarUrl:     e.AvatarUrl,
		NationalityId: e.NationalityId,
	}
}

func toPlayerResponse(player *repository.Player) *PlayerResponse {
	return &PlayerResponse{
		Id:            player.Id,
		FirstName:     player.FirstName,
		LastName:      player.LastName,
		DateOfBirth:   player.DateOfBirth,
		AvatarUrl:     player.AvatarUrl,
		NationalityId: player.NationalityId,
	}
}
