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

type MatchController struct {
	matchService *service.MatchService
}

func NewMatchController(db *gorm.DB) *MatchController {
	return &MatchController{matchService: service.NewMatchService(db)}
}

func setupMatchController(db *gorm.DB) []RouteInfo {
	e := NewMatchController(db)
	basePath := "/matches"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getMatchesHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createMatchHandler()},
		{Method: "GET", Path: "/next-order", HandlerFunc: e.getNextOrderHandler()},
		{Method: "GET", Path: "/:match_id", HandlerFunc: e.getMatchHandler()},
		{Method: "PATCH", Path: "/:match_id", HandlerFunc: e.updateMatchHandler()},
		{Method: "DELETE", Path: "/:match_id", HandlerFunc: e.deleteMatchHandler()},
		{Method: "GET", Path: "/:match_id/stats", HandlerFunc: e.getStatsHandler()},
		{Method: "PUT", Path: "/:match_id/stats", HandlerFunc: e.upsertStatsHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetMatches
// @Description Lists matches ordered by their season order, optionally filtered by season
// @Tags match
// @Produce json
// @Param season_id query int false "Season Id"
// @Success 200 {array} MatchResponse
// @Router /matches [get]
func (e *MatchController) getMatchesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var seasonId *int
		if raw := c.Query("season_id"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(400, gin.H{"error": err.Error()})
				return
			}
			seasonId = &id
		}
		matches, err := e.matchService.GetAll(seasonId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, utils.Map(matches, toMatchResponse))
	}
}

// @id GetMatch
// @Description Fetches a match by id
// @Tags match
// @Produce json
// @Param match_id path int true "Match Id"
// @Success 200 {object} MatchResponse
// @Router /matches/{match_id} [get]
func (e *MatchController) getMatchHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		matchId, err := strconv.Atoi(c.Param("match_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		match, err := e.matchService.GetById(matchId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, toMatchResponse(match))
	}
}

// @id CreateMatch
// @Description Creates a match; a Final may be created as a placeholder with both teams null
// @Tags match
// @Accept json
// @Produce json
// @Param match body MatchCreate true "Match to create"
// @Success 201 {object} MatchResponse
// @Router /matches [post]
func (e *MatchController) createMatchHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var matchCreate MatchCreate
		if err := c.BindJSON(&matchCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		match, err := e.matchService.Create(matchCreate.toModel(), matchCreate.Order)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(201, toMatchResponse(match))
	}
}

// @id UpdateMatch
// @Description Partially updates a match; completing a league match wires the season's Final
// @Tags match
// @Accept json
// @Produce json
// @Param match_id path int true "Match Id"
// @Param match body MatchUpdate true "Fields to update"
// @Success 200 {object} MatchResponse
// @Router /matches/{match_id} [patch]
func (e *MatchController) updateMatchHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		matchId, err := strconv.Atoi(c.Param("match_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var matchUpdate MatchUpdate
		if err := c.BindJSON(&matchUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		match, err := e.matchService.Update(matchId, matchUpdate.toUpdate())
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, toMatchResponse(match))
	}
}

// @id DeleteMatch
// @Description Soft-deletes a match
// @Tags match
// @Param match_id path int true "Match Id"
// @Router /matches/{match_id} [delete]
func (e *MatchController) deleteMatchHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		matchId, err := strconv.Atoi(c.Param("match_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.matchService.Delete(matchId); err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.Status(204)
	}
}

// @id GetNextMatchOrder
// @Description Next free match order for a season that is still taking matches
// @Tags match
// @Produce json
// @Param season_id query int true "Season Id"
// @Success 200 {object} MatchOrderResponse
// @Router /matches/next-order [get]
func (e *MatchController) getNextOrderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		seasonId, err := strconv.Atoi(c.Query("season_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		order, err := e.matchService.GetNextOrder(seasonId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, MatchOrderResponse{Order: order})
	}
}

// @id GetMatchStats
// @Description Per-player stat lines for a match, ordered by player id
// @Tags match
// @Produce json
// @Param match_id path int true "Match Id"
// @Success 200 {array} MatchStatResponse
// @Router /matches/{match_id}/stats [get]
func (e *MatchController) getStatsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		matchId, err := strconv.Atoi(c.Param("match_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		stats, err := e.matchService.GetStats(matchId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, utils.Map(stats, toMatchStatResponse))
	}
}

// @id UpsertMatchStats
// @Description Bulk upsert of per-player stat lines for a match
// @Tags match
// @Accept json
// @Produce json
// @Param match_id path int true "Match Id"
// @Param stats body []MatchStatUpsertItem true "Stat lines"
// @Success 200 {array} MatchStatResponse
// @Router /matches/{match_id}/stats [put]
func (e *MatchController) upsertStatsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		matchId, err := strconv.Atoi(c.Param("match_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var items []MatchStatUpsertItem
		if err := c.BindJSON(&items); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		stats, err := e.matchService.UpsertStats(matchId, utils.Map(items, matchStatUpsertToModel))
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, utils.Map(stats, toMatchStatResponse))
	}
}

type MatchCreate struct {
	Team1         *int                      `json:"team1"`
	Team2         *int                      `json:"team2"`
	ScheduledDate time.Time                 `json:"scheduled_date" binding:"required"`
	Duration      *int                      `json:"duration" binding:"omitempty,min=0"`
	Extra         *int                      `json:"extra" binding:"omitempty,min=0"`
	GoldenStrike  *bool                     `json:"golden_strike"`
	Category      repository.MatchCategory  `json:"category" binding:"required,oneof=LEAGUE FINAL"`
	Status        *repository.MatchStatus   `json:"status" binding:"omitempty,oneof=NOT_STARTED IN_PROGRESS COMPLETED"`
	Order         *int                      `json:"order" binding:"omitempty,min=0"`
	SeasonId      int                       `json:"season_id" binding:"required"`
	NetPoints     *int                      `json:"net_points"`
	Outcome       *repository.MatchOutcome  `json:"outcome" binding:"omitempty,oneof=TEAM1_WON TEAM2_WON"`
}

type MatchUpdate struct {
	ScheduledDate *time.Time               `json:"scheduled_date"`
	Duration      *int                     `json:"duration" binding:"omitempty,min=0"`
	Extra         *int                     `json:"extra" binding:"omitempty,min=0"`
	GoldenStrike  *bool                    `json:"golden_strike"`
	Status        *repository.MatchStatus  `json:"status" binding:"omitempty,oneof=NOT_STARTED IN_PROGRESS COMPLETED"`
	NetPoints     *int                     `json:"net_points"`
	Outcome       *repository.MatchOutcome `json:"outcome" binding:"omitempty,oneof=TEAM1_WON TEAM2_WON"`
	TossOutcome   *repository.TossOutcome  `json:"toss_outcome" binding:"omitempty,oneof=TEAM1 TEAM2"`
}

type MatchResponse struct {
	Id            int                      `json:"id"`
	Team1         *int                     `json:"team1"`
	Team2         *int                     `json:"team2"`
	ScheduledDate time.Time                `json:"scheduled_date"`
	Duration      *int                     `json:"duration"`
	Extra         *int                     `json:"extra"`
	GoldenStrike  bool                     `json:"golden_strike"`
	Category      repository.MatchCategory `json:"category"`
	Status        repository.MatchStatus   `json:"status"`
	Order         int                      `json:"order"`
	SeasonId      int                      `json:"season_id"`
	NetPoints     *int                     `json:"net_points"`
	Outcome       *repository.MatchOutcome `json:"outcome"`
	TossOutcome   *repository.TossOutcome  `json:"toss_outcome"`
}

type MatchOrderResponse struct {
	Order int `json:"order"`
}

type MatchStatUpsertItem struct {
	PlayerId         int `json:"player_id" binding:"required"`
	CoinsPocketed    int `json:"coins_pocketed" binding:"min=0,max=255"`
	StrikersPocketed int `json:"strikers_pocketed" binding:"min=0,max=255"`
	CoinsFined       int `json:"coins_fined" binding:"min=0,max=255"`
	ShotsTaken       int `json:"shots_taken" binding:"min=0,max=255"`
}

type MatchStatResponse struct {
	MatchId          int `json:"match_id"`
	PlayerId         int `json:"player_id"`
	CoinsPocketed    int `json:"coins_pocketed"`
	StrikersPocketed int `json:"strikers_pocketed"`
	CoinsFined       int `json:"coins_fined"`
	ShotsTaken       int `json:"shots_taken"`
}

func (e *MatchCreate) toModel() *repository.Match {
	match := &repository.Match{
		Team1:         e.Team1,
		Team2:         e.Team2,
		ScheduledDate: e.ScheduledDate,
		Duration:      e.Duration,
		Extra:         e.Extra,
		Category:      e.Category,
		Status:        repository.MatchStatusNotStarted,
		SeasonId:      e.SeasonId,
		NetPoints:     e.NetPoints,
		Outcome:       e.Outcome,
	}
	if e.GoldenStrike != nil {
		match.GoldenStrike = *e.GoldenStrike
	}
	if e.Status != nil {
		match.Status = *e.Status
	}
	return match
}

func (e *MatchUpdate) toUpdate() *repository.MatchUpdate {
	return &repository.MatchUpdate{
		ScheduledDate: e.ScheduledDate,
		Duration:      e.Duration,
		Extra:         e.Extra,
		GoldenStrike:  e.GoldenStrike,
		Status:        e.Status,
		NetPoints:     e.NetPoints,
		Outcome:       e.Outcome,
		TossOutcome:   e.TossOutcome,
	}
}

func matchStatUpsertToModel(item MatchStatUpsertItem) *repository.MatchStat {
	return &repository.MatchStat{
		PlayerId:         item.PlayerId,
		CoinsPocketed:    item.CoinsPocketed,
		StrikersPocketed: item.StrikersPocketed,
		CoinsFined:       item.CoinsFined,
		ShotsTaken:       item.ShotsTaken,
	}
}

func toMatchResponse(match *repository.Match) *MatchResponse {
	return &MatchResponse{
		Id:            match.Id,
		Team1:         match.Team1,
		Team2:         match.Team2,
		ScheduledDate: match.ScheduledDate,
		Duration:      match.Duration,
		Extra:         match.Extra,
		GoldenStrike:  match.GoldenStrike,
		Category:      match.Category,
		Status:        match.Status,
		Order:         match.Order,
		SeasonId:      match.SeasonId,
		NetPoints:     match.NetPoints,
		Outcome:       match.Outcome,
		TossOutcome:   match.TossOutcome,
	}
}

func toMatchStatResponse(stat *repository.MatchStat) *MatchStatResponse {
	return &MatchStatResponse{
		MatchId:          stat.MatchId,
		PlayerId:         stat.PlayerId,
		CoinsPocketed:    stat.CoinsPocketed,
		StrikersPocketed: stat.StrikersPocketed,
		CoinsFined:       stat.CoinsFined,
		ShotsTaken:       stat.ShotsTaken,
	}
}
