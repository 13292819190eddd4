package repository

import (
	"gorm.io/gorm"
)

// Roster links a player to a team for one season. At most one non-voided
// assignment may exist per (player, season).
type Roster struct {
	Id       int  `gorm:"primaryKey"`
	SeasonId int  `gorm:"not null"`
	TeamId   int  `gorm:"not null"`
	PlayerId int  `gorm:"not null"`
	Void     bool `gorm:"not null;default:false"`
}

type TeamRosterPlayer struct {
	PlayerId  int     `json:"player_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	AvatarUrl *string `json:"avatar_url"`
}

type PlayerSeasonHistoryItem struct {
	SeasonId   int    `json:"season_id"`
	SeasonName string `json:"season_name"`
	TeamId     int    `json:"team_id"`
	TeamName   string `json:"team_name"`
}

type SeasonRosterItem struct {
	TeamId    int    `json:"team_id"`
	TeamName  string `json:"team_name"`
	PlayerId  int    `json:"player_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type RosterRepository struct {
	DB *gorm.DB
}

func NewRosterRepository(db *gorm.DB) *RosterRepository {
	return &RosterRepository{DB: db}
}

// AssignPlayer moves the player onto the team for the season. Any previous
// active assignment of the player in that season is voided first, in the same
// transaction, so the exclusivity rule holds without a unique index on a
// soft-deleted table.
func (r *RosterRepository) AssignPlayer(seasonId int, teamId int, playerId int) (*Roster, error) {
	roster := &Roster{
		SeasonId: seasonId,
		TeamId:   teamId,
		PlayerId: playerId,
	}
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Roster{}).
			Where("season_id = ? AND player_id = ? AND void = false", seasonId, playerId).
			Update("void", true)
		if result.Error != nil {
			return result.Error
		}
		return tx.Create(roster).Error
	})
	if err != nil {
		return nil, err
	}
	return roster, nil
}

func (r *RosterRepository) GetByPlayerSeason(playerId int, seasonId int) (*Roster, error) {
	var roster Roster
	result := r.DB.
		Where("player_id = ? AND season_id = ? AND void = false", playerId, seasonId).
		First(&roster)
	if result.Error != nil {
		return nil, result.Error
	}
	return &roster, nil
}

func (r *RosterRepository) RemovePlayer(seasonId int, playerId int) error {
	result := r.DB.Model(&Roster{}).
		Where("season_id = ? AND player_id = ? AND void = false", seasonId, playerId).
		Update("void", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RosterRepository) GetTeamRoster(seasonId int, teamId int) ([]*TeamRosterPlayer, error) {
	players := make([]*TeamRosterPlayer, 0)
	query := `
		SELECT p.id AS player_id,
		       p.first_name,
		       p.last_name,
		       p.avatar_url
		FROM cpl.rosters ro
		JOIN cpl.players p ON ro.player_id = p.id
		WHERE ro.season_id = ?
		  AND ro.team_id = ?
		  AND ro.void = false
		  AND p.void = false`
	result := r.DB.Raw(query, seasonId, teamId).Scan(&players)
	if result.Error != nil {
		return nil, result.Error
	}
	return players, nil
}

func (r *RosterRepository) GetPlayerHistory(playerId int) ([]*PlayerSeasonHistoryItem, error) {
	items := make([]*PlayerSeasonHistoryItem, 0)
	query := `
		SELECT s.id AS season_id,
		       s.name AS season_name,
		       t.id AS team_id,
		       t.name AS team_name
		FROM cpl.rosters ro
		JOIN cpl.seasons s ON ro.season_id = s.id
		JOIN cpl.teams t ON ro.team_id = t.id
		WHERE ro.player_id = ?
		  AND ro.void = false
		ORDER BY s.id DESC`
	result := r.DB.Raw(query, playerId).Scan(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return items, nil
}

func (r *RosterRepository) GetSeasonRosters(seasonId int) ([]*SeasonRosterItem, error) {
	items := make([]*SeasonRosterItem, 0)
	query := `
		SELECT t.id AS team_id,
		       t.name AS team_name,
		       p.id AS player_id,
		       p.first_name,
		       p.last_name
		FROM cpl.rosters ro
		JOIN cpl.teams t ON ro.team_id = t.id
		JOIN cpl.players p ON ro.player_id = p.id
		WHERE ro.season_id = ?
		  AND ro.void = false`
	result := r.DB.Raw(query, seasonId).Scan(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return items, nil
}
