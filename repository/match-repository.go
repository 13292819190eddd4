package repository

import (
	"cpl/app_error"
	"time"

	"gorm.io/gorm"
)

type MatchCategory string

const (
	MatchCategoryLeague MatchCategory = "LEAGUE"
	MatchCategoryFinal  MatchCategory = "FINAL"
)

type MatchStatus string

const (
	MatchStatusNotStarted MatchStatus = "NOT_STARTED"
	MatchStatusInProgress MatchStatus = "IN_PROGRESS"
	MatchStatusCompleted  MatchStatus = "COMPLETED"
)

type MatchOutcome string

const (
	MatchOutcomeTeam1Won MatchOutcome = "TEAM1_WON"
	MatchOutcomeTeam2Won MatchOutcome = "TEAM2_WON"
)

type TossOutcome string

const (
	TossOutcomeTeam1 TossOutcome = "TEAM1"
	TossOutcomeTeam2 TossOutcome = "TEAM2"
)

// Match is a single fixture. Team1/Team2 stay null on a Final placeholder
// until the league stage completes and the top two ranked teams are wired in.
type Match struct {
	Id            int           `gorm:"primaryKey"`
	Team1         *int          `gorm:"null"`
	Team2         *int          `gorm:"null"`
	ScheduledDate time.Time     `gorm:"not null;type:date"`
	Duration      *int          `gorm:"null"`
	Extra         *int          `gorm:"null"`
	GoldenStrike  bool          `gorm:"not null;default:false"`
	Category      MatchCategory `gorm:"not null;type:cpl.match_category"`
	Status        MatchStatus   `gorm:"not null;type:cpl.match_status;default:'NOT_STARTED'"`
	Order         int           `gorm:"column:order;not null"`
	SeasonId      int           `gorm:"not null"`
	NetPoints     *int          `gorm:"null"`
	Outcome       *MatchOutcome `gorm:"null;type:cpl.match_outcome"`
	TossOutcome   *TossOutcome  `gorm:"null;type:cpl.toss_outcome"`
	Void          bool          `gorm:"not null;default:false"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime"`
}

// MatchUpdate carries a partial field set; nil means "leave unchanged".
type MatchUpdate struct {
	ScheduledDate *time.Time
	Duration      *int
	Extra         *int
	GoldenStrike  *bool
	Status        *MatchStatus
	NetPoints     *int
	Outcome       *MatchOutcome
	TossOutcome   *TossOutcome
}

// CanTransition reports whether a status change is legal. NotStarted and
// InProgress can move between each other, Completed is terminal.
func CanTransition(from MatchStatus, to MatchStatus) bool {
	if from == to {
		return true
	}
	if from == MatchStatusCompleted {
		return false
	}
	return true
}

type MatchRepository struct {
	DB *gorm.DB
}

func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{DB: db}
}

func (r *MatchRepository) GetById(matchId int) (*Match, error) {
	var match Match
	result := r.DB.Where("void = false").First(&match, matchId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &match, nil
}

func (r *MatchRepository) GetAll(seasonId *int) ([]*Match, error) {
	matches := make([]*Match, 0)
	query := r.DB.Where("void = false")
	if seasonId != nil {
		query = query.Where("season_id = ?", *seasonId)
	}
	result := query.Order(`"order" ASC`).Find(&matches)
	if result.Error != nil {
		return nil, result.Error
	}
	return matches, nil
}

// Create inserts a match. The season must exist and not be voided, at most
// one non-voided Final may exist per season, and when no order is given the
// next free order in the season is assigned.
func (r *MatchRepository) Create(match *Match, order *int) (*Match, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var seasonCount int64
		result := tx.Model(&Season{}).
			Where("id = ? AND void = false", match.SeasonId).
			Count(&seasonCount)
		if result.Error != nil {
			return result.Error
		}
		if seasonCount == 0 {
			return app_error.Validation("season not found")
		}
		if match.Category == MatchCategoryFinal {
			var count int64
			result := tx.Model(&Match{}).
				Where("season_id = ? AND category = ? AND void = false", match.SeasonId, MatchCategoryFinal).
				Count(&count)
			if result.Error != nil {
				return result.Error
			}
			if count > 0 {
				return app_error.Conflict("final match already exists for this season")
			}
		}
		if order != nil {
			match.Order = *order
		} else {
			next, err := nextOrder(tx, match.SeasonId)
			if err != nil {
				return err
			}
			match.Order = next
		}
		return tx.Create(match).Error
	})
	if err != nil {
		return nil, err
	}
	return match, nil
}

// Update applies a partial field set. A completed match is terminal for this
// path: its scheduling and result fields can no longer be rewritten.
func (r *MatchRepository) Update(matchId int, update *MatchUpdate) (*Match, error) {
	match, err := r.GetById(matchId)
	if err != nil {
		return nil, err
	}
	if match.Status == MatchStatusCompleted {
		return nil, app_error.Validation("match is already completed")
	}
	if update.Status != nil && !CanTransition(match.Status, *update.Status) {
		return nil, app_error.Validation("illegal match status transition")
	}

	fields := map[string]any{}
	if update.ScheduledDate != nil {
		fields["scheduled_date"] = *update.ScheduledDate
	}
	if update.Duration != nil {
		fields["duration"] = *update.Duration
	}
	if update.Extra != nil {
		fields["extra"] = *update.Extra
	}
	if update.GoldenStrike != nil {
		fields["golden_strike"] = *update.GoldenStrike
	}
	if update.Status != nil {
		fields["status"] = *update.Status
	}
	if update.NetPoints != nil {
		fields["net_points"] = *update.NetPoints
	}
	if update.Outcome != nil {
		fields["outcome"] = *update.Outcome
	}
	if update.TossOutcome != nil {
		fields["toss_outcome"] = *update.TossOutcome
	}
	if len(fields) == 0 {
		return match, nil
	}

	result := r.DB.Model(&Match{}).
		Where("id = ? AND void = false", matchId).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.GetById(matchId)
}

func (r *MatchRepository) SoftDelete(matchId int) error {
	result := r.DB.Model(&Match{}).
		Where("id = ? AND void = false", matchId).
		Update("void", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// NextOrder returns max order + 1 for the season. A season that is absent,
// voided or already completed takes no further matches.
func (r *MatchRepository) NextOrder(seasonId int) (int, error) {
	return nextOrder(r.DB, seasonId)
}

func nextOrder(db *gorm.DB, seasonId int) (int, error) {
	query := `
		SELECT t.desired_order
		FROM (
			SELECT COALESCE(MAX(m."order"), 0) + 1 AS desired_order
			FROM cpl.matches m
			WHERE m.season_id = ?
			  AND m.void = false
		) t
		WHERE EXISTS (
			SELECT 1
			FROM cpl.seasons s
			WHERE s.id = ?
			  AND s.void = false
			  AND s.status <> 'COMPLETED'
		)`
	var order int
	result := db.Raw(query, seasonId, seasonId).Scan(&order)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, app_error.Validation("season not found or already completed")
	}
	return order, nil
}
