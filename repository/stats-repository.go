package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MatchStat is one player's line for one match. All counters are bounded
// small integers (0-255 at the edge), keyed by (match, player).
type MatchStat struct {
	MatchId          int       `gorm:"primaryKey"`
	PlayerId         int       `gorm:"primaryKey"`
	CoinsPocketed    int       `gorm:"not null;default:0"`
	StrikersPocketed int       `gorm:"not null;default:0"`
	CoinsFined       int       `gorm:"not null;default:0"`
	ShotsTaken       int       `gorm:"not null;default:0"`
	Void             bool      `gorm:"not null;default:false"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

// Upsert writes the batch in one statement: insert new (match, player) lines,
// overwrite the counters of existing ones and clear their void flag so a
// previously removed line is resurrected with the fresh numbers.
func (r *StatsRepository) Upsert(stats []*MatchStat) error {
	if len(stats) == 0 {
		return nil
	}
	result := r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "match_id"}, {Name: "player_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"coins_pocketed":    gorm.Expr(`excluded.coins_pocketed`),
			"strikers_pocketed": gorm.Expr(`excluded.strikers_pocketed`),
			"coins_fined":       gorm.Expr(`excluded.coins_fined`),
			"shots_taken":       gorm.Expr(`excluded.shots_taken`),
			"void":              false,
			"updated_at":        time.Now(),
		}),
	}).CreateInBatches(stats, len(stats))
	return result.Error
}

// GetForMatch returns the match's non-voided stat lines ordered by player id,
// regardless of the order they were submitted in.
func (r *StatsRepository) GetForMatch(matchId int) ([]*MatchStat, error) {
	stats := make([]*MatchStat, 0)
	result := r.DB.
		Where("match_id = ? AND void = false", matchId).
		Order("player_id ASC").
		Find(&stats)
	if result.Error != nil {
		return nil, result.Error
	}
	return stats, nil
}
