package service

import (
	"cpl/app_error"
	"cpl/metrics"
	"cpl/repository"
	"cpl/standings"

	"gorm.io/gorm"
)

type MatchService struct {
	db              *gorm.DB
	matchRepository *repository.MatchRepository
	statsRepository *repository.StatsRepository
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{
		db:              db,
		matchRepository: repository.NewMatchRepository(db),
		statsRepository: repository.NewStatsRepository(db),
	}
}

func (s *MatchService) GetById(matchId int) (*repository.Match, error) {
	return s.matchRepository.GetById(matchId)
}

func (s *MatchService) GetAll(seasonId *int) ([]*repository.Match, error) {
	return s.matchRepository.GetAll(seasonId)
}

// Create validates the team pairing before persisting: a Final placeholder may
// carry two null teams, anything else needs two distinct teams.
func (s *MatchService) Create(match *repository.Match, order *int) (*repository.Match, error) {
	if match.Team1 == nil || match.Team2 == nil {
		if match.Category != repository.MatchCategoryFinal || match.Team1 != nil || match.Team2 != nil {
			return nil, app_error.Validation("team1 and team2 are required")
		}
	} else if *match.Team1 == *match.Team2 {
		return nil, app_error.Validation("team1 and team2 cannot be the same")
	}
	return s.matchRepository.Create(match, order)
}

// Update applies a partial update and, when a league match lands on
// Completed, runs the final-match wiring in the same transaction so the
// completion check, the standings read and the conditional Final write cannot
// interleave with a concurrent completion.
func (s *MatchService) Update(matchId int, update *repository.MatchUpdate) (*repository.Match, error) {
	var match *repository.Match
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewMatchRepository(tx)
		updated, err := repo.Update(matchId, update)
		if err != nil {
			return err
		}
		if updated.Category == repository.MatchCategoryLeague &&
			updated.Status == repository.MatchStatusCompleted {
			if err := standings.SyncFinalMatchTeams(tx, updated.SeasonId); err != nil {
				return err
			}
		}
		match = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return match, nil
}

func (s *MatchService) Delete(matchId int) error {
	return s.matchRepository.SoftDelete(matchId)
}

func (s *MatchService) GetNextOrder(seasonId int) (int, error) {
	return s.matchRepository.NextOrder(seasonId)
}

// UpsertStats writes a batch of per-player lines for the match. The batch is
// rejected as a whole before any write when the match is unknown or a player
// id repeats within the submission.
func (s *MatchService) UpsertStats(matchId int, stats []*repository.MatchStat) ([]*repository.MatchStat, error) {
	if _, err := s.matchRepository.GetById(matchId); err != nil {
		return nil, err
	}
	seen := make(map[int]bool, len(stats))
	for _, stat := range stats {
		if seen[stat.PlayerId] {
			return nil, app_error.Validation("duplicate player id in stats batch")
		}
		seen[stat.PlayerId] = true
		stat.MatchId = matchId
	}
	if err := s.statsRepository.Upsert(stats); err != nil {
		return nil, err
	}
	metrics.StatsUpsertRowsTotal.Add(float64(len(stats)))
	return s.statsRepository.GetForMatch(matchId)
}

func (s *MatchService) GetStats(matchId int) ([]*repository.MatchStat, error) {
	if _, err := s.matchRepository.GetById(matchId); err != nil {
		return nil, err
	}
	return s.statsRepository.GetForMatch(matchId)
}
