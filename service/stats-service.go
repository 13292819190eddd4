package service

import (
	"cpl/app_error"
	"cpl/standings"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// GetHeadToHead returns lifetime pairwise totals for two distinct teams. Two
// teams that never met yield an all-zero aggregate, not an error.
func (s *StatsService) GetHeadToHead(team1Id int, team2Id int) (*standings.HeadToHead, error) {
	if team1Id == team2Id {
		return nil, app_error.Validation("cannot compare a team with itself")
	}
	return standings.GetHeadToHead(s.db, team1Id, team2Id)
}
