package service

import (
	"cpl/repository"

	"gorm.io/gorm"
)

type RosterService struct {
	rosterRepository *repository.RosterRepository
	seasonRepository *repository.SeasonRepository
	teamRepository   *repository.TeamRepository
	playerRepository *repository.PlayerRepository
}

func NewRosterService(db *gorm.DB) *RosterService {
	return &RosterService{
		rosterRepository: repository.NewRosterRepository(db),
		seasonRepository: repository.NewSeasonRepository(db),
		teamRepository:   repository.NewTeamRepository(db),
		playerRepository: repository.NewPlayerRepository(db),
	}
}

func (s *RosterService) AssignPlayer(seasonId int, teamId int, playerId int) (*repository.Roster, error) {
	if _, err := s.seasonRepository.GetById(seasonId); err != nil {
		return nil, err
	}
	if _, err := s.teamRepository.GetById(teamId); err != nil {
		return nil, err
	}
	if _, err := s.playerRepository.GetById(playerId); err != nil {
		return nil, err
	}
	return s.rosterRepository.AssignPlayer(seasonId, teamId, playerId)
}

func (s *RosterService) RemovePlayer(seasonId int, playerId int) error {
	return s.rosterRepository.RemovePlayer(seasonId, playerId)
}

func (s *RosterService) GetTeamRoster(seasonId int, teamId int) ([]*repository.TeamRosterPlayer, error) {
	return s.rosterRepository.GetTeamRoster(seasonId, teamId)
}

func (s *RosterService) GetPlayerHistory(playerId int) ([]*repository.PlayerSeasonHistoryItem, error) {
	return s.rosterRepository.GetPlayerHistory(playerId)
}

func (s *RosterService) GetSeasonRosters(seasonId int) ([]*repository.SeasonRosterItem, error) {
	return s.rosterRepository.GetSeasonRosters(seasonId)
}
