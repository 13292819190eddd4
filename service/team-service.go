package service

import (
	"cpl/repository"

	"gorm.io/gorm"
)

type TeamService struct {
	teamRepository *repository.TeamRepository
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{
		teamRepository: repository.NewTeamRepository(db),
	}
}

type TeamUpdate struct {
	Name    *string
	Slogan  *string
	LogoUrl *string
}

func (s *TeamService) GetAll() ([]*repository.Team, error) {
	return s.teamRepository.GetAll()
}

func (s *TeamService) GetById(teamId int) (*repository.Team, error) {
	return s.teamRepository.GetById(teamId)
}

func (s *TeamService) Create(team *repository.Team) (*repository.Team, error) {
	return s.teamRepository.Create(team)
}

func (s *TeamService) Update(teamId int, update *TeamUpdate) (*repository.Team, error) {
	team, err := s.teamRepository.GetById(teamId)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		team.Name = *update.Name
	}
	if update.Slogan != nil {
		team.Slogan = update.Slogan
	}
	if update.LogoUrl != nil {
		team.LogoUrl = update.LogoUrl
	}
	return s.teamRepository.Save(team)
}

func (s *TeamService) Delete(teamId int) error {
	return s.teamRepository.SoftDelete(teamId)
}
