package service

import (
	"cpl/app_error"
	"cpl/repository"
	"strings"
	"time"

	"gorm.io/gorm"
)

type PlayerService struct {
	playerRepository *repository.PlayerRepository
	countryService   *CountryService
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{
		playerRepository: repository.NewPlayerRepository(db),
		countryService:   NewCountryService(db),
	}
}

type PlayerUpdate struct {
	FirstName     *string
	LastName      *string
	DateOfBirth   *time.Time
	AvatarUrl     *string
	NationalityId *int
}

func (s *PlayerService) GetAll() ([]*repository.Player, error) {
	return s.playerRepository.GetAll()
}

func (s *PlayerService) GetById(playerId int) (*repository.Player, error) {
	return s.playerRepository.GetById(playerId)
}

func (s *PlayerService) Create(player *repository.Player) (*repository.Player, error) {
	player.FirstName = strings.TrimSpace(player.FirstName)
	player.LastName = strings.TrimSpace(player.LastName)
	trimOptional(&player.AvatarUrl)

	if player.FirstName == "" {
		return nil, app_error.Validation("first name is required")
	}
	if player.LastName == "" {
		return nil, app_error.Validation("last name is required")
	}
	if player.DateOfBirth != nil && player.DateOfBirth.After(time.Now()) {
		return nil, app_error.Validation("date of birth cannot be in the future")
	}
	if player.NationalityId != nil {
		if err := s.countryService.ValidateCountryExists(*player.NationalityId); err != nil {
			return nil, err
		}
	}

	return s.playerRepository.Create(player)
}

func (s *PlayerService) Update(playerId int, update *PlayerUpdate) (*repository.Player, error) {
	player, err := s.playerRepository.GetById(playerId)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		firstName := strings.TrimSpace(*update.FirstName)
		if firstName == "" {
			return nil, app_error.Validation("first name cannot be empty")
		}
		player.FirstName = firstName
	}
	if update.LastName != nil {
		lastName := strings.TrimSpace(*update.LastName)
		if lastName == "" {
			return nil, app_error.Validation("last name cannot be empty")
		}
		player.LastName = lastName
	}
	if update.DateOfBirth != nil {
		if update.DateOfBirth.After(time.Now()) {
			return nil, app_error.Validation("date of birth cannot be in the future")
		}
		player.DateOfBirth = update.DateOfBirth
	}
	if update.AvatarUrl != nil {
		player.AvatarUrl = update.AvatarUrl
		trimOptional(&player.AvatarUrl)
	}
	if update.NationalityId != nil {
		if err := s.countryService.ValidateCountryExists(*update.NationalityId); err != nil {
			return nil, err
		}
		player.NationalityId = update.NationalityId
	}

	return s.playerRepository.Save(player)
}

func (s *PlayerService) Delete(playerId int) error {
	return s.playerRepository.SoftDelete(playerId)
}
