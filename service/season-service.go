package service

import (
	"cpl/app_error"
	"cpl/repository"
	"cpl/standings"
	"strings"
	"time"

	"gorm.io/gorm"
)

type SeasonService struct {
	db               *gorm.DB
	seasonRepository *repository.SeasonRepository
}

func NewSeasonService(db *gorm.DB) *SeasonService {
	return &SeasonService{
		db:               db,
		seasonRepository: repository.NewSeasonRepository(db),
	}
}

type SeasonUpdate struct {
	Name      *string
	StartDate *time.Time
	EndDate   *time.Time
	LogoUrl   *string
	Status    *repository.SeasonStatus
}

func (s *SeasonService) GetAll() ([]*repository.Season, error) {
	return s.seasonRepository.GetAll()
}

func (s *SeasonService) GetById(seasonId int) (*repository.Season, error) {
	return s.seasonRepository.GetById(seasonId)
}

func (s *SeasonService) Create(season *repository.Season) (*repository.Season, error) {
	season.Name = strings.TrimSpace(season.Name)
	if exists, err := s.seasonRepository.ExistsByName(season.Name); err != nil {
		return nil, err
	} else if exists {
		return nil, app_error.Conflict("season already exists")
	}
	if season.StartDate != nil && season.EndDate != nil && season.EndDate.Before(*season.StartDate) {
		return nil, app_error.Validation("end date cannot be before start date")
	}
	if season.Status == "" {
		season.Status = repository.SeasonStatusUpcoming
	}
	return s.seasonRepository.Create(season)
}

func (s *SeasonService) Update(seasonId int, update *SeasonUpdate) (*repository.Season, error) {
	season, err := s.seasonRepository.GetById(seasonId)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name != season.Name {
			if exists, err := s.seasonRepository.ExistsByName(name); err != nil {
				return nil, err
			} else if exists {
				return nil, app_error.Conflict("season already exists")
			}
		}
		season.Name = name
	}
	if update.StartDate != nil {
		season.StartDate = update.StartDate
	}
	if update.EndDate != nil {
		season.EndDate = update.EndDate
	}
	if season.StartDate != nil && season.EndDate != nil && season.EndDate.Before(*season.StartDate) {
		return nil, app_error.Validation("end date cannot be before start date")
	}
	if update.LogoUrl != nil {
		season.LogoUrl = update.LogoUrl
	}
	if update.Status != nil {
		season.Status = *update.Status
	}

	return s.seasonRepository.Save(season)
}

func (s *SeasonService) Delete(seasonId int) error {
	return s.seasonRepository.SoftDelete(seasonId)
}

// GetLeagueTable returns the ranked table for the season. A season with no
// matches yields empty standings and no winner; an unknown season is a
// distinct not-found condition.
func (s *SeasonService) GetLeagueTable(seasonId int) (*standings.LeagueTable, error) {
	if seasonId <= 0 {
		return nil, app_error.Validation("invalid season id")
	}
	season, err := s.seasonRepository.GetById(seasonId)
	if err != nil {
		return nil, err
	}
	return standings.GetLeagueTable(s.db, season)
}
