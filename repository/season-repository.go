package repository

import (
	"time"

	"gorm.io/gorm"
)

type SeasonStatus string

const (
	SeasonStatusUpcoming  SeasonStatus = "UPCOMING"
	SeasonStatusOngoing   SeasonStatus = "ONGOING"
	SeasonStatusCompleted SeasonStatus = "COMPLETED"
)

type Season struct {
	Id        int          `gorm:"primaryKey"`
	Name      string       `gorm:"not null;size:255"`
	StartDate *time.Time   `gorm:"null;type:date"`
	EndDate   *time.Time   `gorm:"null;type:date"`
	LogoUrl   *string      `gorm:"null;size:1024"`
	Status    SeasonStatus `gorm:"not null;type:cpl.season_status;default:'UPCOMING'"`
	Void      bool         `gorm:"not null;default:false"`
}

type SeasonRepository struct {
	DB *gorm.DB
}

func NewSeasonRepository(db *gorm.DB) *SeasonRepository {
	return &SeasonRepository{DB: db}
}

func (r *SeasonRepository) GetById(seasonId int) (*Season, error) {
	var season Season
	result := r.DB.Where("void = false").First(&season, seasonId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &season, nil
}

func (r *SeasonRepository) GetAll() ([]*Season, error) {
	seasons := make([]*Season, 0)
	result := r.DB.Where("void = false").Order("id DESC").Find(&seasons)
	if result.Error != nil {
		return nil, result.Error
	}
	return seasons, nil
}

func (r *SeasonRepository) Create(season *Season) (*Season, error) {
	result := r.DB.Create(season)
	if result.Error != nil {
		return nil, result.Error
	}
	return season, nil
}

func (r *SeasonRepository) Save(season *Season) (*Season, error) {
	result := r.DB.Save(season)
	if result.Error != nil {
		return nil, result.Error
	}
	return season, nil
}

func (r *SeasonRepository) SoftDelete(seasonId int) error {
	result := r.DB.Model(&Season{}).
		Where("id = ? AND void = false", seasonId).
		Update("void", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SeasonRepository) ExistsByName(name string) (bool, error) {
	var count int64
	result := r.DB.Model(&Season{}).
		Where("name = ? AND void = false", name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
