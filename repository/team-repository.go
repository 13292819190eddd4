package repository

import (
	"gorm.io/gorm"
)

type Team struct {
	Id      int     `gorm:"primaryKey"`
	Name    string  `gorm:"not null;size:255"`
	Slogan  *string `gorm:"null;size:512"`
	LogoUrl *string `gorm:"null;size:1024"`
	Void    bool    `gorm:"not null;default:false"`
}

type TeamRepository struct {
	DB *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{DB: db}
}

func (r *TeamRepository) GetById(teamId int) (*Team, error) {
	var team Team
	result := r.DB.Where("void = false").First(&team, teamId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &team, nil
}

func (r *TeamRepository) GetAll() ([]*Team, error) {
	teams := make([]*Team, 0)
	result := r.DB.Where("void = false").Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}
	return teams, nil
}

func (r *TeamRepository) Create(team *Team) (*Team, error) {
	result := r.DB.Create(team)
	if result.Error != nil {
		return nil, result.Error
	}
	return team, nil
}

func (r *TeamRepository) Save(team *Team) (*Team, error) {
	result := r.DB.Save(team)
	if result.Error != nil {
		return nil, result.Error
	}
	return team, nil
}

func (r *TeamRepository) SoftDelete(teamId int) error {
	result := r.DB.Model(&Team{}).
		Where("id = ? AND void = false", teamId).
		Update("void", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
