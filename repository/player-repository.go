package repository

import (
	"time"

	"gorm.io/gorm"
)

type Player struct {
	Id            int        `gorm:"primaryKey"`
	FirstName     string     `gorm:"not null;size:255"`
	LastName      string     `gorm:"not null;size:255"`
	DateOfBirth   *time.Time `gorm:"null;type:date"`
	AvatarUrl     *string    `gorm:"null;size:1024"`
	NationalityId *int       `gorm:"null"`
	Void          bool       `gorm:"not null;default:false"`
}

type PlayerRepository struct {
	DB *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{DB: db}
}

func (r *PlayerRepository) GetById(playerId int) (*Player, error) {
	var player Player
	result := r.DB.Where("void = false").First(&player, playerId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &player, nil
}

func (r *PlayerRepository) GetAll() ([]*Player, error) {
	players := make([]*Player, 0)
	result := r.DB.Where("void = false").Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}
	return players, nil
}

func (r *PlayerRepository) Create(player *Player) (*Player, error) {
	result := r.DB.Create(player)
	if result.Error != nil {
		return nil, result.Error
	}
	return player, nil
}

func (r *PlayerRepository) Save(player *Player) (*Player, error) {
	result := r.DB.Save(player)
	if result.Error != nil {
		return nil, result.Error
	}
	return player, nil
}

func (r *PlayerRepository) SoftDelete(playerId int) error {
	result := r.DB.Model(&Player{}).
		Where("id = ? AND void = false", playerId).
		Update("void", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
