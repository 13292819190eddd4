package repository

import (
	"gorm.io/gorm"
)

type Country struct {
	Id        int     `gorm:"primaryKey"`
	Name      string  `gorm:"not null;size:255"`
	IsoCode2  string  `gorm:"not null;size:2"`
	IsoCode3  string  `gorm:"not null;size:3"`
	Capital   *string `gorm:"null;size:255"`
	PhoneCode *string `gorm:"null;size:16"`
	Continent *string `gorm:"null;size:64"`
	Void      bool    `gorm:"not null;default:false"`
}

type CountryRepository struct {
	DB *gorm.DB
}

func NewCountryRepository(db *gorm.DB) *CountryRepository {
	return &CountryRepository{DB: db}
}

func (r *CountryRepository) GetById(countryId int) (*Country, error) {
	var country Country
	result := r.DB.Where("void = false").First(&country, countryId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &country, nil
}

func (r *CountryRepository) GetAll() ([]*Country, error) {
	countries := make([]*Country, 0)
	result := r.DB.Where("void = false").Find(&countries)
	if result.Error != nil {
		return nil, result.Error
	}
	return countries, nil
}

func (r *CountryRepository) Create(country *Country) (*Country, error) {
	result := r.DB.Create(country)
	if result.Error != nil {
		return nil, result.Error
	}
	return country, nil
}

func (r *CountryRepository) Save(country *Country) (*Country, error) {
	result := r.DB.Save(country)
	if result.Error != nil {
		return nil, result.Error
	}
	return country, nil
}

func (r *CountryRepository) SoftDelete(countryId int) error {
	result := r.DB.Model(&Country{}).
		Where("id = ? AND void = false", countryId).
		Update("void", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CountryRepository) ExistsById(countryId int) (bool, error) {
	var count int64
	result := r.DB.Model(&Country{}).
		Where("id = ? AND void = false", countryId).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (r *CountryRepository) ExistsByName(name string) (bool, error) {
	return r.existsWhere("name = ?", name)
}

func (r *CountryRepository) ExistsByIso2(iso2 string) (bool, error) {
	return r.existsWhere("iso_code2 = ?", iso2)
}

func (r *CountryRepository) ExistsByIso3(iso3 string) (bool, error) {
	return r.existsWhere("iso_code3 = ?", iso3)
}

func (r *CountryRepository) existsWhere(query string, value string) (bool, error) {
	var count int64
	result := r.DB.Model(&Country{}).
		Where("void = false").
		Where(query, value).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
