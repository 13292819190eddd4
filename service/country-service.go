package service

import (
	"cpl/app_error"
	"cpl/repository"
	"strings"

	"gorm.io/gorm"
)

type CountryService struct {
	countryRepository *repository.CountryRepository
}

func NewCountryService(db *gorm.DB) *CountryService {
	return &CountryService{
		countryRepository: repository.NewCountryRepository(db),
	}
}

type CountryUpdate struct {
	Name      *string
	IsoCode2  *string
	IsoCode3  *string
	Capital   *string
	PhoneCode *string
	Continent *string
}

func (s *CountryService) GetAll() ([]*repository.Country, error) {
	return s.countryRepository.GetAll()
}

func (s *CountryService) GetById(countryId int) (*repository.Country, error) {
	return s.countryRepository.GetById(countryId)
}

func (s *CountryService) Create(country *repository.Country) (*repository.Country, error) {
	country.Name = strings.TrimSpace(country.Name)
	country.IsoCode2 = strings.ToUpper(strings.TrimSpace(country.IsoCode2))
	country.IsoCode3 = strings.ToUpper(strings.TrimSpace(country.IsoCode3))
	trimOptional(&country.Capital)
	trimOptional(&country.PhoneCode)
	trimOptional(&country.Continent)

	if exists, err := s.countryRepository.ExistsByName(country.Name); err != nil {
		return nil, err
	} else if exists {
		return nil, app_error.Conflict("country name already exists")
	}
	if exists, err := s.countryRepository.ExistsByIso2(country.IsoCode2); err != nil {
		return nil, err
	} else if exists {
		return nil, app_error.Conflict("iso code2 already exists")
	}
	if exists, err := s.countryRepository.ExistsByIso3(country.IsoCode3); err != nil {
		return nil, err
	} else if exists {
		return nil, app_error.Conflict("iso code3 already exists")
	}

	return s.countryRepository.Create(country)
}

func (s *CountryService) Update(countryId int, update *CountryUpdate) (*repository.Country, error) {
	country, err := s.countryRepository.GetById(countryId)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name != country.Name {
			if exists, err := s.countryRepository.ExistsByName(name); err != nil {
				return nil, err
			} else if exists {
				return nil, app_error.Conflict("country name already exists")
			}
		}
		country.Name = name
	}
	if update.IsoCode2 != nil {
		iso2 := strings.ToUpper(strings.TrimSpace(*update.IsoCode2))
		if iso2 != country.IsoCode2 {
			if exists, err := s.countryRepository.ExistsByIso2(iso2); err != nil {
				return nil, err
			} else if exists {
				return nil, app_error.Conflict("iso code2 already exists")
			}
		}
		country.IsoCode2 = iso2
	}
	if update.IsoCode3 != nil {
		iso3 := strings.ToUpper(strings.TrimSpace(*update.IsoCode3))
		if iso3 != country.IsoCode3 {
			if exists, err := s.countryRepository.ExistsByIso3(iso3); err != nil {
				return nil, err
			} else if exists {
				return nil, app_error.Conflict("iso code3 already exists")
			}
		}
		country.IsoCode3 = iso3
	}
	if update.Capital != nil {
		country.Capital = update.Capital
		trimOptional(&country.Capital)
	}
	if update.PhoneCode != nil {
		country.PhoneCode = update.PhoneCode
		trimOptional(&country.PhoneCode)
	}
	if update.Continent != nil {
		country.Continent = update.Continent
		trimOptional(&country.Continent)
	}

	return s.countryRepository.Save(country)
}

func (s *CountryService) Delete(countryId int) error {
	return s.countryRepository.SoftDelete(countryId)
}

func (s *CountryService) ValidateCountryExists(countryId int) error {
	exists, err := s.countryRepository.ExistsById(countryId)
	if err != nil {
		return err
	}
	if !exists {
		return app_error.Validation("invalid nationality id")
	}
	return nil
}

func trimOptional(value **string) {
	if *value == nil {
		return
	}
	trimmed := strings.TrimSpace(**value)
	*value = &trimmed
}
