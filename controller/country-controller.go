package controller

import (
	"cpl/app_error"
	"cpl/repository"
	"cpl/service"
	"cpl/utils"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CountryController struct {
	countryService *service.CountryService
}

func NewCountryController(db *gorm.DB) *CountryController {
	return &CountryController{countryService: service.NewCountryService(db)}
}

func setupCountryController(db *gorm.DB) []RouteInfo {
	e := NewCountryController(db)
	basePath := "/countries"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getCountriesHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createCountryHandler()},
		{Method: "GET", Path: "/:country_id", HandlerFunc: e.getCountryHandler()},
		{Method: "PATCH", Path: "/:country_id", HandlerFunc: e.updateCountryHandler()},
		{Method: "DELETE", Path: "/:country_id", HandlerFunc: e.deleteCountryHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetCountries
// @Description Lists all countries
// @Tags country
// @Produce json
// @Success 200 {array} CountryResponse
// @Router /countries [get]
func (e *CountryController) getCountriesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		countries, err := e.countryService.GetAll()
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, utils.Map(countries, toCountryResponse))
	}
}

// @id GetCountry
// @Description Fetches a country by id
// @Tags country
// @Produce json
// @Param country_id path int true "Country Id"
// @Success 200 {object} CountryResponse
// @Router /countries/{country_id} [get]
func (e *CountryController) getCountryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		countryId, err := strconv.Atoi(c.Param("country_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		country, err := e.countryService.GetById(countryId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, toCountryResponse(country))
	}
}

// @id CreateCountry
// @Description Creates a country
// @Tags country
// @Accept json
// @Produce json
// @Param country body CountryCreate true "Country to create"
// @Success 201 {object} CountryResponse
// @Router /countries [post]
func (e *CountryController) createCountryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var countryCreate CountryCreate
		if err := c.BindJSON(&countryCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		country, err := e.countryService.Create(countryCreate.toModel())
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(201, toCountryResponse(country))
	}
}

// @id UpdateCountry
// @Description Partially updates a country
// @Tags country
// @Accept json
// @Produce json
// @Param country_id path int true "Country Id"
// @Param country body CountryUpdate true "Fields to update"
// @Success 200 {object} CountryResponse
// @Router /countries/{country_id} [patch]
func (e *CountryController) updateCountryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		countryId, err := strconv.Atoi(c.Param("country_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var countryUpdate CountryUpdate
		if err := c.BindJSON(&countryUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		country, err := e.countryService.Update(countryId, countryUpdate.toUpdate())
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, toCountryResponse(country))
	}
}

// @id DeleteCountry
// @Description Soft-deletes a country
// @Tags country
// @Param country_id path int true "Country Id"
// @Router /countries/{country_id} [delete]
func (e *CountryController) deleteCountryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		countryId, err := strconv.Atoi(c.Param("country_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.countryService.Delete(countryId); err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.Status(204)
	}
}

type CountryCreate struct {
	Name      string  `json:"name" binding:"required"`
	IsoCode2  string  `json:"iso_code2" binding:"required,len=2"`
	IsoCode3  string  `json:"iso_code3" binding:"required,len=3"`
	Capital   *string `json:"capital"`
	PhoneCode *string `json:"phone_code"`
	Continent *string `json:"continent"`
}

type CountryUpdate struct {
	Name      *string `json:"name"`
	IsoCode2  *string `json:"iso_code2"`
	IsoCode3  *string `json:"iso_code3"`
	Capital   *string `json:"capital"`
	PhoneCode *string `json:"phone_code"`
	Continent *string `json:"continent"`
}

type CountryResponse struct {
	Id        int     `json:"id"`
	Name      string  `json:"name"`
	IsoCode2  string  `json:"iso_code2"`
	IsoCode3  string  `json:"iso_code3"`
	Capital   *string `json:"capital"`
	PhoneCode *string `json:"phone_code"`
	Continent *string `json:"continent"`
}

func (e *CountryCreate) toModel() *repository.Country {
	return &repository.Country{
		Name:      e.Name,
		IsoCode2:  e.IsoCode2,
		IsoCode3:  e.IsoCode3,
		Capital:   e.Capital,
		PhoneCode: e.PhoneCode,
		Continent: e.Continent,
	}
}

func (e *CountryUpdate) toUpdate() *service.CountryUpdate {
	return &service.CountryUpdate{
		Name:      e.Name,
		IsoCode2:  e.IsoCode2,
		IsoCode3:  e.IsoCode3,
		Capital:   e.Capital,
		PhoneCode: e.PhoneCode,
		Continent: e.Continent,
	}
}

func toCountryResponse(country *repository.Country) *CountryResponse {
	return &CountryResponse{
		Id:        country.Id,
		Name:      country.Name,
		IsoCode2:  country.IsoCode2,
		IsoCode3:  country.IsoCode3,
		Capital:   country.Capital,
		PhoneCode: country.PhoneCode,
		Continent: country.Continent,
	}
}
