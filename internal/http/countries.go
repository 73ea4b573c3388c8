package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"bookcatalog/internal/entities"
	"bookcatalog/internal/rules"
)

// CountryStore defines database operations for country management.
type CountryStore interface {
	CountryExists(id uint) (bool, error)
	GetCountries() ([]entities.Country, error)
	GetCountry(id uint) (*entities.Country, error)
	GetCountryOfAuthor(authorID uint) (*entities.Country, error)
	GetAuthorsFromCountry(countryID uint) ([]entities.Author, error)
	CreateCountry(country *entities.Country) error
	UpdateCountry(country *entities.Country) error
	DeleteCountry(country *entities.Country) error
}

type CountriesController struct {
	store   CountryStore
	authors AuthorStore
	rules   rules.CountryRules
}

func NewCountriesController(store CountryStore, authors AuthorStore, countryRules rules.CountryRules) *CountriesController {
	return &CountriesController{store: store, authors: authors, rules: countryRules}
}

// GetCountries returns all countries
// GET /countries
func (cc *CountriesController) GetCountries(c *gin.Context) {
	countries, err := cc.store.GetCountries()
	if err != nil {
		respondInternalError(c, err, "get countries")
		return
	}
	c.JSON(200, toCountryDTOs(countries))
}

// GetCountry returns a single country
// GET /countries/:countryId
func (cc *CountriesController) GetCountry(c *gin.Context) {
	id, ok := parseIDParam(c, "countryId")
	if !ok {
		return
	}

	exists, err := cc.store.CountryExists(id)
	if err != nil {
		respondInternalError(c, err, "check country")
		return
	}
	if !exists {
		respondNotFound(c, "country")
		return
	}

	country, err := cc.store.GetCountry(id)
	if err != nil {
		respondInternalError(c, err, "get country")
		return
	}
	c.JSON(200, toCountryDTO(country))
}

// GetCountryOfAuthor returns the country of an author
// GET /countries/authors/:authorId
func (cc *CountriesController) GetCountryOfAuthor(c *gin.Context) {
	authorID, ok := parseIDParam(c, "authorId")
	if !ok {
		return
	}

	exists, err := cc.authors.AuthorExists(authorID)
	if err != nil {
		respondInternalError(c, err, "check author")
		return
	}
	if !exists {
		respondNotFound(c, "author")
		return
	}

	country, err := cc.store.GetCountryOfAuthor(authorID)
	if err != nil {
		respondInternalError(c, err, "get country of author")
		return
	}
	c.JSON(200, toCountryDTO(country))
}

// GetAuthorsFromCountry returns all authors from a country
// GET /countries/:countryId/authors
func (cc *CountriesController) GetAuthorsFromCountry(c *gin.Context) {
	countryID, ok := parseIDParam(c, "countryId")
	if !ok {
		return
	}

	exists, err := cc.store.CountryExists(countryID)
	if err != nil {
		respondInternalError(c, err, "check country")
		return
	}
	if !exists {
		respondNotFound(c, "country")
		return
	}

	authors, err := cc.store.GetAuthorsFromCountry(countryID)
	if err != nil {
		respondInternalError(c, err, "get authors from country")
		return
	}
	c.JSON(200, toAuthorDTOs(authors))
}

// CreateCountry creates a new country
// POST /countries
func (cc *CountriesController) CreateCountry(c *gin.Context) {
	var country entities.Country
	if err := c.ShouldBindJSON(&country); err != nil {
		respondBadRequest(c, "invalid country payload")
		return
	}

	violation, err := cc.rules.CheckCreate(&country)
	if err != nil {
		respondInternalError(c, err, "validate country")
		return
	}
	if violation != nil {
		respondViolation(c, violation)
		return
	}

	country.ID = 0
	if err := cc.store.CreateCountry(&country); err != nil {
		respondInternalError(c, err, "create country")
		return
	}

	respondCreated(c, fmt.Sprintf("/countries/%d", country.ID), toCountryDTO(&country))
}

// UpdateCountry replaces an existing country
// PUT /countries/:countryId
func (cc *CountriesController) UpdateCountry(c *gin.Context) {
	id, ok := parseIDParam(c, "countryId")
	if !ok {
		return
	}

	var country entities.Country
	if err := c.ShouldBindJSON(&country); err != nil {
		respondBadRequest(c, "invalid country payload")
		return
	}

	violation, err := cc.rules.CheckUpdate(id, &country)
	if err != nil {
		respondInternalError(c, err, "validate country")
		return
	}
	if violation != nil {
		respondViolation(c, violation)
		return
	}

	country.ID = id
	if err := cc.store.UpdateCountry(&country); err != nil {
		respondInternalError(c, err, "update country")
		return
	}
	respondNoContent(c)
}

// DeleteCountry removes a country when no author references it
// DELETE /countries/:countryId
func (cc *CountriesController) DeleteCountry(c *gin.Context) {
	id, ok := parseIDParam(c, "countryId")
	if !ok {
		return
	}

	violation, err := cc.rules.CheckDelete(id)
	if err != nil {
		respondInternalError(c, err, "validate country delete")
		return
	}
	if violation != nil {
		respondViolation(c, violation)
		return
	}

	country, err := cc.store.GetCountry(id)
	if err != nil {
		respondInternalError(c, err, "get country")
		return
	}
	if err := cc.store.DeleteCountry(country); err != nil {
		respondInternalError(c, err, "delete country")
		return
	}
	respondNoContent(c)
}
