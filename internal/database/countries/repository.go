// Package countries provides database operations for country management.
//
// This package implements the CountryStore interface defined in
// internal/http/countries.go.
//
// # Usage
//
//	repo := countries.NewRepository(db)
//	country, err := repo.GetCountry(123)
package countries

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"bookcatalog/internal/entities"
)

// Repository handles all country database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new countries repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CountryExists reports whether a country with the given ID is present.
func (r *Repository) CountryExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Country{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetCountries returns all countries ordered by name.
func (r *Repository) GetCountries() ([]entities.Country, error) {
	var countries []entities.Country
	err := r.db.Order("name ASC").Find(&countries).Error
	return countries, err
}

// GetCountry retrieves a country by ID.
func (r *Repository) GetCountry(id uint) (*entities.Country, error) {
	var country entities.Country
	if err := r.db.First(&country, id).Error; err != nil {
		return nil, err
	}
	return &country, nil
}

// GetCountryOfAuthor returns the country the given author belongs to.
func (r *Repository) GetCountryOfAuthor(authorID uint) (*entities.Country, error) {
	var country entities.Country
	err := r.db.Joins("JOIN authors ON authors.country_id = countries.id").
		Where("authors.id = ?", authorID).
		First(&country).Error
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// GetAuthorsFromCountry returns all authors referencing the country.
func (r *Repository) GetAuthorsFromCountry(countryID uint) ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Where("country_id = ?", countryID).
		Order("last_name ASC, first_name ASC").
		Find(&authors).Error
	return authors, err
}

// CountAuthorsFromCountry returns how many authors reference the country.
// A non-zero count blocks country deletion.
func (r *Repository) CountAuthorsFromCountry(countryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Author{}).Where("country_id = ?", countryID).Count(&count).Error
	return count, err
}

// IsDuplicateCountryName reports whether another country already uses the
// name, compared trimmed and case-insensitively. The country identified by
// countryID is excluded so an update can keep its own name.
func (r *Repository) IsDuplicateCountryName(countryID uint, name string) (bool, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))

	var country entities.Country
	err := r.db.Where("UPPER(TRIM(name)) = ? AND id <> ?", normalized, countryID).
		First(&country).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateCountry persists a new country and fills in its assigned ID.
func (r *Repository) CreateCountry(country *entities.Country) error {
	return r.db.Create(country).Error
}

// UpdateCountry replaces an existing country record.
func (r *Repository) UpdateCountry(country *entities.Country) error {
	return r.db.Save(country).Error
}

// DeleteCountry removes a country. Callers must have run the
// cascade-block check first.
func (r *Repository) DeleteCountry(country *entities.Country) error {
	return r.db.Delete(country).Error
}
