package rules

import (
	"strings"

	"bookcatalog/internal/entities"
)

// Store interfaces name only the read operations the rules need; the
// repository packages satisfy them.

type CountryStore interface {
	CountryExists(id uint) (bool, error)
	IsDuplicateCountryName(countryID uint, name string) (bool, error)
	CountAuthorsFromCountry(countryID uint) (int64, error)
}

type AuthorStore interface {
	AuthorExists(id uint) (bool, error)
	CountBooksByAuthor(authorID uint) (int64, error)
}

type CategoryStore interface {
	CategoryExists(id uint) (bool, error)
	IsDuplicateCategoryName(categoryID uint, name string) (bool, error)
	CountBooksForCategory(categoryID uint) (int64, error)
}

type BookStore interface {
	BookExists(id uint) (bool, error)
	IsDuplicateISBN(bookID uint, isbn string) (bool, error)
}

type ReviewerStore interface {
	ReviewerExists(id uint) (bool, error)
}

type ReviewStore interface {
	ReviewExists(id uint) (bool, error)
}

// CountryRules validates country mutations.
type CountryRules struct {
	Countries CountryStore
}

// CheckCreate validates a new country: non-blank name, no duplicate under
// the trimmed case-insensitive comparison.
func (cr CountryRules) CheckCreate(country *entities.Country) (*Violation, error) {
	if strings.TrimSpace(country.Name) == "" {
		return invalid("country name is required"), nil
	}
	dup, err := cr.Countries.IsDuplicateCountryName(0, country.Name)
	if err != nil {
		return nil, err
	}
	if dup {
		return duplicate("country %s already exists", country.Name), nil
	}
	return nil, nil
}

// CheckUpdate validates a country replacement against the path id.
func (cr CountryRules) CheckUpdate(pathID uint, country *entities.Country) (*Violation, error) {
	if v := checkIDMatch(pathID, country.ID); v != nil {
		return v, nil
	}
	exists, err := cr.Countries.CountryExists(pathID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return notFound("country %d not found", pathID), nil
	}
	if strings.TrimSpace(country.Name) == "" {
		return invalid("country name is required"), nil
	}
	dup, err := cr.Countries.IsDuplicateCountryName(pathID, country.Name)
	if err != nil {
		return nil, err
	}
	if dup {
		return duplicate("country %s already exists", country.Name), nil
	}
	return nil, nil
}

// CheckDelete blocks deletion while any author references the country.
func (cr CountryRules) CheckDelete(countryID uint) (*Violation, error) {
	exists, err := cr.Countries.CountryExists(countryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return notFound("country %d not found", countryID), nil
	}
	dependents, err := cr.Countries.CountAuthorsFromCountry(countryID)
	if err != nil {
		return nil, err
	}
	if dependents > 0 {
		return blocked("country %d cannot be deleted because it is used by at least one author", countryID), nil
	}
	return nil, nil
}

// AuthorRules validates author mutations.
type AuthorRules struct {
	Authors   AuthorStore
	Countries CountryStore
}

func (ar AuthorRules) CheckCreate(author *entities.Author) (*Violation, error) {
	if v := checkAuthorFields(author); v != nil {
		return v, nil
	}
	exists, err := ar.Countries.CountryExists(author.CountryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return notFound("country %d not found", author.CountryID), nil
	}
	return nil, nil
}

func (ar AuthorRules) CheckUpdate(pathID uint, author *entities.Author) (*Violation, error) {
	if v := checkIDMatch(pathID, author.ID); v != nil {
		return v, nil
	}
	exists, err := ar.Authors.AuthorExists(pathID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return notFound("author %d not found", pathID), nil
	}
	if v := checkAuthorFields(author); v != nil {
		return v, nil
	}
	countryExists, err := ar.Countries.CountryExists(author.CountryID)
	if err != nil {
		return nil, err
	}
	if !countryExists {
		return notFound("country %d not found", author.CountryID), nil
	}
	return nil, nil
}

// CheckDelete blocks deletion while any book references the author.
func (ar AuthorRules) CheckDelete(authorID uint) (*Violation, error) {
	exists, err := ar.Authors.AuthorExists(authorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return notFound("author %d not found", authorID), nil
	}
	dependents, err := ar.Authors.CountBooksByAuthor(authorID)
	if err != nil {
		return nil, err
	}
	if dependents > 0 {
		return blocked("author %d cannot be deleted because at least one book references them", authorID), nil
	}
	return nil, nil
}

func checkAuthorFields(author *entities.Author) *Violation {
	if strings.TrimSpace(author.FirstName) == "" || strings.TrimSpace(author.LastName) == "" {
		return invalid("author first and last name are required")
	}
	return nil
}

// CategoryRules validates category mutations.
type CategoryRules struct {
	Categories CategoryStore
}

func (cr CategoryRules) CheckCreate(category *entities.Category) (*Violation, error) {
	if strings.TrimSpace(category.Name) == "" {
		return invalid("category name is required"), nil
	}
	dup, err := cr.Categories.IsDuplicateCategoryName(0, category.Name)
	if err != nil {
		return nil, err
	}
	if dup {
		return duplicate("category %s already exists", category.Name), nil
	}
	return nil, nil
}

func (cr CategoryRules) CheckUpdate(pathID uint, category *entities.Category) (*Violation, error) {
	if v := checkIDMatch(pathID, category.ID); v != nil {
		return v, nil
	}
	exists, err := cr.Categories.CategoryExists(pathID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return notFound("category %d not found", pathID), nil
	}
	if strings.TrimSpace(category.Name) == "" {
		return invalid("category name is required"), nil
	}
	dup, err := cr.Categories.IsDuplicateCategoryName(pathID, category.Name)
	if err != nil {
		return nil, err
	}
	if dup {
		return duplicate("category %s already exists", category.Name), nil
	}
	return nil, nil
}

func (cr CategoryRules) CheckDelete(categoryID uint) (*Violation, error) {
	exists, err := cr.Categories.CategoryExists(categoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return notFound("category %d not found", categoryID), nil
	}
	dependents, err := cr.Categories.CountBooksForCategory(categoryID)
	if err != nil {
		return nil, err
	}
	if dependents > 0 {
		return blocked("category %d cannot be deleted because at least one book references it", categoryID), nil
	}
	return nil, nil
}
