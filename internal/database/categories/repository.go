// Package categories provides database operations for category management.
package categories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"bookcatalog/internal/entities"
)

// Repository handles all category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CategoryExists reports whether a category with the given ID is present.
func (r *Repository) CategoryExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetCategories returns all categories ordered by name.
func (r *Repository) GetCategories() ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

// GetCategory retrieves a category by ID.
func (r *Repository) GetCategory(id uint) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// GetCategoriesOfBook returns all categories assigned to the book.
func (r *Repository) GetCategoriesOfBook(bookID uint) ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.Joins("JOIN book_categories ON book_categories.category_id = categories.id").
		Where("book_categories.book_id = ?", bookID).
		Order("categories.name ASC").
		Find(&categories).Error
	return categories, err
}

// GetBooksForCategory returns all books assigned to the category.
func (r *Repository) GetBooksForCategory(categoryID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Joins("JOIN book_categories ON book_categories.book_id = books.id").
		Where("book_categories.category_id = ?", categoryID).
		Order("books.title ASC").
		Find(&books).Error
	return books, err
}

// CountBooksForCategory returns how many books reference the category.
func (r *Repository) CountBooksForCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Table("book_categories").Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

// IsDuplicateCategoryName reports whether another category already uses the
// name, compared trimmed and case-insensitively, excluding categoryID itself.
func (r *Repository) IsDuplicateCategoryName(categoryID uint, name string) (bool, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))

	var category entities.Category
	err := r.db.Where("UPPER(TRIM(name)) = ? AND id <> ?", normalized, categoryID).
		First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateCategory persists a new category and fills in its assigned ID.
func (r *Repository) CreateCategory(category *entities.Category) error {
	return r.db.Create(category).Error
}

// UpdateCategory replaces an existing category record.
func (r *Repository) UpdateCategory(category *entities.Category) error {
	return r.db.Save(category).Error
}

// DeleteCategory removes a category. Callers must have verified no books
// reference it.
func (r *Repository) DeleteCategory(category *entities.Category) error {
	return r.db.Delete(category).Error
}
