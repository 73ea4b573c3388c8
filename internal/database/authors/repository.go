// Package authors provides database operations for author management.
package authors

import (
	"gorm.io/gorm"

	"bookcatalog/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AuthorExists reports whether an author with the given ID is present.
func (r *Repository) AuthorExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Author{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetAuthors returns all authors ordered by last name.
func (r *Repository) GetAuthors() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Order("last_name ASC, first_name ASC").Find(&authors).Error
	return authors, err
}

// GetAuthor retrieves an author by ID.
func (r *Repository) GetAuthor(id uint) (*entities.Author, error) {
	var author entities.Author
	if err := r.db.First(&author, id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

// GetBooksByAuthor returns all books the author has written.
func (r *Repository) GetBooksByAuthor(authorID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Joins("JOIN book_authors ON book_authors.book_id = books.id").
		Where("book_authors.author_id = ?", authorID).
		Order("books.title ASC").
		Find(&books).Error
	return books, err
}

// CountBooksByAuthor returns how many books reference the author.
// A non-zero count blocks author deletion.
func (r *Repository) CountBooksByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Table("book_authors").Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// GetAuthorsOfBook returns all authors of the given book.
func (r *Repository) GetAuthorsOfBook(bookID uint) ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Joins("JOIN book_authors ON book_authors.author_id = authors.id").
		Where("book_authors.book_id = ?", bookID).
		Order("authors.last_name ASC").
		Find(&authors).Error
	return authors, err
}

// CreateAuthor persists a new author and fills in its assigned ID.
func (r *Repository) CreateAuthor(author *entities.Author) error {
	return r.db.Create(author).Error
}

// UpdateAuthor replaces an existing author record.
func (r *Repository) UpdateAuthor(author *entities.Author) error {
	return r.db.Save(author).Error
}

// DeleteAuthor removes an author and its join rows in one transaction.
// Callers must have verified no books depend on the author.
func (r *Repository) DeleteAuthor(author *entities.Author) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM book_authors WHERE author_id = ?", author.ID).Error; err != nil {
			return err
		}
		return tx.Delete(author).Error
	})
}
