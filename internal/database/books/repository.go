// Package books provides database operations for book management.
//
// Creating or updating a book also wires its author and category join rows;
// both run inside a single transaction so a book is never persisted with a
// partial set of relationships.
package books

import (
	"errors"

	"gorm.io/gorm"

	"bookcatalog/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// BookExists reports whether a book with the given ID is present.
func (r *Repository) BookExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// BookExistsByISBN reports whether a book with the given ISBN is present.
func (r *Repository) BookExistsByISBN(isbn string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Where("isbn = ?", isbn).Count(&count).Error
	return count > 0, err
}

// GetBooks returns all books ordered by title.
func (r *Repository) GetBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Order("title ASC").Find(&books).Error
	return books, err
}

// GetBook retrieves a book by ID.
func (r *Repository) GetBook(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// GetBookByISBN retrieves a book by its ISBN.
func (r *Repository) GetBookByISBN(isbn string) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.Where("isbn = ?", isbn).First(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// GetBookRating returns the average review rating for the book, or 0 when
// the book has no reviews.
func (r *Repository) GetBookRating(bookID uint) (float64, error) {
	var rating float64
	err := r.db.Model(&entities.Review{}).
		Where("book_id = ?", bookID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&rating).Error
	return rating, err
}

// IsDuplicateISBN reports whether another book already uses the ISBN.
// The book identified by bookID is excluded so an update can keep its
// own unchanged ISBN.
func (r *Repository) IsDuplicateISBN(bookID uint, isbn string) (bool, error) {
	var book entities.Book
	err := r.db.Where("isbn = ? AND id <> ?", isbn, bookID).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateBook persists a new book together with its author and category
// join rows. Caller must have validated that every referenced author and
// category exists.
func (r *Repository) CreateBook(authorIDs, categoryIDs []uint, book *entities.Book) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Authors", "Categories", "Reviews").Create(book).Error; err != nil {
			return err
		}
		return replaceRelations(tx, book.ID, authorIDs, categoryIDs)
	})
}

// UpdateBook replaces a book record and rewires its author and category
// join rows to exactly the supplied sets.
func (r *Repository) UpdateBook(authorIDs, categoryIDs []uint, book *entities.Book) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Authors", "Categories", "Reviews").Save(book).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM book_authors WHERE book_id = ?", book.ID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM book_categories WHERE book_id = ?", book.ID).Error; err != nil {
			return err
		}
		return replaceRelations(tx, book.ID, authorIDs, categoryIDs)
	})
}

// DeleteBook removes a book, its join rows, and its reviews in one
// transaction.
func (r *Repository) DeleteBook(book *entities.Book) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", book.ID).Delete(&entities.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM book_authors WHERE book_id = ?", book.ID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM book_categories WHERE book_id = ?", book.ID).Error; err != nil {
			return err
		}
		return tx.Delete(book).Error
	})
}

func replaceRelations(tx *gorm.DB, bookID uint, authorIDs, categoryIDs []uint) error {
	for _, authorID := range authorIDs {
		err := tx.Exec("INSERT INTO book_authors (book_id, author_id) VALUES (?, ?)", bookID, authorID).Error
		if err != nil {
			return err
		}
	}
	for _, categoryID := range categoryIDs {
		err := tx.Exec("INSERT INTO book_categories (book_id, category_id) VALUES (?, ?)", bookID, categoryID).Error
		if err != nil {
			return err
		}
	}
	return nil
}
