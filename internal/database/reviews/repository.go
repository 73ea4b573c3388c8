// Package reviews provides database operations for review management.
package reviews

import (
	"gorm.io/gorm"

	"bookcatalog/internal/entities"
)

// Repository handles all review database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reviews repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ReviewExists reports whether a review with the given ID is present.
func (r *Repository) ReviewExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Review{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetReviews returns all reviews.
func (r *Repository) GetReviews() ([]entities.Review, error) {
	var reviews []entities.Review
	err := r.db.Order("id ASC").Find(&reviews).Error
	return reviews, err
}

// GetReview retrieves a review by ID.
func (r *Repository) GetReview(id uint) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// GetReviewsOfBook returns all reviews for the given book.
func (r *Repository) GetReviewsOfBook(bookID uint) ([]entities.Review, error) {
	var reviews []entities.Review
	err := r.db.Where("book_id = ?", bookID).Order("id ASC").Find(&reviews).Error
	return reviews, err
}

// GetBookOfReview returns the book the given review is about.
func (r *Repository) GetBookOfReview(reviewID uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Joins("JOIN reviews ON reviews.book_id = books.id").
		Where("reviews.id = ?", reviewID).
		First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// CreateReview persists a new review and fills in its assigned ID.
func (r *Repository) CreateReview(review *entities.Review) error {
	return r.db.Create(review).Error
}

// UpdateReview replaces an existing review record.
func (r *Repository) UpdateReview(review *entities.Review) error {
	return r.db.Save(review).Error
}

// DeleteReview removes a single review.
func (r *Repository) DeleteReview(review *entities.Review) error {
	return r.db.Delete(review).Error
}
