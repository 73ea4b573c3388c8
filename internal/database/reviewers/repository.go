// Package reviewers provides database operations for reviewer management.
//
// Deleting a reviewer cascades to every review that reviewer owns. Both
// deletes run inside one transaction: either the reviewer and all of its
// reviews are gone, or nothing changed.
package reviewers

import (
	"gorm.io/gorm"

	"bookcatalog/internal/entities"
)

// Repository handles all reviewer database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reviewers repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ReviewerExists reports whether a reviewer with the given ID is present.
func (r *Repository) ReviewerExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Reviewer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetReviewers returns all reviewers ordered by last name.
func (r *Repository) GetReviewers() ([]entities.Reviewer, error) {
	var reviewers []entities.Reviewer
	err := r.db.Order("last_name ASC, first_name ASC").Find(&reviewers).Error
	return reviewers, err
}

// GetReviewer retrieves a reviewer by ID.
func (r *Repository) GetReviewer(id uint) (*entities.Reviewer, error) {
	var reviewer entities.Reviewer
	if err := r.db.First(&reviewer, id).Error; err != nil {
		return nil, err
	}
	return &reviewer, nil
}

// GetReviewsByReviewer returns all reviews written by the reviewer.
func (r *Repository) GetReviewsByReviewer(reviewerID uint) ([]entities.Review, error) {
	var reviews []entities.Review
	err := r.db.Where("reviewer_id = ?", reviewerID).Order("id ASC").Find(&reviews).Error
	return reviews, err
}

// GetReviewerOfReview returns the reviewer who wrote the given review.
func (r *Repository) GetReviewerOfReview(reviewID uint) (*entities.Reviewer, error) {
	var reviewer entities.Reviewer
	err := r.db.Joins("JOIN reviews ON reviews.reviewer_id = reviewers.id").
		Where("reviews.id = ?", reviewID).
		First(&reviewer).Error
	if err != nil {
		return nil, err
	}
	return &reviewer, nil
}

// CreateReviewer persists a new reviewer and fills in its assigned ID.
func (r *Repository) CreateReviewer(reviewer *entities.Reviewer) error {
	return r.db.Create(reviewer).Error
}

// UpdateReviewer replaces an existing reviewer record.
func (r *Repository) UpdateReviewer(reviewer *entities.Reviewer) error {
	return r.db.Save(reviewer).Error
}

// DeleteReviewer removes the reviewer and every review it owns in a
// single transaction.
func (r *Repository) DeleteReviewer(reviewer *entities.Reviewer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reviewer_id = ?", reviewer.ID).Delete(&entities.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(reviewer).Error
	})
}
