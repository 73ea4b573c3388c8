package rules

import (
	"strings"

	"bookcatalog/internal/entities"
)

// ReviewerRules validates reviewer mutations. Reviewer deletion is never
// blocked: owned reviews are deleted in the same transaction.
type ReviewerRules struct {
	Reviewers ReviewerStore
}

func (rr ReviewerRules) CheckCreate(reviewer *entities.Reviewer) (*Violation, error) {
	if strings.TrimSpace(reviewer.FirstName) == "" || strings.TrimSpace(reviewer.LastName) == "" {
		return invalid("reviewer first and last name are required"), nil
	}
	return nil, nil
}

func (rr ReviewerRules) CheckUpdate(pathID uint, reviewer *entities.Reviewer) (*Violation, error) {
	if v := checkIDMatch(pathID, reviewer.ID); v != nil {
		return v, nil
	}
	exists, err := rr.Reviewers.ReviewerExists(pathID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return notFound("reviewer %d not found", pathID), nil
	}
	if strings.TrimSpace(reviewer.FirstName) == "" || strings.TrimSpace(reviewer.LastName) == "" {
		return invalid("reviewer first and last name are required"), nil
	}
	return nil, nil
}

func (rr ReviewerRules) CheckDelete(reviewerID uint) (*Violation, error) {
	exists, err := rr.Reviewers.ReviewerExists(reviewerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return notFound("reviewer %d not found", reviewerID), nil
	}
	return nil, nil
}

// ReviewRules validates review mutations. A review must point at an
// existing reviewer and an existing book, and carry a rating in 1..5.
type ReviewRules struct {
	Reviews   ReviewStore
	Reviewers ReviewerStore
	Books     BookStore
}

func (rr ReviewRules) CheckSave(pathID uint, review *entities.Review) (*Violation, error) {
	if pathID != 0 {
		if v := checkIDMatch(pathID, review.ID); v != nil {
			return v, nil
		}
		exists, err := rr.Reviews.ReviewExists(pathID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return notFound("review %d not found", pathID), nil
		}
	}

	if strings.TrimSpace(review.Headline) == "" {
		return invalid("review headline is required"), nil
	}
	if review.Rating < 1 || review.Rating > 5 {
		return invalid("rating must be between 1 and 5"), nil
	}

	reviewerExists, err := rr.Reviewers.ReviewerExists(review.ReviewerID)
	if err != nil {
		return nil, err
	}
	if !reviewerExists {
		return notFound("reviewer %d not found", review.ReviewerID), nil
	}
	bookExists, err := rr.Books.BookExists(review.BookID)
	if err != nil {
		return nil, err
	}
	if !bookExists {
		return notFound("book %d not found", review.BookID), nil
	}
	return nil, nil
}

func (rr ReviewRules) CheckDelete(reviewID uint) (*Violation, error) {
	exists, err := rr.Reviews.ReviewExists(reviewID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return notFound("review %d not found", reviewID), nil
	}
	return nil, nil
}
