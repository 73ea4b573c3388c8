package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"bookcatalog/internal/entities"
	"bookcatalog/internal/rules"
)

// ReviewerStore defines database operations for reviewer management.
type ReviewerStore interface {
	ReviewerExists(id uint) (bool, error)
	GetReviewers() ([]entities.Reviewer, error)
	GetReviewer(id uint) (*entities.Reviewer, error)
	GetReviewsByReviewer(reviewerID uint) ([]entities.Review, error)
	GetReviewerOfReview(reviewID uint) (*entities.Reviewer, error)
	CreateReviewer(reviewer *entities.Reviewer) error
	UpdateReviewer(reviewer *entities.Reviewer) error
	DeleteReviewer(reviewer *entities.Reviewer) error
}

type ReviewersController struct {
	store ReviewerStore
	rules rules.ReviewerRules
}

func NewReviewersController(store ReviewerStore, reviewerRules rules.ReviewerRules) *ReviewersController {
	return &ReviewersController{store: store, rules: reviewerRules}
}

// GetReviewers returns all reviewers
// GET /reviewers
func (rc *ReviewersController) GetReviewers(c *gin.Context) {
	reviewers, err := rc.store.GetReviewers()
	if err != nil {
		respondInternalError(c, err, "get reviewers")
		return
	}
	c.JSON(200, toReviewerDTOs(reviewers))
}

// GetReviewer returns a single reviewer
// GET /reviewers/:reviewerId
func (rc *ReviewersController) GetReviewer(c *gin.Context) {
	id, ok := parseIDParam(c, "reviewerId")
	if !ok {
		return
	}

	exists, err := rc.store.ReviewerExists(id)
	if err != nil {
		respondInternalError(c, err, "check reviewer")
		return
	}
	if !exists {
		respondNotFound(c, "reviewer")
		return
	}

	reviewer, err := rc.store.GetReviewer(id)
	if err != nil {
		respondInternalError(c, err, "get reviewer")
		return
	}
	c.JSON(200, toReviewerDTO(reviewer))
}

// GetReviewsByReviewer returns all reviews written by a reviewer
// GET /reviewers/:reviewerId/reviews
func (rc *ReviewersController) GetReviewsByReviewer(c *gin.Context) {
	reviewerID, ok := parseIDParam(c, "reviewerId")
	if !ok {
		return
	}

	exists, err := rc.store.ReviewerExists(reviewerID)
	if err != nil {
		respondInternalError(c, err, "check reviewer")
		return
	}
	if !exists {
		respondNotFound(c, "reviewer")
		return
	}

	reviews, err := rc.store.GetReviewsByReviewer(reviewerID)
	if err != nil {
		respondInternalError(c, err, "get reviews by reviewer")
		return
	}
	c.JSON(200, toReviewDTOs(reviews))
}

// CreateReviewer creates a new reviewer
// POST /reviewers
func (rc *ReviewersController) CreateReviewer(c *gin.Context) {
	var reviewer entities.Reviewer
	if err := c.ShouldBindJSON(&reviewer); err != nil {
		respondBadRequest(c, "invalid reviewer payload")
		return
	}

	violation, err := rc.rules.CheckCreate(&reviewer)
	if err != nil {
		respondInternalError(c, err, "validate reviewer")
		return
	}
	if violation != nil {
		respondViolation(c, violation)
		return
	}

	reviewer.ID = 0
	if err := rc.store.CreateReviewer(&reviewer); err != nil {
		respondInternalError(c, err, "create reviewer")
		return
	}

	respondCreated(c, fmt.Sprintf("/reviewers/%d", reviewer.ID), toReviewerDTO(&reviewer))
}

// UpdateReviewer replaces an existing reviewer
// PUT /reviewers/:reviewerId
func (rc *ReviewersController) UpdateReviewer(c *gin.Context) {
	id, ok := parseIDParam(c, "reviewerId")
	if !ok {
		return
	}

	var reviewer entities.Reviewer
	if err := c.ShouldBindJSON(&reviewer); err != nil {
		respondBadRequest(c, "invalid reviewer payload")
		return
	}

	violation, err := rc.rules.CheckUpdate(id, &reviewer)
	if err != nil {
		respondInternalError(c, err, "validate reviewer")
		return
	}
	if violation != nil {
		respondViolation(c, violation)
		return
	}

	reviewer.ID = id
	if err := rc.store.UpdateReviewer(&reviewer); err != nil {
		respondInternalError(c, err, "update reviewer")
		return
	}
	respondNoContent(c)
}

// DeleteReviewer removes a reviewer and every review they own
// DELETE /reviewers/:reviewerId
func (rc *ReviewersController) DeleteReviewer(c *gin.Context) {
	id, ok := parseIDParam(c, "reviewerId")
	if !ok {
		return
	}

	violation, err := rc.rules.CheckDelete(id)
	if err != nil {
		respondInternalError(c, err, "validate reviewer delete")
		return
	}
	if violation != nil {
		respondViolation(c, violation)
		return
	}

	reviewer, err := rc.store.GetReviewer(id)
	if err != nil {
		respondInternalError(c, err, "get reviewer")
		return
	}
	if err := rc.store.DeleteReviewer(reviewer); err != nil {
		respondInternalError(c, err, "delete reviewer")
		return
	}
	respondNoContent(c)
}
