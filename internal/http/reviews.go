package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"bookcatalog/internal/entities"
	"bookcatalog/internal/rules"
)

// ReviewStore defines database operations for review management.
type ReviewStore interface {
	ReviewExists(id uint) (bool, error)
	GetReviews() ([]entities.Review, error)
	GetReview(id uint) (*entities.Review, error)
	GetReviewsOfBook(bookID uint) ([]entities.Review, error)
	GetBookOfReview(reviewID uint) (*entities.Book, error)
	CreateReview(review *entities.Review) error
	UpdateReview(review *entities.Review) error
	DeleteReview(review *entities.Review) error
}

// reviewRequest is the write payload for reviews: the scalar fields plus
// the owning reviewer and reviewed book.
type reviewRequest struct {
	ID         uint   `json:"id"`
	Headline   string `json:"headline"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
	ReviewerID uint   `json:"reviewer_id"`
	BookID     uint   `json:"book_id"`
}

func (req *reviewRequest) toEntity() *entities.Review {
	return &entities.Review{
		ID:         req.ID,
		Headline:   req.Headline,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		ReviewerID: req.ReviewerID,
		BookID:     req.BookID,
	}
}

type ReviewsController struct {
	store     ReviewStore
	reviewers ReviewerStore
	books     BookStore
	rules     rules.ReviewRules
}

func NewReviewsController(store ReviewStore, reviewers ReviewerStore, books BookStore, reviewRules rules.ReviewRules) *ReviewsController {
	return &ReviewsController{store: store, reviewers: reviewers, books: books, rules: reviewRules}
}

// GetReviews returns all reviews
// GET /reviews
func (rc *ReviewsController) GetReviews(c *gin.Context) {
	reviews, err := rc.store.GetReviews()
	if err != nil {
		respondInternalError(c, err, "get reviews")
		return
	}
	c.JSON(200, toReviewDTOs(reviews))
}

// GetReview returns a single review
// GET /reviews/:reviewId
func (rc *ReviewsController) GetReview(c *gin.Context) {
	id, ok := parseIDParam(c, "reviewId")
	if !ok {
		return
	}

	exists, err := rc.store.ReviewExists(id)
	if err != nil {
		respondInternalError(c, err, "check review")
		return
	}
	if !exists {
		respondNotFound(c, "review")
		return
	}

	review, err := rc.store.GetReview(id)
	if err != nil {
		respondInternalError(c, err, "get review")
		return
	}
	c.JSON(200, toReviewDTO(review))
}

// GetReviewsOfBook returns all reviews for a book
// GET /reviews/books/:bookId
func (rc *ReviewsController) GetReviewsOfBook(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	exists, err := rc.books.BookExists(bookID)
	if err != nil {
		respondInternalError(c, err, "check book")
		return
	}
	if !exists {
		respondNotFound(c, "book")
		return
	}

	reviews, err := rc.store.GetReviewsOfBook(bookID)
	if err != nil {
		respondInternalError(c, err, "get reviews of book")
		return
	}
	c.JSON(200, toReviewDTOs(reviews))
}

// GetBookOfReview returns the book a review is about
// GET /reviews/:reviewId/book
func (rc *ReviewsController) GetBookOfReview(c *gin.Context) {
	reviewID, ok := parseIDParam(c, "reviewId")
	if !ok {
		return
	}

	exists, err := rc.store.ReviewExists(reviewID)
	if err != nil {
		respondInternalError(c, err, "check review")
		return
	}
	if !exists {
		respondNotFound(c, "review")
		return
	}

	book, err := rc.store.GetBookOfReview(reviewID)
	if err != nil {
		respondInternalError(c, err, "get book of review")
		return
	}
	c.JSON(200, toBookDTO(book))
}

// GetReviewerOfReview returns the reviewer who wrote a review
// GET /reviews/:reviewId/reviewer
func (rc *ReviewsController) GetReviewerOfReview(c *gin.Context) {
	reviewID, ok := parseIDParam(c, "reviewId")
	if !ok {
		return
	}

	exists, err := rc.store.ReviewExists(reviewID)
	if err != nil {
		respondInternalError(c, err, "check review")
		return
	}
	if !exists {
		respondNotFound(c, "review")
		return
	}

	reviewer, err := rc.reviewers.GetReviewerOfReview(reviewID)
	if err != nil {
		respondInternalError(c, err, "get reviewer of review")
		return
	}
	c.JSON(200, toReviewerDTO(reviewer))
}

// CreateReview creates a new review
// POST /reviews
func (rc *ReviewsController) CreateReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid review payload")
		return
	}

	review := req.toEntity()
	violation, err := rc.rules.CheckSave(0, review)
	if err != nil {
		respondInternalError(c, err, "validate review")
		return
	}
	if violation != nil {
		respondViolation(c, violation)
		return
	}

	review.ID = 0
	if err := rc.store.CreateReview(review); err != nil {
		respondInternalError(c, err, "create review")
		return
	}

	respondCreated(c, fmt.Sprintf("/reviews/%d", review.ID), toReviewDTO(review))
}

// UpdateReview replaces an existing review
// PUT /reviews/:reviewId
func (rc *ReviewsController) UpdateReview(c *gin.Context) {
	id, ok := parseIDParam(c, "reviewId")
	if !ok {
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid review payload")
		return
	}

	review := req.toEntity()
	violation, err := rc.rules.CheckSave(id, review)
	if err != nil {
		respondInternalError(c, err, "validate review")
		return
	}
	if violation != nil {
		respondViolation(c, violation)
		return
	}

	review.ID = id
	if err := rc.store.UpdateReview(review); err != nil {
		respondInternalError(c, err, "update review")
		return
	}
	respondNoContent(c)
}

// DeleteReview removes a single review
// DELETE /reviews/:reviewId
func (rc *ReviewsController) DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c, "reviewId")
	if !ok {
		return
	}

	violation, err := rc.rules.CheckDelete(id)
	if err != nil {
		respondInternalError(c, err, "validate review delete")
		return
	}
	if violation != nil {
		respondViolation(c, violation)
		return
	}

	review, err := rc.store.GetReview(id)
	if err != nil {
		respondInternalError(c, err, "get review")
		return
	}
	if err := rc.store.DeleteReview(review); err != nil {
		respondInternalError(c, err, "delete review")
		return
	}
	respondNoContent(c)
}
