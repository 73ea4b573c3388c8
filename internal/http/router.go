package http

import (
	"github.com/gin-gonic/gin"

	"bookcatalog/internal/database"
	"bookcatalog/internal/rules"
)

// RouterConfig carries every dependency the router needs. Passing a single
// struct keeps the constructor signature stable as controllers grow.
type RouterConfig struct {
	Database   *database.Database
	Countries  CountryStore
	Authors    AuthorStore
	Categories CategoryStore
	Books      BookStore
	Reviewers  ReviewerStore
	Reviews    ReviewStore

	CountryRules  rules.CountryRules
	AuthorRules   rules.AuthorRules
	CategoryRules rules.CategoryRules
	BookRules     rules.BookRules
	ReviewerRules rules.ReviewerRules
	ReviewRules   rules.ReviewRules

	Version string

	// Rate limiting; disabled when RateLimitRPS is zero.
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.RateLimitRPS > 0 {
		router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	countriesController := NewCountriesController(cfg.Countries, cfg.Authors, cfg.CountryRules)
	authorsController := NewAuthorsController(cfg.Authors, cfg.Books, cfg.AuthorRules)
	categoriesController := NewCategoriesController(cfg.Categories, cfg.Books, cfg.CategoryRules)
	booksController := NewBooksController(cfg.Books, cfg.BookRules)
	reviewersController := NewReviewersController(cfg.Reviewers, cfg.ReviewerRules)
	reviewsController := NewReviewsController(cfg.Reviews, cfg.Reviewers, cfg.Books, cfg.ReviewRules)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Country endpoints
	router.GET("/countries", countriesController.GetCountries)
	router.GET("/countries/:countryId", countriesController.GetCountry)
	router.GET("/countries/:countryId/authors", countriesController.GetAuthorsFromCountry)
	router.GET("/countries/authors/:authorId", countriesController.GetCountryOfAuthor)
	router.POST("/countries", countriesController.CreateCountry)
	router.PUT("/countries/:countryId", countriesController.UpdateCountry)
	router.DELETE("/countries/:countryId", countriesController.DeleteCountry)

	// Author endpoints
	router.GET("/authors", authorsController.GetAuthors)
	router.GET("/authors/:authorId", authorsController.GetAuthor)
	router.GET("/authors/:authorId/books", authorsController.GetBooksByAuthor)
	router.GET("/authors/books/:bookId", authorsController.GetAuthorsOfBook)
	router.POST("/authors", authorsController.CreateAuthor)
	router.PUT("/authors/:authorId", authorsController.UpdateAuthor)
	router.DELETE("/authors/:authorId", authorsController.DeleteAuthor)

	// Category endpoints
	router.GET("/categories", categoriesController.GetCategories)
	router.GET("/categories/:categoryId", categoriesController.GetCategory)
	router.GET("/categories/:categoryId/books", categoriesController.GetBooksForCategory)
	router.GET("/categories/books/:bookId", categoriesController.GetCategoriesOfBook)
	router.POST("/categories", categoriesController.CreateCategory)
	router.PUT("/categories/:categoryId", categoriesController.UpdateCategory)
	router.DELETE("/categories/:categoryId", categoriesController.DeleteCategory)

	// Book endpoints
	router.GET("/books", booksController.GetBooks)
	router.GET("/books/:bookId", booksController.GetBook)
	router.GET("/books/ISBN/:bookIsbn", booksController.GetBookByISBN)
	router.GET("/books/:bookId/rating", booksController.GetBookRating)
	router.POST("/books", booksController.CreateBook)
	router.PUT("/books/:bookId", booksController.UpdateBook)
	router.DELETE("/books/:bookId", booksController.DeleteBook)

	// Reviewer endpoints
	router.GET("/reviewers", reviewersController.GetReviewers)
	router.GET("/reviewers/:reviewerId", reviewersController.GetReviewer)
	router.GET("/reviewers/:reviewerId/reviews", reviewersController.GetReviewsByReviewer)
	router.POST("/reviewers", reviewersController.CreateReviewer)
	router.PUT("/reviewers/:reviewerId", reviewersController.UpdateReviewer)
	router.DELETE("/reviewers/:reviewerId", reviewersController.DeleteReviewer)

	// Review endpoints
	router.GET("/reviews", reviewsController.GetReviews)
	router.GET("/reviews/:reviewId", reviewsController.GetReview)
	router.GET("/reviews/books/:bookId", reviewsController.GetReviewsOfBook)
	router.GET("/reviews/:reviewId/book", reviewsController.GetBookOfReview)
	router.GET("/reviews/:reviewId/reviewer", reviewsController.GetReviewerOfReview)
	router.POST("/reviews", reviewsController.CreateReview)
	router.PUT("/reviews/:reviewId", reviewsController.UpdateReview)
	router.DELETE("/reviews/:reviewId", reviewsController.DeleteReview)

	return router
}
