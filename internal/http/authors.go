package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"bookcatalog/internal/entities"
	"bookcatalog/internal/rules"
)

// AuthorStore defines database operations for author management.
type AuthorStore interface {
	AuthorExists(id uint) (bool, error)
	GetAuthors() ([]entities.Author, error)
	GetAuthor(id uint) (*entities.Author, error)
	GetBooksByAuthor(authorID uint) ([]entities.Book, error)
	GetAuthorsOfBook(bookID uint) ([]entities.Author, error)
	CreateAuthor(author *entities.Author) error
	UpdateAuthor(author *entities.Author) error
	DeleteAuthor(author *entities.Author) error
}

type AuthorsController struct {
	store AuthorStore
	books BookStore
	rules rules.AuthorRules
}

func NewAuthorsController(store AuthorStore, books BookStore, authorRules rules.AuthorRules) *AuthorsController {
	return &AuthorsController{store: store, books: books, rules: authorRules}
}

// GetAuthors returns all authors
// GET /authors
func (ac *AuthorsController) GetAuthors(c *gin.Context) {
	authors, err := ac.store.GetAuthors()
	if err != nil {
		respondInternalError(c, err, "get authors")
		return
	}
	c.JSON(200, toAuthorDTOs(authors))
}

// GetAuthor returns a single author
// GET /authors/:authorId
func (ac *AuthorsController) GetAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "authorId")
	if !ok {
		return
	}

	exists, err := ac.store.AuthorExists(id)
	if err != nil {
		respondInternalError(c, err, "check author")
		return
	}
	if !exists {
		respondNotFound(c, "author")
		return
	}

	author, err := ac.store.GetAuthor(id)
	if err != nil {
		respondInternalError(c, err, "get author")
		return
	}
	c.JSON(200, toAuthorDTO(author))
}

// GetBooksByAuthor returns all books written by an author
// GET /authors/:authorId/books
func (ac *AuthorsController) GetBooksByAuthor(c *gin.Context) {
	authorID, ok := parseIDParam(c, "authorId")
	if !ok {
		return
	}

	exists, err := ac.store.AuthorExists(authorID)
	if err != nil {
		respondInternalError(c, err, "check author")
		return
	}
	if !exists {
		respondNotFound(c, "author")
		return
	}

	books, err := ac.store.GetBooksByAuthor(authorID)
	if err != nil {
		respondInternalError(c, err, "get books by author")
		return
	}
	c.JSON(200, toBookDTOs(books))
}

// GetAuthorsOfBook returns all authors of a book
// GET /authors/books/:bookId
func (ac *AuthorsController) GetAuthorsOfBook(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	exists, err := ac.books.BookExists(bookID)
	if err != nil {
		respondInternalError(c, err, "check book")
		return
	}
	if !exists {
		respondNotFound(c, "book")
		return
	}

	authors, err := ac.store.GetAuthorsOfBook(bookID)
	if err != nil {
		respondInternalError(c, err, "get authors of book")
		return
	}
	c.JSON(200, toAuthorDTOs(authors))
}

// CreateAuthor creates a new author
// POST /authors
func (ac *AuthorsController) CreateAuthor(c *gin.Context) {
	var author entities.Author
	if err := c.ShouldBindJSON(&author); err != nil {
		respondBadRequest(c, "invalid author payload")
		return
	}

	violation, err := ac.rules.CheckCreate(&author)
	if err != nil {
		respondInternalError(c, err, "validate author")
		return
	}
	if violation != nil {
		respondViolation(c, violation)
		return
	}

	author.ID = 0
	if err := ac.store.CreateAuthor(&author); err != nil {
		respondInternalError(c, err, "create author")
		return
	}

	respondCreated(c, fmt.Sprintf("/authors/%d", author.ID), toAuthorDTO(&author))
}

// UpdateAuthor replaces an existing author
// PUT /authors/:authorId
func (ac *AuthorsController) UpdateAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "authorId")
	if !ok {
		return
	}

	var author entities.Author
	if err := c.ShouldBindJSON(&author); err != nil {
		respondBadRequest(c, "invalid author payload")
		return
	}

	violation, err := ac.rules.CheckUpdate(id, &author)
	if err != nil {
		respondInternalError(c, err, "validate author")
		return
	}
	if violation != nil {
		respondViolation(c, violation)
		return
	}

	author.ID = id
	if err := ac.store.UpdateAuthor(&author); err != nil {
		respondInternalError(c, err, "update author")
		return
	}
	respondNoContent(c)
}

// DeleteAuthor removes an author when no book references them
// DELETE /authors/:authorId
func (ac *AuthorsController) DeleteAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "authorId")
	if !ok {
		return
	}

	violation, err := ac.rules.CheckDelete(id)
	if err != nil {
		respondInternalError(c, err, "validate author delete")
		return
	}
	if violation != nil {
		respondViolation(c, violation)
		return
	}

	author, err := ac.store.GetAuthor(id)
	if err != nil {
		respondInternalError(c, err, "get author")
		return
	}
	if err := ac.store.DeleteAuthor(author); err != nil {
		respondInternalError(c, err, "delete author")
		return
	}
	respondNoContent(c)
}
