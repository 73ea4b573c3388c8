package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"bookcatalog/internal/entities"
	"bookcatalog/internal/rules"
)

// BookStore defines database operations for book management.
type BookStore interface {
	BookExists(id uint) (bool, error)
	BookExistsByISBN(isbn string) (bool, error)
	GetBooks() ([]entities.Book, error)
	GetBook(id uint) (*entities.Book, error)
	GetBookByISBN(isbn string) (*entities.Book, error)
	GetBookRating(bookID uint) (float64, error)
	CreateBook(authorIDs, categoryIDs []uint, book *entities.Book) error
	UpdateBook(authorIDs, categoryIDs []uint, book *entities.Book) error
	DeleteBook(book *entities.Book) error
}

// bookRequest is the write payload for books: the scalar fields plus the
// author and category references to wire up.
type bookRequest struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	ISBN          string    `json:"isbn"`
	DatePublished time.Time `json:"date_published"`
	AuthorIDs     []uint    `json:"author_ids"`
	CategoryIDs   []uint    `json:"category_ids"`
}

func (req *bookRequest) toEntity() *entities.Book {
	return &entities.Book{
		ID:            req.ID,
		Title:         req.Title,
		ISBN:          req.ISBN,
		DatePublished: req.DatePublished,
	}
}

type BooksController struct {
	store BookStore
	rules rules.BookRules
}

func NewBooksController(store BookStore, bookRules rules.BookRules) *BooksController {
	return &BooksController{store: store, rules: bookRules}
}

// GetBooks returns all books
// GET /books
func (bc *BooksController) GetBooks(c *gin.Context) {
	books, err := bc.store.GetBooks()
	if err != nil {
		respondInternalError(c, err, "get books")
		return
	}
	c.JSON(200, toBookDTOs(books))
}

// GetBook returns a single book
// GET /books/:bookId
func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	exists, err := bc.store.BookExists(id)
	if err != nil {
		respondInternalError(c, err, "check book")
		return
	}
	if !exists {
		respondNotFound(c, "book")
		return
	}

	book, err := bc.store.GetBook(id)
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}
	c.JSON(200, toBookDTO(book))
}

// GetBookByISBN returns a single book looked up by ISBN
// GET /books/ISBN/:bookIsbn
func (bc *BooksController) GetBookByISBN(c *gin.Context) {
	isbn := c.Param("bookIsbn")

	exists, err := bc.store.BookExistsByISBN(isbn)
	if err != nil {
		respondInternalError(c, err, "check book by isbn")
		return
	}
	if !exists {
		respondNotFound(c, "book")
		return
	}

	book, err := bc.store.GetBookByISBN(isbn)
	if err != nil {
		respondInternalError(c, err, "get book by isbn")
		return
	}
	c.JSON(200, toBookDTO(book))
}

// GetBookRating returns the average review rating of a book
// GET /books/:bookId/rating
func (bc *BooksController) GetBookRating(c *gin.Context) {
	id, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	exists, err := bc.store.BookExists(id)
	if err != nil {
		respondInternalError(c, err, "check book")
		return
	}
	if !exists {
		respondNotFound(c, "book")
		return
	}

	rating, err := bc.store.GetBookRating(id)
	if err != nil {
		respondInternalError(c, err, "get book rating")
		return
	}
	c.JSON(200, gin.H{"book_id": id, "rating": rating})
}

// CreateBook creates a new book with its author and category references
// POST /books
func (bc *BooksController) CreateBook(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid book payload")
		return
	}

	book := req.toEntity()
	violation, err := bc.rules.CheckSave(0, book, req.AuthorIDs, req.CategoryIDs)
	if err != nil {
		respondInternalError(c, err, "validate book")
		return
	}
	if violation != nil {
		respondViolation(c, violation)
		return
	}

	book.ID = 0
	if err := bc.store.CreateBook(req.AuthorIDs, req.CategoryIDs, book); err != nil {
		respondInternalError(c, err, "create book")
		return
	}

	respondCreated(c, fmt.Sprintf("/books/%d", book.ID), toBookDTO(book))
}

// UpdateBook replaces an existing book and rewires its references
// PUT /books/:bookId
func (bc *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid book payload")
		return
	}

	book := req.toEntity()
	violation, err := bc.rules.CheckSave(id, book, req.AuthorIDs, req.CategoryIDs)
	if err != nil {
		respondInternalError(c, err, "validate book")
		return
	}
	if violation != nil {
		respondViolation(c, violation)
		return
	}

	book.ID = id
	if err := bc.store.UpdateBook(req.AuthorIDs, req.CategoryIDs, book); err != nil {
		respondInternalError(c, err, "update book")
		return
	}
	respondNoContent(c)
}

// DeleteBook removes a book together with its reviews and join rows
// DELETE /books/:bookId
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	violation, err := bc.rules.CheckDelete(id)
	if err != nil {
		respondInternalError(c, err, "validate book delete")
		return
	}
	if violation != nil {
		respondViolation(c, violation)
		return
	}

	book, err := bc.store.GetBook(id)
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}
	if err := bc.store.DeleteBook(book); err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	respondNoContent(c)
}
