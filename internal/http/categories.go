package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"bookcatalog/internal/entities"
	"bookcatalog/internal/rules"
)

// CategoryStore defines database operations for category management.
type CategoryStore interface {
	CategoryExists(id uint) (bool, error)
	GetCategories() ([]entities.Category, error)
	GetCategory(id uint) (*entities.Category, error)
	GetCategoriesOfBook(bookID uint) ([]entities.Category, error)
	GetBooksForCategory(categoryID uint) ([]entities.Book, error)
	CreateCategory(category *entities.Category) error
	UpdateCategory(category *entities.Category) error
	DeleteCategory(category *entities.Category) error
}

type CategoriesController struct {
	store CategoryStore
	books BookStore
	rules rules.CategoryRules
}

func NewCategoriesController(store CategoryStore, books BookStore, categoryRules rules.CategoryRules) *CategoriesController {
	return &CategoriesController{store: store, books: books, rules: categoryRules}
}

// GetCategories returns all categories
// GET /categories
func (cc *CategoriesController) GetCategories(c *gin.Context) {
	categories, err := cc.store.GetCategories()
	if err != nil {
		respondInternalError(c, err, "get categories")
		return
	}
	c.JSON(200, toCategoryDTOs(categories))
}

// GetCategory returns a single category
// GET /categories/:categoryId
func (cc *CategoriesController) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}

	exists, err := cc.store.CategoryExists(id)
	if err != nil {
		respondInternalError(c, err, "check category")
		return
	}
	if !exists {
		respondNotFound(c, "category")
		return
	}

	category, err := cc.store.GetCategory(id)
	if err != nil {
		respondInternalError(c, err, "get category")
		return
	}
	c.JSON(200, toCategoryDTO(category))
}

// GetCategoriesOfBook returns all categories assigned to a book
// GET /categories/books/:bookId
func (cc *CategoriesController) GetCategoriesOfBook(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	exists, err := cc.books.BookExists(bookID)
	if err != nil {
		respondInternalError(c, err, "check book")
		return
	}
	if !exists {
		respondNotFound(c, "book")
		return
	}

	categories, err := cc.store.GetCategoriesOfBook(bookID)
	if err != nil {
		respondInternalError(c, err, "get categories of book")
		return
	}
	c.JSON(200, toCategoryDTOs(categories))
}

// GetBooksForCategory returns all books in a category
// GET /categories/:categoryId/books
func (cc *CategoriesController) GetBooksForCategory(c *gin.Context) {
	categoryID, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}

	exists, err := cc.store.CategoryExists(categoryID)
	if err != nil {
		respondInternalError(c, err, "check category")
		return
	}
	if !exists {
		respondNotFound(c, "category")
		return
	}

	books, err := cc.store.GetBooksForCategory(categoryID)
	if err != nil {
		respondInternalError(c, err, "get books for category")
		return
	}
	c.JSON(200, toBookDTOs(books))
}

// CreateCategory creates a new category
// POST /categories
func (cc *CategoriesController) CreateCategory(c *gin.Context) {
	var category entities.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		respondBadRequest(c, "invalid category payload")
		return
	}

	violation, err := cc.rules.CheckCreate(&category)
	if err != nil {
		respondInternalError(c, err, "validate category")
		return
	}
	if violation != nil {
		respondViolation(c, violation)
		return
	}

	category.ID = 0
	if err := cc.store.CreateCategory(&category); err != nil {
		respondInternalError(c, err, "create category")
		return
	}

	respondCreated(c, fmt.Sprintf("/categories/%d", category.ID), toCategoryDTO(&category))
}

// UpdateCategory replaces an existing category
// PUT /categories/:categoryId
func (cc *CategoriesController) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}

	var category entities.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		respondBadRequest(c, "invalid category payload")
		return
	}

	violation, err := cc.rules.CheckUpdate(id, &category)
	if err != nil {
		respondInternalError(c, err, "validate category")
		return
	}
	if violation != nil {
		respondViolation(c, violation)
		return
	}

	category.ID = id
	if err := cc.store.UpdateCategory(&category); err != nil {
		respondInternalError(c, err, "update category")
		return
	}
	respondNoContent(c)
}

// DeleteCategory removes a category when no book references it
// DELETE /categories/:categoryId
func (cc *CategoriesController) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}

	violation, err := cc.rules.CheckDelete(id)
	if err != nil {
		respondInternalError(c, err, "validate category delete")
		return
	}
	if violation != nil {
		respondViolation(c, violation)
		return
	}

	category, err := cc.store.GetCategory(id)
	if err != nil {
		respondInternalError(c, err, "get category")
		return
	}
	if err := cc.store.DeleteCategory(category); err != nil {
		respondInternalError(c, err, "delete category")
		return
	}
	respondNoContent(c)
}
