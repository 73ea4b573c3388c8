package categories

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bookcatalog/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := "./test_categories_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Country{},
		&entities.Author{},
		&entities.Category{},
		&entities.Book{},
		&entities.Reviewer{},
		&entities.Review{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, repo, cleanup
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *entities.Category {
	category := &entities.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createTestBook(t *testing.T, db *gorm.DB, title, isbn string, categoryIDs ...uint) *entities.Book {
	book := &entities.Book{Title: title, ISBN: isbn}
	require.NoError(t, db.Omit("Authors", "Categories", "Reviews").Create(book).Error)
	for _, categoryID := range categoryIDs {
		err := db.Exec("INSERT INTO book_categories (book_id, category_id) VALUES (?, ?)", book.ID, categoryID).Error
		require.NoError(t, err)
	}
	return book
}

func TestRepository_GetCategories_OrderedByName(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	createTestCategory(t, db, "Science Fiction")
	createTestCategory(t, db, "Biography")

	categories, err := repo.GetCategories()

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Biography", categories[0].Name)
	assert.Equal(t, "Science Fiction", categories[1].Name)
}

func TestRepository_IsDuplicateCategoryName(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	category := createTestCategory(t, db, "Fantasy")

	dup, err := repo.IsDuplicateCategoryName(0, " fantasy ")
	require.NoError(t, err)
	assert.True(t, dup)

	dup, err = repo.IsDuplicateCategoryName(category.ID, "Fantasy")
	require.NoError(t, err)
	assert.False(t, dup)

	dup, err = repo.IsDuplicateCategoryName(0, "Horror")
	require.NoError(t, err)
	assert.False(t, dup)
}

func TestRepository_GetCategoriesOfBook(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	fantasy := createTestCategory(t, db, "Fantasy")
	humor := createTestCategory(t, db, "Humor")
	createTestCategory(t, db, "Horror")
	book := createTestBook(t, db, "Good Omens", "0-575-04800-X", fantasy.ID, humor.ID)

	categories, err := repo.GetCategoriesOfBook(book.ID)

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Fantasy", categories[0].Name)
	assert.Equal(t, "Humor", categories[1].Name)
}

func TestRepository_GetBooksForCategory(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	fantasy := createTestCategory(t, db, "Fantasy")
	horror := createTestCategory(t, db, "Horror")
	createTestBook(t, db, "Mort", "0-575-03949-3", fantasy.ID)
	createTestBook(t, db, "Good Omens", "0-575-04800-X", fantasy.ID)
	createTestBook(t, db, "It", "0-670-81302-8", horror.ID)

	books, err := repo.GetBooksForCategory(fantasy.ID)

	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Good Omens", books[0].Title)
	assert.Equal(t, "Mort", books[1].Title)
}

func TestRepository_CountBooksForCategory(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	category := createTestCategory(t, db, "Fantasy")
	createTestBook(t, db, "Mort", "0-575-03949-3", category.ID)

	count, err := repo.CountBooksForCategory(category.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.CountBooksForCategory(999)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRepository_UpdateCategory(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	category := createTestCategory(t, db, "Sci Fi")

	category.Name = "Science Fiction"
	require.NoError(t, repo.UpdateCategory(category))

	fetched, err := repo.GetCategory(category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Science Fiction", fetched.Name)
}

func TestRepository_DeleteCategory(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	category := createTestCategory(t, db, "Fantasy")

	require.NoError(t, repo.DeleteCategory(category))

	exists, err := repo.CategoryExists(category.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
