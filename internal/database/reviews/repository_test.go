package reviews

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
	dbPath := "./test_reviews_" + t.Name() + ".db"

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

func createTestBook(t *testing.T, db *gorm.DB, title, isbn string) *entities.Book {
	book := &entities.Book{Title: title, ISBN: isbn}
	require.NoError(t, db.Omit("Authors", "Categories", "Reviews").Create(book).Error)
	return book
}

func createTestReviewer(t *testing.T, db *gorm.DB) *entities.Reviewer {
	reviewer := &entities.Reviewer{FirstName: "Pat", LastName: "Chen"}
	require.NoError(t, db.Create(reviewer).Error)
	return reviewer
}

func TestRepository_CreateReview(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	book := createTestBook(t, db, "Mort", "0-575-03949-3")
	reviewer := createTestReviewer(t, db)

	review := &entities.Review{
		Headline:   "A classic",
		Rating:     5,
		ReviewText: "Death takes an apprentice.",
		ReviewerID: reviewer.ID,
		BookID:     book.ID,
	}
	err := repo.CreateReview(review)

	require.NoError(t, err)
	assert.NotZero(t, review.ID)

	fetched, err := repo.GetReview(review.ID)
	require.NoError(t, err)
	assert.Equal(t, "A classic", fetched.Headline)
	assert.Equal(t, 5, fetched.Rating)
}

func TestRepository_GetReview_NotFound(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetReview(999)

	assert.Error(t, err)
}

func TestRepository_GetReviewsOfBook(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	mort := createTestBook(t, db, "Mort", "0-575-03949-3")
	omens := createTestBook(t, db, "Good Omens", "0-575-04800-X")
	reviewer := createTestReviewer(t, db)

	for _, headline := range []string{"first", "second"} {
		review := &entities.Review{Headline: headline, Rating: 4, ReviewerID: reviewer.ID, BookID: mort.ID}
		require.NoError(t, repo.CreateReview(review))
	}
	other := &entities.Review{Headline: "other", Rating: 3, ReviewerID: reviewer.ID, BookID: omens.ID}
	require.NoError(t, repo.CreateReview(other))

	reviews, err := repo.GetReviewsOfBook(mort.ID)

	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "first", reviews[0].Headline)
	assert.Equal(t, "second", reviews[1].Headline)
}

func TestRepository_GetBookOfReview(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	book := createTestBook(t, db, "Mort", "0-575-03949-3")
	reviewer := createTestReviewer(t, db)
	review := &entities.Review{Headline: "great", Rating: 5, ReviewerID: reviewer.ID, BookID: book.ID}
	require.NoError(t, repo.CreateReview(review))

	found, err := repo.GetBookOfReview(review.ID)

	require.NoError(t, err)
	assert.Equal(t, book.ID, found.ID)
	assert.Equal(t, "Mort", found.Title)
}

func TestRepository_UpdateReview(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	book := createTestBook(t, db, "Mort", "0-575-03949-3")
	reviewer := createTestReviewer(t, db)
	review := &entities.Review{Headline: "ok", Rating: 3, ReviewerID: reviewer.ID, BookID: book.ID}
	require.NoError(t, repo.CreateReview(review))

	review.Headline = "better on re-read"
	review.Rating = 4
	require.NoError(t, repo.UpdateReview(review))

	fetched, err := repo.GetReview(review.ID)
	require.NoError(t, err)
	assert.Equal(t, "better on re-read", fetched.Headline)
	assert.Equal(t, 4, fetched.Rating)
}

func TestRepository_DeleteReview(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	book := createTestBook(t, db, "Mort", "0-575-03949-3")
	reviewer := createTestReviewer(t, db)
	review := &entities.Review{Headline: "great", Rating: 5, ReviewerID: reviewer.ID, BookID: book.ID}
	require.NoError(t, repo.CreateReview(review))

	require.NoError(t, repo.DeleteReview(review))

	exists, err := repo.ReviewExists(review.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
