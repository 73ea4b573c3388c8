package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog/internal/entities"
)

// Stub stores back the checks with fixed data; no database involved.

type stubCountries struct {
	ids         map[uint]bool
	names       map[string]uint // normalized name -> owning id
	authorCount map[uint]int64
}

func (s stubCountries) CountryExists(id uint) (bool, error) { return s.ids[id], nil }

func (s stubCountries) IsDuplicateCountryName(countryID uint, name string) (bool, error) {
	owner, taken := s.names[strings.ToUpper(strings.TrimSpace(name))]
	return taken && owner != countryID, nil
}

func (s stubCountries) CountAuthorsFromCountry(countryID uint) (int64, error) {
	return s.authorCount[countryID], nil
}

type stubAuthors struct {
	ids       map[uint]bool
	bookCount map[uint]int64
}

func (s stubAuthors) AuthorExists(id uint) (bool, error) { return s.ids[id], nil }

func (s stubAuthors) CountBooksByAuthor(authorID uint) (int64, error) {
	return s.bookCount[authorID], nil
}

type stubCategories struct {
	ids       map[uint]bool
	names     map[string]uint
	bookCount map[uint]int64
}

func (s stubCategories) CategoryExists(id uint) (bool, error) { return s.ids[id], nil }

func (s stubCategories) IsDuplicateCategoryName(categoryID uint, name string) (bool, error) {
	owner, taken := s.names[strings.ToUpper(strings.TrimSpace(name))]
	return taken && owner != categoryID, nil
}

func (s stubCategories) CountBooksForCategory(categoryID uint) (int64, error) {
	return s.bookCount[categoryID], nil
}

type stubBooks struct {
	ids   map[uint]bool
	isbns map[string]uint
}

func (s stubBooks) BookExists(id uint) (bool, error) { return s.ids[id], nil }

func (s stubBooks) IsDuplicateISBN(bookID uint, isbn string) (bool, error) {
	owner, taken := s.isbns[isbn]
	return taken && owner != bookID, nil
}

type stubReviewers struct{ ids map[uint]bool }

func (s stubReviewers) ReviewerExists(id uint) (bool, error) { return s.ids[id], nil }

type stubReviews struct{ ids map[uint]bool }

func (s stubReviews) ReviewExists(id uint) (bool, error) { return s.ids[id], nil }

func TestCountryRules_CheckCreate(t *testing.T) {
	cr := CountryRules{Countries: stubCountries{
		ids:   map[uint]bool{1: true},
		names: map[string]uint{"GERMANY": 1},
	}}

	t.Run("blank name is invalid", func(t *testing.T) {
		v, err := cr.CheckCreate(&entities.Country{Name: "   "})
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindInvalid, v.Kind)
	})

	t.Run("taken name is a duplicate regardless of case", func(t *testing.T) {
		v, err := cr.CheckCreate(&entities.Country{Name: " germany "})
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindDuplicate, v.Kind)
	})

	t.Run("fresh name passes", func(t *testing.T) {
		v, err := cr.CheckCreate(&entities.Country{Name: "France"})
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestCountryRules_CheckUpdate(t *testing.T) {
	cr := CountryRules{Countries: stubCountries{
		ids:   map[uint]bool{1: true, 2: true},
		names: map[string]uint{"GERMANY": 1, "FRANCE": 2},
	}}

	t.Run("body id must match path id", func(t *testing.T) {
		v, err := cr.CheckUpdate(1, &entities.Country{ID: 2, Name: "Germany"})
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindInvalid, v.Kind)
	})

	t.Run("zero body id inherits the path id", func(t *testing.T) {
		v, err := cr.CheckUpdate(1, &entities.Country{Name: "Germany"})
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("missing country is not found", func(t *testing.T) {
		v, err := cr.CheckUpdate(99, &entities.Country{Name: "Atlantis"})
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindNotFound, v.Kind)
	})

	t.Run("renaming onto another country is a duplicate", func(t *testing.T) {
		v, err := cr.CheckUpdate(1, &entities.Country{ID: 1, Name: "France"})
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindDuplicate, v.Kind)
	})
}

func TestCountryRules_CheckDelete(t *testing.T) {
	cr := CountryRules{Countries: stubCountries{
		ids:         map[uint]bool{1: true, 2: true},
		authorCount: map[uint]int64{1: 3},
	}}

	t.Run("referenced country is blocked", func(t *testing.T) {
		v, err := cr.CheckDelete(1)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindBlocked, v.Kind)
	})

	t.Run("unreferenced country may go", func(t *testing.T) {
		v, err := cr.CheckDelete(2)
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("missing country is not found", func(t *testing.T) {
		v, err := cr.CheckDelete(99)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindNotFound, v.Kind)
	})
}

func TestAuthorRules(t *testing.T) {
	ar := AuthorRules{
		Authors:   stubAuthors{ids: map[uint]bool{1: true, 2: true}, bookCount: map[uint]int64{1: 2}},
		Countries: stubCountries{ids: map[uint]bool{10: true}},
	}

	t.Run("create requires an existing country", func(t *testing.T) {
		v, err := ar.CheckCreate(&entities.Author{FirstName: "Jules", LastName: "Verne", CountryID: 99})
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindNotFound, v.Kind)
	})

	t.Run("create requires both names", func(t *testing.T) {
		v, err := ar.CheckCreate(&entities.Author{FirstName: "Jules", CountryID: 10})
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindInvalid, v.Kind)
	})

	t.Run("valid create passes", func(t *testing.T) {
		v, err := ar.CheckCreate(&entities.Author{FirstName: "Jules", LastName: "Verne", CountryID: 10})
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("delete is blocked while books reference the author", func(t *testing.T) {
		v, err := ar.CheckDelete(1)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindBlocked, v.Kind)
	})

	t.Run("delete passes without dependent books", func(t *testing.T) {
		v, err := ar.CheckDelete(2)
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestCategoryRules(t *testing.T) {
	cr := CategoryRules{Categories: stubCategories{
		ids:       map[uint]bool{1: true, 2: true},
		names:     map[string]uint{"FANTASY": 1},
		bookCount: map[uint]int64{1: 1},
	}}

	t.Run("duplicate name on create", func(t *testing.T) {
		v, err := cr.CheckCreate(&entities.Category{Name: "fantasy"})
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindDuplicate, v.Kind)
	})

	t.Run("category keeps its own name on update", func(t *testing.T) {
		v, err := cr.CheckUpdate(1, &entities.Category{ID: 1, Name: "Fantasy"})
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("delete is blocked while books reference the category", func(t *testing.T) {
		v, err := cr.CheckDelete(1)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindBlocked, v.Kind)
	})
}

func TestBookRules_CheckSave(t *testing.T) {
	br := BookRules{
		Books:      stubBooks{ids: map[uint]bool{1: true}, isbns: map[string]uint{"0-575-03949-3": 1}},
		Authors:    stubAuthors{ids: map[uint]bool{10: true}},
		Categories: stubCategories{ids: map[uint]bool{20: true}},
	}

	validBook := func() *entities.Book {
		return &entities.Book{Title: "Mort", ISBN: "0-575-04800-X"}
	}

	t.Run("missing title or ISBN is invalid", func(t *testing.T) {
		v, err := br.CheckSave(0, &entities.Book{Title: "Mort"}, []uint{10}, []uint{20})
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindInvalid, v.Kind)
	})

	t.Run("at least one author and category required", func(t *testing.T) {
		v, err := br.CheckSave(0, validBook(), nil, []uint{20})
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindInvalid, v.Kind)
	})

	t.Run("every missing reference is reported", func(t *testing.T) {
		v, err := br.CheckSave(0, validBook(), []uint{10, 11, 12}, []uint{21})
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindNotFound, v.Kind)
		assert.Len(t, v.Messages, 3)
	})

	t.Run("taken ISBN is a duplicate on create", func(t *testing.T) {
		book := validBook()
		book.ISBN = "0-575-03949-3"
		v, err := br.CheckSave(0, book, []uint{10}, []uint{20})
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindDuplicate, v.Kind)
	})

	t.Run("book keeps its own ISBN on update", func(t *testing.T) {
		book := validBook()
		book.ID = 1
		book.ISBN = "0-575-03949-3"
		v, err := br.CheckSave(1, book, []uint{10}, []uint{20})
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("update of missing book is not found", func(t *testing.T) {
		v, err := br.CheckSave(99, validBook(), []uint{10}, []uint{20})
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindNotFound, v.Kind)
	})

	t.Run("valid create passes", func(t *testing.T) {
		v, err := br.CheckSave(0, validBook(), []uint{10}, []uint{20})
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestReviewerRules(t *testing.T) {
	rr := ReviewerRules{Reviewers: stubReviewers{ids: map[uint]bool{1: true}}}

	t.Run("create requires both names", func(t *testing.T) {
		v, err := rr.CheckCreate(&entities.Reviewer{FirstName: "Pat"})
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindInvalid, v.Kind)
	})

	t.Run("delete of an existing reviewer is never blocked", func(t *testing.T) {
		v, err := rr.CheckDelete(1)
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("delete of a missing reviewer is not found", func(t *testing.T) {
		v, err := rr.CheckDelete(99)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindNotFound, v.Kind)
	})
}

func TestReviewRules_CheckSave(t *testing.T) {
	rr := ReviewRules{
		Reviews:   stubReviews{ids: map[uint]bool{1: true}},
		Reviewers: stubReviewers{ids: map[uint]bool{10: true}},
		Books:     stubBooks{ids: map[uint]bool{20: true}},
	}

	validReview := func() *entities.Review {
		return &entities.Review{Headline: "great", Rating: 4, ReviewerID: 10, BookID: 20}
	}

	t.Run("blank headline is invalid", func(t *testing.T) {
		review := validReview()
		review.Headline = " "
		v, err := rr.CheckSave(0, review)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindInvalid, v.Kind)
	})

	t.Run("rating outside 1..5 is invalid", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			review := validReview()
			review.Rating = rating
			v, err := rr.CheckSave(0, review)
			require.NoError(t, err)
			require.NotNil(t, v)
			assert.Equal(t, KindInvalid, v.Kind)
		}
	})

	t.Run("missing reviewer is not found", func(t *testing.T) {
		review := validReview()
		review.ReviewerID = 99
		v, err := rr.CheckSave(0, review)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindNotFound, v.Kind)
	})

	t.Run("missing book is not found", func(t *testing.T) {
		review := validReview()
		review.BookID = 99
		v, err := rr.CheckSave(0, review)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, KindNotFound, v.Kind)
	})

	t.Run("valid review passes", func(t *testing.T) {
		v, err := rr.CheckSave(0, validReview())
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("boundary ratings pass", func(t *testing.T) {
		for _, rating := range []int{1, 5} {
			review := validReview()
			review.Rating = rating
			v, err := rr.CheckSave(0, review)
			require.NoError(t, err)
			assert.Nil(t, v)
		}
	})
}
