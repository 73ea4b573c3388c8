package rules

import (
	"strings"

	"bookcatalog/internal/entities"
)

// BookRules validates book mutations, including the author and category
// references supplied alongside the book itself.
type BookRules struct {
	Books      BookStore
	Authors    AuthorStore
	Categories CategoryStore
}

// CheckSave validates a book create (pathID == 0) or update. Every missing
// author or category id is reported in its own message so the client sees
// the full set of bad references at once.
func (br BookRules) CheckSave(pathID uint, book *entities.Book, authorIDs, categoryIDs []uint) (*Violation, error) {
	if pathID != 0 {
		if v := checkIDMatch(pathID, book.ID); v != nil {
			return v, nil
		}
		exists, err := br.Books.BookExists(pathID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return notFound("book %d not found", pathID), nil
		}
	}

	if strings.TrimSpace(book.Title) == "" || strings.TrimSpace(book.ISBN) == "" {
		return invalid("book title and ISBN are required"), nil
	}
	if len(authorIDs) == 0 || len(categoryIDs) == 0 {
		return invalid("at least one author id and one category id are required"), nil
	}

	var missing []string
	for _, id := range authorIDs {
		exists, err := br.Authors.AuthorExists(id)
		if err != nil {
			return nil, err
		}
		if !exists {
			missing = append(missing, notFound("author %d not found", id).Messages[0])
		}
	}
	for _, id := range categoryIDs {
		exists, err := br.Categories.CategoryExists(id)
		if err != nil {
			return nil, err
		}
		if !exists {
			missing = append(missing, notFound("category %d not found", id).Messages[0])
		}
	}
	if len(missing) > 0 {
		return &Violation{Kind: KindNotFound, Messages: missing}, nil
	}

	dup, err := br.Books.IsDuplicateISBN(pathID, book.ISBN)
	if err != nil {
		return nil, err
	}
	if dup {
		return duplicate("ISBN %s already exists", book.ISBN), nil
	}
	return nil, nil
}

// CheckDelete verifies the book exists. Reviews and join rows are removed
// together with the book, so nothing blocks the delete.
func (br BookRules) CheckDelete(bookID uint) (*Violation, error) {
	exists, err := br.Books.BookExists(bookID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return notFound("book %d not found", bookID), nil
	}
	return nil, nil
}
