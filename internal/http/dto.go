package http

import (
	"time"

	"bookcatalog/internal/entities"
)

// DTOs are the flat projections the API exposes: id plus scalar fields,
// relationship ids omitted.

type CountryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AuthorDTO struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type CategoryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type BookDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	ISBN          string    `json:"isbn"`
	DatePublished time.Time `json:"date_published"`
}

type ReviewerDTO struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ReviewDTO struct {
	ID         uint   `json:"id"`
	Headline   string `json:"headline"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
}

func toCountryDTO(country *entities.Country) CountryDTO {
	return CountryDTO{ID: country.ID, Name: country.Name}
}

func toCountryDTOs(countries []entities.Country) []CountryDTO {
	dtos := make([]CountryDTO, 0, len(countries))
	for i := range countries {
		dtos = append(dtos, toCountryDTO(&countries[i]))
	}
	return dtos
}

func toAuthorDTO(author *entities.Author) AuthorDTO {
	return AuthorDTO{ID: author.ID, FirstName: author.FirstName, LastName: author.LastName}
}

func toAuthorDTOs(authors []entities.Author) []AuthorDTO {
	dtos := make([]AuthorDTO, 0, len(authors))
	for i := range authors {
		dtos = append(dtos, toAuthorDTO(&authors[i]))
	}
	return dtos
}

func toCategoryDTO(category *entities.Category) CategoryDTO {
	return CategoryDTO{ID: category.ID, Name: category.Name}
}

func toCategoryDTOs(categories []entities.Category) []CategoryDTO {
	dtos := make([]CategoryDTO, 0, len(categories))
	for i := range categories {
		dtos = append(dtos, toCategoryDTO(&categories[i]))
	}
	return dtos
}

func toBookDTO(book *entities.Book) BookDTO {
	return BookDTO{ID: book.ID, Title: book.Title, ISBN: book.ISBN, DatePublished: book.DatePublished}
}

func toBookDTOs(books []entities.Book) []BookDTO {
	dtos := make([]BookDTO, 0, len(books))
	for i := range books {
		dtos = append(dtos, toBookDTO(&books[i]))
	}
	return dtos
}

func toReviewerDTO(reviewer *entities.Reviewer) ReviewerDTO {
	return ReviewerDTO{ID: reviewer.ID, FirstName: reviewer.FirstName, LastName: reviewer.LastName}
}

func toReviewerDTOs(reviewers []entities.Reviewer) []ReviewerDTO {
	dtos := make([]ReviewerDTO, 0, len(reviewers))
	for i := range reviewers {
		dtos = append(dtos, toReviewerDTO(&reviewers[i]))
	}
	return dtos
}

func toReviewDTO(review *entities.Review) ReviewDTO {
	return ReviewDTO{ID: review.ID, Headline: review.Headline, Rating: review.Rating, ReviewText: review.ReviewText}
}

func toReviewDTOs(reviews []entities.Review) []ReviewDTO {
	dtos := make([]ReviewDTO, 0, len(reviews))
	for i := range reviews {
		dtos = append(dtos, toReviewDTO(&reviews[i]))
	}
	return dtos
}
