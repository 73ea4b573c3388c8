package entities

import "time"

// Country is a country an author can originate from. Names are unique
// regardless of case; the NOCASE collation backs the application-level
// duplicate check at the store layer.
type Country struct {
	ID      uint     `gorm:"primaryKey" json:"id"`
	Name    string   `gorm:"type:TEXT COLLATE NOCASE;uniqueIndex;size:100" json:"name"`
	Authors []Author `gorm:"foreignKey:CountryID" json:"authors,omitempty"`
}

type Author struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	FirstName string  `gorm:"size:100" json:"first_name"`
	LastName  string  `gorm:"size:200" json:"last_name"`
	CountryID uint    `gorm:"index" json:"country_id"`
	Country   Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`
	Books     []Book  `gorm:"many2many:book_authors;" json:"books,omitempty"`
}

type Category struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100" json:"name"`
	Books []Book `gorm:"many2many:book_categories;" json:"books,omitempty"`
}

type Book struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"index;size:512" json:"title"`
	ISBN          string     `gorm:"uniqueIndex;size:20;column:isbn" json:"isbn"`
	DatePublished time.Time  `json:"date_published"`
	Authors       []Author   `gorm:"many2many:book_authors;" json:"authors,omitempty"`
	Categories    []Category `gorm:"many2many:book_categories;" json:"categories,omitempty"`
	Reviews       []Review   `gorm:"foreignKey:BookID" json:"reviews,omitempty"`
}

type Reviewer struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	FirstName string   `gorm:"size:100" json:"first_name"`
	LastName  string   `gorm:"size:200" json:"last_name"`
	Reviews   []Review `gorm:"foreignKey:ReviewerID" json:"reviews,omitempty"`
}

type Review struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Headline   string   `gorm:"size:200" json:"headline"`
	Rating     int      `json:"rating"`
	ReviewText string   `gorm:"type:text" json:"review_text"`
	ReviewerID uint     `gorm:"index" json:"reviewer_id"`
	BookID     uint     `gorm:"index" json:"book_id"`
	Reviewer   Reviewer `gorm:"foreignKey:ReviewerID" json:"-"`
	Book       Book     `gorm:"foreignKey:BookID" json:"-"`
}

func (Country) TableName() string {
	return "countries"
}

func (Author) TableName() string {
	return "authors"
}

func (Category) TableName() string {
	return "categories"
}

func (Book) TableName() string {
	return "books"
}

func (Reviewer) TableName() string {
	return "reviewers"
}

func (Review) TableName() string {
	return "reviews"
}
