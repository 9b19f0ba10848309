package models

import (
	"time"
)

type News struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"` // markdown
	Summary     string    `gorm:"size:500" json:"summary"`
	ImageURL    string    `json:"imageUrl"`
	SourceURL   string    `gorm:"index" json:"sourceUrl"` // original link for imported items
	IsPublished bool      `json:"isPublished"`
	PublishedAt time.Time `gorm:"index" json:"publishedAt"`
	AuthorID    string    `gorm:"size:36" json:"authorId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Not a database column, filled in on detail reads
	ContentHTML string `gorm:"-" json:"contentHtml,omitempty"`
}
