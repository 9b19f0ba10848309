package models

import (
	"time"
)

type ResearchProject struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Title          string    `gorm:"not null" json:"title"`
	Description    string    `gorm:"type:text;not null" json:"description"`
	Category       string    `gorm:"size:50;not null" json:"category"`
	Date           string    `gorm:"not null" json:"date"` // display string, e.g. "2024.01"
	LeadResearcher string    `gorm:"not null" json:"leadResearcher"`
	ImageURL       string    `gorm:"not null" json:"imageUrl"`
	DisplayOrder   int       `gorm:"default:0" json:"order"`
	AuthorID       string    `gorm:"size:36" json:"authorId"`
	CreatedAt      time.Time `json:"createdAt"`
}
