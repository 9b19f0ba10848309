package models

import (
	"time"
)

// ResearchArea is one entry of the two-level research taxonomy. Top level
// areas have a nil ParentID; sub areas point at their parent. Nothing stops a
// sub area from being referenced as a parent itself, the two-level shape is a
// content convention.
type ResearchArea struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	ParentID     *string   `gorm:"size:36;index" json:"parentId"`
	ImageURL     string    `json:"imageUrl"`
	DisplayOrder int       `gorm:"default:0" json:"order"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
