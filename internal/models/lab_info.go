package models

import (
	"time"
)

// LabInfoID is the fixed primary key of the single lab settings row.
const LabInfoID = "lab_settings"

type LabInfo struct {
	ID                    string    `gorm:"primaryKey;size:36" json:"id"`
	LabName               string    `gorm:"not null" json:"labName"`
	PrincipalInvestigator string    `gorm:"not null" json:"principalInvestigator"`
	PITitle               string    `gorm:"not null" json:"piTitle"`
	PIEmail               string    `json:"piEmail"`
	PIPhone               string    `json:"piPhone"`
	PIPhoto               string    `json:"piPhoto"`
	PIBio                 string    `gorm:"type:text" json:"piBio"`
	Description           string    `gorm:"type:text" json:"description"`
	Address               string    `gorm:"not null" json:"address"`
	Latitude              string    `json:"latitude"`
	Longitude             string    `json:"longitude"`
	Building              string    `json:"building"`
	Room                  string    `json:"room"`
	University            string    `gorm:"not null" json:"university"`
	Department            string    `gorm:"not null" json:"department"`
	Website               string    `json:"website"`
	EstablishedYear       string    `json:"establishedYear"`
	ResearchFocus         string    `gorm:"type:text" json:"researchFocus"`
	ContactEmail          string    `gorm:"not null" json:"contactEmail"`
	ContactPhone          string    `json:"contactPhone"`
	OfficeHours           string    `json:"officeHours"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}
