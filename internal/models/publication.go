package models

import (
	"time"
)

type PublicationType string

const (
	PublicationTypeJournal    PublicationType = "journal"
	PublicationTypeConference PublicationType = "conference"
)

type Publication struct {
	ID           string          `gorm:"primaryKey;size:36" json:"id"`
	Title        string          `gorm:"not null" json:"title"`
	Journal      string          `json:"journal"`
	Conference   string          `json:"conference"`
	Year         int             `gorm:"not null;index" json:"year"`
	Type         PublicationType `gorm:"type:varchar(20);not null" json:"type"` // journal, conference
	Abstract     string          `gorm:"type:text" json:"abstract"`
	PdfURL       string          `json:"pdfUrl"`
	ImageURL     string          `json:"imageUrl"`
	DisplayOrder int             `gorm:"default:0;index" json:"order"` // position on the publications page
	AuthorID     string          `gorm:"size:36;index" json:"authorId"`
	CreatedAt    time.Time       `json:"createdAt"`

	Authors []Author `gorm:"foreignKey:PublicationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"authors"`
}

// Author is one name on a publication's author list. Rows live and die with
// their publication.
type Author struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	PublicationID string `gorm:"size:36;not null;index" json:"publicationId"`
	Name          string `gorm:"not null" json:"name"`
	Homepage      string `json:"homepage"`
	DisplayOrder  int    `gorm:"default:0" json:"order"` // position in the author list
}
