package models

import (
	"time"
)

type User struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"` // bcrypt hash
	FirstName  string    `gorm:"size:100;not null" json:"firstName"`
	LastName   string    `gorm:"size:100;not null" json:"lastName"`
	IsApproved bool      `gorm:"default:false" json:"isApproved"` // new accounts wait for admin approval
	IsAdmin    bool      `gorm:"default:false" json:"isAdmin"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	// No DeletedAt for hard delete
}

// FullName joins the name parts for mail templates and logs.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
