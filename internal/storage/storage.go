// Package storage is the data access layer. Handlers never touch GORM
// directly; every read and write goes through a Storage method so the HTTP
// layer stays free of query details and tests can drive the same paths
// against a throwaway database.
package storage

import (
	"gorm.io/gorm"
)

type Storage struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Storage {
	return &Storage{db: db}
}
