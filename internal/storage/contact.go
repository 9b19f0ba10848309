package storage

import (
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"
	"github.com/google/uuid"
)

func (s *Storage) CreateContactMessage(msg *models.ContactMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	return s.db.Create(msg).Error
}

// ListContactMessages returns submissions newest first.
func (s *Storage) ListContactMessages() ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	if err := s.db.Order("created_at desc").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}
