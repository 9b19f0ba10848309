package storage

import (
	"errors"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"
	"gorm.io/gorm"
)

// GetLabInfo returns the single lab settings row.
func (s *Storage) GetLabInfo() (*models.LabInfo, error) {
	var info models.LabInfo
	if err := s.db.Where("id = ?", models.LabInfoID).First(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

// UpsertLabInfo creates the settings row on first save and overwrites it on
// every later one. The row always keeps the fixed id.
func (s *Storage) UpsertLabInfo(info *models.LabInfo) (*models.LabInfo, error) {
	info.ID = models.LabInfoID

	existing, err := s.GetLabInfo()
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err := s.db.Create(info).Error; err != nil {
			return nil, err
		}
		return s.GetLabInfo()
	}

	info.CreatedAt = existing.CreatedAt
	if err := s.db.Save(info).Error; err != nil {
		return nil, err
	}
	return s.GetLabInfo()
}
