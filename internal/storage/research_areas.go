package storage

import (
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"
	"github.com/google/uuid"
)

// ListResearchAreas returns the whole taxonomy in display order.
func (s *Storage) ListResearchAreas() ([]models.ResearchArea, error) {
	var areas []models.ResearchArea
	if err := s.db.Order("display_order asc").Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

// ListResearchAreasByParent returns the children of one area, or the top
// level areas when parentID is nil.
func (s *Storage) ListResearchAreasByParent(parentID *string) ([]models.ResearchArea, error) {
	var areas []models.ResearchArea
	query := s.db.Order("display_order asc")
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}
	if err := query.Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

func (s *Storage) GetResearchArea(id string) (*models.ResearchArea, error) {
	var area models.ResearchArea
	if err := s.db.Where("id = ?", id).First(&area).Error; err != nil {
		return nil, err
	}
	return &area, nil
}

func (s *Storage) CreateResearchArea(area *models.ResearchArea) error {
	if area.ID == "" {
		area.ID = uuid.New().String()
	}
	return s.db.Create(area).Error
}

// UpdateResearchArea applies the given column updates and returns the fresh row.
func (s *Storage) UpdateResearchArea(id string, updates map[string]interface{}) (*models.ResearchArea, error) {
	area, err := s.GetResearchArea(id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.Model(area).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetResearchArea(id)
}

func (s *Storage) DeleteResearchArea(id string) error {
	area, err := s.GetResearchArea(id)
	if err != nil {
		return err
	}
	return s.db.Delete(area).Error
}
