package storage

import (
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"
	"github.com/google/uuid"
)

// ListResearchProjects returns every project in display order.
func (s *Storage) ListResearchProjects() ([]models.ResearchProject, error) {
	var projects []models.ResearchProject
	if err := s.db.Order("display_order asc").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Storage) GetResearchProject(id string) (*models.ResearchProject, error) {
	var project models.ResearchProject
	if err := s.db.Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *Storage) CreateResearchProject(project *models.ResearchProject) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	return s.db.Create(project).Error
}

// UpdateResearchProject applies the given column updates and returns the fresh row.
func (s *Storage) UpdateResearchProject(id string, updates map[string]interface{}) (*models.ResearchProject, error) {
	project, err := s.GetResearchProject(id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.Model(project).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetResearchProject(id)
}

func (s *Storage) DeleteResearchProject(id string) error {
	project, err := s.GetResearchProject(id)
	if err != nil {
		return err
	}
	return s.db.Delete(project).Error
}
