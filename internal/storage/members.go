package storage

import (
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"
	"github.com/google/uuid"
)

// ListMembers returns every member, by roster position and then name.
func (s *Storage) ListMembers() ([]models.Member, error) {
	var members []models.Member
	if err := s.db.Order("display_order asc, name asc").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// GroupedMembers returns the members page shape, bucketed by degree level
// with alumni split out.
func (s *Storage) GroupedMembers() (models.GroupedMembers, error) {
	members, err := s.ListMembers()
	if err != nil {
		return models.GroupedMembers{}, err
	}
	return models.GroupMembers(members), nil
}

func (s *Storage) GetMember(id string) (*models.Member, error) {
	var member models.Member
	if err := s.db.Where("id = ?", id).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *Storage) CreateMember(member *models.Member) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.Status == "" {
		member.Status = models.MemberStatusCurrent
	}
	return s.db.Create(member).Error
}

// UpdateMember applies the given column updates and returns the fresh row.
func (s *Storage) UpdateMember(id string, updates map[string]interface{}) (*models.Member, error) {
	member, err := s.GetMember(id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.Model(member).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetMember(id)
}

func (s *Storage) DeleteMember(id string) error {
	member, err := s.GetMember(id)
	if err != nil {
		return err
	}
	return s.db.Delete(member).Error
}
