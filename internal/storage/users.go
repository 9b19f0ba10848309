package storage

import (
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"
	"github.com/google/uuid"
)

// CreateUser inserts a new account. The password must already be hashed.
// New accounts start unapproved unless the caller set the flags explicitly
// (the admin seed and the user CLI do).
func (s *Storage) CreateUser(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return s.db.Create(user).Error
}

func (s *Storage) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every account, oldest first.
func (s *Storage) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListPendingUsers returns accounts still waiting for approval.
func (s *Storage) ListPendingUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Where("is_approved = ?", false).Order("created_at asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ApproveUser flips the approval flag and returns the updated account.
func (s *Storage) ApproveUser(id string) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(user).Update("is_approved", true).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUserPassword stores a new password hash for the account.
func (s *Storage) UpdateUserPassword(id string, hash string) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	return s.db.Model(user).Update("password", hash).Error
}

func (s *Storage) DeleteUser(id string) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	return s.db.Delete(user).Error
}
