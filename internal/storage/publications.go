package storage

import (
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// withAuthors preloads the author list in display order.
func withAuthors(db *gorm.DB) *gorm.DB {
	return db.Preload("Authors", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order asc")
	})
}

// ListPublications returns every publication in display order.
func (s *Storage) ListPublications() ([]models.Publication, error) {
	var pubs []models.Publication
	if err := withAuthors(s.db).Order("display_order asc").Find(&pubs).Error; err != nil {
		return nil, err
	}
	return pubs, nil
}

// ListPublicationsByYear returns the publications of one year in display order.
func (s *Storage) ListPublicationsByYear(year int) ([]models.Publication, error) {
	var pubs []models.Publication
	if err := withAuthors(s.db).Where("year = ?", year).Order("display_order asc").Find(&pubs).Error; err != nil {
		return nil, err
	}
	return pubs, nil
}

// ListRecentPublications returns the newest publications, latest year first.
func (s *Storage) ListRecentPublications(limit int) ([]models.Publication, error) {
	var pubs []models.Publication
	if err := withAuthors(s.db).Order("year desc, display_order asc").Limit(limit).Find(&pubs).Error; err != nil {
		return nil, err
	}
	return pubs, nil
}

func (s *Storage) GetPublication(id string) (*models.Publication, error) {
	var pub models.Publication
	if err := withAuthors(s.db).Where("id = ?", id).First(&pub).Error; err != nil {
		return nil, err
	}
	return &pub, nil
}

// CreatePublication inserts a publication together with its author rows in
// one transaction. Callers fill in each author's DisplayOrder beforehand.
func (s *Storage) CreatePublication(pub *models.Publication) error {
	if pub.ID == "" {
		pub.ID = uuid.New().String()
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		authors := pub.Authors
		pub.Authors = nil
		if err := tx.Create(pub).Error; err != nil {
			return err
		}
		for i := range authors {
			authors[i].ID = uuid.New().String()
			authors[i].PublicationID = pub.ID
			if err := tx.Create(&authors[i]).Error; err != nil {
				return err
			}
		}
		pub.Authors = authors
		return nil
	})
}

// UpdatePublication applies the given column updates and, when authors is
// non-nil, replaces the whole author list.
func (s *Storage) UpdatePublication(id string, updates map[string]interface{}, authors []models.Author) (*models.Publication, error) {
	if _, err := s.GetPublication(id); err != nil {
		return nil, err
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&models.Publication{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		if authors != nil {
			if err := tx.Where("publication_id = ?", id).Delete(&models.Author{}).Error; err != nil {
				return err
			}
			for i := range authors {
				authors[i].ID = uuid.New().String()
				authors[i].PublicationID = id
				if err := tx.Create(&authors[i]).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetPublication(id)
}

// UpdatePublicationOrder moves a publication to a new position.
func (s *Storage) UpdatePublicationOrder(id string, order int) (*models.Publication, error) {
	pub, err := s.GetPublication(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(pub).Update("display_order", order).Error; err != nil {
		return nil, err
	}
	pub.DisplayOrder = order
	return pub, nil
}

// DeletePublication removes the publication and all of its author rows. The
// two deletes share a transaction so no orphaned authors survive.
func (s *Storage) DeletePublication(id string) error {
	pub, err := s.GetPublication(id)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("publication_id = ?", id).Delete(&models.Author{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Publication{}, "id = ?", pub.ID).Error
	})
}
