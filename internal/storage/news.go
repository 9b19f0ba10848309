package storage

import (
	"time"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"
	"github.com/google/uuid"
)

// ListNews returns articles newest first. With publishedOnly set, drafts and
// staged imports are left out.
func (s *Storage) ListNews(publishedOnly bool) ([]models.News, error) {
	var news []models.News
	query := s.db.Order("published_at desc")
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	if err := query.Find(&news).Error; err != nil {
		return nil, err
	}
	return news, nil
}

// ListRecentNews returns the newest articles up to limit.
func (s *Storage) ListRecentNews(limit int, publishedOnly bool) ([]models.News, error) {
	var news []models.News
	query := s.db.Order("published_at desc").Limit(limit)
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	if err := query.Find(&news).Error; err != nil {
		return nil, err
	}
	return news, nil
}

func (s *Storage) GetNews(id string) (*models.News, error) {
	var news models.News
	if err := s.db.Where("id = ?", id).First(&news).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

func (s *Storage) CreateNews(news *models.News) error {
	if news.ID == "" {
		news.ID = uuid.New().String()
	}
	if news.PublishedAt.IsZero() {
		news.PublishedAt = time.Now()
	}
	return s.db.Create(news).Error
}

// UpdateNews applies the given column updates and returns the fresh row.
func (s *Storage) UpdateNews(id string, updates map[string]interface{}) (*models.News, error) {
	news, err := s.GetNews(id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.Model(news).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetNews(id)
}

func (s *Storage) DeleteNews(id string) error {
	news, err := s.GetNews(id)
	if err != nil {
		return err
	}
	return s.db.Delete(news).Error
}

// NewsExistsBySource reports whether an article was already imported from the
// given link.
func (s *Storage) NewsExistsBySource(sourceURL string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.News{}).Where("source_url = ?", sourceURL).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
