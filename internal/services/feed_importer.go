package services

import (
	"fmt"
	"net/http"
	"time"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/storage"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/utils"

	"github.com/mmcdole/gofeed"
)

// FeedImporter pulls articles from an external RSS or Atom feed and stages
// them as unpublished news drafts for an editor to review.
type FeedImporter struct {
	parser *gofeed.Parser
	store  *storage.Storage
}

func NewFeedImporter(store *storage.Storage) *FeedImporter {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			IdleConnTimeout:     30 * time.Second,
			MaxIdleConnsPerHost: 2,
		},
	}

	parser := gofeed.NewParser()
	parser.Client = httpClient

	return &FeedImporter{
		parser: parser,
		store:  store,
	}
}

// ImportFeed fetches feedURL and stores up to limit items as unpublished
// drafts owned by authorID. Items whose link was imported before are
// skipped. Returns the drafts that were created.
func (f *FeedImporter) ImportFeed(feedURL string, limit int, authorID string) ([]models.News, error) {
	feed, err := f.parser.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	created := []models.News{}
	for _, item := range feed.Items {
		if len(created) >= limit {
			break
		}
		if item.Link == "" || item.Title == "" {
			continue
		}

		exists, err := f.store.NewsExistsBySource(item.Link)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		publishedAt := time.Now()
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			publishedAt = *item.UpdatedParsed
		}

		// Prefer the full content body, fall back to the description
		content := item.Content
		if content == "" {
			content = item.Description
		}

		imageURL := ""
		if item.Image != nil {
			imageURL = item.Image.URL
		}

		news := models.News{
			Title:       item.Title,
			Content:     utils.SanitizeHTML(content),
			Summary:     summarize(item.Description),
			ImageURL:    imageURL,
			SourceURL:   item.Link,
			IsPublished: false,
			PublishedAt: publishedAt,
			AuthorID:    authorID,
		}
		if err := f.store.CreateNews(&news); err != nil {
			return created, err
		}
		created = append(created, news)
	}

	return created, nil
}

// summarize flattens feed HTML into a short plain text teaser.
func summarize(description string) string {
	text := utils.StripHTML(description)
	runes := []rune(text)
	if len(runes) > 300 {
		return string(runes[:300])
	}
	return text
}
