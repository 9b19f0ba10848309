package storage

import (
	"testing"
	"time"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"
)

func TestListNewsPublishedFilter(t *testing.T) {
	s := newTestStorage(t)

	published := &models.News{Title: "Paper accepted", Content: "Great news.", IsPublished: true}
	if err := s.CreateNews(published); err != nil {
		t.Fatalf("CreateNews failed: %v", err)
	}
	draft := &models.News{Title: "Draft post", Content: "Not ready.", IsPublished: false}
	if err := s.CreateNews(draft); err != nil {
		t.Fatalf("CreateNews failed: %v", err)
	}

	all, err := s.ListNews(false)
	if err != nil {
		t.Fatalf("ListNews failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected both articles without the filter, got %d", len(all))
	}

	visible, err := s.ListNews(true)
	if err != nil {
		t.Fatalf("ListNews failed: %v", err)
	}
	if len(visible) != 1 || visible[0].Title != "Paper accepted" {
		t.Fatalf("Expected only the published article, got %+v", visible)
	}
}

func TestListRecentNewsOrdering(t *testing.T) {
	s := newTestStorage(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		n := &models.News{
			Title:       title,
			Content:     "body",
			IsPublished: true,
			PublishedAt: base.AddDate(0, 0, i),
		}
		if err := s.CreateNews(n); err != nil {
			t.Fatalf("CreateNews failed: %v", err)
		}
	}

	recent, err := s.ListRecentNews(2, true)
	if err != nil {
		t.Fatalf("ListRecentNews failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 articles, got %d", len(recent))
	}
	if recent[0].Title != "third" || recent[1].Title != "second" {
		t.Errorf("Expected newest first, got %s then %s", recent[0].Title, recent[1].Title)
	}
}

func TestCreateNewsDefaultsPublishedAt(t *testing.T) {
	s := newTestStorage(t)

	n := &models.News{Title: "No date", Content: "body", IsPublished: true}
	if err := s.CreateNews(n); err != nil {
		t.Fatalf("CreateNews failed: %v", err)
	}
	if n.PublishedAt.IsZero() {
		t.Error("Expected a default publication time")
	}
}

func TestCreateNewsKeepsDraftFlag(t *testing.T) {
	s := newTestStorage(t)

	draft := &models.News{Title: "Imported draft", Content: "body", IsPublished: false}
	if err := s.CreateNews(draft); err != nil {
		t.Fatalf("CreateNews failed: %v", err)
	}
	if draft.IsPublished {
		t.Error("Expected the struct to stay a draft after create")
	}

	stored, err := s.GetNews(draft.ID)
	if err != nil {
		t.Fatalf("GetNews failed: %v", err)
	}
	if stored.IsPublished {
		t.Error("Expected the stored row to stay a draft, got is_published=true")
	}

	visible, err := s.ListNews(true)
	if err != nil {
		t.Fatalf("ListNews failed: %v", err)
	}
	if len(visible) != 0 {
		t.Errorf("Expected no published articles, got %d", len(visible))
	}
}

func TestNewsExistsBySource(t *testing.T) {
	s := newTestStorage(t)

	n := &models.News{
		Title:     "Imported",
		Content:   "body",
		SourceURL: "https://example.com/feed/1",
	}
	if err := s.CreateNews(n); err != nil {
		t.Fatalf("CreateNews failed: %v", err)
	}

	exists, err := s.NewsExistsBySource("https://example.com/feed/1")
	if err != nil {
		t.Fatalf("NewsExistsBySource failed: %v", err)
	}
	if !exists {
		t.Error("Expected the imported link to be found")
	}

	exists, err = s.NewsExistsBySource("https://example.com/feed/2")
	if err != nil {
		t.Fatalf("NewsExistsBySource failed: %v", err)
	}
	if exists {
		t.Error("Expected an unknown link to be absent")
	}
}
