package storage

import (
	"errors"
	"testing"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"

	"gorm.io/gorm"
)

func seedPublication(t *testing.T, s *Storage, title string, year int, order int, authors ...string) *models.Publication {
	t.Helper()
	pub := &models.Publication{
		Title:        title,
		Journal:      "Journal of Testing",
		Year:         year,
		Type:         models.PublicationTypeJournal,
		Abstract:     "An abstract.",
		DisplayOrder: order,
	}
	for i, name := range authors {
		pub.Authors = append(pub.Authors, models.Author{Name: name, DisplayOrder: i})
	}
	if err := s.CreatePublication(pub); err != nil {
		t.Fatalf("CreatePublication failed: %v", err)
	}
	return pub
}

func TestCreatePublicationKeepsAuthorOrder(t *testing.T) {
	s := newTestStorage(t)

	pub := seedPublication(t, s, "Attention Is Enough", 2024, 0, "J. Do", "S. Park", "H. Lee")

	got, err := s.GetPublication(pub.ID)
	if err != nil {
		t.Fatalf("GetPublication failed: %v", err)
	}
	if len(got.Authors) != 3 {
		t.Fatalf("Expected 3 authors, got %d", len(got.Authors))
	}
	for i, want := range []string{"J. Do", "S. Park", "H. Lee"} {
		if got.Authors[i].Name != want {
			t.Errorf("Author %d: expected %s, got %s", i, want, got.Authors[i].Name)
		}
		if got.Authors[i].DisplayOrder != i {
			t.Errorf("Author %d: expected display order %d, got %d", i, i, got.Authors[i].DisplayOrder)
		}
	}
}

func TestListPublicationsByYear(t *testing.T) {
	s := newTestStorage(t)

	seedPublication(t, s, "Old Paper", 2022, 0, "A")
	seedPublication(t, s, "New Paper", 2024, 0, "B")
	seedPublication(t, s, "Another New Paper", 2024, 1, "C")

	pubs, err := s.ListPublicationsByYear(2024)
	if err != nil {
		t.Fatalf("ListPublicationsByYear failed: %v", err)
	}
	if len(pubs) != 2 {
		t.Fatalf("Expected 2 publications for 2024, got %d", len(pubs))
	}
	if pubs[0].Title != "New Paper" || pubs[1].Title != "Another New Paper" {
		t.Errorf("Expected display order within the year, got %s then %s", pubs[0].Title, pubs[1].Title)
	}

	empty, err := s.ListPublicationsByYear(1999)
	if err != nil {
		t.Fatalf("ListPublicationsByYear failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected no publications for 1999, got %d", len(empty))
	}
}

func TestListRecentPublications(t *testing.T) {
	s := newTestStorage(t)

	seedPublication(t, s, "Oldest", 2021, 0, "A")
	seedPublication(t, s, "Middle", 2023, 0, "B")
	seedPublication(t, s, "Newest", 2024, 0, "C")

	pubs, err := s.ListRecentPublications(2)
	if err != nil {
		t.Fatalf("ListRecentPublications failed: %v", err)
	}
	if len(pubs) != 2 {
		t.Fatalf("Expected the limit to cap the list at 2, got %d", len(pubs))
	}
	if pubs[0].Title != "Newest" || pubs[1].Title != "Middle" {
		t.Errorf("Expected newest year first, got %s then %s", pubs[0].Title, pubs[1].Title)
	}
}

func TestUpdatePublicationReplacesAuthors(t *testing.T) {
	s := newTestStorage(t)

	pub := seedPublication(t, s, "Draft Title", 2024, 0, "Old Author")

	// nil author slice means keep the existing list
	updated, err := s.UpdatePublication(pub.ID, map[string]interface{}{"title": "Final Title"}, nil)
	if err != nil {
		t.Fatalf("UpdatePublication failed: %v", err)
	}
	if updated.Title != "Final Title" {
		t.Errorf("Expected title update, got %s", updated.Title)
	}
	if len(updated.Authors) != 1 || updated.Authors[0].Name != "Old Author" {
		t.Fatalf("Expected the author list untouched, got %+v", updated.Authors)
	}

	// non-nil replaces the whole list
	updated, err = s.UpdatePublication(pub.ID, nil, []models.Author{
		{Name: "First", DisplayOrder: 0},
		{Name: "Second", DisplayOrder: 1},
	})
	if err != nil {
		t.Fatalf("UpdatePublication failed: %v", err)
	}
	if len(updated.Authors) != 2 {
		t.Fatalf("Expected 2 authors after replacement, got %d", len(updated.Authors))
	}
	if updated.Authors[0].Name != "First" || updated.Authors[1].Name != "Second" {
		t.Errorf("Expected replaced authors in order, got %+v", updated.Authors)
	}

	var count int64
	s.db.Model(&models.Author{}).Where("publication_id = ?", pub.ID).Count(&count)
	if count != 2 {
		t.Errorf("Expected 2 author rows after replacement, got %d", count)
	}
}

func TestUpdatePublicationOrder(t *testing.T) {
	s := newTestStorage(t)

	pub := seedPublication(t, s, "Movable", 2024, 5, "A")

	moved, err := s.UpdatePublicationOrder(pub.ID, 1)
	if err != nil {
		t.Fatalf("UpdatePublicationOrder failed: %v", err)
	}
	if moved.DisplayOrder != 1 {
		t.Errorf("Expected display order 1, got %d", moved.DisplayOrder)
	}

	got, _ := s.GetPublication(pub.ID)
	if got.DisplayOrder != 1 {
		t.Errorf("Expected persisted display order 1, got %d", got.DisplayOrder)
	}
}

func TestDeletePublicationRemovesAuthors(t *testing.T) {
	s := newTestStorage(t)

	pub := seedPublication(t, s, "Doomed", 2024, 0, "A", "B")
	keep := seedPublication(t, s, "Survivor", 2024, 1, "C")

	if err := s.DeletePublication(pub.ID); err != nil {
		t.Fatalf("DeletePublication failed: %v", err)
	}

	if _, err := s.GetPublication(pub.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Expected ErrRecordNotFound after delete, got %v", err)
	}

	var orphans int64
	s.db.Model(&models.Author{}).Where("publication_id = ?", pub.ID).Count(&orphans)
	if orphans != 0 {
		t.Errorf("Expected no author rows left behind, got %d", orphans)
	}

	got, err := s.GetPublication(keep.ID)
	if err != nil {
		t.Fatalf("GetPublication failed for the surviving row: %v", err)
	}
	if len(got.Authors) != 1 {
		t.Errorf("Expected the other publication's authors untouched, got %d", len(got.Authors))
	}
}
