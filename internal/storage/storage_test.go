package storage

import (
	"errors"
	"testing"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/db"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStorage opens a fresh in-memory database with the full schema. Every
// test gets its own database so they never share state.
func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db.Migrate(gdb)
	return New(gdb)
}

func TestUserApprovalFlow(t *testing.T) {
	s := newTestStorage(t)

	user := &models.User{
		Email:     "student@example.com",
		Password:  "hashed",
		FirstName: "Min",
		LastName:  "Kim",
	}
	if err := s.CreateUser(user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.ID == "" {
		t.Error("Expected a generated id, got empty string")
	}
	if user.IsApproved {
		t.Error("Expected a new account to start unapproved")
	}

	pending, err := s.ListPendingUsers()
	if err != nil {
		t.Fatalf("ListPendingUsers failed: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != user.ID {
		t.Fatalf("Expected the new account in the pending list, got %d entries", len(pending))
	}

	approved, err := s.ApproveUser(user.ID)
	if err != nil {
		t.Fatalf("ApproveUser failed: %v", err)
	}
	if !approved.IsApproved {
		t.Error("Expected the account to be approved")
	}

	pending, err = s.ListPendingUsers()
	if err != nil {
		t.Fatalf("ListPendingUsers failed: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("Expected empty pending list after approval, got %d entries", len(pending))
	}

	got, err := s.GetUserByEmail("student@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if !got.IsApproved {
		t.Error("Expected the reloaded account to stay approved")
	}
}

func TestApproveUserNotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.ApproveUser("missing")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Expected ErrRecordNotFound, got %v", err)
	}
}

func TestDuplicateEmailRejected(t *testing.T) {
	s := newTestStorage(t)

	first := &models.User{Email: "dup@example.com", Password: "x", FirstName: "A", LastName: "B"}
	if err := s.CreateUser(first); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	second := &models.User{Email: "dup@example.com", Password: "y", FirstName: "C", LastName: "D"}
	if err := s.CreateUser(second); err == nil {
		t.Error("Expected the unique index to reject a duplicate email")
	}
}

func TestContactMessages(t *testing.T) {
	s := newTestStorage(t)

	msg := &models.ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Internship",
		Message: "Is the lab taking interns this winter?",
	}
	if err := s.CreateContactMessage(msg); err != nil {
		t.Fatalf("CreateContactMessage failed: %v", err)
	}
	if msg.ID == "" {
		t.Error("Expected a generated id, got empty string")
	}

	msgs, err := s.ListContactMessages()
	if err != nil {
		t.Fatalf("ListContactMessages failed: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Subject != "Internship" {
		t.Fatalf("Expected the stored message back, got %+v", msgs)
	}
}
