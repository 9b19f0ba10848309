package utils

import (
	"testing"
	"time"
)

func TestCacheSetGetDelete(t *testing.T) {
	c := GetCache()
	c.Purge()

	if got := c.Get("missing"); got != nil {
		t.Errorf("Expected nil for a missing key, got %v", got)
	}

	c.Set("key", "value", time.Minute)
	if got := c.Get("key"); got != "value" {
		t.Errorf("Expected value, got %v", got)
	}

	c.Delete("key")
	if got := c.Get("key"); got != nil {
		t.Errorf("Expected nil after delete, got %v", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	c := GetCache()
	c.Purge()

	c.Set("short", "lived", 10*time.Millisecond)
	if got := c.Get("short"); got != "lived" {
		t.Fatalf("Expected the fresh entry, got %v", got)
	}

	time.Sleep(20 * time.Millisecond)
	if got := c.Get("short"); got != nil {
		t.Errorf("Expected the entry to expire, got %v", got)
	}
}
