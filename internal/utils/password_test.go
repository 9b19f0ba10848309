package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("Expected the hash to differ from the password")
	}

	if !CheckPasswordHash("correct horse battery staple", hash) {
		t.Error("Expected the right password to verify")
	}
	if CheckPasswordHash("wrong password", hash) {
		t.Error("Expected a wrong password to fail")
	}
}

func TestPasswordHashesAreSalted(t *testing.T) {
	first, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	second, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if first == second {
		t.Error("Expected two hashes of the same password to differ")
	}
}
