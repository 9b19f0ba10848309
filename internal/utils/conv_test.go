package utils

import "testing"

func TestStringToInt(t *testing.T) {
	if got := StringToInt("2024"); got != 2024 {
		t.Errorf("Expected 2024, got %d", got)
	}
	if got := StringToInt("abc"); got != 0 {
		t.Errorf("Expected 0 for garbage, got %d", got)
	}
	if got := StringToInt(""); got != 0 {
		t.Errorf("Expected 0 for empty string, got %d", got)
	}
}

func TestParseLimit(t *testing.T) {
	cases := []struct {
		in   string
		def  int
		want int
	}{
		{"3", 5, 3},
		{"", 5, 5},
		{"abc", 5, 5},
		{"0", 5, 5},
		{"-2", 5, 5},
		{"20", 5, 20},
	}
	for _, tc := range cases {
		if got := ParseLimit(tc.in, tc.def); got != tc.want {
			t.Errorf("ParseLimit(%q, %d): expected %d, got %d", tc.in, tc.def, tc.want, got)
		}
	}
}
