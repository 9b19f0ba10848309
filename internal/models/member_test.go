package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDegreeLevel(t *testing.T) {
	cases := []struct {
		degree string
		want   string
	}{
		{"Ph.D. Candidate", "phd"},
		{"PhD Student", "phd"},
		{"Doctoral Researcher", "phd"},
		{"Doctor of Philosophy", "phd"},
		{"M.S. Student", "masters"},
		{"MSc", "masters"},
		{"Master's Student", "masters"},
		{"M.Eng.", "masters"},
		{"MBA", "masters"},
		{"Integrated MS/PhD", "phd"},
		{"B.S. Student", "bachelors"},
		{"Bachelor of Engineering", "bachelors"},
		{"Undergraduate Researcher", "bachelors"},
		{"Research Intern", "other"},
		{"Postdoctoral Fellow", "other"},
		{"", "other"},
	}
	for _, tc := range cases {
		if got := DegreeLevel(tc.degree); got != tc.want {
			t.Errorf("DegreeLevel(%q): expected %s, got %s", tc.degree, tc.want, got)
		}
	}
}

func TestGroupMembersAlumniWinOverDegree(t *testing.T) {
	grouped := GroupMembers([]Member{
		{Name: "Active", Degree: "Ph.D. Candidate", Status: MemberStatusCurrent},
		{Name: "Left", Degree: "Ph.D.", Status: MemberStatusAlumni},
		{Name: "LeftUpper", Degree: "M.S.", Status: "Alumni"},
	})

	if len(grouped.PhD) != 1 || grouped.PhD[0].Name != "Active" {
		t.Errorf("Expected only the active member under phd, got %+v", grouped.PhD)
	}
	if len(grouped.Alumni) != 2 {
		t.Errorf("Expected both former members under alumni, got %+v", grouped.Alumni)
	}
	if len(grouped.Masters) != 0 {
		t.Errorf("Expected no masters entries, got %+v", grouped.Masters)
	}
}

func TestGroupMembersSerializesEmptyBuckets(t *testing.T) {
	data, err := json.Marshal(GroupMembers(nil))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), "null") {
		t.Errorf("Expected empty buckets to serialize as [], got %s", data)
	}
}
