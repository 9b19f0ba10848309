package models

import (
	"strings"
)

const (
	MemberStatusCurrent = "current"
	MemberStatusAlumni  = "alumni"
)

type Member struct {
	ID                string `gorm:"primaryKey;size:36" json:"id"`
	Name              string `gorm:"not null;index" json:"name"`
	Degree            string `gorm:"not null" json:"degree"` // free text, e.g. "Ph.D. Candidate"
	Email             string `json:"email"`
	ImageURL          string `json:"imageUrl"`
	Homepage          string `json:"homepage"`
	JoinedAt          string `json:"joinedAt"`                                // display string, e.g. "2023.03"
	Status            string `gorm:"size:20;default:'current'" json:"status"` // current, alumni
	Bio               string `gorm:"type:text" json:"bio"`
	ResearchInterests string `json:"researchInterests"`
	DisplayOrder      int    `gorm:"default:0" json:"order"` // position within the roster
}

// GroupedMembers is the members page shape: current members split by degree
// level plus everyone who has left.
type GroupedMembers struct {
	Masters   []Member `json:"masters"`
	Bachelors []Member `json:"bachelors"`
	PhD       []Member `json:"phd"`
	Other     []Member `json:"other"`
	Alumni    []Member `json:"alumni"`
}

var (
	phdTokens       = []string{"phd", "dphil", "doctor", "doctoral", "doctorate"}
	mastersTokens   = []string{"master", "masters", "ms", "msc", "meng", "mphil", "mba", "ma"}
	bachelorsTokens = []string{"bachelor", "bachelors", "bs", "bsc", "beng", "btech", "ba", "undergraduate"}
)

// DegreeLevel maps a free-text degree onto one of the member page buckets:
// "phd", "masters", "bachelors" or "other". The degree string is normalized
// (lowercased, dots and apostrophes stripped) and matched token by token, so
// "Ph.D. Candidate", "MSc", "MBA" and "Bachelor of Engineering" all land
// where a reader expects instead of depending on how the entry was spelled.
// The highest degree named wins, which puts "Integrated MS/PhD" under phd.
func DegreeLevel(degree string) string {
	norm := strings.ToLower(degree)
	norm = strings.NewReplacer(".", "", "'", "", ",", " ", "/", " ", "(", " ", ")", " ", "-", " ").Replace(norm)
	tokens := make(map[string]bool)
	for _, tok := range strings.Fields(norm) {
		tokens[tok] = true
	}
	for _, tok := range phdTokens {
		if tokens[tok] {
			return "phd"
		}
	}
	for _, tok := range mastersTokens {
		if tokens[tok] {
			return "masters"
		}
	}
	for _, tok := range bachelorsTokens {
		if tokens[tok] {
			return "bachelors"
		}
	}
	return "other"
}

// IsAlumni reports whether the member belongs in the alumni bucket rather
// than any of the degree buckets.
func (m *Member) IsAlumni() bool {
	return strings.EqualFold(m.Status, MemberStatusAlumni)
}

// GroupMembers partitions rows into the members page shape. Every current
// member lands in exactly one degree bucket; alumni are kept apart whatever
// their degree says.
func GroupMembers(members []Member) GroupedMembers {
	grouped := GroupedMembers{
		Masters:   []Member{},
		Bachelors: []Member{},
		PhD:       []Member{},
		Other:     []Member{},
		Alumni:    []Member{},
	}
	for _, m := range members {
		if m.IsAlumni() {
			grouped.Alumni = append(grouped.Alumni, m)
			continue
		}
		switch DegreeLevel(m.Degree) {
		case "phd":
			grouped.PhD = append(grouped.PhD, m)
		case "masters":
			grouped.Masters = append(grouped.Masters, m)
		case "bachelors":
			grouped.Bachelors = append(grouped.Bachelors, m)
		default:
			grouped.Other = append(grouped.Other, m)
		}
	}
	return grouped
}
