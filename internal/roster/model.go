package roster

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Student is one row of the graduate list.
// ImageFile stays empty until a photo is matched.
type Student struct {
	Status          string   `json:"status"`
	StudentID       string   `json:"student_id"`
	FullName        string   `json:"full_name"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	OntScholar      string   `json:"ont_scholar"`
	HonourRoll      string   `json:"honour_roll"`
	Awards          []string `json:"awards"`
	AwardsPrep      string   `json:"awards_prep,omitempty"`
	CertificatePrep string   `json:"certificat_prep,omitempty"`
	NotOSSD         string   `json:"not_ossd,omitempty"`
	ImageFile       string   `json:"image_file,omitempty"`
}

// DisplayName is the name drawn on the slide.
func (s Student) DisplayName() string {
	return norm.NFC.String(strings.TrimSpace(s.FirstName + " " + s.LastName))
}

func (s Student) HasAwards() bool {
	return len(s.Awards) > 0
}

func (s Student) HasPhoto() bool {
	return s.ImageFile != ""
}
