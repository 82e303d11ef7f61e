package domain

import "strconv"

// Advocate represents one advocate entry in the dataset
type Advocate struct {
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	City              string   `json:"city"`
	Degree            string   `json:"degree"`
	Specialties       []string `json:"specialties"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	// PhoneNumber is kept numeric to match the upstream data model.
	// Leading zeros and any formatting are lost on the way in.
	PhoneNumber int64 `json:"phoneNumber"`
}

// FullName returns "First Last", skipping empty parts
func (a Advocate) FullName() string {
	switch {
	case a.FirstName == "":
		return a.LastName
	case a.LastName == "":
		return a.FirstName
	default:
		return a.FirstName + " " + a.LastName
	}
}

// FormatNumber is the canonical decimal rendering of numeric advocate fields.
// Matching and display both go through it so they never disagree.
func FormatNumber(n int64) string {
	return strconv.FormatInt(n, 10)
}
