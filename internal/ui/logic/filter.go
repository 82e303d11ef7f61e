package logic

import (
	"strings"

	"advocates/internal/domain"
)

// NormalizeQuery lowercases a raw query. No trimming or tokenizing is done.
func NormalizeQuery(query string) string {
	return strings.ToLower(query)
}

// Matcher holds a query normalized once so it can be applied to many records
type Matcher struct {
	query string
}

// NewMatcher normalizes query and returns a matcher for it
func NewMatcher(query string) Matcher {
	return Matcher{query: NormalizeQuery(query)}
}

// Query returns the normalized query
func (m Matcher) Query() string {
	return m.query
}

// Match reports whether any field of the advocate contains the query.
// Text fields compare lowercased; numeric fields compare their decimal form.
func (m Matcher) Match(a domain.Advocate) bool {
	if m.query == "" {
		return true
	}

	for _, field := range [...]string{a.FirstName, a.LastName, a.City, a.Degree} {
		if strings.Contains(strings.ToLower(field), m.query) {
			return true
		}
	}

	for _, specialty := range a.Specialties {
		if strings.Contains(strings.ToLower(specialty), m.query) {
			return true
		}
	}

	return strings.Contains(domain.FormatNumber(int64(a.YearsOfExperience)), m.query) ||
		strings.Contains(domain.FormatNumber(a.PhoneNumber), m.query)
}

// Matches checks a single advocate against a raw query
func Matches(a domain.Advocate, query string) bool {
	return NewMatcher(query).Match(a)
}

// Filter returns the advocates matching query, in their original order.
// The result never aliases records.
func Filter(records []domain.Advocate, query string) []domain.Advocate {
	m := NewMatcher(query)
	visible := make([]domain.Advocate, 0, len(records))
	for _, a := range records {
		if m.Match(a) {
			visible = append(visible, a)
		}
	}
	return visible
}
