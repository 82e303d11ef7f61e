package state

import (
	"advocates/internal/domain"
)

// AppState contains all the application state owned by the Update loop
type AppState struct {
	// Query state
	RawQuery       string // search text as typed
	DebouncedQuery string // last value of RawQuery that stayed unchanged for the quiet period

	// Derived from (dataset, DebouncedQuery)
	Visible       []domain.Advocate
	Total         int
	SelectedIndex int

	// Load state
	Loading     bool
	LoadSource  string
	LoadError   string
	ResolvedSeq uint64 // highest load sequence already applied or failed

	// UI state
	StatusMessage string
	ShowHelp      bool
	ShowDetail    bool
	DetailContent string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Visible: []domain.Advocate{},
	}
}

// SelectedAdvocate returns the advocate under the cursor
func (s *AppState) SelectedAdvocate() (domain.Advocate, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Visible) {
		return domain.Advocate{}, false
	}
	return s.Visible[s.SelectedIndex], true
}

// SetVisible replaces the visible subset and keeps the cursor in range
func (s *AppState) SetVisible(visible []domain.Advocate, total int) {
	s.Visible = visible
	s.Total = total
	s.ClampSelection()
}

// ClampSelection keeps SelectedIndex inside the visible subset
func (s *AppState) ClampSelection() {
	if s.SelectedIndex >= len(s.Visible) {
		s.SelectedIndex = len(s.Visible) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}

// HasOverlay reports whether a popup covers the table
func (s *AppState) HasOverlay() bool {
	return s.ShowHelp || s.ShowDetail
}

// CloseOverlays hides every popup
func (s *AppState) CloseOverlays() {
	s.ShowHelp = false
	s.ShowDetail = false
	s.DetailContent = ""
}
