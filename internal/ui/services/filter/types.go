package filter

import "advocates/internal/domain"

// key identifies one (dataset, debounced query) input pair
type key struct {
	generation uint64
	query      string
}

// State holds the last computed visible subset
type State struct {
	valid          bool
	key            key
	Visible        []domain.Advocate
	Recomputations int
}
