package filter

import (
	"advocates/internal/domain"
	"advocates/internal/eventbus"
	"advocates/internal/logic"
	uilogic "advocates/internal/ui/logic"
)

// Service derives the visible subset from the dataset and the debounced query.
// It remembers the last input pair and only filters again when that pair changes.
type Service struct {
	state *State
	bus   eventbus.EventBus
}

// NewService creates a new filter service. bus may be nil.
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// Visible returns the advocates of dataset matching query, in dataset order.
// The returned slice is shared between calls with the same inputs and must
// not be modified.
func (s *Service) Visible(dataset logic.Dataset, query string) []domain.Advocate {
	k := key{generation: dataset.Generation, query: query}
	if s.state.valid && s.state.key == k {
		return s.state.Visible
	}

	s.state.Visible = uilogic.Filter(dataset.Records, query)
	s.state.key = k
	s.state.valid = true
	s.state.Recomputations++

	if s.bus != nil {
		s.bus.Publish(eventbus.FilterAppliedEvent{
			Query:      query,
			Generation: dataset.Generation,
			Visible:    len(s.state.Visible),
			Total:      dataset.Len(),
		})
	}

	return s.state.Visible
}

// Recomputations returns how many times the subset has been recomputed
func (s *Service) Recomputations() int {
	return s.state.Recomputations
}
