package input

import (
	"advocates/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of visible advocates
func (c *ModelContext) TotalItems() int {
	return len(c.State.Visible)
}

// RawQuery returns the search text as typed
func (c *ModelContext) RawQuery() string {
	return c.State.RawQuery
}
