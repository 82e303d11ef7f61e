package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"advocates/internal/eventbus"
	"advocates/internal/logic"
	"advocates/internal/ui/state"
)

// ClearStatusMsg clears the status line
type ClearStatusMsg struct{}

// statusTimeout is how long a success message stays on screen
const statusTimeout = 3 * time.Second

// EventHandler applies domain events to the record store and UI state
type EventHandler struct {
	state *state.AppState
	store logic.RecordStore
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, store logic.RecordStore) *EventHandler {
	return &EventHandler{
		state: appState,
		store: store,
	}
}

// HandleEvent processes a domain event. It reports whether the dataset was replaced
// and returns any follow-up command.
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) (bool, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.LoadStartedEvent:
		// The bus may deliver a start after its own result
		if e.Seq <= h.state.ResolvedSeq {
			return false, nil
		}
		h.state.Loading = true
		h.state.LoadSource = e.Source
		h.state.StatusMessage = fmt.Sprintf("Loading advocates from %s...", e.Source)

	case eventbus.AdvocatesLoadedEvent:
		if e.Seq <= h.state.ResolvedSeq {
			return false, nil
		}
		h.state.ResolvedSeq = e.Seq
		h.state.Loading = false
		h.state.LoadError = ""

		ds := h.store.Replace(e.Advocates)
		h.state.StatusMessage = fmt.Sprintf("Loaded %d advocates", ds.Len())
		return true, clearStatusAfter(statusTimeout)

	case eventbus.AdvocatesLoadFailedEvent:
		if e.Seq <= h.state.ResolvedSeq {
			return false, nil
		}
		h.state.ResolvedSeq = e.Seq
		h.state.Loading = false
		// The previous dataset stays in place
		h.state.LoadError = fmt.Sprintf("%v", e.Err)
		h.state.StatusMessage = fmt.Sprintf("Error: failed to load advocates: %v", e.Err)
	}

	return false, nil
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
