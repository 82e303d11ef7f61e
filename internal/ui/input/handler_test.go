package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advocates/internal/domain"
	"advocates/internal/ui/input/types"
	"advocates/internal/ui/state"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newContext(visible int, raw string) *ModelContext {
	s := state.NewAppState()
	s.Visible = make([]domain.Advocate, visible)
	s.RawQuery = raw
	return &ModelContext{State: s}
}

func TestSlashEntersSearchMode(t *testing.T) {
	h := New()
	actions, cmd := h.HandleKey(runes("/"), newContext(2, ""))

	assert.Empty(t, actions)
	assert.NotNil(t, cmd, "focusing starts the cursor blink")
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.True(t, h.TextInput().Focused())
}

func TestTypingEmitsUpdateText(t *testing.T) {
	h := New()
	ctx := newContext(2, "")
	h.HandleKey(runes("/"), ctx)

	actions, _ := h.HandleKey(runes("a"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "a"}, actions[0])

	actions, _ = h.HandleKey(runes("u"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "au"}}, actions)
}

func TestCursorMovementDoesNotEmitUpdate(t *testing.T) {
	h := New()
	ctx := newContext(2, "")
	h.HandleKey(runes("/"), ctx)
	h.HandleKey(runes("a"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, ctx)
	assert.Empty(t, actions)
}

func TestEnterLeavesSearchKeepingText(t *testing.T) {
	h := New()
	ctx := newContext(2, "")
	h.HandleKey(runes("/"), ctx)
	h.HandleKey(runes("a"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "a", Mode: types.ModeSearch}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Equal(t, "a", h.TextInput().Value())
	assert.False(t, h.TextInput().Focused())
}

func TestCtrlRResetsInBothModes(t *testing.T) {
	h := New()
	ctx := newContext(2, "")
	h.HandleKey(runes("/"), ctx)
	h.HandleKey(runes("a"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlR}, ctx)
	assert.Equal(t, []types.Action{types.ResetQueryAction{}}, actions)
	assert.Equal(t, "", h.TextInput().Value())
	assert.Equal(t, types.ModeSearch, h.CurrentMode())

	h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlR}, newContext(2, "a"))
	assert.Equal(t, []types.Action{types.ResetQueryAction{}}, actions)
}

func TestResetWithEmptyQueryIsNoop(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(runes("x"), newContext(2, ""))
	assert.Empty(t, actions)
}

func TestNormalModeBindings(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want types.Action
	}{
		{"down", tea.KeyMsg{Type: tea.KeyDown}, types.NavigateAction{Direction: "down"}},
		{"j", runes("j"), types.NavigateAction{Direction: "down"}},
		{"k", runes("k"), types.NavigateAction{Direction: "up"}},
		{"top", runes("g"), types.NavigateAction{Direction: "home"}},
		{"bottom", runes("G"), types.NavigateAction{Direction: "end"}},
		{"detail", tea.KeyMsg{Type: tea.KeyEnter}, types.OpenDetailAction{}},
		{"reload", runes("r"), types.RefreshAction{}},
		{"help", runes("?"), types.ToggleHelpAction{}},
		{"quit", runes("q"), types.QuitAction{Force: false}},
		{"force quit", tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{Force: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			actions, _ := h.HandleKey(tt.key, newContext(2, ""))
			assert.Equal(t, []types.Action{tt.want}, actions)
		})
	}
}

func TestDetailNeedsAVisibleRow(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, newContext(0, ""))
	assert.Empty(t, actions)
}

func TestLettersAreTextInSearchMode(t *testing.T) {
	h := New()
	ctx := newContext(2, "")
	h.HandleKey(runes("/"), ctx)

	for _, r := range "qjx?" {
		h.HandleKey(runes(string(r)), ctx)
	}
	assert.Equal(t, "qjx?", h.TextInput().Value())
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
}
