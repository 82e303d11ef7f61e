package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// UpdateTextAction carries the search field contents after every edit
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// SubmitTextAction leaves the search field, keeping its contents
type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// ResetQueryAction clears the search field
type ResetQueryAction struct{}

func (a ResetQueryAction) Type() string { return "reset_query" }

// RefreshAction reloads the dataset from its source
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

// OpenDetailAction shows the advocate under the cursor
type OpenDetailAction struct{}

func (a OpenDetailAction) Type() string { return "open_detail" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// CloseOverlayAction dismisses an open popup
type CloseOverlayAction struct{}

func (a CloseOverlayAction) Type() string { return "close_overlay" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
