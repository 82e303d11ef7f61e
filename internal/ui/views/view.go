package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	RawQuery       string
	DebouncedQuery string
	Settling       bool // RawQuery is still inside its quiet period
	SearchFocused  bool
	SearchInput    string // rendered text input
	Table          string // rendered table
	VisibleCount   int
	Total          int
	Loading        bool
	Source         string // where the dataset comes from
	LoadError      string
	StatusMessage  string
	ShowHelp       bool
	HelpContent    string
	ShowDetail     bool
	DetailContent  string
	Footer         string // rendered short help
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowDetail && state.DetailContent != "" {
		return r.popupRender.RenderPopupOverlay(state.DetailContent, state.Height, state.Width, r.styles.InfoBox)
	}
	if state.ShowHelp {
		return r.popupRender.RenderPopupOverlay(state.HelpContent, state.Height, state.Width, r.styles.InfoBox)
	}

	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")

	// Search field, then the echo of what is being searched for
	content.WriteString(state.SearchInput)
	content.WriteString("\n")
	if state.RawQuery != "" {
		content.WriteString(r.styles.Searching.Render(fmt.Sprintf("Searching for: %s", state.RawQuery)))
	}
	content.WriteString("\n\n")

	switch {
	case state.Total == 0 && state.Loading:
		content.WriteString(r.styles.Dim.Render("Loading advocates..."))
	case state.Total == 0:
		content.WriteString(r.styles.Dim.Render("No advocates loaded. Press r to reload."))
	case state.VisibleCount == 0:
		content.WriteString(r.styles.Dim.Render(fmt.Sprintf("No advocates match %q.", state.DebouncedQuery)))
	default:
		content.WriteString(state.Table)
	}

	if status := r.renderStatus(state); status != "" {
		content.WriteString("\n")
		content.WriteString(status)
	}

	if state.Footer != "" {
		r.padToBottom(content, state.Height)
		content.WriteString("\n")
		content.WriteString(state.Footer)
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitleLine renders the title with right-aligned indicators
func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("Solace Advocates")

	indicators := []string{}
	if state.Loading {
		indicators = append(indicators, r.styles.StatusLoading.Render("↻ Loading"))
	}
	if state.Settling {
		indicators = append(indicators, r.styles.Dim.Render("… filtering"))
	}
	if state.DebouncedQuery != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[%d of %d]", state.VisibleCount, state.Total)))
	} else if state.Total > 0 {
		indicators = append(indicators, r.styles.Dim.Render(fmt.Sprintf("%d advocates", state.Total)))
	}
	if len(indicators) == 0 {
		return logo
	}

	rightContent := strings.Join(indicators, "  ")

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	// Account for main container padding
	paddingWidth := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return logo + strings.Repeat(" ", paddingWidth) + rightContent
}

func (r *Renderer) renderStatus(state ViewState) string {
	switch {
	case state.StatusMessage == "" && state.Source != "":
		return r.styles.Dim.Render("Source: " + state.Source)
	case state.StatusMessage == "":
		return ""
	case state.LoadError != "":
		return r.styles.StatusError.Render(state.StatusMessage)
	case state.Loading:
		return r.styles.StatusLoading.Render(state.StatusMessage)
	default:
		return r.styles.StatusSuccess.Render(state.StatusMessage)
	}
}

// padToBottom pushes the footer to the last line of the screen
func (r *Renderer) padToBottom(content *strings.Builder, height int) {
	// Account for container padding (1 top, 1 bottom from Padding(1, 2))
	availableLines := height - 2
	if availableLines <= 0 {
		return
	}
	currentLines := strings.Count(content.String(), "\n") + 1
	if padding := availableLines - currentLines - 1; padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}
}
