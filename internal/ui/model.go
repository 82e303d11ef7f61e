package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"advocates/internal/config"
	"advocates/internal/debounce"
	"advocates/internal/eventbus"
	"advocates/internal/logic"
	"advocates/internal/ui/handlers"
	"advocates/internal/ui/input"
	inputtypes "advocates/internal/ui/input/types"
	"advocates/internal/ui/services/filter"
	"advocates/internal/ui/state"
	"advocates/internal/ui/views"
)

// chromeLines is the number of screen lines around the table
const chromeLines = 11

// Options holds the collaborators of the UI model
type Options struct {
	Bus    eventbus.EventBus
	Store  logic.RecordStore
	Config *config.Config
	Logger *zap.Logger
	// Clock drives the search debouncer; nil means wall-clock timers
	Clock debounce.Clock
}

// Model represents the UI state
type Model struct {
	ctx    context.Context
	bus    eventbus.EventBus
	config *config.Config
	logger *zap.Logger
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	table       table.Model
	inPagerMode bool // tracks if we're currently in pager mode

	store        logic.RecordStore
	filter       *filter.Service
	debouncer    *debounce.Debouncer[string]
	settled      chan string // debouncer output, drained by waitForSettled
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	inputHandler *input.Handler
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. The search debouncer stops when ctx is done;
// a nil ctx never ends.
func NewModel(ctx context.Context, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Store == nil {
		opts.Store = logic.NewMemoryRecordStore()
	}

	appState := state.NewAppState()
	renderer := views.NewRenderer()

	m := &Model{
		ctx:          ctx,
		bus:          opts.Bus,
		config:       opts.Config,
		logger:       opts.Logger.Named("ui"),
		state:        appState,
		help:         help.New(),
		store:        opts.Store,
		filter:       filter.NewService(opts.Bus),
		settled:      make(chan string, 16),
		renderer:     renderer,
		eventHandler: handlers.NewEventHandler(appState, opts.Store),
		inputHandler: input.New(),
	}

	m.table = table.New(
		table.WithColumns(views.Columns(0)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	m.table.SetStyles(renderer.Styles().Table)

	m.debouncer = debounce.New(ctx, opts.Config.Search.Debounce.Std(), func(q string) {
		select {
		case m.settled <- q:
		case <-ctx.Done():
		}
	}, debounce.WithClock(opts.Clock))

	m.refreshVisible()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// Init starts listening for settled queries and requests the first load
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.waitForSettled(), m.requestLoad())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeTable()
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		if m.state.HasOverlay() {
			return m, m.handleOverlayKey(msg)
		}

		ctx := &input.ModelContext{State: m.state}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	case querySettledMsg:
		if msg.query != m.state.DebouncedQuery {
			m.state.SelectedIndex = 0
		}
		m.state.DebouncedQuery = msg.query
		m.refreshVisible()
		m.logger.Debug("query settled",
			zap.String("query", msg.query),
			zap.Int("visible", len(m.state.Visible)))
		return m, m.waitForSettled()

	case EventMsg:
		changed, cmd := m.eventHandler.HandleEvent(msg.Event)
		if changed {
			m.refreshVisible()
		}
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			// Pager failed, fall back to popup
			m.logger.Warn("pager failed, falling back to popup", zap.Error(msg.err))
			m.showOverlay(msg.kind, msg.content)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case handlers.ClearStatusMsg:
		// Errors stay until the next load
		if m.state.LoadError == "" && !m.state.Loading {
			m.state.StatusMessage = ""
		}
		return m, nil

	default:
		// Cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	searching := m.inputHandler.CurrentMode() == inputtypes.ModeSearch
	_, settling := m.debouncer.Pending()

	footer := ""
	if m.config.UI.ShowHelp {
		if searching {
			footer = m.help.ShortHelpView(inputtypes.Keys.SearchHelp())
		} else {
			footer = m.help.View(inputtypes.Keys)
		}
	}

	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Height:         m.height,
		RawQuery:       m.state.RawQuery,
		DebouncedQuery: m.state.DebouncedQuery,
		Settling:       settling,
		SearchFocused:  searching,
		SearchInput:    m.inputHandler.TextInput().View(),
		Table:          m.table.View(),
		VisibleCount:   len(m.state.Visible),
		Total:          m.state.Total,
		Loading:        m.state.Loading,
		Source:         m.state.LoadSource,
		LoadError:      m.state.LoadError,
		StatusMessage:  m.state.StatusMessage,
		ShowHelp:       m.state.ShowHelp,
		HelpContent:    m.renderer.RenderHelpContent(inputtypes.Keys),
		ShowDetail:     m.state.ShowDetail,
		DetailContent:  m.state.DetailContent,
		Footer:         footer,
	})
}

// Close stops the search debouncer
func (m *Model) Close() {
	m.debouncer.Stop()
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		m.setRawQuery(a.Text)

	case inputtypes.SubmitTextAction:
		if a.Text != m.state.RawQuery {
			m.setRawQuery(a.Text)
		}

	case inputtypes.ResetQueryAction:
		// Same path as typing: the table catches up after the quiet period
		m.setRawQuery("")

	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.RefreshAction:
		return m.requestLoad()

	case inputtypes.OpenDetailAction:
		advocate, ok := m.state.SelectedAdvocate()
		if !ok {
			return nil
		}
		return m.openPager(pagerDetail, m.renderer.RenderDetail(advocate))

	case inputtypes.ToggleHelpAction:
		return m.openPager(pagerHelp, m.renderer.RenderHelpContent(inputtypes.Keys))

	case inputtypes.CloseOverlayAction:
		m.state.CloseOverlays()

	case inputtypes.QuitAction:
		m.debouncer.Stop()
		return tea.Quit
	}

	return nil
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		m.debouncer.Stop()
		return tea.Quit
	case "esc", "q", "?", "enter", "i":
		m.state.CloseOverlays()
	}
	return nil
}

// setRawQuery records the typed query and restarts the quiet period
func (m *Model) setRawQuery(q string) {
	m.state.RawQuery = q
	m.debouncer.Set(q)
}

// refreshVisible recomputes the table from the current dataset and debounced query
func (m *Model) refreshVisible() {
	ds := m.store.Snapshot()
	visible := m.filter.Visible(ds, m.state.DebouncedQuery)
	m.state.SetVisible(visible, ds.Len())

	m.table.SetRows(views.Rows(visible))
	m.table.SetCursor(m.state.SelectedIndex)
}

func (m *Model) navigate(direction string) {
	switch direction {
	case "up":
		m.table.MoveUp(1)
	case "down":
		m.table.MoveDown(1)
	case "pageup":
		m.table.MoveUp(m.table.Height())
	case "pagedown":
		m.table.MoveDown(m.table.Height())
	case "home":
		m.table.GotoTop()
	case "end":
		m.table.GotoBottom()
	}
	m.state.SelectedIndex = m.table.Cursor()
	m.state.ClampSelection()
}

func (m *Model) resizeTable() {
	m.table.SetColumns(views.Columns(m.width))
	m.table.SetWidth(max(m.width-4, 0))
	m.table.SetHeight(max(m.height-chromeLines, 3))
}

// waitForSettled returns a command delivering the next settled query
func (m *Model) waitForSettled() tea.Cmd {
	ch, done := m.settled, m.ctx.Done()
	return func() tea.Msg {
		select {
		case q := <-ch:
			return querySettledMsg{query: q}
		case <-done:
			return nil
		}
	}
}

// requestLoad asks the loader for a fresh dataset
func (m *Model) requestLoad() tea.Cmd {
	if m.bus == nil {
		return nil
	}
	bus := m.bus
	return func() tea.Msg {
		bus.Publish(eventbus.LoadRequestedEvent{})
		return nil
	}
}

// openPager shows content in ov, or in a popup when no program is attached
func (m *Model) openPager(kind pagerKind, content string) tea.Cmd {
	if m.program == nil {
		m.showOverlay(kind, content)
		return nil
	}

	program, pager := m.program, m.pager
	return func() tea.Msg {
		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := pager.Show(content)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return pagerMsg{kind: kind, content: content, err: err}
	}
}

func (m *Model) showOverlay(kind pagerKind, content string) {
	switch kind {
	case pagerHelp:
		m.state.ShowHelp = true
	case pagerDetail:
		m.state.ShowDetail = true
		m.state.DetailContent = content
	}
}
