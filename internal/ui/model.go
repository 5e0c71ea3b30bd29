package ui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"excelsearch/internal/catalog"
	"excelsearch/internal/config"
	"excelsearch/internal/eventbus"
	"excelsearch/internal/ui/commands"
	"excelsearch/internal/ui/handlers"
	"excelsearch/internal/ui/input"
	inputtypes "excelsearch/internal/ui/input/types"
	"excelsearch/internal/ui/state"
	"excelsearch/internal/ui/status"
	"excelsearch/internal/ui/views"
)

// statusTTL is how long transient notices stay on screen
const statusTTL = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus        eventbus.EventBus
	config     *config.Config
	msgs       status.Messages
	state      *state.AppState // centralized state
	backendURL string

	// UI-specific state not in AppState
	width        int
	height       int
	help         help.Model
	keys         views.KeyMap
	spinner      spinner.Model
	spinning     bool
	countPending bool
	statusSeq    int  // identifies the notice a clearStatusMsg belongs to
	inPagerMode  bool // tracks if we're currently in pager mode

	// Handlers
	renderer     *views.Renderer         // view renderer
	results      *handlers.ResultHandler // backend result processing
	cmdExecutor  *commands.Executor      // command executor
	inputHandler *input.Handler          // input handling
	helpOps      *HelpOps                // help pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. ctx bounds every backend request.
func NewModel(ctx context.Context, bus eventbus.EventBus, backend catalog.Backend, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState()
	msgs := status.For(cfg.Language)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		bus:          bus,
		config:       cfg,
		msgs:         msgs,
		state:        appState,
		backendURL:   cfg.BackendURL,
		help:         help.New(),
		keys:         views.NewKeyMap(msgs),
		spinner:      sp,
		renderer:     views.NewRenderer(cfg.UISettings.ShowProductCode, cfg.UISettings.ShowUploadDate),
		inputHandler: input.New(cfg.StartDir),
		helpOps:      NewHelpOps(),
	}

	m.cmdExecutor = commands.NewExecutor(ctx, appState, bus, backend)
	m.results = handlers.NewResultHandler(appState, bus, m.inputHandler.ResetPicker, m.inputHandler.ClearDraft, m.fetchCount)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Init fetches the product count once
func (m *Model) Init() tea.Cmd {
	return m.RefreshCount()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, m.inputHandler.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// The inline help popup swallows keys until it is closed
		if m.state.ShowHelp {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc", "?", "q":
				m.state.ShowHelp = false
			}
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, &modelContext{state: m.state})

		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		// Stop ticking once nothing is in flight
		if !m.busy() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearStatusMsg:
		// A newer notice keeps its own timer
		if msg.seq == m.statusSeq {
			m.state.StatusMessage = ""
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case helpPagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			// Fall back to the inline popup
			log.Printf("[ui] help pager unavailable: %v", msg.err)
			m.state.ShowHelp = true
		}
		return m, nil

	case commands.CountFetchedMsg:
		m.countPending = false
	}

	if cmd, handled := m.results.Handle(msg); handled {
		return m, tea.Batch(cmd, m.startSpinner())
	}

	return m, m.inputHandler.Update(msg)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			return m.SubmitSearch(a.Text)
		}

	case inputtypes.ResubmitSearchAction:
		return m.SubmitSearch(m.state.Search.Query())

	case inputtypes.ClearSearchAction:
		return m.SubmitSearch("")

	case inputtypes.SelectFileAction:
		return m.SelectFile(a.Path)

	case inputtypes.ConfirmClearAction:
		return m.ClearCatalog()

	case inputtypes.BusyAction:
		return m.notify(m.msgs.CatalogBusy)

	case inputtypes.ToggleHelpAction:
		if m.helpOps.Available() {
			return m.fetchHelpPager(m.helpContent())
		}
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit

	case inputtypes.UpdateTextAction, inputtypes.CancelTextAction:
		// The text input owns its value; nothing to mirror
	}

	return nil
}

// SubmitSearch sends query to the backend. A blank query clears the results.
func (m *Model) SubmitSearch(query string) tea.Cmd {
	return tea.Batch(m.cmdExecutor.ExecuteSearch(query), m.startSpinner())
}

// SelectFile validates and uploads the spreadsheet at path
func (m *Model) SelectFile(path string) tea.Cmd {
	cmd := m.cmdExecutor.ExecuteUpload(path)
	if cmd == nil {
		// Rejected or ignored: the picker is ready for the next file
		m.inputHandler.ResetPicker()
		return nil
	}
	return tea.Batch(cmd, m.startSpinner())
}

// ClearCatalog wipes every product on the backend
func (m *Model) ClearCatalog() tea.Cmd {
	return tea.Batch(m.cmdExecutor.ExecuteClear(), m.startSpinner())
}

// RefreshCount fetches the product count
func (m *Model) RefreshCount() tea.Cmd {
	return tea.Batch(m.fetchCount(), m.startSpinner())
}

func (m *Model) fetchCount() tea.Cmd {
	m.countPending = true
	return m.cmdExecutor.ExecuteCount()
}

// State exposes the application state for rendering and tests
func (m *Model) State() *state.AppState {
	return m.state
}

// Mode returns the current input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.GetMode()
}

func (m *Model) busy() bool {
	return m.countPending || m.state.Search.Loading() || m.state.Ingest.Busy()
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning || !m.busy() {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) notify(text string) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	m.state.StatusMessage = text
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m *Model) navigate(direction string) {
	switch direction {
	case "up":
		m.state.MoveSelection(-1)
	case "down":
		m.state.MoveSelection(1)
	case "pageup":
		m.state.MoveSelection(-m.state.ViewportHeight)
	case "pagedown":
		m.state.MoveSelection(m.state.ViewportHeight)
	case "home":
		m.state.SelectEdge(true)
	case "end":
		m.state.SelectEdge(false)
	}
}

// updateViewportHeight fits the result list between the header and footer
func (m *Model) updateViewportHeight() {
	// padding, title, status lines, result header, detail line and footer
	const chrome = 14
	m.state.SetViewportHeight(m.height - chrome)
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	ingestText, ingestKind := m.msgs.Ingest(m.state.Ingest)
	search := m.state.Search

	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Messages:       m.msgs,
		Count:          m.state.Count.Count(),
		CountLoaded:    m.state.Count.Loaded(),
		SearchPhase:    search.Phase(),
		Query:          search.Query(),
		Results:        search.Results(),
		Total:          search.Total(),
		SearchErr:      search.Err(),
		IngestText:     ingestText,
		IngestKind:     ingestKind,
		StatusMessage:  m.state.StatusMessage,
		SelectedIndex:  m.state.SelectedIndex,
		ViewportOffset: m.state.ViewportOffset,
		ViewportHeight: m.state.ViewportHeight,
		Busy:           m.busy(),
		Spinner:        m.spinner.View(),
		ShowHelp:       m.state.ShowHelp,
		HelpModel:      m.help,
		Keys:           m.keys,
	}

	switch mode := m.inputHandler.GetMode(); mode {
	case inputtypes.ModeSearch:
		vs.InputMode = mode.String()
		vs.TextInput = m.inputHandler.GetTextInput().View()
	case inputtypes.ModeUpload:
		vs.InputMode = mode.String()
		vs.PickerView = m.inputHandler.PickerView()
		vs.PickerDir = m.inputHandler.PickerDir()
	case inputtypes.ModeClearConfirm:
		vs.InputMode = mode.String()
	}

	return vs
}

// modelContext implements the input Context over the application state
type modelContext struct {
	state *state.AppState
}

func (c *modelContext) CurrentQuery() string { return c.state.Search.Query() }
func (c *modelContext) SearchLoading() bool  { return c.state.Search.Loading() }
func (c *modelContext) IngestBusy() bool     { return c.state.Ingest.Busy() }
func (c *modelContext) ResultCount() int     { return len(c.state.Search.Results()) }
