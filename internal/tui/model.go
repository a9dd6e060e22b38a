package tui

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/bstn-hfmn/rustman/internal/config"
	"github.com/bstn-hfmn/rustman/internal/editor"
	"github.com/bstn-hfmn/rustman/internal/executor"
	"github.com/bstn-hfmn/rustman/internal/focus"
	"github.com/bstn-hfmn/rustman/internal/history"
	"github.com/bstn-hfmn/rustman/internal/keybinds"
	"github.com/bstn-hfmn/rustman/internal/types"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Mode represents the current TUI mode
type Mode int

const (
	// ModeNavigate moves the selection between panes
	ModeNavigate Mode = iota
	// ModeEdit sends keys to the selected pane
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "EDIT"
	}
	return "NAVIGATE"
}

// Model represents the TUI state
type Model struct {
	settings       *config.Settings
	historyManager *history.Manager // nil when history is disabled
	keybinds       *keybinds.Registry
	mode           Mode

	// Panes
	grid         *focus.Grid
	urlField     *editor.TextField
	requestField *editor.TextField
	caret        cursor.Model
	historyState *HistoryState
	responseView viewport.Model

	// Request lifecycle
	currentRequest    *types.Request
	currentResponse   *types.Response
	requestSeq        int // Results from older requests are dropped
	spinner           spinner.Model
	loading           bool
	requestCancelFunc context.CancelFunc

	// UI state
	width     int
	height    int
	statusMsg string
	errorMsg  string
}

// New creates a TUI model. historyManager may be nil.
func New(settings *config.Settings, registry *keybinds.Registry, historyManager *history.Manager) Model {
	if settings == nil {
		settings = config.Default()
	}
	if registry == nil {
		registry = keybinds.NewDefaultRegistry()
	}

	caret := cursor.New()
	caret.Blur()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleWarning

	return Model{
		settings:       settings,
		historyManager: historyManager,
		keybinds:       registry,
		mode:           ModeNavigate,
		grid:           focus.NewGrid(),
		urlField:       editor.New("URL"),
		requestField:   editor.New("Request"),
		caret:          caret,
		historyState:   NewHistoryState(),
		responseView:   viewport.New(80, 20),
		spinner:        s,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.loadHistory()
}

// Cleanup releases resources held by the model
func (m *Model) Cleanup() {
	if m.requestCancelFunc != nil {
		m.requestCancelFunc()
		m.requestCancelFunc = nil
	}
	if m.historyManager != nil {
		if err := m.historyManager.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing history database: %v\n", err)
		}
		m.historyManager = nil
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewport()

	case requestExecutedMsg:
		if msg.seq != m.requestSeq {
			break
		}
		m.loading = false
		m.requestCancelFunc = nil
		m.currentResponse = msg.response
		m.errorMsg = ""
		if msg.response.Error != "" {
			m.setError(categorizeRequestError(msg.response.Error))
		} else {
			m.statusMsg = fmt.Sprintf("%s in %s", msg.response.StatusText, executor.FormatDuration(msg.response.Time))
		}
		m.updateResponseView()
		if msg.saved {
			cmd = m.loadHistory()
		}

	case requestFailedMsg:
		if msg.seq != m.requestSeq {
			break
		}
		m.loading = false
		m.requestCancelFunc = nil
		m.setError(msg.err.Error())

	case historyLoadedMsg:
		m.historyState.SetAllEntries(msg.entries)
		log.Printf("history: loaded %d entries", len(msg.entries))

	case historyDeletedMsg:
		entries := m.historyState.GetAllEntries()
		kept := entries[:0]
		for _, e := range entries {
			if e.ID != msg.id {
				kept = append(kept, e)
			}
		}
		m.historyState.SetAllEntries(kept)
		m.historyState.SetIndex(msg.index)
		m.statusMsg = "History entry deleted"

	case historyClearedMsg:
		m.historyState.Clear()
		m.statusMsg = "History cleared"

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
		}

	case errorMsg:
		m.loading = false
		m.setError(string(msg))
	}

	if cmd == nil {
		// blink messages
		m.caret, cmd = m.caret.Update(msg)
	}

	return m, cmd
}

func (m *Model) setError(text string) {
	log.Printf("error: %s", text)
	m.errorMsg = ansi.Truncate(text, MaxErrorWidth, "...")
	m.statusMsg = ""
}

func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	return m.renderMain()
}

type requestExecutedMsg struct {
	seq      int
	response *types.Response
	saved    bool
}

type requestFailedMsg struct {
	seq int
	err error
}

type historyLoadedMsg struct {
	entries []types.HistoryEntry
}

type historyDeletedMsg struct {
	id    int64
	index int // selection to restore
}

type historyClearedMsg struct{}

type errorMsg string
