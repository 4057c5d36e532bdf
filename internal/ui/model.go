package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tunegrip/internal/config"
	"tunegrip/internal/debounce"
	"tunegrip/internal/domain"
	"tunegrip/internal/eventbus"
	"tunegrip/internal/history"
	"tunegrip/internal/session"
	"tunegrip/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	config  *config.Config
	session *session.Session
	history *history.Store

	input     textinput.Model
	debounced *debounce.Debounced[string]

	results        []string
	historyEntries []domain.HistoryEntry
	cursor         int
	focused        views.Pane
	searching      bool
	statusMsg      string
	statusErr      bool
	width          int
	height         int

	renderer *views.Renderer
	helpOps  *HelpOps

	// Program reference for terminal management (help pager)
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, sess *session.Session, hist *history.Store) *Model {
	ti := textinput.New()
	ti.Placeholder = "search the catalog..."
	ti.Prompt = "/ "
	ti.Focus()

	m := &Model{
		config:   cfg,
		session:  sess,
		history:  hist,
		input:    ti,
		focused:  views.PaneSearch,
		renderer: views.NewRenderer(),
	}

	// Keystrokes reach the session only after the quiet period
	m.debounced = debounce.Wrap(sess.Start, time.Duration(cfg.DebounceMs)*time.Millisecond)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager error: %v", msg.err)
			m.setStatus(fmt.Sprintf("help: %v", msg.err), true)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.debounced.Stop()
		m.session.Close()
		return m, tea.Quit

	case "tab":
		m.togglePane()
		return m, nil

	case "f1":
		return m, m.showHelpCmd()
	}

	if m.focused == views.PaneHistory {
		return m.handleHistoryKey(msg)
	}
	return m.handleSearchKey(msg)
}

// handleSearchKey processes keys while the search pane has focus
func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down":
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if len(m.results) > 0 && m.cursor < len(m.results) {
			m.selectResult(m.results[m.cursor])
		} else {
			// Nothing displayed yet: search right away, skipping the
			// debounce window
			m.session.Start(m.input.Value())
		}
		return m, nil

	case "esc":
		if m.input.Value() != "" {
			m.input.SetValue("")
			m.session.Start("")
			return m, nil
		}
		m.debounced.Stop()
		m.session.Close()
		return m, tea.Quit
	}

	// Everything else edits the input
	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		m.debounced.Call(m.input.Value())
	}
	return m, cmd
}

// handleHistoryKey processes keys while the history pane has focus
func (m *Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.historyEntries)-1 {
			m.cursor++
		}

	case "enter":
		// Reuse: run the stored title as a fresh search
		if m.cursor < len(m.historyEntries) {
			title := m.historyEntries[m.cursor].Title
			m.input.SetValue(title)
			m.focused = views.PaneSearch
			m.cursor = 0
			m.session.Start(title)
		}

	case "d", "x":
		if m.cursor < len(m.historyEntries) {
			m.history.Remove(m.historyEntries[m.cursor].Title)
		}

	case "esc":
		m.focused = views.PaneSearch
		m.cursor = 0
	}

	return m, nil
}

// togglePane moves focus between the search and history panes
func (m *Model) togglePane() {
	if m.focused == views.PaneSearch && len(m.historyEntries) > 0 {
		m.focused = views.PaneHistory
		m.cursor = 0
		m.input.Blur()
		return
	}
	m.focused = views.PaneSearch
	m.cursor = 0
	m.input.Focus()
}

// selectResult records a displayed result into history
func (m *Model) selectResult(title string) {
	m.history.Add(title)
}

// handleEvent applies a domain event to the UI state
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch ev := event.(type) {
	case eventbus.SearchStartedEvent:
		m.searching = true
		m.setStatus(fmt.Sprintf("searching for %q...", ev.Term), false)

	case eventbus.SearchCompletedEvent:
		m.searching = false
		m.results = ev.Results
		if m.focused == views.PaneSearch {
			m.cursor = 0
		}
		m.setStatus(fmt.Sprintf("%d results for %q", len(ev.Results), ev.Term), false)

	case eventbus.SearchFailedEvent:
		// Keep whatever is displayed; only report the failure
		m.searching = false
		m.setStatus(fmt.Sprintf("search failed: %v", ev.Err), true)

	case eventbus.SearchClearedEvent:
		m.searching = false
		m.results = nil
		if m.focused == views.PaneSearch {
			m.cursor = 0
		}
		m.setStatus("", false)

	case eventbus.HistoryAddedEvent:
		m.refreshHistory()
		m.setStatus(fmt.Sprintf("added %q to history", ev.Entry.Title), false)

	case eventbus.HistoryDuplicateEvent:
		m.setStatus(fmt.Sprintf("%q is already in history", ev.Title), false)

	case eventbus.HistoryRemovedEvent:
		m.refreshHistory()
		m.setStatus(fmt.Sprintf("removed %q from history", ev.Title), false)

	case eventbus.ErrorEvent:
		m.setStatus(ev.Message, true)
	}
}

// refreshHistory re-reads the store and keeps the cursor in range
func (m *Model) refreshHistory() {
	m.historyEntries = m.history.Entries()

	if len(m.historyEntries) == 0 {
		// Pane disappears; focus falls back to search
		m.focused = views.PaneSearch
		m.cursor = 0
		m.input.Focus()
		return
	}
	if m.focused == views.PaneHistory && m.cursor >= len(m.historyEntries) {
		m.cursor = len(m.historyEntries) - 1
	}
}

// setStatus updates the status line
func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}

// showHelpCmd opens the help pager
func (m *Model) showHelpCmd() tea.Cmd {
	if m.helpOps == nil {
		return nil
	}
	content := NewHelpRenderer().RenderHelpContentPlain()
	return func() tea.Msg {
		return helpPagerMsg{err: m.helpOps.ShowHelpInPager(content)}
	}
}

// View renders the UI
func (m *Model) View() string {
	return m.renderer.Render(views.State{
		InputView:  m.input.View(),
		Results:    m.results,
		History:    m.historyEntries,
		Cursor:     m.cursor,
		Focused:    m.focused,
		Searching:  m.searching,
		StatusMsg:  m.statusMsg,
		StatusErr:  m.statusErr,
		Width:      m.width,
		Height:     m.height,
		HelpFooter: "tab panes · enter select · d remove · f1 help · esc/ctrl+c quit",
	})
}
