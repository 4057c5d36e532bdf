package views

import (
	"fmt"
	"strings"

	"tunegrip/internal/domain"
)

// Pane identifies which pane holds keyboard focus
type Pane int

// Panes
const (
	PaneSearch Pane = iota
	PaneHistory
)

// State carries everything the renderer needs for one frame
type State struct {
	InputView  string // rendered text input
	Results    []string
	History    []domain.HistoryEntry
	Cursor     int // highlighted row in the focused pane
	Focused    Pane
	Searching  bool
	StatusMsg  string
	StatusErr  bool
	Width      int
	Height     int
	HelpFooter string
}

// Renderer turns UI state into the terminal frame
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer with default styles
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the full frame
func (r *Renderer) Render(s State) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("tunegrip"))
	b.WriteString("\n")

	b.WriteString(r.styles.InputBox.Render(s.InputView))
	b.WriteString("\n")

	b.WriteString(r.renderResults(s))

	// Hidden while empty; shown as soon as a selection is recorded
	if len(s.History) > 0 {
		b.WriteString("\n")
		b.WriteString(r.renderHistory(s))
	}

	b.WriteString("\n")
	b.WriteString(r.renderStatus(s))

	if s.HelpFooter != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Help.Render(s.HelpFooter))
	}

	return r.styles.Main.Render(b.String())
}

// renderResults renders the result pane
func (r *Renderer) renderResults(s State) string {
	title := r.styles.PaneTitle.Render("Results")

	if len(s.Results) == 0 {
		var hint string
		if s.Searching {
			hint = r.styles.StatusLoading.Render("searching...")
		} else {
			hint = r.styles.Dim.Render("type at least a few characters to search")
		}
		return r.styles.ResultBox.Render(title + "\n" + hint)
	}

	var rows []string
	for i, res := range s.Results {
		row := res
		if s.Focused == PaneSearch && i == s.Cursor {
			row = r.styles.SelectedBg.Render("> " + res)
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}
	return r.styles.ResultBox.Render(title + "\n" + strings.Join(rows, "\n"))
}

// renderHistory renders the selection history pane
func (r *Renderer) renderHistory(s State) string {
	title := r.styles.PaneTitle.Render(fmt.Sprintf("History (%d)", len(s.History)))

	var rows []string
	for i, entry := range s.History {
		row := fmt.Sprintf("%s  %s", entry.Title, r.styles.Dim.Render(entry.CreatedAt.Format("15:04:05")))
		if s.Focused == PaneHistory && i == s.Cursor {
			row = r.styles.SelectedBg.Render("> " + row)
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}
	return r.styles.HistoryBox.Render(title + "\n" + strings.Join(rows, "\n"))
}

// renderStatus renders the one-line status area
func (r *Renderer) renderStatus(s State) string {
	if s.StatusMsg == "" {
		return ""
	}
	if s.StatusErr {
		return r.styles.StatusError.Render(s.StatusMsg)
	}
	return r.styles.Status.Render(s.StatusMsg)
}
