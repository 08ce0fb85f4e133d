package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/shopwatch/internal/logtail"
)

// problemsFetchLimit caps how many warn/error lines the problems view keeps.
const problemsFetchLimit = 200

// problemsState holds state for the problems view.
type problemsState struct {
	entries []logtail.Entry
	err     error
	loaded  bool
}

type problemsMsg struct {
	entries []logtail.Entry
	err     error
}

func refreshProblemsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		entries, err := logtail.Recent(path, problemsFetchLimit, zerolog.WarnLevel)
		return problemsMsg{entries: entries, err: err}
	}
}

// updateProblemsViewport re-renders log problems and keeps the newest in view.
func (m *Model) updateProblemsViewport() {
	if !m.ready {
		return
	}
	m.problemsViewport.SetContent(m.renderProblemsContent())
	m.problemsViewport.GotoBottom()
}

func (m Model) renderProblemsContent() string {
	styles := m.theme.Styles()

	switch {
	case m.problems.err != nil:
		return styles.DangerText.Render("Error reading log: " + m.problems.err.Error())
	case !m.problems.loaded:
		return styles.MutedText.Render("Loading problems...")
	case len(m.problems.entries) == 0:
		return styles.MutedText.Render("No warnings or errors in " + truncateMiddle(m.logPath, 60))
	}

	var b strings.Builder
	for i, e := range m.problems.entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("%4d │ ", i+1)))
		b.WriteString(formatProblem(e, styles))
	}
	return b.String()
}

// formatProblem renders one entry as "15:04:05 WARN [egg] message: error".
func formatProblem(e logtail.Entry, styles Styles) string {
	levelStyle := styles.WarningText
	if e.Level >= zerolog.ErrorLevel {
		levelStyle = styles.DangerText
	}

	parts := []string{}
	if !e.Time.IsZero() {
		parts = append(parts, styles.MutedText.Render(e.Time.Local().Format("15:04:05")))
	}
	parts = append(parts, levelStyle.Render(strings.ToUpper(e.Level.String())))
	if e.Shop != "" {
		parts = append(parts, styles.AccentText.Render("["+e.Shop+"]"))
	}

	msg := e.Message
	if e.Error != "" {
		msg += ": " + e.Error
	}
	parts = append(parts, styles.Text.Render(msg))
	return strings.Join(parts, " ")
}
