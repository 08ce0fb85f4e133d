package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const appTitle = "Grow a Garden — Shop Tracker"

// wideHeaderWidth is the minimum width that also shows the stock endpoint.
const wideHeaderWidth = 100

// renderHeader renders the title and poll health on one line.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	sep := "  "

	parts := []string{styles.Logo.Render(appTitle)}
	parts = append(parts, m.statusParts(styles)...)

	if m.width >= wideHeaderWidth && m.endpoint != "" {
		parts = append(parts, styles.FaintText.Render(truncateMiddle(m.endpoint, 40)))
	}

	return styles.Header.Width(m.width).MaxHeight(1).Render(strings.Join(parts, sep))
}

// statusParts describes the feed: connecting, live, failing or offline.
func (m Model) statusParts(styles Styles) []string {
	v := m.view
	switch {
	case v.IsOffline():
		return []string{
			styles.DangerText.Render("● OFFLINE"),
			styles.WarningText.Render(fmt.Sprintf("%d failed %s, retrying...", v.ConsecutiveFailures, plural(v.ConsecutiveFailures, "poll"))),
			styles.MutedText.Render(m.lastGoodLabel()),
		}
	case v.LastError != nil:
		return []string{
			styles.WarningText.Render("● STALE"),
			styles.MutedText.Render("last poll failed"),
			styles.MutedText.Render(m.lastGoodLabel()),
		}
	case !v.HasData:
		return []string{styles.WarningText.Bold(true).Render("Connecting...")}
	default:
		return []string{
			styles.SuccessText.Render("● LIVE"),
			styles.MutedText.Render("updated " + v.LastUpdated.Format("15:04:05")),
		}
	}
}

func (m Model) lastGoodLabel() string {
	if !m.view.HasData {
		return "no stock yet"
	}
	return fmt.Sprintf("showing %d %s", len(m.view.Shops), plural(len(m.view.Shops), "shop"))
}

// renderCommandBar renders the view tabs and the short key help.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	tab := func(label string, view View) string {
		if m.currentView == view {
			return styles.AccentText.Bold(true).Render("[" + label + "]")
		}
		return styles.MutedText.Render(" " + label + " ")
	}

	tabs := lipgloss.JoinHorizontal(lipgloss.Top, tab("Shops", ViewShops), tab("Problems", ViewProblems))
	return styles.Footer.Width(m.width).MaxHeight(1).Render(tabs + "  " + m.help.ShortHelpView(m.keys.ShortHelp()))
}
