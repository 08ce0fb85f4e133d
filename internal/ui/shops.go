package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shopwatch/internal/prefs"
	"github.com/five82/shopwatch/internal/state"
)

// Card sizing for the grid layout.
const (
	cardWidth = 36
	cardGap   = 1
)

// updateShopsViewport re-renders the shop cards into the viewport.
func (m *Model) updateShopsViewport() {
	if !m.ready {
		return
	}
	m.shopsViewport.SetContent(m.renderShops(m.width))
}

// renderShops lays out one card per shop in display order.
func (m Model) renderShops(width int) string {
	styles := m.theme.Styles()

	if !m.view.HasData {
		if m.view.LastError != nil {
			return styles.DangerText.Render("Stock unavailable: " + m.view.LastError.Error())
		}
		return styles.MutedText.Render("Fetching shop stock...")
	}
	if len(m.view.Shops) == 0 {
		return styles.MutedText.Render("No shops reported")
	}

	if m.layout == prefs.LayoutList {
		cards := make([]string, len(m.view.Shops))
		for i, shop := range m.view.Shops {
			cards[i] = renderCard(shop, styles, max(width, cardWidth))
		}
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	columns := max(width/(cardWidth+cardGap), 1)
	var rows []string
	for start := 0; start < len(m.view.Shops); start += columns {
		end := min(start+columns, len(m.view.Shops))
		var row []string
		for i, shop := range m.view.Shops[start:end] {
			if i > 0 {
				row = append(row, strings.Repeat(" ", cardGap))
			}
			row = append(row, renderCard(shop, styles, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard draws one shop: name, countdown, then its item rows.
func renderCard(shop state.ShopSnapshot, styles Styles, width int) string {
	color := styles.ShopColor(shop.Key)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(color).Bold(true).Render(shop.DisplayName))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Restock in "))
	b.WriteString(styles.Text.Bold(true).Render(shop.Countdown))
	b.WriteString("\n")

	if len(shop.Items) == 0 {
		b.WriteString(styles.FaintText.Render("nothing in stock"))
	}
	for i, it := range shop.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.Text.Render(itemLabel(it)))
		b.WriteString("  ")
		b.WriteString(styles.AccentText.Render(fmt.Sprintf("x%d", it.Quantity)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Width(width - 2). // border
		Render(b.String())
}

func itemLabel(it state.Item) string {
	if it.Emoji == "" {
		return it.Name
	}
	return it.Emoji + " " + it.Name
}
