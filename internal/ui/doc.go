// Package ui is the Bubble Tea terminal interface for shopwatch.
//
// # Views
//
//   - Shops: one card per shop in fixed order (egg, seed, gear, traveling
//     merchant) with the restock countdown and every item as "emoji name  xQTY".
//     Cards sit in a grid or a single column depending on the saved layout.
//   - Problems: warn and error lines from shopwatch's own log file, newest last.
//
// The header shows the title and feed health: connecting, live with the last
// update time, stale after one failed poll, offline after two in a row.
//
// # Data Flow
//
// The poller writes to a state.Board. The model reads a copy of it on its own
// tick (fetchViewCmd) and replaces the rendered shop list wholesale, so a
// shop missing from a cycle disappears from the screen.
//
// # Key Bindings
//
//   - s / esc: Shops view
//   - p: Problems view
//   - tab: Switch view
//   - j/k, g/G, ctrl+d/u: Scroll
//   - L: Toggle grid/list layout (saved to prefs)
//   - T: Cycle theme (saved to prefs)
//   - h or ?: Help
//   - e or ctrl+c: Exit
package ui
