// Package state owns the per-shop countdown state and the presentation board
// shared between the poller and the UI.
//
// # Overview
//
// Two types live here:
//
//   - Store: reconciles each poll's server data against the locally tracked
//     countdown for every shop key
//   - Board: holds the most recently delivered snapshot list plus poll health,
//     read by the UI on its own schedule
//
// # Shop Keys
//
// The set of shops is closed. Keys() returns them in display order:
//
//	egg               → "Egg Shop"
//	seed              → "Seed Shop"
//	gear              → "Gear Shop"
//	travelingmerchant → "Traveling Merchant"
//
// Anything else in a payload is ignored by the poller; Reconcile rejects it
// with ErrUnknownShop.
//
// # Reconciliation
//
// Reconcile decides, per key, whether to trust the server's countdown:
//
//	first sighting of key          → parse server text, store {items, parsed}
//	items differ (order-sensitive) → parse server text, store {items, parsed}
//	items identical                → remaining -= interval
//
// On the identical path the server text is never parsed. The local countdown
// therefore drifts from server time over long unchanged runs; a changed
// inventory is the only resync point. Remaining may go below zero while a
// shop waits for its rotation to show up in the feed, and Format clamps it to
// "00h 00m 00s" for display.
//
// A malformed countdown on a reset path returns an error wrapping
// *countdown.ParseError and leaves the key's entry as it was. Other keys are
// unaffected; the poller omits just that shop for the cycle.
//
// # Board
//
//	Producer (Poller):                Consumer (UI):
//	┌───────────────────┐            ┌────────────────┐
//	│ FetchStock()      │            │                │
//	│ store.Reconcile() │            │                │
//	│      ↓            │            │                │
//	│ board.Present()   │───────────→│ board.View()   │
//	│  or PollFailed()  │  (RWMutex) │      ↓         │
//	└───────────────────┘            │  render cards  │
//	                                 └────────────────┘
//
// Present replaces the whole list; PollFailed keeps the last good list and
// counts consecutive failures so the header can show an offline state once
// two cycles in a row fail. View returns deep copies.
//
// # Concurrency
//
// Only one poll cycle runs at a time, so Reconcile calls never interleave in
// practice. The Store still takes a mutex so State and Len are safe to call
// from other goroutines. Both types are usable as zero values.
package state
