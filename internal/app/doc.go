// Package app is the composition root of shopwatch.
//
// # Overview
//
// Run loads configuration, opens the log file, builds the stock client and
// starts the poller. With a terminal it then hands control to the TUI; in
// headless mode the poller itself blocks and each delivered cycle is logged.
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        TOML file plus SHOPWATCH_* env
//	       ├─────> setupLogging()       zerolog to file (and stderr headless)
//	       ├─────> gagstock.NewClient() HTTP client for the stock feed
//	       ├─────> NewPoller()          Tick-driven fetch and reconcile
//	       └─────> ui.Run()             Start TUI (blocks)
//
// # Poll Cycle
//
// The poller fires once immediately and then on every tick of its clock
// (default 2 seconds). A cycle:
//
//   - fetches the stock document once
//   - walks the known shops in display order (egg, seed, gear, traveling merchant)
//   - reconciles each present shop against the state.Store
//   - hands the ordered snapshot list to the Presenter
//
// Only one cycle runs at a time. A tick that arrives while a fetch is still
// outstanding is dropped, never queued.
//
// A failed fetch leaves the store untouched and is reported through
// Presenter.PollFailed. A shop whose countdown text will not parse is logged
// and left out of that cycle only.
//
// # Presenters
//
// state.Board implements Presenter for the TUI, which reads it on its own
// refresh tick. Headless runs use a presenter that writes one log line per
// shop.
//
// # Shutdown
//
// Cancelling the context stops the ticker and aborts the in-flight request.
// Run waits for that cycle to finish before returning. A cancelled fetch is
// not reported as a poll failure.
package app
