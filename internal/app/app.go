package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/five82/shopwatch/internal/config"
	"github.com/five82/shopwatch/internal/gagstock"
	"github.com/five82/shopwatch/internal/prefs"
	"github.com/five82/shopwatch/internal/state"
	"github.com/five82/shopwatch/internal/ui"
)

// Options configure the shopwatch application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/shopwatch/prefs.toml
	PollEvery  int    // seconds; zero uses the configured interval
	Headless   bool   // log each cycle instead of starting the TUI
}

// Run boots shopwatch and blocks until the context is cancelled or the user
// quits the TUI.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = time.Duration(opts.PollEvery) * time.Second
	}

	logFile, err := setupLogging(cfg, opts.Headless)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logFile.Close()

	client, err := gagstock.NewClient(cfg.Endpoint, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init stock client: %w", err)
	}

	log.Info().
		Str("endpoint", client.Endpoint()).
		Dur("interval", cfg.PollInterval).
		Bool("headless", opts.Headless).
		Msg("starting shopwatch")

	store := state.NewStore()

	if opts.Headless {
		poller := NewPoller(store, client, logPresenter{logger: log.Logger}, PollerOptions{Interval: cfg.PollInterval})
		poller.Run(ctx)
		log.Info().Msg("shopwatch stopped")
		return nil
	}

	board := &state.Board{}
	poller := NewPoller(store, client, board, PollerOptions{Interval: cfg.PollInterval})

	pollCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		poller.Run(pollCtx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Board:     board,
		Endpoint:  client.Endpoint(),
		LogPath:   cfg.LogPath(),
		PollTick:  cfg.PollInterval,
		Prefs:     prefs.Load(prefsPath),
		PrefsPath: prefsPath,
	})
}
