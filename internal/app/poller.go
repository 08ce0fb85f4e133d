package app

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/five82/shopwatch/internal/gagstock"
	"github.com/five82/shopwatch/internal/state"
)

const defaultPollInterval = 2 * time.Second

// PollState is the poller's position in its two-state cycle.
type PollState int

const (
	PollIdle PollState = iota
	PollPolling
)

func (s PollState) String() string {
	if s == PollPolling {
		return "polling"
	}
	return "idle"
}

// PollerOptions tune a Poller. Zero values select defaults.
type PollerOptions struct {
	Interval time.Duration
	Clock    clockwork.Clock
	Logger   *zerolog.Logger
}

// Poller drives one fetch-and-reconcile cycle per tick. At most one cycle is
// in flight; a tick that fires while a cycle is running is dropped.
type Poller struct {
	store     *state.Store
	fetcher   gagstock.StockFetcher
	presenter Presenter
	interval  time.Duration
	clock     clockwork.Clock
	logger    zerolog.Logger

	inFlight atomic.Bool
	wg       sync.WaitGroup
}

// NewPoller builds a Poller that reconciles into store and delivers to presenter.
func NewPoller(store *state.Store, fetcher gagstock.StockFetcher, presenter Presenter, opts PollerOptions) *Poller {
	p := &Poller{
		store:     store,
		fetcher:   fetcher,
		presenter: presenter,
		interval:  opts.Interval,
		clock:     opts.Clock,
		logger:    log.Logger,
	}
	if p.interval <= 0 {
		p.interval = defaultPollInterval
	}
	if p.clock == nil {
		p.clock = clockwork.NewRealClock()
	}
	if opts.Logger != nil {
		p.logger = *opts.Logger
	}
	return p
}

// Interval returns the poll interval in effect.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// State reports whether a cycle is currently running.
func (p *Poller) State() PollState {
	if p.inFlight.Load() {
		return PollPolling
	}
	return PollIdle
}

// Run polls immediately and then on every tick until ctx is cancelled. It
// returns once the last in-flight cycle has finished.
func (p *Poller) Run(ctx context.Context) {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()
	defer p.wg.Wait()

	p.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			p.tick(ctx)
		}
	}
}

// tick starts a cycle in the background unless one is already running.
func (p *Poller) tick(ctx context.Context) bool {
	if !p.inFlight.CompareAndSwap(false, true) {
		p.logger.Debug().Msg("poll still in flight, skipping tick")
		return false
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer p.inFlight.Store(false)
		_ = p.RunCycle(ctx)
	}()
	return true
}

// RunCycle performs one fetch and reconciliation and delivers the result to
// the presenter. A fetch failure is reported to the presenter and returned;
// nothing in the store changes. A shop whose section does not decode, or whose
// countdown cannot be parsed, is logged and left out of this cycle's list.
func (p *Poller) RunCycle(ctx context.Context) error {
	logger := p.logger.With().Str("cycle", uuid.NewString()).Logger()

	stock, err := p.fetcher.FetchStock(ctx)
	if err != nil {
		if ctx.Err() != nil {
			logger.Debug().Err(err).Msg("stock poll cancelled")
			return err
		}
		logger.Warn().Err(err).Msg("stock poll failed")
		p.presenter.PollFailed(err)
		return err
	}

	shops := make([]state.ShopSnapshot, 0, len(state.Keys()))
	for _, key := range state.Keys() {
		section, ok, err := stock.Section(string(key))
		if err != nil {
			logger.Warn().Err(err).Str("shop", string(key)).Msg("shop skipped")
			continue
		}
		if !ok {
			continue
		}
		snap, err := p.store.Reconcile(key, toItems(section.Items), section.CountdownText(), p.interval)
		if err != nil {
			logger.Warn().Err(err).Str("shop", string(key)).Msg("shop skipped")
			continue
		}
		shops = append(shops, snap)
	}

	logger.Debug().Int("shops", len(shops)).Msg("cycle delivered")
	p.presenter.Present(shops)
	return nil
}

func toItems(items []gagstock.Item) []state.Item {
	if len(items) == 0 {
		return nil
	}
	out := make([]state.Item, len(items))
	for i, it := range items {
		out[i] = state.Item{Emoji: it.Emoji, Name: it.Name, Quantity: it.Quantity}
	}
	return out
}
