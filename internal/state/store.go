package state

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/five82/shopwatch/internal/countdown"
)

// Store holds the reconciled state of every shop seen so far. Entries are
// created on first sight and never removed.
type Store struct {
	mu    sync.Mutex
	shops map[ShopKey]*ShopState
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{shops: make(map[ShopKey]*ShopState)}
}

// Reconcile folds one server observation for key into the store.
//
// When the key is new, or items differs from the stored sequence (order
// matters), countdownText is parsed and becomes the fresh remaining time.
// Otherwise the stored items are kept and the remaining time drops by interval;
// countdownText is not consulted, so a stale or malformed server value cannot
// disturb a running countdown. Remaining may go negative and is only clamped
// when formatted.
//
// A parse failure leaves the stored entry untouched and returns an error
// wrapping the *countdown.ParseError.
func (s *Store) Reconcile(key ShopKey, items []Item, countdownText string, interval time.Duration) (ShopSnapshot, error) {
	if !key.Known() {
		return ShopSnapshot{}, fmt.Errorf("reconcile %s: %w", key, ErrUnknownShop)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shops == nil {
		s.shops = make(map[ShopKey]*ShopState)
	}

	cur, seen := s.shops[key]
	if !seen || !slices.Equal(cur.Items, items) {
		remaining, err := countdown.Parse(countdownText)
		if err != nil {
			return ShopSnapshot{}, fmt.Errorf("reconcile %s: %w", key, err)
		}
		cur = &ShopState{Items: cloneItems(items), Remaining: remaining}
		s.shops[key] = cur
	} else {
		cur.Remaining -= interval
	}

	return ShopSnapshot{
		Key:         key,
		DisplayName: key.DisplayName(),
		Countdown:   countdown.Format(cur.Remaining),
		Items:       cloneItems(cur.Items),
	}, nil
}

// State returns a copy of the stored state for key.
func (s *Store) State(key ShopKey) (ShopState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.shops[key]
	if !ok {
		return ShopState{}, false
	}
	return ShopState{Items: cloneItems(cur.Items), Remaining: cur.Remaining}, true
}

// Len returns the number of shops tracked.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.shops)
}
