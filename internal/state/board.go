package state

import (
	"sync"
	"time"
)

// View is the latest presentation data available to the UI.
type View struct {
	Shops               []ShopSnapshot
	HasData             bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive failed poll cycles
}

// IsOffline returns true when the stock feed has been unreachable for multiple polls.
func (v View) IsOffline() bool {
	return v.ConsecutiveFailures >= 2
}

// Board receives each cycle's snapshot list from the poller and hands copies
// to readers. It keeps the last good list across failed cycles.
type Board struct {
	mu   sync.RWMutex
	view View
}

// Present replaces the displayed shops with shops.
func (b *Board) Present(shops []ShopSnapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.view.Shops = cloneShops(shops)
	b.view.HasData = true
	b.view.LastError = nil
	b.view.LastUpdated = time.Now()
	b.view.ConsecutiveFailures = 0
}

// PollFailed records a failed cycle. The previous shops stay visible.
func (b *Board) PollFailed(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.view.LastError = err
	b.view.LastUpdated = time.Now()
	b.view.ConsecutiveFailures++
}

// View returns a copy of the current view.
func (b *Board) View() View {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v := b.view
	v.Shops = cloneShops(b.view.Shops)
	return v
}

func cloneShops(shops []ShopSnapshot) []ShopSnapshot {
	if len(shops) == 0 {
		return nil
	}
	dup := make([]ShopSnapshot, len(shops))
	for i, shop := range shops {
		dup[i] = shop
		dup[i].Items = cloneItems(shop.Items)
	}
	return dup
}
