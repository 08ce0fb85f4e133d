package state

import (
	"errors"
	"slices"
	"time"
)

// ShopKey identifies one of the fixed shop categories.
type ShopKey string

const (
	ShopEgg               ShopKey = "egg"
	ShopSeed              ShopKey = "seed"
	ShopGear              ShopKey = "gear"
	ShopTravelingMerchant ShopKey = "travelingmerchant"
)

// ErrUnknownShop is returned for keys outside the fixed enumeration.
var ErrUnknownShop = errors.New("unknown shop")

var shopKeys = []ShopKey{ShopEgg, ShopSeed, ShopGear, ShopTravelingMerchant}

var displayNames = map[ShopKey]string{
	ShopEgg:               "Egg Shop",
	ShopSeed:              "Seed Shop",
	ShopGear:              "Gear Shop",
	ShopTravelingMerchant: "Traveling Merchant",
}

// Keys returns the shop keys in display order.
func Keys() []ShopKey {
	return slices.Clone(shopKeys)
}

// Known reports whether k is one of the fixed shop keys.
func (k ShopKey) Known() bool {
	_, ok := displayNames[k]
	return ok
}

// DisplayName returns the human-readable shop name, or the raw key when unknown.
func (k ShopKey) DisplayName() string {
	if name, ok := displayNames[k]; ok {
		return name
	}
	return string(k)
}

// Item is one inventory line in a shop.
type Item struct {
	Emoji    string
	Name     string
	Quantity int
}

// ShopState is the locally tracked state of one shop.
type ShopState struct {
	Items     []Item
	Remaining time.Duration
}

// ShopSnapshot is the display-ready view of one shop after reconciliation.
type ShopSnapshot struct {
	Key         ShopKey
	DisplayName string
	Countdown   string
	Items       []Item
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
