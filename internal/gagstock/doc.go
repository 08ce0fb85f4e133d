// Package gagstock provides an HTTP client for the Grow a Garden stock feed.
//
// # Overview
//
// The feed is a single read-only endpoint returning every shop's current
// inventory and the time until it rotates:
//
//	{"data": {
//	    "egg":  {"items": [{"emoji": "🥚", "name": "Common Egg", "quantity": 3}],
//	             "countdown": "02m 10s", "appearIn": null},
//	    "seed": {...}, "gear": {...}, "travelingmerchant": {...}
//	}}
//
// Any shop may be absent or null, and either time field may be absent or null.
// Sections are kept as raw JSON and decoded one key at a time, so keys the
// caller does not ask for (weather, honey, cosmetics) may hold any value.
//
// # Files
//
//   - client.go: Client, StockFetcher and FetchError
//   - types.go: StockResponse, Section, Item and SectionError
//
// # Usage
//
//	client, err := gagstock.NewClient(cfg.Endpoint, cfg.RequestTimeout)
//	if err != nil {
//		return fmt.Errorf("init stock client: %w", err)
//	}
//	stock, err := client.FetchStock(ctx)
//	if err != nil {
//		// *FetchError: skip this cycle
//	}
//	egg, ok, err := stock.Section("egg")
//	if err != nil {
//		// *SectionError: skip this shop only
//	}
//	if ok {
//		text := egg.CountdownText()
//	}
//
// # Error Handling
//
// Every failure from FetchStock is a *FetchError carrying the endpoint and,
// when a response arrived, its status code. Statuses outside 2xx are failures,
// as are bodies that do not decode. Requests are bounded by the client timeout
// and by the caller's context.
package gagstock
