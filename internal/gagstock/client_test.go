package gagstock

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const samplePayload = `{
  "status": "success",
  "data": {
    "egg": {
      "items": [
        {"emoji": "🥚", "name": "Common Egg", "quantity": 3},
        {"emoji": "🥚", "name": "Bug Egg", "quantity": 1}
      ],
      "countdown": "02m 10s"
    },
    "seed": {"items": [{"emoji": "🥕", "name": "Carrot", "quantity": 12}], "countdown": null, "appearIn": "4m 5s"},
    "gear": {"items": []},
    "travelingmerchant": null,
    "weather": {"currentWeather": "Rain"}
  }
}`

func TestParseEndpoint_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseEndpoint("")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.String() != DefaultEndpoint {
		t.Fatalf("endpoint = %q, want %q", u.String(), DefaultEndpoint)
	}

	u, err = parseEndpoint("  example.com/stock#frag ")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.Scheme != "https" || u.Host != "example.com" || u.Path != "/stock" || u.Fragment != "" {
		t.Fatalf("endpoint not normalized: %q", u.String())
	}
}

func TestParseEndpoint_RejectsBadScheme(t *testing.T) {
	if _, err := parseEndpoint("ftp://example.com/stock"); err == nil {
		t.Fatalf("parseEndpoint returned nil error, want unsupported scheme")
	}
	if _, err := parseEndpoint("http://"); err == nil {
		t.Fatalf("parseEndpoint returned nil error, want missing host")
	}
}

func TestClient_FetchStockDecodesPayload(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotAccept, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/grow-a-garden", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	stock, err := c.FetchStock(ctx)
	if err != nil {
		t.Fatalf("FetchStock returned error: %v", err)
	}

	egg, ok, err := stock.Section("egg")
	if err != nil || !ok {
		t.Fatalf("egg section missing")
	}
	if len(egg.Items) != 2 || egg.Items[0].Name != "Common Egg" || egg.Items[0].Quantity != 3 || egg.Items[0].Emoji != "🥚" {
		t.Fatalf("egg items = %#v, want two eggs", egg.Items)
	}
	if egg.CountdownText() != "02m 10s" {
		t.Fatalf("egg countdown = %q, want %q", egg.CountdownText(), "02m 10s")
	}

	seed, ok, err := stock.Section("seed")
	if err != nil || !ok || seed.CountdownText() != "4m 5s" {
		t.Fatalf("seed countdown = %q, want appearIn fallback", seed.CountdownText())
	}

	gear, ok, err := stock.Section("gear")
	if err != nil || !ok || len(gear.Items) != 0 || gear.CountdownText() != "" {
		t.Fatalf("gear = %#v, want empty section", gear)
	}

	if _, ok, err := stock.Section("travelingmerchant"); ok || err != nil {
		t.Fatalf("null travelingmerchant should report missing")
	}

	if gotMethod != http.MethodGet {
		t.Fatalf("method = %q, want GET", gotMethod)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
	if !strings.HasPrefix(gotUserAgent, "shopwatch/") {
		t.Fatalf("User-Agent = %q, want shopwatch/*", gotUserAgent)
	}
}

func TestClient_UnknownKeysOfAnyShapeAreIgnored(t *testing.T) {
	t.Parallel()

	const payload = `{"data": {
	  "egg": {"items": [{"emoji": "🥚", "name": "Common Egg", "quantity": 3}], "countdown": "10s"},
	  "weather": "sunny",
	  "events": [1, 2],
	  "honey": {"items": "none"},
	  "cosmetics": {"countdown": 300}
	}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	stock, err := c.FetchStock(context.Background())
	if err != nil {
		t.Fatalf("FetchStock returned error: %v", err)
	}

	egg, ok, err := stock.Section("egg")
	if err != nil || !ok {
		t.Fatalf("egg section: ok=%v err=%v", ok, err)
	}
	if len(egg.Items) != 1 || egg.CountdownText() != "10s" {
		t.Fatalf("egg = %#v, want one item at 10s", egg)
	}
}

func TestSection_MalformedKnownKey(t *testing.T) {
	stock := &StockResponse{Data: map[string]json.RawMessage{
		"egg":  json.RawMessage(`{"items": "none"}`),
		"seed": json.RawMessage(`{"countdown": 300}`),
		"gear": json.RawMessage(` null `),
	}}

	for _, key := range []string{"egg", "seed"} {
		_, ok, err := stock.Section(key)
		var serr *SectionError
		if ok || !errors.As(err, &serr) {
			t.Fatalf("Section(%q) = ok %v, err %v; want *SectionError", key, ok, err)
		}
		if serr.Key != key {
			t.Fatalf("SectionError.Key = %q, want %q", serr.Key, key)
		}
	}

	if _, ok, err := stock.Section("gear"); ok || err != nil {
		t.Fatalf("null gear: ok=%v err=%v, want absent", ok, err)
	}
	if _, ok, err := stock.Section("travelingmerchant"); ok || err != nil {
		t.Fatalf("missing key: ok=%v err=%v, want absent", ok, err)
	}

	var nilStock *StockResponse
	if _, ok, err := nilStock.Section("egg"); ok || err != nil {
		t.Fatalf("nil response: ok=%v err=%v", ok, err)
	}
}

func TestClient_FetchErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/broken":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/down":
			http.Error(w, "nope", http.StatusBadGateway)
		case "/moved":
			w.WriteHeader(http.StatusNotModified)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	tests := []struct {
		path       string
		wantStatus int
		wantText   string
	}{
		{"/broken", http.StatusOK, "decode response"},
		{"/down", http.StatusBadGateway, "status 502"},
		{"/moved", http.StatusNotModified, "status 304"},
	}

	for _, tt := range tests {
		c, err := NewClient(server.URL+tt.path, time.Second)
		if err != nil {
			t.Fatalf("NewClient returned error: %v", err)
		}
		_, err = c.FetchStock(context.Background())
		var ferr *FetchError
		if !errors.As(err, &ferr) {
			t.Fatalf("%s: error = %v, want *FetchError", tt.path, err)
		}
		if ferr.StatusCode != tt.wantStatus {
			t.Fatalf("%s: StatusCode = %d, want %d", tt.path, ferr.StatusCode, tt.wantStatus)
		}
		if !strings.Contains(err.Error(), tt.wantText) {
			t.Fatalf("%s: error = %q, want it to mention %q", tt.path, err.Error(), tt.wantText)
		}
	}
}

func TestClient_NetworkErrorIsFetchError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	c, err := NewClient(endpoint, 500*time.Millisecond)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchStock(context.Background())
	var ferr *FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("error = %v, want *FetchError", err)
	}
	if ferr.StatusCode != 0 {
		t.Fatalf("StatusCode = %d, want 0 for transport failure", ferr.StatusCode)
	}
}

func TestCountdownTextFallbackOrder(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name string
		sec  *Section
		want string
	}{
		{"nil section", nil, ""},
		{"neither field", &Section{}, ""},
		{"countdown wins", &Section{Countdown: str("1m"), AppearIn: str("2m")}, "1m"},
		{"empty countdown falls back", &Section{Countdown: str(""), AppearIn: str("2m")}, "2m"},
		{"null countdown falls back", &Section{AppearIn: str("3h")}, "3h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sec.CountdownText(); got != tt.want {
				t.Fatalf("CountdownText() = %q, want %q", got, tt.want)
			}
		})
	}
}
