package gagstock

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// StockResponse mirrors the payload returned by the stock endpoint. Sections
// stay raw until asked for, so keys shopwatch does not track may hold any JSON.
type StockResponse struct {
	Data map[string]json.RawMessage `json:"data"`
}

// SectionError reports a section that is present but not shaped like a shop.
type SectionError struct {
	Key string
	Err error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("decode section %q: %v", e.Key, e.Err)
}

func (e *SectionError) Unwrap() error { return e.Err }

// Section decodes the shop section for key. A key that is missing or null in
// the payload reports ok=false with no error; a section that does not decode
// returns a *SectionError.
func (r *StockResponse) Section(key string) (*Section, bool, error) {
	if r == nil {
		return nil, false, nil
	}
	raw, ok := r.Data[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false, nil
	}
	var sec Section
	if err := json.Unmarshal(raw, &sec); err != nil {
		return nil, false, &SectionError{Key: key, Err: err}
	}
	return &sec, true, nil
}

// Section describes one shop's current inventory.
type Section struct {
	Items     []Item  `json:"items"`
	Countdown *string `json:"countdown"`
	AppearIn  *string `json:"appearIn"`
}

// Item is a single inventory entry.
type Item struct {
	Emoji    string `json:"emoji"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CountdownText returns the time until the shop changes. Fields are consulted
// in order, countdown then appearIn, and the first non-empty value wins. A
// section carrying neither returns "".
func (s *Section) CountdownText() string {
	if s == nil {
		return ""
	}
	for _, field := range []*string{s.Countdown, s.AppearIn} {
		if field != nil && *field != "" {
			return *field
		}
	}
	return ""
}
