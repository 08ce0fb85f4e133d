package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Entry is one structured line from shopwatch's JSON log.
type Entry struct {
	Time    time.Time
	Level   zerolog.Level
	Message string
	Error   string
	Shop    string
	Cycle   string
}

// Recent returns at most limit entries at or above minLevel from the end of the
// zerolog JSON file at path, oldest first. Lines that are not JSON objects, or
// carry no recognised level, are skipped. A missing file yields no entries.
func Recent(path string, limit int, minLevel zerolog.Level) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	return scan(file, limit, minLevel)
}

func scan(r io.Reader, limit int, minLevel zerolog.Level) ([]Entry, error) {
	ring := make([]Entry, limit)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		entry, ok := parseLine(scanner.Bytes())
		if !ok || entry.Level == zerolog.NoLevel || entry.Level < minLevel {
			continue
		}
		ring[idx] = entry
		idx = (idx + 1) % limit
		if count < limit {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	entries := make([]Entry, count)
	if count == limit {
		for i := 0; i < count; i++ {
			entries[i] = ring[(idx+i)%limit]
		}
	} else {
		copy(entries, ring[:count])
	}
	return entries, nil
}

func parseLine(line []byte) (Entry, bool) {
	var fields map[string]any
	if err := json.Unmarshal(line, &fields); err != nil {
		return Entry{}, false
	}

	str := func(key string) string {
		v, _ := fields[key].(string)
		return v
	}

	level, err := zerolog.ParseLevel(str(zerolog.LevelFieldName))
	if err != nil {
		level = zerolog.NoLevel
	}
	entry := Entry{
		Level:   level,
		Message: str(zerolog.MessageFieldName),
		Error:   str(zerolog.ErrorFieldName),
		Shop:    str("shop"),
		Cycle:   str("cycle"),
	}
	if ts := str(zerolog.TimestampFieldName); ts != "" {
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			entry.Time = t
		}
	}
	return entry, true
}
