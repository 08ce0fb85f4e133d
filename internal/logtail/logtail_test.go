package logtail

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func writeLog(t *testing.T, fn func(zerolog.Logger)) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shopwatch.log")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	logger := zerolog.New(file).With().Timestamp().Logger()
	fn(logger)
	if err := file.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return path
}

func TestRecent_FiltersByLevelAndKeepsOrder(t *testing.T) {
	path := writeLog(t, func(l zerolog.Logger) {
		l.Debug().Msg("skip tick")
		l.Info().Str("cycle", "c1").Msg("cycle delivered")
		l.Warn().Str("cycle", "c2").Err(errors.New("status 502")).Msg("stock poll failed")
		l.Info().Msg("cycle delivered")
		l.Warn().Str("shop", "egg").Err(errors.New("bad segment")).Msg("shop skipped")
		l.Error().Msg("boom")
	})

	got, err := Recent(path, 10, zerolog.WarnLevel)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Recent returned %d entries, want 3: %#v", len(got), got)
	}
	if got[0].Message != "stock poll failed" || got[0].Error != "status 502" || got[0].Cycle != "c2" {
		t.Fatalf("entry 0 = %#v", got[0])
	}
	if got[1].Shop != "egg" || got[1].Level != zerolog.WarnLevel {
		t.Fatalf("entry 1 = %#v", got[1])
	}
	if got[2].Level != zerolog.ErrorLevel || got[2].Message != "boom" {
		t.Fatalf("entry 2 = %#v", got[2])
	}
	if got[0].Time.IsZero() {
		t.Fatalf("entry time not parsed")
	}
}

func TestRecent_KeepsOnlyLastMax(t *testing.T) {
	path := writeLog(t, func(l zerolog.Logger) {
		for i := 1; i <= 10; i++ {
			l.Info().Msg(fmt.Sprintf("line %d", i))
		}
	})

	tests := []struct {
		max  int
		want []string
	}{
		{0, nil},
		{3, []string{"line 8", "line 9", "line 10"}},
		{10, []string{"line 1", "line 2", "line 3", "line 4", "line 5", "line 6", "line 7", "line 8", "line 9", "line 10"}},
		{25, []string{"line 1", "line 2", "line 3", "line 4", "line 5", "line 6", "line 7", "line 8", "line 9", "line 10"}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("max=%d", tt.max), func(t *testing.T) {
			got, err := Recent(path, tt.max, zerolog.DebugLevel)
			if err != nil {
				t.Fatalf("Recent returned error: %v", err)
			}
			var msgs []string
			for _, e := range got {
				msgs = append(msgs, e.Message)
			}
			if strings.Join(msgs, ",") != strings.Join(tt.want, ",") {
				t.Fatalf("messages = %v, want %v", msgs, tt.want)
			}
		})
	}
}

func TestRecent_SkipsNonJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.log")
	body := "plain text\n{\"level\":\"warn\",\"message\":\"kept\"}\n{truncated\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Recent(path, 5, zerolog.InfoLevel)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(got) != 1 || got[0].Message != "kept" {
		t.Fatalf("Recent = %#v, want only the JSON entry", got)
	}
}

func TestRecent_SkipsLinesWithoutLevel(t *testing.T) {
	path := writeLog(t, func(l zerolog.Logger) {
		l.Log().Msg("no level field")
		l.Warn().Msg("real warning")
	})
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	_, err = f.WriteString(`{"level":"","message":"empty level"}` + "\n" + `{"level":"loud","message":"unknown level"}` + "\n")
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := Recent(path, 10, zerolog.WarnLevel)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(got) != 1 || got[0].Message != "real warning" {
		t.Fatalf("Recent = %#v, want only the warn entry", got)
	}
}

func TestRecent_MissingFile(t *testing.T) {
	got, err := Recent(filepath.Join(t.TempDir(), "nope.log"), 5, zerolog.InfoLevel)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if got != nil {
		t.Fatalf("Recent = %#v, want nil", got)
	}
}
