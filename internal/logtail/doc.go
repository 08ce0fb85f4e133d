// Package logtail reads the tail of shopwatch's own zerolog JSON log.
//
// The TUI owns the terminal, so warnings about failed polls and malformed
// countdowns go to a log file instead of stderr. The problems view uses Recent
// to pull the last few warn/error entries back out:
//
//	entries, err := logtail.Recent(cfg.LogPath(), 50, zerolog.WarnLevel)
//
// Recent makes one sequential pass with a ring buffer, so memory is bounded by
// the limit regardless of file size. Entries come back oldest first. Lines that do
// not decode as JSON objects (partial writes, foreign output) are skipped.
//
// Field names follow zerolog's globals (LevelFieldName, MessageFieldName,
// ErrorFieldName, TimestampFieldName) plus the "shop" and "cycle" fields the
// poller attaches.
package logtail
