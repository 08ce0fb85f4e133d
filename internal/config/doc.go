// Package config loads shopwatch's startup configuration.
//
// # Resolution Order
//
//  1. Built-in defaults (Default)
//  2. TOML file: the explicit path, else ~/.config/shopwatch/config.toml.
//     A missing file is not an error.
//  3. SHOPWATCH_* environment variables. cmd/shopwatch loads a .env file into
//     the environment before calling Load, so .env entries land here too.
//  4. Command-line flags, applied by the caller on the returned Config.
//
// Blank strings and non-positive numbers at any layer fall through to the
// layer below.
//
// # Defaults
//
//   - endpoint: https://gagstock.gleeze.com/grow-a-garden
//   - poll interval: 2s
//   - request timeout: 10s
//   - log dir: ~/.local/state/shopwatch (log file shopwatch.log)
//   - log level: info
//
// # TOML Format
//
//	endpoint        = "https://gagstock.gleeze.com/grow-a-garden"
//	poll_seconds    = 2
//	timeout_seconds = 10
//	log_dir         = "~/.local/state/shopwatch"
//	log_level       = "debug"
//
// Every field is optional. Tilde expansion is performed on log_dir and on the
// config path itself.
//
// # Error Handling
//
// Load returns errors for unreadable files, invalid TOML, an unknown
// log_level, and non-integer numeric environment values.
package config
