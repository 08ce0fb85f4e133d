package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/five82/shopwatch/internal/gagstock"
)

// Config captures everything shopwatch reads at startup.
type Config struct {
	Endpoint       string
	PollInterval   time.Duration
	RequestTimeout time.Duration
	LogDir         string
	LogLevel       zerolog.Level
}

const (
	defaultConfigPath = "~/.config/shopwatch/config.toml"
	defaultLogDir     = "~/.local/state/shopwatch"
	defaultEndpoint   = gagstock.DefaultEndpoint

	defaultPollInterval   = 2 * time.Second
	defaultRequestTimeout = 10 * time.Second
	defaultLogLevel       = zerolog.InfoLevel

	logFileName = "shopwatch.log"
)

// Environment variables consulted after the config file.
const (
	EnvEndpoint       = "SHOPWATCH_ENDPOINT"
	EnvPollSeconds    = "SHOPWATCH_POLL_SECONDS"
	EnvTimeoutSeconds = "SHOPWATCH_TIMEOUT_SECONDS"
	EnvLogDir         = "SHOPWATCH_LOG_DIR"
	EnvLogLevel       = "SHOPWATCH_LOG_LEVEL"
)

// Default returns the configuration used when no file or environment is set.
func Default() Config {
	return Config{
		Endpoint:       defaultEndpoint,
		PollInterval:   defaultPollInterval,
		RequestTimeout: defaultRequestTimeout,
		LogDir:         mustExpand(defaultLogDir),
		LogLevel:       defaultLogLevel,
	}
}

type fileConfig struct {
	Endpoint       string `toml:"endpoint"`
	PollSeconds    int    `toml:"poll_seconds"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	LogDir         string `toml:"log_dir"`
	LogLevel       string `toml:"log_level"`
}

// Load reads the config file at path (or the default location), falling back
// to defaults when it is missing, then applies SHOPWATCH_* environment
// overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw fileConfig

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()

		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(&raw); err != nil {
		return Config{}, err
	}
	return raw.resolve()
}

func applyEnv(raw *fileConfig) error {
	if v, ok := os.LookupEnv(EnvEndpoint); ok {
		raw.Endpoint = v
	}
	if v, ok := os.LookupEnv(EnvLogDir); ok {
		raw.LogDir = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		raw.LogLevel = v
	}
	for name, dest := range map[string]*int{
		EnvPollSeconds:    &raw.PollSeconds,
		EnvTimeoutSeconds: &raw.TimeoutSeconds,
	} {
		v, ok := os.LookupEnv(name)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		*dest = n
	}
	return nil
}

func (raw fileConfig) resolve() (Config, error) {
	cfg := Default()

	if endpoint := strings.TrimSpace(raw.Endpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if raw.PollSeconds > 0 {
		cfg.PollInterval = time.Duration(raw.PollSeconds) * time.Second
	}
	if raw.TimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = parsed
	}
	return cfg, nil
}

// LogPath returns the path to shopwatch's own log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/" + logFileName)
	}
	return filepath.Join(c.LogDir, logFileName)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
