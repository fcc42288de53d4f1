package config

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Addr       string `json:"addr"`
	WebDir     string `json:"web_dir"`
	MaxDepth   int    `json:"max_depth"`
	TTSizePow  int    `json:"tt_size_pow"`
	LogLevel   string `json:"log_level"`
	LogConsole bool   `json:"log_console"`
	TurnLimit  int    `json:"turn_limit"`
	// pause before the engine answers over the network, for human opponents
	AIDelayMs int `json:"ai_delay_ms"`
}

func Default() Config {
	return Config{
		Addr:       ":8080",
		WebDir:     "",
		MaxDepth:   4,
		TTSizePow:  17,
		LogLevel:   "info",
		LogConsole: true,
		TurnLimit:  64,
		AIDelayMs:  0,
	}
}

// Load reads a JSON file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.MaxDepth < 1 || c.MaxDepth > 8 {
		return errors.Errorf("max_depth %d out of range 1..8", c.MaxDepth)
	}
	if c.TTSizePow < 10 || c.TTSizePow > 26 {
		return errors.Errorf("tt_size_pow %d out of range 10..26", c.TTSizePow)
	}
	if c.TurnLimit < 1 {
		return errors.Errorf("turn_limit %d must be positive", c.TurnLimit)
	}
	if c.AIDelayMs < 0 {
		return errors.Errorf("ai_delay_ms %d must not be negative", c.AIDelayMs)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "log_level %q", c.LogLevel)
	}
	return nil
}

// Level returns the parsed log level, info if it does not parse.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// SetupLogging applies the level globally and switches the global logger to
// human-readable output when LogConsole is set.
func (c Config) SetupLogging() {
	zerolog.SetGlobalLevel(c.Level())
	if c.LogConsole {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
}

// Store guards a Config shared between handlers.
type Store struct {
	mu     sync.RWMutex
	config Config
}

func NewStore(cfg Config) *Store {
	return &Store{config: cfg}
}

func (s *Store) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Update replaces the config if it validates.
func (s *Store) Update(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
	return nil
}
