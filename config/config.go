package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// StrategyConfig holds all tunable parameters for the Kelly sizing
// strategy. The reference constants (window 500, offsets 15/14, baseline
// threshold 0.1, 2-decimal quantities) live in Default.
type StrategyConfig struct {
	// HistoryWindow is the number of historical closes used for the
	// cold-start estimation.
	HistoryWindow int `yaml:"history_window"`

	// LookAhead/LookBehind are the horizon offsets used to classify a move
	// as win or loss relative to the oscillator reading at the start of
	// the horizon. LookAhead must equal LookBehind+1.
	LookAhead  int `yaml:"look_ahead"`
	LookBehind int `yaml:"look_behind"`

	// MaxHistory bounds the per-instrument close series during a long
	// session. 0 keeps the series unbounded.
	MaxHistory int `yaml:"max_history"`

	// Order-quantity constraints.
	QuantityPrecision int     `yaml:"quantity_precision"`
	MinQty            float64 `yaml:"min_qty"`
	StepSize          float64 `yaml:"step_size"`
}

// Default returns the reference parameter set.
func Default() StrategyConfig {
	return StrategyConfig{
		HistoryWindow:     500,
		LookAhead:         15,
		LookBehind:        14,
		MaxHistory:        0,
		QuantityPrecision: 2,
		MinQty:            0,
		StepSize:          0,
	}
}

// Validate checks that all numeric fields are within sensible bounds and
// returns the first encountered error so a configuration problem surfaces
// before any trading starts.
func (c *StrategyConfig) Validate() error {
	if c.HistoryWindow <= 0 {
		return errors.New("HistoryWindow must be positive")
	}
	if c.LookAhead <= 0 {
		return errors.New("LookAhead must be positive")
	}
	if c.LookBehind < 0 {
		return errors.New("LookBehind cannot be negative")
	}
	if c.LookAhead != c.LookBehind+1 {
		return fmt.Errorf("LookAhead (%d) must equal LookBehind+1 (%d)", c.LookAhead, c.LookBehind+1)
	}
	if c.HistoryWindow <= c.LookAhead {
		return fmt.Errorf("HistoryWindow (%d) must exceed LookAhead (%d)", c.HistoryWindow, c.LookAhead)
	}
	if c.MaxHistory < 0 {
		return errors.New("MaxHistory cannot be negative")
	}
	if c.MaxHistory > 0 && c.MaxHistory < c.HistoryWindow {
		return fmt.Errorf("MaxHistory (%d) cannot be below HistoryWindow (%d)", c.MaxHistory, c.HistoryWindow)
	}
	if c.QuantityPrecision < 0 {
		return errors.New("QuantityPrecision cannot be negative")
	}
	if c.MinQty < 0 {
		return errors.New("MinQty cannot be negative")
	}
	if c.StepSize < 0 {
		return errors.New("StepSize cannot be negative")
	}
	return nil
}

// Config is the full application configuration.
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Backtest BacktestConfig `yaml:"backtest"`
	Strategy StrategyConfig `yaml:"strategy"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Log      LogConfig      `yaml:"log"`
}

// DataConfig selects where bars come from.
type DataConfig struct {
	Source   string  `yaml:"source"` // csv | sqlite | random | binance
	Path     string  `yaml:"path"`   // csv file
	DSN      string  `yaml:"dsn"`    // sqlite file, or ":memory:"
	Symbol   string  `yaml:"symbol"`
	Interval string  `yaml:"interval"` // binance kline interval, e.g. 1d
	Bars     int     `yaml:"bars"`     // random feed length
	Seed     int64   `yaml:"seed"`     // random feed seed
	Vol      float64 `yaml:"vol"`      // random feed per-bar volatility
}

type BacktestConfig struct {
	InitialEquity float64 `yaml:"initial_equity"`
}

type MetricsConfig struct {
	ListenAddr string `yaml:"listen_addr"` // empty disables the endpoint
}

type LogConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
}

// Load reads the YAML config file and a .env file if present. Environment
// variables override the corresponding YAML values.
func Load(path string) (*Config, error) {
	// Silently skip a missing .env.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	cfg := &Config{Strategy: Default()}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	applyEnvOverrides(cfg)
	setDefaults(cfg)

	if err := cfg.Strategy.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("DATA_DSN"); v != "" {
		cfg.Data.DSN = v
	}
	if v := os.Getenv("DATA_SYMBOL"); v != "" {
		cfg.Data.Symbol = v
	}
}

func setDefaults(cfg *Config) {
	if cfg.Data.Source == "" {
		cfg.Data.Source = "random"
	}
	if cfg.Data.Symbol == "" {
		cfg.Data.Symbol = "SPY"
	}
	if cfg.Data.Interval == "" {
		cfg.Data.Interval = "1d"
	}
	if cfg.Data.Bars <= 0 {
		cfg.Data.Bars = 750
	}
	if cfg.Data.Vol <= 0 {
		cfg.Data.Vol = 0.02
	}
	if cfg.Backtest.InitialEquity <= 0 {
		cfg.Backtest.InitialEquity = 10_000
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}
