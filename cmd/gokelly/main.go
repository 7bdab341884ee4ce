package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/evdnx/gokelly/backtest"
	"github.com/evdnx/gokelly/config"
	"github.com/evdnx/gokelly/data"
	"github.com/evdnx/gokelly/executor"
	"github.com/evdnx/gokelly/indicator"
	"github.com/evdnx/gokelly/kelly"
	"github.com/evdnx/gokelly/logger"
	"github.com/evdnx/gokelly/strategy"
	"github.com/evdnx/gokelly/types"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	symbol := flag.String("symbol", "", "symbol override")
	source := flag.String("source", "", "data source override: csv|sqlite|random|binance")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *symbol != "" {
		cfg.Data.Symbol = *symbol
	}
	if *source != "" {
		cfg.Data.Source = *source
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}

	log, err := logger.NewZapLogger(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}

	log.Info("gokelly starting",
		logger.String("config", *configPath),
		logger.String("symbol", cfg.Data.Symbol),
		logger.String("source", cfg.Data.Source),
	)

	if cfg.Metrics.ListenAddr != "" {
		go serveMetrics(cfg.Metrics.ListenAddr, log)
	}

	ctx := context.Background()
	bars, err := loadBars(ctx, cfg, log)
	if err != nil {
		log.Error("failed to load bars", logger.Err(err))
		os.Exit(1)
	}

	warmup := cfg.Strategy.HistoryWindow
	if warmup >= len(bars) {
		warmup = len(bars) * 2 / 3
		log.Warn("short series, shrinking warmup window",
			logger.Int("bars", len(bars)),
			logger.Int("warmup", warmup),
		)
	}
	if warmup <= cfg.Strategy.LookAhead {
		log.Error("not enough bars to estimate",
			logger.Int("bars", len(bars)),
			logger.Int("look_ahead", cfg.Strategy.LookAhead),
		)
		os.Exit(1)
	}

	results, table, err := runBacktests(cfg, bars, warmup, log)
	if err != nil {
		log.Error("backtest failed", logger.Err(err))
		os.Exit(1)
	}

	backtest.PrintSizingTable(os.Stdout, cfg.Data.Symbol, table)
	backtest.PrintResults(os.Stdout, results)
}

// runBacktests replays the same series through the Kelly strategy and the
// all-in baseline, each against its own paper account.
func runBacktests(cfg *config.Config, bars []types.Bar, warmup int, log logger.Logger) ([]*backtest.Result, kelly.SizingTable, error) {
	osc := indicator.NewRSI()
	sym := cfg.Data.Symbol

	kellyExec := executor.NewPaperExecutor(cfg.Backtest.InitialEquity, log)
	kellyStrat, err := strategy.NewKellySizing(sym, cfg.Strategy, kellyExec, osc, log)
	if err != nil {
		return nil, kelly.SizingTable{}, err
	}

	baseExec := executor.NewPaperExecutor(cfg.Backtest.InitialEquity, log)
	baseStrat, err := strategy.NewBaseline(sym, cfg.Strategy, baseExec, osc, log)
	if err != nil {
		return nil, kelly.SizingTable{}, err
	}

	eng := backtest.NewEngine(bars, warmup, log)

	kellyRes, err := eng.Run(sym, kellyStrat, kellyExec)
	if err != nil {
		return nil, kelly.SizingTable{}, err
	}
	baseRes, err := eng.Run(sym, baseStrat, baseExec)
	if err != nil {
		return nil, kelly.SizingTable{}, err
	}

	return []*backtest.Result{kellyRes, baseRes}, kellyStrat.Table(), nil
}

func loadBars(ctx context.Context, cfg *config.Config, log logger.Logger) ([]types.Bar, error) {
	switch cfg.Data.Source {
	case "csv":
		return data.LoadCSV(cfg.Data.Path)

	case "sqlite":
		store, err := data.NewStore(cfg.Data.DSN)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.LoadBars(ctx, cfg.Data.Symbol, 0)

	case "binance":
		client := data.NewBinanceClient("")
		to := time.Now()
		from := to.Add(-time.Duration(cfg.Data.Bars) * intervalDuration(cfg.Data.Interval))
		bars, err := client.FetchKlines(ctx, cfg.Data.Symbol, cfg.Data.Interval, from, to)
		if err != nil {
			return nil, err
		}
		// Cache the pull when a store is configured.
		if cfg.Data.DSN != "" {
			store, err := data.NewStore(cfg.Data.DSN)
			if err != nil {
				return nil, err
			}
			defer store.Close()
			if err := store.SaveBars(ctx, cfg.Data.Symbol, bars); err != nil {
				log.Warn("failed to cache bars", logger.Err(err))
			}
		}
		return bars, nil

	case "random":
		return data.Synthetic(cfg.Data.Bars, 100, cfg.Data.Vol, cfg.Data.Seed), nil

	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.Data.Source)
	}
}

func intervalDuration(interval string) time.Duration {
	switch interval {
	case "1m":
		return time.Minute
	case "5m":
		return 5 * time.Minute
	case "15m":
		return 15 * time.Minute
	case "1h":
		return time.Hour
	case "4h":
		return 4 * time.Hour
	default: // 1d
		return 24 * time.Hour
	}
}

func serveMetrics(addr string, log logger.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Info("metrics listening", logger.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error("metrics server stopped", logger.Err(err))
	}
}
