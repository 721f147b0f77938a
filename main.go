package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"candleStickPlotter/config"
	"candleStickPlotter/internal/adapters/chart"
	"candleStickPlotter/internal/adapters/logger"
	"candleStickPlotter/internal/app"
	"candleStickPlotter/internal/ingest"
	"candleStickPlotter/internal/ports"
	"candleStickPlotter/internal/textutil"
)

// plotAction echoes the uppercased INPUT and runs the candlestick pipeline.
func plotAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one INPUT argument, got %d: %w", cmd.Args().Len(), ports.ErrInvalidRequest)
	}
	fmt.Fprintln(cmd.Root().Writer, textutil.ToUpper(cmd.Args().First()))

	// 1. Load Configuration, flags win over file and environment. Validated once
	// all sources are applied.
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.IsSet("csv-file") {
		cfg.CSVFile = cmd.String("csv-file")
	}
	if cmd.IsSet("output-dir") {
		cfg.OutputDir = cmd.String("output-dir")
	}
	if cmd.IsSet("renderer") {
		cfg.Renderer = cmd.String("renderer")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevelName = cmd.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// 2. Initialize Logger
	appLogger, err := logger.NewZapLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w: %w", ports.ErrConfigurationError, err)
	}
	defer func() { _ = appLogger.Sync() }()
	appLogger.Info(ctx, "Logger initialized", map[string]interface{}{"level": cfg.LogLevel.String()})

	// 3. Wire the pipeline
	loader, err := ingest.New(appLogger)
	if err != nil {
		return err
	}
	renderer, err := chart.New(cfg.Renderer, appLogger)
	if err != nil {
		return err
	}
	plotService, err := app.NewPlotService(appLogger, loader, renderer)
	if err != nil {
		return err
	}

	// 4. Run
	_, err = plotService.Run(ctx, cfg.CSVFile, cfg.OutputDir)
	return err
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:      "candleStickPlotter",
		Usage:     "Load OHLCV history from CSV and render it as candlesticks",
		ArgsUsage: "INPUT",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "csv-file",
				Aliases: []string{"c"},
				Usage:   "Path to the historical data CSV (default from CSV_FILE or " + config.DefaultCSVFile + ")",
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"o"},
				Usage:   "Directory the chart is written to (default from OUTPUT_DIR or " + config.DefaultOutputDir + ")",
			},
			&cli.StringFlag{
				Name:    "renderer",
				Aliases: []string{"r"},
				Usage:   fmt.Sprintf("Chart renderer to use (%s or %s)", chart.KindLog, chart.KindJSON),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (DEBUG, INFO, WARN, ERROR)",
			},
		},
		Action: plotAction,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(app.ExitCode(err))
	}
}
