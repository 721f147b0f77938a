package main

import (
	"context"
	"fmt"
	"log" // Use standard log only for fatal errors before the logger is set up
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"candleStickPlotter/config"
	"candleStickPlotter/internal/adapters/binanceclient"
	"candleStickPlotter/internal/adapters/logger"
	"candleStickPlotter/internal/ports"
	"candleStickPlotter/internal/utils"
)

type fetchParams struct {
	Symbol   string
	Interval string
	Start    time.Time
	End      time.Time
	Out      string
}

// defaultOutPath names the CSV after what it holds.
func defaultOutPath(p fetchParams) string {
	return fmt.Sprintf("data/%s_%s_%s_to_%s.csv", p.Symbol, p.Interval, p.Start.Format("20060102"), p.End.Format("20060102"))
}

// fetch downloads the requested range and writes it in the ingestible CSV layout.
func fetch(ctx context.Context, source ports.KlineSource, appLogger ports.Logger, p fetchParams) (string, error) {
	if p.Out == "" {
		p.Out = defaultOutPath(p)
	}

	appLogger.Info(ctx, "Fetching klines", map[string]interface{}{
		"symbol":   p.Symbol,
		"interval": p.Interval,
		"start":    p.Start,
		"end":      p.End,
	})
	records, err := source.GetKlinesRange(ctx, p.Symbol, p.Interval, p.Start, p.End)
	if err != nil {
		return "", fmt.Errorf("error fetching klines: %w", err)
	}
	appLogger.Info(ctx, "Fetched klines", map[string]interface{}{"count": len(records)})

	if utils.FileExists(p.Out) {
		appLogger.Warn(ctx, "Overwriting existing file", map[string]interface{}{"filename": p.Out})
	}
	if err := utils.WriteRecordsToCSV(records, p.Out); err != nil {
		return "", fmt.Errorf("error writing CSV: %w", err)
	}
	appLogger.Info(ctx, "Saved to", map[string]interface{}{"filename": p.Out})
	return p.Out, nil
}

func fetchAction(ctx context.Context, cmd *cli.Command) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// 2. Initialize Logger
	appLogger, err := logger.NewZapLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = appLogger.Sync() }()

	// 3. Initialize Exchange Client (Binance Adapter)
	binanceClient, err := binanceclient.New(binanceclient.Config{
		APIKey:     cfg.APIKey,
		SecretKey:  cfg.SecretKey,
		UseTestnet: cfg.IsTestnet,
		Logger:     appLogger,
	})
	if err != nil {
		return err
	}

	out, err := fetch(ctx, binanceClient, appLogger, fetchParams{
		Symbol:   cmd.String("symbol"),
		Interval: cmd.String("interval"),
		Start:    cmd.Timestamp("start"),
		End:      cmd.Timestamp("end"),
		Out:      cmd.String("out"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.Root().Writer, out)
	return nil
}

func main() {
	end := time.Now().UTC()
	cmd := &cli.Command{
		Name:  "fetch_klines",
		Usage: "Download Binance futures klines into a CSV the plotter can read",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "symbol",
				Usage: "Futures symbol",
				Value: "ETHUSDT",
			},
			&cli.StringFlag{
				Name:  "interval",
				Usage: "Kline interval (1m, 1h, 1d, ...)",
				Value: "1d",
			},
			&cli.TimestampFlag{
				Name:  "start",
				Usage: "Start date in `YYYY-MM-DD` format. Defaults to three months before end.",
				Value: end.AddDate(0, -3, 0),
				Config: cli.TimestampConfig{
					Layouts:  []string{"2006-01-02"},
					Timezone: time.UTC,
				},
			},
			&cli.TimestampFlag{
				Name:  "end",
				Usage: "End date in `YYYY-MM-DD` format. Defaults to now.",
				Value: end,
				Config: cli.TimestampConfig{
					Layouts:  []string{"2006-01-02"},
					Timezone: time.UTC,
				},
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Output CSV path (default data/<symbol>_<interval>_<start>_to_<end>.csv)",
			},
		},
		Action: fetchAction,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		stop()
		log.Fatal(err)
	}
}
