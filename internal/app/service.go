package app

import (
	"context"
	"errors"
	"fmt"

	"candleStickPlotter/internal/candles"
	"candleStickPlotter/internal/domain"
	"candleStickPlotter/internal/ports"
	"candleStickPlotter/internal/utils"
)

// Stage names a step of the plotting pipeline.
type Stage string

const (
	StagePrepareOutput Stage = "prepare-output"
	StageIngest        Stage = "ingest"
	StageConvert       Stage = "convert"
	StageRender        Stage = "render"
)

// StageError tags a pipeline failure with the stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Process exit codes.
const (
	ExitOK             = 0
	ExitUsage          = 1
	ExitOutputLocation = 2
	ExitSourceIO       = 3
	ExitDeserialize    = 4
	ExitTimestamp      = 5
	ExitRender         = 6
)

// ExitCode maps an error returned by the CLI to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ports.ErrOutputLocation):
		return ExitOutputLocation
	case errors.Is(err, ports.ErrSourceIO):
		return ExitSourceIO
	case errors.Is(err, ports.ErrDeserialization):
		return ExitDeserialize
	case errors.Is(err, ports.ErrTimestampParse):
		return ExitTimestamp
	case errors.Is(err, ports.ErrRender):
		return ExitRender
	default:
		return ExitUsage
	}
}

// Result summarizes one successful run.
type Result struct {
	OutputDirCreated bool
	Records          []domain.HistoricalRecord
	Candles          []domain.Candlestick
}

// PlotService wires ingestion, conversion and rendering together.
type PlotService struct {
	logger   ports.Logger
	loader   ports.RecordLoader
	renderer ports.ChartRenderer
}

// NewPlotService creates a new application service instance.
func NewPlotService(logger ports.Logger, loader ports.RecordLoader, renderer ports.ChartRenderer) (*PlotService, error) {
	if logger == nil || loader == nil || renderer == nil {
		return nil, fmt.Errorf("missing required dependencies for PlotService: %w", ports.ErrConfigurationError)
	}
	return &PlotService{logger: logger, loader: loader, renderer: renderer}, nil
}

// Run prepares outputDir, ingests csvFile, converts the records and renders them.
// Errors are *StageError values.
func (s *PlotService) Run(ctx context.Context, csvFile, outputDir string) (*Result, error) {
	created, err := utils.EnsureDir(outputDir)
	if err != nil {
		s.logger.Error(ctx, err, "Failed to prepare output directory", map[string]interface{}{"outputDir": outputDir})
		return nil, &StageError{Stage: StagePrepareOutput, Err: err}
	}
	if created {
		s.logger.Info(ctx, "Created directory", map[string]interface{}{"path": outputDir})
	} else {
		s.logger.Info(ctx, "Directory already exists", map[string]interface{}{"path": outputDir})
	}

	records, err := s.loader.Ingest(ctx, csvFile)
	if err != nil {
		return nil, &StageError{Stage: StageIngest, Err: err}
	}

	series, err := candles.Convert(records)
	if err != nil {
		s.logger.Error(ctx, err, "Failed to convert records to candlesticks", map[string]interface{}{"records": len(records)})
		return nil, &StageError{Stage: StageConvert, Err: err}
	}

	if err := s.renderer.Render(ctx, series, outputDir); err != nil {
		s.logger.Error(ctx, err, "Failed to render candlesticks", map[string]interface{}{"outputDir": outputDir})
		return nil, &StageError{Stage: StageRender, Err: err}
	}

	s.logger.Info(ctx, "Candlestick pipeline finished", map[string]interface{}{
		"source":  csvFile,
		"candles": len(series),
	})
	return &Result{OutputDirCreated: created, Records: records, Candles: series}, nil
}
