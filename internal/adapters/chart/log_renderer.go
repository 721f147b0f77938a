// Package chart provides ports.ChartRenderer implementations.
package chart

import (
	"context"
	"fmt"

	"candleStickPlotter/internal/domain"
	"candleStickPlotter/internal/ports"
)

// Renderer kinds accepted by New.
const (
	KindLog  = "log"
	KindJSON = "json"
)

// New returns the renderer registered under kind.
func New(kind string, logger ports.Logger) (ports.ChartRenderer, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required for chart renderer: %w", ports.ErrConfigurationError)
	}
	switch kind {
	case KindLog:
		return NewLogRenderer(logger), nil
	case KindJSON:
		return NewJSONRenderer(logger), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q (want %s or %s): %w", kind, KindLog, KindJSON, ports.ErrInvalidRequest)
	}
}

// LogRenderer only reports what it would draw. It produces no artifact.
type LogRenderer struct {
	logger ports.Logger
}

// NewLogRenderer creates a LogRenderer.
func NewLogRenderer(logger ports.Logger) *LogRenderer {
	return &LogRenderer{logger: logger}
}

// Render logs the size of the series and the target directory.
func (r *LogRenderer) Render(ctx context.Context, candles []domain.Candlestick, outputDir string) error {
	r.logger.Info(ctx, "Creating candlestick plot", map[string]interface{}{
		"points":    len(candles),
		"outputDir": outputDir,
	})
	if len(candles) == 0 {
		r.logger.Warn(ctx, "No data available for plotting")
		return nil
	}
	r.logger.Debug(ctx, "Plot range", map[string]interface{}{
		"first": candles[0].Timestamp,
		"last":  candles[len(candles)-1].Timestamp,
	})
	return nil
}
