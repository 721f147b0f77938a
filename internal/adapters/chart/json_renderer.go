package chart

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"candleStickPlotter/internal/domain"
	"candleStickPlotter/internal/ports"
)

// ChartFileName is the file JSONRenderer writes inside the output directory.
const ChartFileName = "candlesticks.json"

// ChartPoint is one candle in the shape charting front ends consume.
type ChartPoint struct {
	X      int64   `json:"x"` // open time, unix milliseconds
	Open   float64 `json:"o"`
	High   float64 `json:"h"`
	Low    float64 `json:"l"`
	Close  float64 `json:"c"`
	Volume float64 `json:"v"`
}

// ChartDocument is the content of ChartFileName.
type ChartDocument struct {
	Count  int          `json:"count"`
	Points []ChartPoint `json:"points"`
}

// Points converts candles to chart points, keeping their order.
func Points(candles []domain.Candlestick) []ChartPoint {
	points := make([]ChartPoint, 0, len(candles))
	for _, c := range candles {
		points = append(points, ChartPoint{
			X:      c.Timestamp.UnixMilli(),
			Open:   c.Open,
			High:   c.High,
			Low:    c.Low,
			Close:  c.Close,
			Volume: c.Volume,
		})
	}
	return points
}

// MarshalJSON writes non-finite prices and volumes as null, which JSON
// cannot otherwise represent.
func (p ChartPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X      int64    `json:"x"`
		Open   *float64 `json:"o"`
		High   *float64 `json:"h"`
		Low    *float64 `json:"l"`
		Close  *float64 `json:"c"`
		Volume *float64 `json:"v"`
	}{
		X:      p.X,
		Open:   finite(p.Open),
		High:   finite(p.High),
		Low:    finite(p.Low),
		Close:  finite(p.Close),
		Volume: finite(p.Volume),
	})
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// JSONRenderer writes the series as chart points for an external charting surface.
type JSONRenderer struct {
	logger ports.Logger
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer(logger ports.Logger) *JSONRenderer {
	return &JSONRenderer{logger: logger}
}

// Render writes ChartFileName into outputDir. The file is staged next to its
// final name and renamed into place, so a failed render leaves any previous
// chart untouched.
func (r *JSONRenderer) Render(ctx context.Context, candles []domain.Candlestick, outputDir string) (err error) {
	path := filepath.Join(outputDir, ChartFileName)

	tmp, err := os.CreateTemp(outputDir, ".candlesticks-*.json")
	if err != nil {
		return fmt.Errorf("create %s: %w: %w", path, ports.ErrRender, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	points := Points(candles)
	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ChartDocument{Count: len(points), Points: points}); err != nil {
		return fmt.Errorf("encode %s: %w: %w", path, ports.ErrRender, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod %s: %w: %w", tmp.Name(), ports.ErrRender, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w: %w", tmp.Name(), ports.ErrRender, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w: %w", path, ports.ErrRender, err)
	}

	if len(candles) == 0 {
		r.logger.Warn(ctx, "No data available for plotting", map[string]interface{}{"path": path})
	}
	r.logger.Info(ctx, "Candlestick chart written", map[string]interface{}{"path": path, "points": len(points)})
	return nil
}
