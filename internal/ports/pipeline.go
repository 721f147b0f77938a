package ports

import (
	"context"

	"candleStickPlotter/internal/domain"
)

// RecordLoader produces the ordered dataset for a source identifier.
type RecordLoader interface {
	// Ingest returns the records of the named source in row order. A missing source is
	// not an error: implementations substitute domain.FallbackRecords.
	Ingest(ctx context.Context, source string) ([]domain.HistoricalRecord, error)
}

// ChartRenderer turns an ordered candlestick sequence into a visual artifact.
type ChartRenderer interface {
	// Render draws candles into outputDir. The directory is prepared by the caller.
	Render(ctx context.Context, candles []domain.Candlestick, outputDir string) error
}
