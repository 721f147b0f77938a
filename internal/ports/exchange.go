package ports

import (
	"context"
	"time"

	"candleStickPlotter/internal/domain"
)

// KlineSource downloads historical bars from an exchange.
type KlineSource interface {
	// GetKlinesRange returns every bar for symbol/interval opening between start and end,
	// oldest first, already shaped as input-file rows.
	GetKlinesRange(ctx context.Context, symbol, interval string, start, end time.Time) ([]domain.HistoricalRecord, error)
}
