// Package candles converts ingested historical records into candlesticks.
package candles

import (
	"fmt"
	"time"

	"candleStickPlotter/internal/domain"
	"candleStickPlotter/internal/ports"
)

// ParseTimestamp parses s using domain.TimestampLayout. The text carries no zone
// and is read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.TimestampLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ports.ErrTimestampParse, s, err)
	}
	return t, nil
}

// Convert maps records to candlesticks one to one, keeping their order. If any
// timestamp fails to parse, no candlesticks are returned.
func Convert(records []domain.HistoricalRecord) ([]domain.Candlestick, error) {
	out := make([]domain.Candlestick, 0, len(records))
	for i, rec := range records {
		ts, err := ParseTimestamp(rec.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, domain.Candlestick{
			Timestamp: ts,
			Open:      rec.Open,
			High:      rec.High,
			Low:       rec.Low,
			Close:     rec.Close,
			Volume:    rec.Volume,
		})
	}
	return out, nil
}
