package domain

import "time"

// Candlestick is the renderable form of a HistoricalRecord.
type Candlestick struct {
	Timestamp time.Time // Parsed bar time, always UTC
	Open      float64   // Opening price
	High      float64   // Highest price
	Low       float64   // Lowest price
	Close     float64   // Closing price
	Volume    float64   // Traded volume
}
