package domain

// TimestampLayout is the layout of HistoricalRecord.Timestamp. Values carry no
// zone and are read as UTC.
const TimestampLayout = "2006-01-02 15:04:05"

// HistoricalRecord is one row of the input file, exactly as read.
type HistoricalRecord struct {
	Timestamp string  `csv:"Timestamp"` // Bar time in TimestampLayout, not yet parsed
	Open      float64 `csv:"Open"`      // Opening price
	High      float64 `csv:"High"`      // Highest price
	Low       float64 `csv:"Low"`       // Lowest price
	Close     float64 `csv:"Close"`     // Closing price
	Volume    float64 `csv:"Volume"`    // Traded volume
}
