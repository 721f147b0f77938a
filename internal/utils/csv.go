package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"candleStickPlotter/internal/domain"
)

// WriteRecordsToCSV writes records to filename in the input file format
// (header Timestamp,Open,High,Low,Close,Volume), creating parent directories.
func WriteRecordsToCSV(records []domain.HistoricalRecord, filename string) error {
	if _, err := EnsureDir(filepath.Dir(filename)); err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&records, file); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return file.Sync()
}
