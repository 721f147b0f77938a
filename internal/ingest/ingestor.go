// Package ingest turns a named CSV source into an ordered slice of
// domain.HistoricalRecord, substituting a fixed dataset when the source is absent.
package ingest

import (
	"context"
	"fmt"

	"candleStickPlotter/internal/domain"
	"candleStickPlotter/internal/ports"
)

// Ingestor implements ports.RecordLoader for files on the local filesystem.
type Ingestor struct {
	logger ports.Logger
}

// New creates an Ingestor.
func New(logger ports.Logger) (*Ingestor, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required for ingestor: %w", ports.ErrConfigurationError)
	}
	return &Ingestor{logger: logger}, nil
}

// Ingest reads every record from the file at path. When nothing exists at path the
// fallback dataset is returned instead. Either the whole file is returned or an
// error wrapping ports.ErrSourceIO or ports.ErrDeserialization.
func (i *Ingestor) Ingest(ctx context.Context, path string) ([]domain.HistoricalRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ingest %s: %w: %w", path, ports.ErrContextCanceled, err)
	}

	src, err := Open(path)
	if err != nil {
		i.logger.Error(ctx, err, "Failed to open input source", map[string]interface{}{"path": path})
		return nil, err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			i.logger.Warn(ctx, "Failed to close input source", map[string]interface{}{"path": path, "error": cerr.Error()})
		}
	}()

	if src.Kind == Absent {
		records := domain.FallbackRecords()
		i.logger.Warn(ctx, "Input source not found, using fallback dataset", map[string]interface{}{
			"path":  path,
			"count": len(records),
		})
		return records, nil
	}

	records, err := Decode(src.Name, src.Reader)
	if err != nil {
		i.logger.Error(ctx, err, "Failed to load historical records", map[string]interface{}{"path": path})
		return nil, err
	}
	i.logger.Info(ctx, "Loaded historical records", map[string]interface{}{"path": path, "count": len(records)})
	return records, nil
}
