package ingest

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"candleStickPlotter/internal/ports"
)

// SourceKind tells whether a source identifier resolved to readable input.
type SourceKind int

const (
	// Absent means nothing exists at the identifier. Callers substitute the fallback dataset.
	Absent SourceKind = iota
	// Found means the identifier was opened and Reader holds its content.
	Found
)

// String returns the string representation of the SourceKind.
func (k SourceKind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Found:
		return "found"
	default:
		return "unknown"
	}
}

// Source is the result of resolving a source identifier.
type Source struct {
	Kind   SourceKind
	Name   string
	Reader io.ReadCloser // nil unless Kind is Found
}

// Open resolves path to a Source. A path that does not exist yields an Absent
// source and no error; any other failure to open is an ErrSourceIO.
func Open(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Source{Kind: Absent, Name: path}, nil
		}
		return Source{}, fmt.Errorf("open %s: %w: %w", path, ports.ErrSourceIO, err)
	}
	return Source{Kind: Found, Name: path, Reader: f}, nil
}

// Close releases the underlying reader, if any.
func (s Source) Close() error {
	if s.Reader == nil {
		return nil
	}
	return s.Reader.Close()
}
