package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"candleStickPlotter/internal/domain"
	"candleStickPlotter/internal/ports"
)

// header is the exact first row every input file must carry.
var header = []string{"Timestamp", "Open", "High", "Low", "Close", "Volume"}

// Decode parses CSV content from r into records, in row order. name is only used
// in error messages. The returned slice is never nil on success.
//
// A leading byte order mark is honored (UTF-8 or UTF-16) and dropped.
func Decode(name string, r io.Reader) ([]domain.HistoricalRecord, error) {
	utf8Reader := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	sr := &shapeReader{name: name, r: csv.NewReader(utf8Reader)}

	records := make([]domain.HistoricalRecord, 0)
	if err := gocsv.UnmarshalCSV(sr, &records); err != nil {
		// Failures seen while reading rows are already classified.
		if sr.err != nil {
			return nil, sr.err
		}
		return nil, fmt.Errorf("decode %s: %w: %v", name, ports.ErrDeserialization, err)
	}
	if sr.err != nil {
		return nil, sr.err
	}
	if records == nil {
		records = make([]domain.HistoricalRecord, 0)
	}
	return records, nil
}

// shapeReader sits between encoding/csv and gocsv. It enforces the exact header,
// rejects empty cells and sorts read failures into I/O and shape errors before
// gocsv converts cell text into typed fields.
type shapeReader struct {
	name string
	r    *csv.Reader
	rows int
	err  error
}

func (s *shapeReader) Read() ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	row, err := s.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			if s.rows == 0 {
				return nil, s.fail(fmt.Errorf("decode %s: %w: missing header row", s.name, ports.ErrDeserialization))
			}
			return nil, io.EOF
		}
		return nil, s.fail(s.classify(err))
	}
	s.rows++
	if s.rows == 1 {
		if !slices.Equal(row, header) {
			return nil, s.fail(fmt.Errorf("decode %s: %w: header is %q, want %q",
				s.name, ports.ErrDeserialization, strings.Join(row, ","), strings.Join(header, ",")))
		}
		return row, nil
	}
	for col, cell := range row {
		if strings.TrimSpace(cell) == "" {
			line, _ := s.r.FieldPos(col)
			return nil, s.fail(fmt.Errorf("decode %s: %w: line %d: empty value in column %s",
				s.name, ports.ErrDeserialization, line, header[col]))
		}
		if col > 0 && !plainNumber(cell) {
			line, _ := s.r.FieldPos(col)
			return nil, s.fail(fmt.Errorf("decode %s: %w: line %d: invalid number %q in column %s",
				s.name, ports.ErrDeserialization, line, cell, header[col]))
		}
	}
	return row, nil
}

// plainNumber rejects the spellings strconv.ParseFloat accepts beyond plain
// decimal notation: surrounding whitespace and hex mantissas.
func plainNumber(cell string) bool {
	if cell != strings.TrimSpace(cell) {
		return false
	}
	digits := strings.TrimLeft(cell, "+-")
	return !strings.HasPrefix(digits, "0x") && !strings.HasPrefix(digits, "0X")
}

func (s *shapeReader) ReadAll() ([][]string, error) {
	var rows [][]string
	for {
		row, err := s.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

func (s *shapeReader) classify(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("decode %s: %w: %w", s.name, ports.ErrDeserialization, err)
	}
	return fmt.Errorf("read %s: %w: %w", s.name, ports.ErrSourceIO, err)
}

func (s *shapeReader) fail(err error) error {
	s.err = err
	return err
}
