package ingest

import (
	"errors"
	"math"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"candleStickPlotter/internal/domain"
	"candleStickPlotter/internal/ports"
)

const twoRows = "Timestamp,Open,High,Low,Close,Volume\n" +
	"2023-01-01 00:00:00,100.0,105.0,95.0,102.0,1000.0\n" +
	"2023-01-02 00:00:00,102.0,108.0,101.0,106.0,1200.0\n"

func TestDecode(t *testing.T) {
	records, err := Decode("inline", strings.NewReader(twoRows))
	require.NoError(t, err)

	assert.Equal(t, []domain.HistoricalRecord{
		{Timestamp: "2023-01-01 00:00:00", Open: 100.0, High: 105.0, Low: 95.0, Close: 102.0, Volume: 1000.0},
		{Timestamp: "2023-01-02 00:00:00", Open: 102.0, High: 108.0, Low: 101.0, Close: 106.0, Volume: 1200.0},
	}, records)
}

func TestDecode_NoTrailingNewline(t *testing.T) {
	records, err := Decode("inline", strings.NewReader(strings.TrimSuffix(twoRows, "\n")))
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestDecode_QuotedFields(t *testing.T) {
	content := "Timestamp,Open,High,Low,Close,Volume\n" +
		"\"2023-01-01 00:00:00\",\"100.5\",105,95,102,1000\n"

	records, err := Decode("inline", strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 100.5, records[0].Open)
}

func TestDecode_UTF16WithBOM(t *testing.T) {
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(twoRows)
	require.NoError(t, err)

	records, err := Decode("utf16", strings.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 106.0, records[1].Close)
}

func TestDecode_ReadFailureIsIO(t *testing.T) {
	boom := errors.New("disk on fire")

	records, err := Decode("flaky", iotest.ErrReader(boom))
	assert.Nil(t, records)
	assert.ErrorIs(t, err, ports.ErrSourceIO)
	assert.ErrorIs(t, err, boom)
}

func TestDecode_UnterminatedQuote(t *testing.T) {
	content := "Timestamp,Open,High,Low,Close,Volume\n\"2023-01-01 00:00:00,1,2,3,4,5\n"

	_, err := Decode("inline", strings.NewReader(content))
	assert.ErrorIs(t, err, ports.ErrDeserialization)
}

func TestDecode_NumberSpelling(t *testing.T) {
	row := func(open string) string {
		return "Timestamp,Open,High,Low,Close,Volume\n2023-01-01 00:00:00," + open + ",105,95,102,1000\n"
	}

	tests := []struct {
		name    string
		open    string
		want    float64
		wantErr string
	}{
		{name: "plain decimal", open: "100.5", want: 100.5},
		{name: "exponent", open: "1e2", want: 100},
		{name: "leading plus", open: "+100", want: 100},
		{name: "leading space", open: " 100", wantErr: `line 2: invalid number " 100" in column Open`},
		{name: "trailing space", open: "100 ", wantErr: `invalid number "100 "`},
		{name: "hex float", open: "0x1p4", wantErr: `invalid number "0x1p4"`},
		{name: "signed hex float", open: "-0X1p4", wantErr: `invalid number "-0X1p4"`},
		{name: "whitespace only", open: "   ", wantErr: "line 2: empty value in column Open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Decode("inline", strings.NewReader(row(tt.open)))
			if tt.wantErr != "" {
				assert.Nil(t, records)
				assert.ErrorIs(t, err, ports.ErrDeserialization)
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, records[0].Open)
		})
	}
}

func TestDecode_NonFiniteAccepted(t *testing.T) {
	content := "Timestamp,Open,High,Low,Close,Volume\n2023-01-01 00:00:00,NaN,inf,-inf,1,2\n"

	records, err := Decode("inline", strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, math.IsNaN(records[0].Open))
	assert.True(t, math.IsInf(records[0].High, 1))
	assert.True(t, math.IsInf(records[0].Low, -1))
}
