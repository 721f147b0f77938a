package utils_test

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candleStickPlotter/internal/domain"
	"candleStickPlotter/internal/ingest"
	"candleStickPlotter/internal/utils"
)

func TestWriteRecordsToCSV(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "data", "ETHUSDT_1h.csv")
	records := []domain.HistoricalRecord{
		{Timestamp: "2025-02-07 00:00:00", Open: 2710.5, High: 2725.25, Low: 2701, Close: 2719.75, Volume: 18234.117},
		{Timestamp: "2025-02-07 01:00:00", Open: 2719.75, High: 2731, Low: 2715.5, Close: 2728, Volume: 9001},
	}

	require.NoError(t, utils.WriteRecordsToCSV(records, filename))

	f, err := os.Open(filename)
	require.NoError(t, err)
	defer f.Close()

	first, err := bufio.NewReader(f).ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "Timestamp,Open,High,Low,Close,Volume\n", first)

	_, err = f.Seek(0, 0)
	require.NoError(t, err)
	decoded, err := ingest.Decode(filename, f)
	require.NoError(t, err)
	assert.Equal(t, records, decoded)
}

func TestWriteRecordsToCSV_Empty(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "empty.csv")

	require.NoError(t, utils.WriteRecordsToCSV(nil, filename))

	f, err := os.Open(filename)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := ingest.Decode(filename, f)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}
