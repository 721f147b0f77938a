package chart

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candleStickPlotter/internal/domain"
	"candleStickPlotter/internal/ports"
)

// mockLogger implements ports.Logger for testing
type mockLogger struct {
	debugMsgs []string
	infoMsgs  []string
	warnMsgs  []string
	errorMsgs []string
}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {
	m.debugMsgs = append(m.debugMsgs, msg)
}

func (m *mockLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{}) {
	m.infoMsgs = append(m.infoMsgs, msg)
}

func (m *mockLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{}) {
	m.warnMsgs = append(m.warnMsgs, msg)
}

func (m *mockLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
	m.errorMsgs = append(m.errorMsgs, msg)
}

func sampleCandles() []domain.Candlestick {
	return []domain.Candlestick{
		{Timestamp: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), Open: 100, High: 105, Low: 95, Close: 102, Volume: 1000},
		{Timestamp: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), Open: 102, High: 108, Low: 101, Close: 106, Volume: 1200},
	}
}

func TestNew(t *testing.T) {
	logger := &mockLogger{}

	r, err := New(KindLog, logger)
	require.NoError(t, err)
	assert.IsType(t, &LogRenderer{}, r)

	r, err = New(KindJSON, logger)
	require.NoError(t, err)
	assert.IsType(t, &JSONRenderer{}, r)

	r, err = New("svg", logger)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ports.ErrInvalidRequest)

	r, err = New(KindLog, nil)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ports.ErrConfigurationError)
}

func TestLogRenderer_Render(t *testing.T) {
	tests := []struct {
		name      string
		candles   []domain.Candlestick
		wantWarns int
	}{
		{name: "with data", candles: sampleCandles(), wantWarns: 0},
		{name: "empty data", candles: []domain.Candlestick{}, wantWarns: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &mockLogger{}
			outputDir := t.TempDir()

			err := NewLogRenderer(logger).Render(context.Background(), tt.candles, outputDir)
			require.NoError(t, err)
			assert.Equal(t, []string{"Creating candlestick plot"}, logger.infoMsgs)
			assert.Len(t, logger.warnMsgs, tt.wantWarns)

			entries, err := os.ReadDir(outputDir)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestPoints(t *testing.T) {
	points := Points(sampleCandles())

	require.Len(t, points, 2)
	assert.Equal(t, ChartPoint{X: 1672531200000, Open: 100, High: 105, Low: 95, Close: 102, Volume: 1000}, points[0])
	assert.Equal(t, int64(1672617600000), points[1].X)
	assert.NotNil(t, Points(nil))
}

func TestJSONRenderer_Render(t *testing.T) {
	logger := &mockLogger{}
	outputDir := t.TempDir()

	err := NewJSONRenderer(logger).Render(context.Background(), sampleCandles(), outputDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outputDir, ChartFileName))
	require.NoError(t, err)

	var doc ChartDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, 2, doc.Count)
	assert.Equal(t, Points(sampleCandles()), doc.Points)
	assert.Contains(t, logger.infoMsgs, "Candlestick chart written")
	assert.Empty(t, logger.warnMsgs)
}

func TestJSONRenderer_RenderEmpty(t *testing.T) {
	logger := &mockLogger{}
	outputDir := t.TempDir()

	require.NoError(t, NewJSONRenderer(logger).Render(context.Background(), nil, outputDir))

	data, err := os.ReadFile(filepath.Join(outputDir, ChartFileName))
	require.NoError(t, err)
	assert.JSONEq(t, `{"count": 0, "points": []}`, string(data))
	assert.Len(t, logger.warnMsgs, 1)
}

func TestJSONRenderer_Errors(t *testing.T) {
	t.Run("missing output directory", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing")
		err := NewJSONRenderer(&mockLogger{}).Render(context.Background(), sampleCandles(), missing)
		assert.ErrorIs(t, err, ports.ErrRender)
		assert.NoDirExists(t, missing)
	})

	t.Run("target cannot be replaced", func(t *testing.T) {
		outputDir := t.TempDir()
		blocker := filepath.Join(outputDir, ChartFileName)
		require.NoError(t, os.MkdirAll(filepath.Join(blocker, "keep"), 0o755))

		err := NewJSONRenderer(&mockLogger{}).Render(context.Background(), sampleCandles(), outputDir)
		assert.ErrorIs(t, err, ports.ErrRender)

		entries, err := os.ReadDir(outputDir)
		require.NoError(t, err)
		require.Len(t, entries, 1, "staged file must be cleaned up")
		assert.DirExists(t, filepath.Join(blocker, "keep"))
	})
}

func TestJSONRenderer_RenderNonFinite(t *testing.T) {
	candles := sampleCandles()
	candles[0].Volume = math.NaN()
	candles[1].High = math.Inf(1)
	candles[1].Low = math.Inf(-1)
	outputDir := t.TempDir()

	require.NoError(t, NewJSONRenderer(&mockLogger{}).Render(context.Background(), candles, outputDir))

	data, err := os.ReadFile(filepath.Join(outputDir, ChartFileName))
	require.NoError(t, err)

	var raw struct {
		Count  int                      `json:"count"`
		Points []map[string]interface{} `json:"points"`
	}
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw.Points, 2)
	assert.Nil(t, raw.Points[0]["v"])
	assert.Equal(t, 102.0, raw.Points[0]["c"])
	assert.Nil(t, raw.Points[1]["h"])
	assert.Nil(t, raw.Points[1]["l"])
	assert.Equal(t, 106.0, raw.Points[1]["c"])
	assert.Contains(t, raw.Points[1], "h")
}

func TestJSONRenderer_ReplacesPreviousChart(t *testing.T) {
	outputDir := t.TempDir()
	path := filepath.Join(outputDir, ChartFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"count": 99}`), 0o644))

	require.NoError(t, NewJSONRenderer(&mockLogger{}).Render(context.Background(), sampleCandles(), outputDir))

	var doc ChartDocument
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, 2, doc.Count)

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ChartFileName, entries[0].Name())
}
