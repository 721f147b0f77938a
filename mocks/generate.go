package mocks

//go:generate mockgen -destination=./mock_ports.go -package=mocks candleStickPlotter/internal/ports ChartRenderer,KlineSource,RecordLoader
