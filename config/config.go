package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"candleStickPlotter/internal/adapters/logger" // Import the logger package for LogLevel
	"candleStickPlotter/internal/ports"
)

// Defaults used when neither the config file nor the environment set a value.
const (
	DefaultConfigFile = "candleplot.yaml"
	DefaultCSVFile    = "HistoricalData_1756580762948.csv"
	DefaultOutputDir  = "output"
	DefaultRenderer   = "log"
	DefaultLogLevel   = "INFO"
)

// Config holds all application configuration.
type Config struct {
	// Pipeline
	CSVFile   string `yaml:"csv_file" validate:"required"`
	OutputDir string `yaml:"output_dir" validate:"required"`
	Renderer  string `yaml:"renderer" validate:"required,oneof=log json"`

	// Logging
	LogLevelName string          `yaml:"log_level" validate:"required"`
	LogLevel     logger.LogLevel `yaml:"-"`

	// Binance API, used by fetch_klines only. Klines are public so both keys are optional.
	APIKey    string `yaml:"binance_api_key"`
	SecretKey string `yaml:"binance_api_secret"`
	IsTestnet bool   `yaml:"is_testnet"`
}

// LoadConfig loads and validates configuration. Use Load when more overrides
// (e.g. CLI flags) still have to be applied before validation.
func LoadConfig() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads configuration from an optional YAML file and environment
// variables (.env file). Environment values win over the file. The result is
// not validated.
func Load() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{
		CSVFile:      DefaultCSVFile,
		OutputDir:    DefaultOutputDir,
		Renderer:     DefaultRenderer,
		LogLevelName: DefaultLogLevel,
	}

	path := getEnv("CONFIG_FILE", DefaultConfigFile)
	if err := loadFile(path, cfg); err != nil {
		return nil, err
	}

	cfg.CSVFile = getEnv("CSV_FILE", cfg.CSVFile)
	cfg.OutputDir = getEnv("OUTPUT_DIR", cfg.OutputDir)
	cfg.Renderer = getEnv("RENDERER", cfg.Renderer)
	cfg.LogLevelName = getEnv("LOG_LEVEL", cfg.LogLevelName)
	cfg.APIKey = getEnv("BINANCE_API_KEY", cfg.APIKey)
	cfg.SecretKey = getEnv("BINANCE_API_SECRET", cfg.SecretKey)
	cfg.IsTestnet = getEnvAsBool("IS_TESTNET", cfg.IsTestnet)

	return cfg, nil
}

// loadFile merges the YAML file at path into cfg. A missing file is not an error.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w: %w", path, ports.ErrConfigurationError, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w: %w", path, ports.ErrConfigurationError, err)
	}
	return nil
}

// Validate normalizes Renderer, checks the struct tags and resolves LogLevel
// from LogLevelName.
func (c *Config) Validate() error {
	var errs []string

	c.Renderer = strings.ToLower(strings.TrimSpace(c.Renderer))

	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("configuration validation failed: %w: %w", ports.ErrConfigurationError, err)
		}
		for _, fe := range verrs {
			switch fe.Tag() {
			case "oneof":
				errs = append(errs, fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value()))
			default:
				errs = append(errs, fmt.Sprintf("%s must be set", fe.Field()))
			}
		}
	}
	c.LogLevel = logger.ParseLevel(c.LogLevelName)

	// Combine validation errors
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s: %w", strings.Join(errs, "; "), ports.ErrConfigurationError)
	}
	return nil
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
