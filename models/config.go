// Package models defines data structures for configuration and analysis results.
package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is used for the XDG config directory.
	AppName = "wordviz"

	// DefaultMinFrequency keeps every word; counts are always at least 1.
	DefaultMinFrequency = 1

	// DefaultTopN is how many words are ranked, charted and listed.
	DefaultTopN = 20

	// DefaultChart is the chart kind used when none is selected.
	DefaultChart = "wordcloud"

	// DefaultChartHeight is the pixel height of the embedded chart.
	DefaultChartHeight = 600

	// DefaultMaxBodyBytes caps how much of a response body is read.
	DefaultMaxBodyBytes = 10 * 1024 * 1024

	// DefaultUserAgent identifies wordviz in HTTP requests.
	DefaultUserAgent = "wordviz/1.0 (+https://github.com/dtnitsch/web-wordviz)"

	// DefaultServerAddr is where `wordviz serve` listens.
	DefaultServerAddr = "127.0.0.1:8080"

	// envPrefix prefixes every environment override.
	envPrefix = "WORDVIZ_"
)

// HTTPConfig controls the single GET issued per analysis.
type HTTPConfig struct {
	// Timeout of 0 leaves the client without a deadline.
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
}

// AnalysisConfig holds the pipeline defaults. CLI flags and form fields override them.
type AnalysisConfig struct {
	MinFrequency int    `yaml:"min_frequency"`
	TopN         int    `yaml:"top_n"`
	Chart        string `yaml:"chart"`
	Readability  bool   `yaml:"readability"`
	Stopwords    bool   `yaml:"stopwords"`
}

// ChartConfig controls rendered chart pages.
type ChartConfig struct {
	Height int `yaml:"height"`
	// AssetsHost overrides where the echarts JavaScript is loaded from.
	AssetsHost string `yaml:"assets_host"`
}

// ServerConfig controls the local web UI.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Config is the full runtime configuration.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Chart    ChartConfig    `yaml:"chart"`
	Server   ServerConfig   `yaml:"server"`

	// Path is the config file that was loaded, empty when none was found.
	Path string `yaml:"-"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			UserAgent:    DefaultUserAgent,
			MaxBodyBytes: DefaultMaxBodyBytes,
		},
		Analysis: AnalysisConfig{
			MinFrequency: DefaultMinFrequency,
			TopN:         DefaultTopN,
			Chart:        DefaultChart,
		},
		Chart: ChartConfig{
			Height: DefaultChartHeight,
		},
		Server: ServerConfig{
			Addr: DefaultServerAddr,
		},
	}
}

// LoadConfig builds a Config from defaults, a YAML file and the environment.
// An empty path searches the XDG config dirs for wordviz/config.yaml; a
// missing file there is not an error, a missing explicit path is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		found, err := xdg.SearchConfigFile(filepath.Join(AppName, "config.yaml"))
		if err == nil {
			path = found
		}
	}

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		cfg.Path = path
	}

	// .env is optional
	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the pipeline cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.Timeout < 0 {
		errs = append(errs, fmt.Errorf("http.timeout must not be negative, got %s", c.HTTP.Timeout))
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("http.max_body_bytes must be positive, got %d", c.HTTP.MaxBodyBytes))
	}
	if c.Analysis.TopN < 0 {
		errs = append(errs, fmt.Errorf("analysis.top_n must not be negative, got %d", c.Analysis.TopN))
	}
	if c.Chart.Height <= 0 {
		errs = append(errs, fmt.Errorf("chart.height must be positive, got %d", c.Chart.Height))
	}
	return errors.Join(errs...)
}

func (c *Config) applyEnv() {
	c.HTTP.Timeout = getEnvDuration("HTTP_TIMEOUT", c.HTTP.Timeout)
	c.HTTP.UserAgent = getEnv("HTTP_USER_AGENT", c.HTTP.UserAgent)
	c.HTTP.MaxBodyBytes = int64(getEnvInt("HTTP_MAX_BODY_BYTES", int(c.HTTP.MaxBodyBytes)))

	c.Analysis.MinFrequency = getEnvInt("MIN_FREQUENCY", c.Analysis.MinFrequency)
	c.Analysis.TopN = getEnvInt("TOP_N", c.Analysis.TopN)
	c.Analysis.Chart = getEnv("CHART", c.Analysis.Chart)
	c.Analysis.Readability = getEnvBool("READABILITY", c.Analysis.Readability)
	c.Analysis.Stopwords = getEnvBool("STOPWORDS", c.Analysis.Stopwords)

	c.Chart.Height = getEnvInt("CHART_HEIGHT", c.Chart.Height)
	c.Chart.AssetsHost = getEnv("CHART_ASSETS_HOST", c.Chart.AssetsHost)

	c.Server.Addr = getEnv("SERVER_ADDR", c.Server.Addr)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(envPrefix + key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(envPrefix + key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(envPrefix + key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
