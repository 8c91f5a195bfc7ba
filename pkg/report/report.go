package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/web-wordviz/models"
	"github.com/dtnitsch/web-wordviz/pkg/frequency"
)

// Format selects how an analysis is written besides the chart page.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts the format names above, case-insensitively.
// "md" and "yml" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown report format %q (want text, json, yaml or markdown)", s)
}

// Summary is the serialized form of one analysis.
type Summary struct {
	GeneratedAt   string             `json:"generated_at" yaml:"generated_at"`
	URL           string             `json:"url" yaml:"url"`
	Threshold     int                `json:"min_frequency" yaml:"min_frequency"`
	TokenCount    int                `json:"token_count" yaml:"token_count"`
	DistinctCount int                `json:"distinct_count" yaml:"distinct_count"`
	FilteredCount int                `json:"filtered_count" yaml:"filtered_count"`
	ChartPath     string             `json:"chart_path,omitempty" yaml:"chart_path,omitempty"`
	ChartBytes    int64              `json:"chart_bytes,omitempty" yaml:"chart_bytes,omitempty"`
	Top           []models.WordCount `json:"top" yaml:"top"`
}

// NewSummary builds the summary of result as of now.
func NewSummary(result *models.AnalysisResult, now time.Time) Summary {
	top := result.Top
	if top == nil {
		top = []models.WordCount{}
	}
	return Summary{
		GeneratedAt:   now.Format(time.RFC3339),
		URL:           result.URL,
		Threshold:     result.Threshold,
		TokenCount:    result.TokenCount,
		DistinctCount: result.DistinctCount,
		FilteredCount: result.FilteredCount(),
		Top:           top,
	}
}

// Write renders s to w in the given format.
func Write(w io.Writer, s Summary, format Format) error {
	switch format {
	case FormatText, "":
		_, err := io.WriteString(w, frequency.Listing(s.Top))
		if err != nil {
			return fmt.Errorf("failed to write listing: %w", err)
		}
		return nil
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshalling report: %w", err)
		}
		data = append(data, '\n')
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("error marshalling report: %w", err)
		}
		return enc.Close()
	case FormatMarkdown:
		return writeMarkdown(w, s)
	}
	return fmt.Errorf("unknown report format %q", format)
}
