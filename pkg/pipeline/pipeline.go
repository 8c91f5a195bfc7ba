// Package pipeline runs one analysis end to end:
// URL → text → tokens → counts → filtered counts → ranked top N.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dtnitsch/web-wordviz/internal/common"
	"github.com/dtnitsch/web-wordviz/models"
	"github.com/dtnitsch/web-wordviz/pkg/analytics"
	"github.com/dtnitsch/web-wordviz/pkg/fetcher"
	"github.com/dtnitsch/web-wordviz/pkg/frequency"
	"github.com/dtnitsch/web-wordviz/pkg/parser"
)

// Request holds the user inputs of a single analysis.
type Request struct {
	URL          string
	MinFrequency int
	// TopN of 0 means frequency.DefaultTopN.
	TopN        int
	Readability bool
	Stopwords   bool
}

// Pipeline wires the retriever, tokenizer and counter together. It holds
// no per-run state, so a single Pipeline may serve concurrent runs.
type Pipeline struct {
	fetcher   *fetcher.Fetcher
	parser    *parser.Parser
	tokenizer *analytics.Tokenizer
	logger    *slog.Logger
}

func New(f *fetcher.Fetcher, p *parser.Parser, tok *analytics.Tokenizer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{fetcher: f, parser: p, tokenizer: tok, logger: logger}
}

// FromConfig builds a Pipeline from the runtime configuration. Loading the
// segmenter dictionary is the slow part, so callers build one Pipeline and
// reuse it.
func FromConfig(cfg *models.Config, logger *slog.Logger) (*Pipeline, error) {
	f := fetcher.NewFetcher(fetcher.Options{
		Timeout:      cfg.HTTP.Timeout,
		UserAgent:    cfg.HTTP.UserAgent,
		MaxBodyBytes: cfg.HTTP.MaxBodyBytes,
	})

	var opts []analytics.TokenizerOption
	if cfg.Analysis.Stopwords {
		opts = append(opts, analytics.WithStopwords())
	}
	tok, err := analytics.NewTokenizer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenizer: %w", err)
	}

	return New(f, &parser.Parser{}, tok, logger), nil
}

// RequestFromConfig returns a Request for rawURL carrying the configured
// analysis defaults.
func RequestFromConfig(cfg *models.Config, rawURL string) Request {
	return Request{
		URL:          rawURL,
		MinFrequency: cfg.Analysis.MinFrequency,
		TopN:         cfg.Analysis.TopN,
		Readability:  cfg.Analysis.Readability,
		Stopwords:    cfg.Analysis.Stopwords,
	}
}

// Run performs one analysis. A *fetcher.RetrievalError aborts the run
// before any tokenizing or counting; an empty page is not an error and
// yields an empty result.
func (p *Pipeline) Run(ctx context.Context, req Request) (*models.AnalysisResult, error) {
	startTime := time.Now()

	pageURL, err := common.ValidateURL(req.URL)
	if err != nil {
		return nil, err
	}

	p.logger.Info("Fetching page", "url", pageURL)
	rawHTML, err := p.fetcher.GetHtml(ctx, pageURL)
	if err != nil {
		p.logger.Error("Error fetching page", "url", pageURL, "error", err)
		return nil, err
	}

	text, err := p.extract(pageURL, rawHTML, req.Readability)
	if err != nil {
		// Unparseable markup is treated like an empty page.
		p.logger.Warn("Failed to extract text, continuing with empty text", "url", pageURL, "error", err)
		text = ""
	}

	tokens := p.tokenizer.WithStopwords(req.Stopwords).Tokenize(text)
	table := frequency.Count(tokens)
	filtered := table.FilterByMinimum(req.MinFrequency)

	topN := req.TopN
	if topN <= 0 {
		topN = frequency.DefaultTopN
	}

	result := &models.AnalysisResult{
		URL:           pageURL,
		Threshold:     req.MinFrequency,
		TokenCount:    len(tokens),
		DistinctCount: table.Len(),
		Filtered:      filtered.Entries(),
		Top:           filtered.TopN(topN),
	}

	p.logger.Info("Analysis complete",
		"url", pageURL,
		"text_bytes", len(text),
		"tokens", result.TokenCount,
		"distinct", result.DistinctCount,
		"filtered", result.FilteredCount(),
		"duration_ms", time.Since(startTime).Milliseconds(),
	)
	return result, nil
}

func (p *Pipeline) extract(pageURL, rawHTML string, readability bool) (string, error) {
	if !readability {
		return p.parser.ExtractText(rawHTML)
	}

	text, err := p.parser.ExtractArticle(pageURL, rawHTML)
	if err != nil {
		p.logger.Warn("Readability extraction failed, falling back to full page", "url", pageURL, "error", err)
		return p.parser.ExtractText(rawHTML)
	}
	return text, nil
}

// Describe is a one-line summary of a result for terminal output.
func Describe(r *models.AnalysisResult) string {
	return fmt.Sprintf("%s: %d words, %d distinct, %d with count >= %d",
		r.URL, r.TokenCount, r.DistinctCount, r.FilteredCount(), r.Threshold)
}
