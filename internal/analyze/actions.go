package analyze

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/web-wordviz/internal/common"
	"github.com/dtnitsch/web-wordviz/models"
	"github.com/dtnitsch/web-wordviz/pkg/chart"
	"github.com/dtnitsch/web-wordviz/pkg/fetcher"
	"github.com/dtnitsch/web-wordviz/pkg/pipeline"
	"github.com/dtnitsch/web-wordviz/pkg/report"
	"github.com/dtnitsch/web-wordviz/pkg/storage"
)

// Flags are the options of `wordviz analyze`. Defaults come from the
// config file, so none are set here.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "url", Aliases: []string{"u"}, Usage: "page to analyze (or pass it as the first argument)"},
		&cli.IntFlag{Name: "min-freq", Aliases: []string{"m"}, Usage: "minimum frequency a word needs to be kept (default from config, 1)"},
		&cli.StringFlag{Name: "chart", Aliases: []string{"c"}, Usage: "chart kind: slug or label, see `wordviz kinds` (default from config, wordcloud)"},
		&cli.IntFlag{Name: "top", Usage: "number of ranked words to chart and list (default from config, 20)"},
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "chart file to write (default wordviz-<host>-<path>-<kind>-<date>.html)"},
		&cli.StringFlag{Name: "output-dir", Usage: "directory for the chart file"},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "report format: text, json, yaml, markdown"},
		&cli.BoolFlag{Name: "readability", Usage: "count only the main article text"},
		&cli.BoolFlag{Name: "stopwords", Usage: "drop common English and Chinese function words"},
		&cli.BoolFlag{Name: "no-chart", Usage: "skip writing the chart page"},
		&cli.DurationFlag{Name: "timeout", Usage: "HTTP timeout, e.g. 30s (default none)"},
	}
}

// AnalyzeAction fetches one page, prints its word frequency report to stdout
// and writes the chart page. Retrieval failures exit with code 2, bad input
// with code 1.
func AnalyzeAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"), c.Bool("verbose"))
	startTime := time.Now()

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	applyFlags(c, cfg)
	if err := cfg.Validate(); err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	rawURL := c.String("url")
	if rawURL == "" {
		rawURL = c.Args().First()
	}
	if rawURL == "" {
		return cli.Exit("Error: no URL provided via --url flag or argument", 1)
	}

	format, err := report.ParseFormat(c.String("format"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	noChart := c.Bool("no-chart")
	kind, known := chart.ParseKind(cfg.Analysis.Chart)
	if !known && !noChart {
		// Unrecognized labels render nothing; the analysis still runs.
		logger.Warn("Unknown chart type, no chart will be rendered", "chart", cfg.Analysis.Chart)
	}

	p, err := pipeline.FromConfig(cfg, logger)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
	}

	result, err := p.Run(c.Context, pipeline.RequestFromConfig(cfg, rawURL))
	if err != nil {
		var re *fetcher.RetrievalError
		if errors.As(err, &re) {
			return cli.Exit(fmt.Sprintf("Error: %v", re), 2)
		}
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	summary := report.NewSummary(result, startTime)
	if known && !noChart {
		if err := writeChart(c, cfg, kind, result, &summary); err != nil {
			logger.Error("Failed to write chart", "kind", kind.String(), "error", err)
			return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
		}
		logger.Info("Chart saved", "kind", kind.String(), "path", summary.ChartPath, "size_bytes", summary.ChartBytes)
	}

	if err := report.Write(c.App.Writer, summary, format); err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
	}

	logger.Info("Done", "url", result.URL, "duration_ms", time.Since(startTime).Milliseconds())
	return nil
}

// writeChart renders the chart page, saves it and records its path and size
// in summary.
func writeChart(c *cli.Context, cfg *models.Config, kind chart.Kind, result *models.AnalysisResult, summary *report.Summary) error {
	r := &chart.Renderer{
		Height:     cfg.Chart.Height,
		AssetsHost: cfg.Chart.AssetsHost,
		Subtitle:   result.URL,
	}
	page, err := r.Render(kind, result.Top)
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "" {
		out = storage.OutputPath(result.URL, kind.String(), time.Now())
	}
	s := &storage.Storage{Dir: c.String("output-dir")}
	written, err := s.SaveFile(out, []byte(page))
	if err != nil {
		return err
	}

	stats, err := s.GetFileStats(out)
	if err != nil {
		return err
	}
	summary.ChartPath = written
	summary.ChartBytes = stats.SizeBytes
	return nil
}

// applyFlags layers explicitly set flags over the loaded config.
func applyFlags(c *cli.Context, cfg *models.Config) {
	if c.IsSet("min-freq") {
		cfg.Analysis.MinFrequency = c.Int("min-freq")
	}
	if c.IsSet("chart") {
		cfg.Analysis.Chart = c.String("chart")
	}
	if c.IsSet("top") {
		cfg.Analysis.TopN = c.Int("top")
	}
	if c.IsSet("readability") {
		cfg.Analysis.Readability = c.Bool("readability")
	}
	if c.IsSet("stopwords") {
		cfg.Analysis.Stopwords = c.Bool("stopwords")
	}
	if c.IsSet("timeout") {
		cfg.HTTP.Timeout = c.Duration("timeout")
	}
}
