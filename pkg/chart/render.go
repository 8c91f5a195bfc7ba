// Package chart renders ranked word counts as self-contained ECharts pages.
//
// Every kind consumes the same ranked input; they differ only in how the
// (word, count) pairs map onto the chart's series. An empty input renders a
// valid, empty chart.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/dtnitsch/web-wordviz/models"
)

// DefaultHeight is the pixel height of a rendered chart.
const DefaultHeight = models.DefaultChartHeight

// ErrUnknownKind is returned by Render for a Kind outside the defined set.
var ErrUnknownKind = errors.New("unknown chart kind")

// seriesName labels the single data series of most kinds.
const seriesName = "Frequency"

type page interface {
	Render(w io.Writer) error
}

// Renderer turns ranked word counts into HTML. The zero value is usable.
type Renderer struct {
	// Height in pixels; 0 means DefaultHeight.
	Height int
	// AssetsHost overrides where echarts.min.js is loaded from.
	AssetsHost string
	// Subtitle is shown under each chart title, typically the source URL.
	Subtitle string
}

// Render builds the chart for kind and returns a complete HTML page.
func (r *Renderer) Render(kind Kind, ranked []models.WordCount) (string, error) {
	var p page
	switch kind {
	case WordCloud:
		p = r.wordCloud(ranked)
	case Bar:
		p = r.bar(ranked)
	case Line:
		p = r.line(ranked)
	case Pie:
		p = r.pie(ranked)
	case Radar:
		p = r.radar(ranked)
	case Scatter:
		p = r.scatter(ranked)
	case Funnel:
		p = r.funnel(ranked)
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render %s chart: %w", kind, err)
	}
	return buf.String(), nil
}

// RenderLabel looks label up with ParseKind and renders it. An unknown
// label renders nothing and is not an error; callers decide whether to warn.
func (r *Renderer) RenderLabel(label string, ranked []models.WordCount) (string, error) {
	kind, ok := ParseKind(label)
	if !ok {
		return "", nil
	}
	return r.Render(kind, ranked)
}

func (r *Renderer) height() int {
	if r.Height > 0 {
		return r.Height
	}
	return DefaultHeight
}

// global returns the options every kind shares.
func (r *Renderer) global(title string, extra ...charts.GlobalOpts) []charts.GlobalOpts {
	return append([]charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  title,
			Width:      "100%",
			Height:     fmt.Sprintf("%dpx", r.height()),
			AssetsHost: r.AssetsHost,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: r.Subtitle,
		}),
	}, extra...)
}

func words(ranked []models.WordCount) []string {
	out := make([]string, len(ranked))
	for i, wc := range ranked {
		out[i] = wc.Word
	}
	return out
}
