package serve

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dtnitsch/web-wordviz/models"
	"github.com/dtnitsch/web-wordviz/pkg/chart"
	"github.com/dtnitsch/web-wordviz/pkg/fetcher"
	"github.com/dtnitsch/web-wordviz/pkg/frequency"
	"github.com/dtnitsch/web-wordviz/pkg/pipeline"
)

// iframePadding leaves room around the chart so the frame never scrolls.
const iframePadding = 40

// Handler serves the web UI. Every request runs its own analysis; the
// pipeline and config are shared read-only.
type Handler struct {
	pipeline *pipeline.Pipeline
	cfg      *models.Config
	logger   *slog.Logger
}

func NewHandler(p *pipeline.Pipeline, cfg *models.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{pipeline: p, cfg: cfg, logger: logger}
}

// formInput is what a request asked for.
type formInput struct {
	url     string
	minFreq string
	chart   string
}

func readForm(r *http.Request, cfg *models.Config) formInput {
	q := r.URL.Query()
	in := formInput{
		url:     strings.TrimSpace(q.Get("url")),
		minFreq: strings.TrimSpace(q.Get("min_freq")),
		chart:   strings.TrimSpace(q.Get("chart")),
	}
	if in.minFreq == "" {
		in.minFreq = strconv.Itoa(cfg.Analysis.MinFrequency)
	}
	if in.chart == "" {
		in.chart = cfg.Analysis.Chart
	}
	return in
}

// request turns the form into a pipeline request.
func (h *Handler) request(in formInput) (pipeline.Request, error) {
	req := pipeline.RequestFromConfig(h.cfg, in.url)
	minFreq, err := strconv.Atoi(in.minFreq)
	if err != nil {
		return req, fmt.Errorf("minimum frequency must be a whole number, got %q", in.minFreq)
	}
	req.MinFrequency = minFreq
	return req, nil
}

func (h *Handler) renderer(subtitle string) *chart.Renderer {
	return &chart.Renderer{
		Height:     h.cfg.Chart.Height,
		AssetsHost: h.cfg.Chart.AssetsHost,
		Subtitle:   subtitle,
	}
}

// HandleIndex serves the form and, when a URL was submitted, the chart and
// top-word listing for it.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	in := readForm(r, h.cfg)
	data := pageData{
		URL:          in.url,
		MinFreq:      in.minFreq,
		Kinds:        kindOptions(in.chart),
		IframeHeight: h.cfg.Chart.Height + iframePadding,
	}

	status := http.StatusOK
	if in.url != "" {
		status = h.analyze(r, in, &data)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		h.logger.Error("Failed to render page", "error", err)
	}
}

func (h *Handler) analyze(r *http.Request, in formInput, data *pageData) int {
	req, err := h.request(in)
	if err != nil {
		data.Error = err.Error()
		return http.StatusBadRequest
	}

	result, err := h.pipeline.Run(r.Context(), req)
	if err != nil {
		h.logger.Warn("Analysis failed", "url", in.url, "error", err)
		data.Error = err.Error()
		if fetcher.IsRetrievalError(err) {
			return http.StatusBadGateway
		}
		return http.StatusBadRequest
	}

	data.Result = true
	data.Summary = pipeline.Describe(result)
	data.Listing = frequency.Listing(result.Top)

	chartHTML, err := h.renderer(result.URL).RenderLabel(in.chart, result.Top)
	if err != nil {
		h.logger.Error("Failed to render chart", "chart", in.chart, "error", err)
		data.Error = "failed to render chart"
		return http.StatusInternalServerError
	}
	if chartHTML == "" {
		h.logger.Warn("Unknown chart type, no chart rendered", "chart", in.chart)
	}
	data.ChartHTML = chartHTML
	return http.StatusOK
}

// HandleChart returns only the chart page for the same query parameters as
// the index. An unknown chart label yields 204 with no body.
func (h *Handler) HandleChart(w http.ResponseWriter, r *http.Request) {
	in := readForm(r, h.cfg)
	if in.url == "" {
		http.Error(w, "missing url parameter", http.StatusBadRequest)
		return
	}
	req, err := h.request(in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.pipeline.Run(r.Context(), req)
	if err != nil {
		var re *fetcher.RetrievalError
		if errors.As(err, &re) {
			http.Error(w, re.Error(), http.StatusBadGateway)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	chartHTML, err := h.renderer(result.URL).RenderLabel(in.chart, result.Top)
	if err != nil {
		h.logger.Error("Failed to render chart", "chart", in.chart, "error", err)
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		return
	}
	if chartHTML == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(chartHTML))
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "ok\n")
}

func kindOptions(selected string) []kindOption {
	sel, known := chart.ParseKind(selected)

	options := make([]kindOption, 0, len(chart.AllKinds()))
	for _, k := range chart.AllKinds() {
		options = append(options, kindOption{
			Value:    k.Label(),
			Label:    k.Label(),
			Selected: known && k == sel,
		})
	}
	return options
}
