package analyze

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

func newTestApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:           "wordviz",
		Writer:         out,
		ErrWriter:      io.Discard,
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config"},
			&cli.BoolFlag{Name: "quiet"},
			&cli.BoolFlag{Name: "verbose"},
		},
		Commands: []*cli.Command{
			{Name: "analyze", Flags: Flags(), Action: AnalyzeAction},
			{Name: "kinds", Action: KindsAction},
		},
	}
}

// setupEnv isolates the test from any real config file or .env.
func setupEnv(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("analysis:\n  chart: bar\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Chdir(dir)
	return cfgPath
}

func exitCode(err error) int {
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	if err != nil {
		return -1
	}
	return 0
}

func TestAnalyzeAction_WritesReportAndChart(t *testing.T) {
	cfgPath := setupEnv(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, "<p>golang golang chart</p>")
	}))
	defer srv.Close()

	outDir := t.TempDir()
	var buf bytes.Buffer
	err := newTestApp(&buf).Run([]string{"wordviz", "--quiet", "--config", cfgPath,
		"analyze", "--url", srv.URL, "--output-dir", outDir, "--out", "chart.html"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if buf.String() != "golang: 2\nchart: 1\n" {
		t.Errorf("stdout = %q", buf.String())
	}

	page, err := os.ReadFile(filepath.Join(outDir, "chart.html"))
	if err != nil {
		t.Fatalf("chart not written: %v", err)
	}
	if !strings.Contains(string(page), `"bar"`) {
		t.Error("chart page does not use the configured bar kind")
	}
}

func TestAnalyzeAction_ReportsChartFile(t *testing.T) {
	cfgPath := setupEnv(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<p>golang golang chart</p>")
	}))
	defer srv.Close()

	outDir := t.TempDir()
	var buf bytes.Buffer
	err := newTestApp(&buf).Run([]string{"wordviz", "--quiet", "--config", cfgPath,
		"analyze", "--format", "json", "--url", srv.URL, "--output-dir", outDir, "--out", "chart.html"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var got struct {
		ChartPath  string `json:"chart_path"`
		ChartBytes int64  `json:"chart_bytes"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}

	info, err := os.Stat(filepath.Join(outDir, "chart.html"))
	if err != nil {
		t.Fatalf("chart not written: %v", err)
	}
	if got.ChartPath != filepath.Join(outDir, "chart.html") {
		t.Errorf("chart_path = %q, want %q", got.ChartPath, filepath.Join(outDir, "chart.html"))
	}
	if got.ChartBytes != info.Size() || got.ChartBytes == 0 {
		t.Errorf("chart_bytes = %d, want %d", got.ChartBytes, info.Size())
	}
}

func TestAnalyzeAction_ArgumentURLAndJSON(t *testing.T) {
	cfgPath := setupEnv(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<p>alpha beta beta</p>")
	}))
	defer srv.Close()

	var buf bytes.Buffer
	err := newTestApp(&buf).Run([]string{"wordviz", "--quiet", "--config", cfgPath,
		"analyze", "--format", "json", "--no-chart", "--min-freq", "2", srv.URL})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"word": "beta"`) || strings.Contains(out, `"word": "alpha"`) {
		t.Errorf("json report = %s", out)
	}
	if strings.Contains(out, "chart_path") {
		t.Error("--no-chart still reported a chart path")
	}
	matches, _ := filepath.Glob("wordviz-*.html")
	if len(matches) != 0 {
		t.Errorf("--no-chart wrote %v", matches)
	}
}

func TestAnalyzeAction_UnknownChartLabel(t *testing.T) {
	cfgPath := setupEnv(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<p>alpha beta</p>")
	}))
	defer srv.Close()

	var buf bytes.Buffer
	err := newTestApp(&buf).Run([]string{"wordviz", "--quiet", "--config", cfgPath,
		"analyze", "--chart", "heatmap", srv.URL})
	if err != nil {
		t.Fatalf("Run() error = %v, want nil for an unknown chart label", err)
	}
	if buf.String() == "" {
		t.Error("report not printed for an unknown chart label")
	}
	matches, _ := filepath.Glob("wordviz-*.html")
	if len(matches) != 0 {
		t.Errorf("unknown chart label wrote %v", matches)
	}
}

func TestAnalyzeAction_ExitCodes(t *testing.T) {
	cfgPath := setupEnv(t)
	missing := httptest.NewServer(http.NotFoundHandler())
	defer missing.Close()

	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "no url", args: []string{"analyze"}, want: 1},
		{name: "malformed url", args: []string{"analyze", "--url", "not a url"}, want: 1},
		{name: "bad format", args: []string{"analyze", "--format", "csv", "--url", missing.URL}, want: 1},
		{name: "404", args: []string{"analyze", "--url", missing.URL}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			args := append([]string{"wordviz", "--quiet", "--config", cfgPath}, tt.args...)
			err := newTestApp(&buf).Run(args)
			if got := exitCode(err); got != tt.want {
				t.Errorf("exit code = %d (%v), want %d", got, err, tt.want)
			}
			if buf.Len() != 0 {
				t.Errorf("stdout = %q, want nothing on failure", buf.String())
			}
		})
	}
}

func TestKindsAction(t *testing.T) {
	var buf bytes.Buffer
	if err := newTestApp(&buf).Run([]string{"wordviz", "kinds"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, want := range []string{"wordcloud", "词云", "funnel", "漏斗图"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("kinds output missing %q", want)
		}
	}
}
