package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSaveFile_CreatesParents(t *testing.T) {
	s := &Storage{Dir: t.TempDir()}

	written, err := s.SaveFile(filepath.Join("charts", "nested", "page.html"), []byte("<html></html>"))
	if err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	data, err := os.ReadFile(written)
	if err != nil {
		t.Fatalf("failed to read back %s: %v", written, err)
	}
	if string(data) != "<html></html>" {
		t.Errorf("file content = %q", data)
	}

	stats, err := s.GetFileStats(filepath.Join("charts", "nested", "page.html"))
	if err != nil {
		t.Fatalf("GetFileStats() error = %v", err)
	}
	if stats.SizeBytes != int64(len("<html></html>")) {
		t.Errorf("SizeBytes = %d", stats.SizeBytes)
	}
}

func TestSaveFile_AbsolutePathIgnoresDir(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "out.html")
	s := &Storage{Dir: "should-not-be-used"}

	written, err := s.SaveFile(abs, []byte("x"))
	if err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	if written != abs {
		t.Errorf("SaveFile() wrote %s, want %s", written, abs)
	}
}

func TestGetFileStats_Missing(t *testing.T) {
	s := &Storage{Dir: t.TempDir()}
	if _, err := s.GetFileStats("nope.html"); err == nil {
		t.Error("GetFileStats() error = nil, want error")
	}
}

func TestOutputPath(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		url  string
		kind string
		want string
	}{
		{
			name: "host only",
			url:  "https://example.com/",
			kind: "bar",
			want: "wordviz-example_com-bar-2026-01-15.html",
		},
		{
			name: "path segments",
			url:  "https://news.example.com/world/today.html",
			kind: "wordcloud",
			want: "wordviz-news_example_com-world-today_html-wordcloud-2026-01-15.html",
		},
		{
			name: "port dropped",
			url:  "http://127.0.0.1:8080/a",
			kind: "pie",
			want: "wordviz-127_0_0_1-a-pie-2026-01-15.html",
		},
		{
			name: "chinese path kept",
			url:  "https://example.com/新闻",
			kind: "funnel",
			want: "wordviz-example_com-新闻-funnel-2026-01-15.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(tt.url, tt.kind, now); got != tt.want {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestOutputPath_LongPathTruncated(t *testing.T) {
	url := "https://example.com/" + strings.Repeat("segment/", 40)
	got := OutputPath(url, "line", time.Now())
	if len([]rune(got)) > 160 {
		t.Errorf("OutputPath() length = %d, want bounded", len([]rune(got)))
	}
	if strings.ContainsAny(got, "/?&") {
		t.Errorf("OutputPath() = %q contains path separators", got)
	}
}
