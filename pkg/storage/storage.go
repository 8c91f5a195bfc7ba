package storage

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Storage struct {
	// Dir is prepended to relative paths. Empty means the working directory.
	Dir string
}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

func (s *Storage) resolve(filePath string) string {
	if s.Dir == "" || filepath.IsAbs(filePath) {
		return filePath
	}
	return filepath.Join(s.Dir, filePath)
}

// SaveFile writes content to filePath, creating parent directories as
// needed. It returns the path actually written.
func (s *Storage) SaveFile(filePath string, content []byte) (string, error) {
	fullPath := s.resolve(filePath)
	if dir := filepath.Dir(fullPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("error creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	return fullPath, nil
}

// GetFileStats returns metadata about a file using os.Stat (no I/O overhead).
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(s.resolve(filePath))
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}

	return &FileStats{
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}

// OutputPath generates a filesystem-friendly chart file name from a URL,
// e.g. wordviz-example_com-news-today-bar-2026-01-15.html.
func OutputPath(rawURL, kind string, now time.Time) string {
	date := now.Format("2006-01-02")

	parsedURL, err := url.Parse(rawURL)
	if err != nil || parsedURL.Host == "" {
		// Fallback for invalid URLs
		safeString := strings.ReplaceAll(rawURL, "https://", "")
		safeString = strings.ReplaceAll(safeString, "http://", "")
		return fmt.Sprintf("wordviz-%s-%s-%s.html", sanitize(safeString), kind, date)
	}

	host := strings.ReplaceAll(parsedURL.Hostname(), ".", "_")

	// Include the path so example.com/a and example.com/b do not collide
	path := strings.Trim(parsedURL.Path, "/")
	path = strings.ReplaceAll(path, "/", "-")
	path = strings.ReplaceAll(path, ".", "_")

	name := host
	if path != "" {
		name += "-" + path
	}
	return fmt.Sprintf("wordviz-%s-%s-%s.html", sanitize(name), kind, date)
}

// sanitize drops characters that are awkward in file names and caps the
// length so deep paths stay under common file name limits.
func sanitize(s string) string {
	const maxLen = 120

	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '-' || r == '_':
			b.WriteRune(r)
		case r < 0x80 && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'):
			b.WriteRune(r)
		case r >= 0x80:
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	out := b.String()
	if runes := []rune(out); len(runes) > maxLen {
		out = string(runes[:maxLen])
	}
	return out
}
