package fetcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/dtnitsch/web-wordviz/models"
)

// RetrievalError reports a failed page retrieval: transport errors and
// HTTP statuses of 400 and above. The message is meant for the end user.
type RetrievalError struct {
	URL        string
	StatusCode int // 0 for transport errors
	Err        error
}

func (e *RetrievalError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s: server responded %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// IsRetrievalError reports whether err is, or wraps, a *RetrievalError.
func IsRetrievalError(err error) bool {
	var re *RetrievalError
	return errors.As(err, &re)
}

// Options configures a Fetcher. Zero values fall back to sane defaults.
type Options struct {
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64
}

type Fetcher struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
}

func NewFetcher(opts Options) *Fetcher {
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = models.DefaultMaxBodyBytes
	}
	return &Fetcher{
		client:       &http.Client{Timeout: opts.Timeout},
		userAgent:    opts.UserAgent,
		maxBodyBytes: maxBody,
	}
}

// GetHtml issues one GET for url and returns the body decoded to UTF-8.
// There is no retry; every failure comes back as a *RetrievalError.
func (f *Fetcher) GetHtml(ctx context.Context, url string) (string, error) {
	body, contentType, err := f.GetHtmlBytes(ctx, url)
	if err != nil {
		return "", err
	}

	reader, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return "", &RetrievalError{URL: url, Err: fmt.Errorf("failed to decode response body: %w", err)}
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", &RetrievalError{URL: url, Err: fmt.Errorf("failed to decode response body: %w", err)}
	}
	return string(decoded), nil
}

// GetHtmlBytes returns the raw body and its Content-Type header.
func (f *Fetcher) GetHtmlBytes(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", &RetrievalError{URL: url, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", &RetrievalError{URL: url, Err: fmt.Errorf("failed to make HTTP request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, "", &RetrievalError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("status code: %d", resp.StatusCode),
		}
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return nil, "", &RetrievalError{URL: url, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	return bodyBytes, resp.Header.Get("Content-Type"), nil
}
