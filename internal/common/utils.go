package common

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)

// strayPunctuation is sentence punctuation that sticks to a pasted URL.
const strayPunctuation = ",.;:，。；："

// wrapperClosers maps a leading wrapper to the closer stripped with it.
var wrapperClosers = map[byte]string{'<': ">", '"': `"`, '\'': "'"}

// bracketPairs are only trimmed when the closer is unbalanced, so
// /wiki/Go_(programming_language) survives.
var bracketPairs = [][2]string{{"(", ")"}, {"[", "]"}, {"{", "}"}}

// SanitizeURL performs basic cleanup on URLs to handle common copy-paste issues.
// Removes whitespace, wrapping quotes or brackets, markdown artifacts and a
// single stray trailing punctuation mark.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	// [text](url) -> url
	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	// "(https://example.com" -> "https://example.com"
	trimmed := strings.TrimLeft(cleaned, "([<\"'")
	opened := cleaned[:len(cleaned)-len(trimmed)]
	cleaned = trimmed

	// <https://example.com> -> https://example.com
	for i := len(opened) - 1; i >= 0; i-- {
		if closer, ok := wrapperClosers[opened[i]]; ok {
			cleaned = strings.TrimSuffix(cleaned, closer)
		}
	}

	// "https://example.com," -> "https://example.com", but /a... is left alone
	cleaned = trimStrayPunctuation(cleaned)

	// "(see https://example.com)" -> "https://example.com"
	for _, pair := range bracketPairs {
		if strings.HasSuffix(cleaned, pair[1]) && strings.Count(cleaned, pair[1]) > strings.Count(cleaned, pair[0]) {
			cleaned = strings.TrimSuffix(cleaned, pair[1])
		}
	}

	return strings.TrimSpace(cleaned)
}

// trimStrayPunctuation drops one trailing punctuation mark, unless it is part
// of a longer run of punctuation.
func trimStrayPunctuation(s string) string {
	last, size := utf8.DecodeLastRuneInString(s)
	if size == 0 || !strings.ContainsRune(strayPunctuation, last) {
		return s
	}
	rest := s[:len(s)-size]
	if prev, n := utf8.DecodeLastRuneInString(rest); n > 0 && strings.ContainsRune(strayPunctuation, prev) {
		return s
	}
	return rest
}

// ValidateURL sanitizes rawURL and checks that it is an absolute http(s)
// URL with a host. It returns the cleaned URL.
func ValidateURL(rawURL string) (string, error) {
	cleaned := SanitizeURL(rawURL)
	if cleaned == "" {
		return "", fmt.Errorf("no URL provided")
	}

	// Spaces in URLs must be pre-encoded as %20
	if strings.ContainsAny(cleaned, " \t\n") {
		return "", fmt.Errorf("malformed URL %q: contains whitespace", rawURL)
	}

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return "", fmt.Errorf("malformed URL %q: %w", rawURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("malformed URL %q: scheme must be http or https", rawURL)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("malformed URL %q: missing host", rawURL)
	}
	if strings.ContainsAny(parsed.Host, "{}<>\"'") {
		return "", fmt.Errorf("malformed URL %q: invalid characters in host", rawURL)
	}

	return cleaned, nil
}

// NewLogger returns the JSON logger on stderr used by every command.
// quiet wins over verbose.
func NewLogger(quiet, verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	switch {
	case quiet:
		logLevel = slog.LevelError
	case verbose:
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}
