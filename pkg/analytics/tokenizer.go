// Package analytics turns plain text into a sequence of word tokens.
package analytics

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-ego/gse"
)

// fillerTokens are whitespace artifacts the segmenter emits as words.
var fillerTokens = map[string]struct{}{
	"\u3000": {}, // ideographic (full-width) space
	"\u00a0": {}, // no-break space
}

// TokenizerOption configures a Tokenizer.
type TokenizerOption func(*Tokenizer)

// WithStopwords drops stopwords from the token sequence.
func WithStopwords() TokenizerOption {
	return func(t *Tokenizer) {
		t.stopwords = true
	}
}

// Tokenizer segments text with a dictionary-driven segmenter (gse, the Go
// port of jieba). Construction loads the dictionary; Tokenize only reads
// it, so one Tokenizer can serve concurrent callers.
type Tokenizer struct {
	seg       *gse.Segmenter
	stopwords bool
}

// NewTokenizer loads the embedded simplified-Chinese dictionary. Latin
// words keep the case they have on the page.
func NewTokenizer(opts ...TokenizerOption) (*Tokenizer, error) {
	// gse folds Latin text to lower case unless told otherwise; the setting
	// is package-wide.
	gse.ToLower = false

	t := &Tokenizer{seg: &gse.Segmenter{SkipLog: true}}
	for _, opt := range opts {
		opt(t)
	}

	if err := t.seg.LoadDictEmbed(); err != nil {
		return nil, fmt.Errorf("failed to load segmentation dictionary: %w", err)
	}
	return t, nil
}

// WithStopwords returns a tokenizer sharing t's dictionary with stopword
// filtering switched on or off.
func (t *Tokenizer) WithStopwords(enabled bool) *Tokenizer {
	if t.stopwords == enabled {
		return t
	}
	clone := *t
	clone.stopwords = enabled
	return &clone
}

// Tokenize segments text and keeps tokens in order of appearance,
// duplicates included. Tokens of one rune, filler spaces and
// whitespace-only tokens are dropped.
func (t *Tokenizer) Tokenize(text string) []string {
	if text == "" {
		return []string{}
	}

	words := t.seg.Cut(text, true)
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if !keep(word) {
			continue
		}
		if t.stopwords && IsStopword(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

func keep(word string) bool {
	if utf8.RuneCountInString(word) <= 1 {
		return false
	}
	if _, ok := fillerTokens[word]; ok {
		return false
	}
	return strings.TrimFunc(word, unicode.IsSpace) != ""
}
