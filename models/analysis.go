package models

// WordCount is a single (token, count) pair.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// AnalysisResult is everything one run of the pipeline produces. Output
// steps (chart, listing, report) only read it.
type AnalysisResult struct {
	URL           string      `json:"url" yaml:"url"`
	Threshold     int         `json:"threshold" yaml:"threshold"`
	TokenCount    int         `json:"token_count" yaml:"token_count"`
	DistinctCount int         `json:"distinct_count" yaml:"distinct_count"`
	Filtered      []WordCount `json:"-" yaml:"-"` // first-seen order
	Top           []WordCount `json:"top" yaml:"top"`
}

// FilteredCount returns the number of distinct words that met the threshold.
func (r AnalysisResult) FilteredCount() int {
	return len(r.Filtered)
}
