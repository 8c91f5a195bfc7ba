package chart

import "strings"

// Kind is one of the fixed visual encodings of the ranked words.
type Kind int

const (
	WordCloud Kind = iota
	Bar
	Line
	Pie
	Radar
	Scatter
	Funnel
)

var kindNames = [...]struct {
	slug  string
	label string
}{
	WordCloud: {"wordcloud", "词云"},
	Bar:       {"bar", "柱状图"},
	Line:      {"line", "折线图"},
	Pie:       {"pie", "饼图"},
	Radar:     {"radar", "雷达图"},
	Scatter:   {"scatter", "散点图"},
	Funnel:    {"funnel", "漏斗图"},
}

// AllKinds returns every kind in menu order.
func AllKinds() []Kind {
	return []Kind{WordCloud, Bar, Line, Pie, Radar, Scatter, Funnel}
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= WordCloud && k <= Funnel
}

// String returns the lowercase slug used on the command line.
func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k].slug
}

// Label returns the menu label shown in the web UI.
func (k Kind) Label() string {
	if !k.Valid() {
		return ""
	}
	return kindNames[k].label
}

// ParseKind resolves a slug (case-insensitive) or a menu label.
func ParseKind(label string) (Kind, bool) {
	label = strings.TrimSpace(label)
	for _, k := range AllKinds() {
		if strings.EqualFold(label, kindNames[k].slug) || label == kindNames[k].label {
			return k, true
		}
	}
	return 0, false
}
