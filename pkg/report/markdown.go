package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// pieSlices caps the mermaid pie; more slices than this are unreadable.
const pieSlices = 10

func writeMarkdown(w io.Writer, s Summary) error {
	md := markdown.NewMarkdown(w)

	md.H1("Word Frequency Report")
	md.PlainText("")

	rows := [][]string{
		{"URL", "`" + s.URL + "`"},
		{"Generated", s.GeneratedAt},
		{"Words", strconv.Itoa(s.TokenCount)},
		{"Distinct words", strconv.Itoa(s.DistinctCount)},
		{"Minimum frequency", strconv.Itoa(s.Threshold)},
		{"Words at or above minimum", strconv.Itoa(s.FilteredCount)},
	}
	if s.ChartPath != "" {
		rows = append(rows, []string{"Chart", "`" + s.ChartPath + "`"})
		rows = append(rows, []string{"Chart size", strconv.FormatInt(s.ChartBytes, 10) + " bytes"})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	md.H2("Top Words")
	md.PlainText("")
	if len(s.Top) == 0 {
		md.PlainText("No words met the minimum frequency.")
		return md.Build()
	}

	top := make([][]string, len(s.Top))
	for i, wc := range s.Top {
		top[i] = []string{strconv.Itoa(i + 1), wc.Word, strconv.Itoa(wc.Count)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Word", "Count"},
		Rows:   top,
	})
	md.PlainText("")

	writePieChart(md, s)

	return md.Build()
}

func writePieChart(md *markdown.Markdown, s Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Top Word Share"),
		piechart.WithShowData(true),
	)

	for i, wc := range s.Top {
		if i == pieSlices {
			break
		}
		chart.LabelAndIntValue(wc.Word, uint64(wc.Count))
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}
