package parser

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// hiddenSelector matches elements whose text never reaches the screen.
const hiddenSelector = "script,style,noscript,template,iframe,svg"

type Parser struct{}

// ExtractText returns the visible text of an HTML document: every text
// node trimmed of surrounding whitespace, empty nodes skipped, joined by
// newlines.
func (p *Parser) ExtractText(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find(hiddenSelector).Remove()

	var fragments []string
	for _, n := range doc.Nodes {
		collectText(n, &fragments)
	}
	return strings.Join(fragments, "\n"), nil
}

// ExtractArticle narrows the document to its main article with
// go-readability before extracting text. The article title comes first.
func (p *Parser) ExtractArticle(rawURL, rawHTML string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(rawHTML), parsedURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract article: %w", err)
	}

	body, err := p.ExtractText(article.Content)
	if err != nil {
		return "", err
	}

	title := strings.TrimSpace(article.Title)
	switch {
	case title == "":
		return body, nil
	case body == "":
		return title, nil
	default:
		return title + "\n" + body, nil
	}
}

func collectText(n *html.Node, out *[]string) {
	switch n.Type {
	case html.TextNode:
		if text := strings.TrimSpace(n.Data); text != "" {
			*out = append(*out, text)
		}
		return
	case html.CommentNode, html.DoctypeNode:
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, out)
	}
}
