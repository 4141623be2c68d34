// Package extractor turns HTML capture bodies into the plain text stored as
// document content. Readability distills the main article first, then the
// distilled HTML is flattened block by block, one block per line.
package extractor

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

type Extractor struct{}

// ExtractText extracts the main content of an HTML page as newline-joined
// plain text. Returns an empty string (no error) for pages with no usable
// content.
func (e *Extractor) ExtractText(rawURL, html string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return "", fmt.Errorf("readability parse: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return "", fmt.Errorf("parse distilled html: %w", err)
	}

	var lines []string
	doc.Find("h1,h2,h3,h4,p,li,pre").Each(func(_ int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})
	if len(lines) == 0 {
		// Distilled HTML without block structure still carries text.
		return normalizeText(article.TextContent), nil
	}
	return strings.Join(lines, "\n"), nil
}

// normalizeText collapses all runs of whitespace to single spaces.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
