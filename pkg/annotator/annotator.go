// Package annotator holds the pipeline stages that annotate a document's
// metadata in place. Each stage inspects the document and calls exactly one
// mutation operation on its metadata, so independent stages can be composed
// freely.
package annotator

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/dtnitsch/corpus-doc/models"
)

// Annotator records a single finding on a document's metadata.
type Annotator interface {
	Annotate(doc *models.Document)
}

// Pipeline runs a fixed sequence of annotators over a document.
type Pipeline struct {
	annotators []Annotator
}

func NewPipeline(annotators ...Annotator) *Pipeline {
	return &Pipeline{annotators: annotators}
}

func (p *Pipeline) Annotate(doc *models.Document) {
	for _, a := range p.annotators {
		a.Annotate(doc)
	}
}

// TinyDocument flags documents whose content is below a minimum byte
// length.
type TinyDocument struct {
	MinBytes int
}

func (t TinyDocument) Annotate(doc *models.Document) {
	if len(doc.Content()) < t.MinBytes {
		doc.Metadata().AddAnnotation("tiny")
	}
}

// ShortSentences flags documents where most lines are shorter than
// MinChars. Threshold is the triggering fraction of short lines.
type ShortSentences struct {
	MinChars  int
	Threshold float64
}

func (s ShortSentences) Annotate(doc *models.Document) {
	lines := strings.Split(doc.Content(), "\n")
	if len(lines) == 0 {
		return
	}
	short := 0
	for _, line := range lines {
		if len(strings.TrimSpace(line)) < s.MinChars {
			short++
		}
	}
	if float64(short)/float64(len(lines)) >= s.Threshold {
		doc.Metadata().AddAnnotation("short_sentences")
	}
}

// URLCategories tags documents with the categories registered for their
// target host, ut1-blocklist style. Hosts are matched on the exact
// lowercased hostname.
type URLCategories struct {
	hosts map[string][]string
}

func NewURLCategories(hosts map[string][]string) *URLCategories {
	return &URLCategories{hosts: hosts}
}

func (u *URLCategories) Annotate(doc *models.Document) {
	raw, ok := doc.URL()
	if !ok {
		return
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return
	}
	for _, category := range u.hosts[strings.ToLower(parsed.Hostname())] {
		doc.Metadata().AddCategory(category)
	}
}

// LoadCategoryMap reads a host→categories map from a file of
// whitespace-separated lines: host first, categories after. Blank lines and
// lines starting with # are skipped.
func LoadCategoryMap(path string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open category map: %w", err)
	}
	defer f.Close()

	hosts := make(map[string][]string)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		host := strings.ToLower(fields[0])
		hosts[host] = append(hosts[host], fields[1:]...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read category map: %w", err)
	}
	return hosts, nil
}

// HarmfulScore attaches an externally computed harmfulness perplexity to
// the document. Scorer returns nil when no score applies.
type HarmfulScore struct {
	Scorer func(content string) *float32
}

func (h HarmfulScore) Annotate(doc *models.Document) {
	doc.Metadata().SetHarmfulPP(h.Scorer(doc.Content()))
}
