// Package identifier wraps the lingua language detector to produce the
// document- and sentence-level identifications stored on a document's
// metadata. The data model only stores classifier output; this package is
// the classifier side of that contract.
package identifier

import (
	"strings"

	"github.com/pemistahl/lingua-go"
	"golang.org/x/text/language"

	"github.com/dtnitsch/corpus-doc/models"
)

// DefaultMinLineLength is the shortest line the detector is asked to
// identify. Confidence on a handful of characters is noise, not signal.
const DefaultMinLineLength = 10

type Identifier struct {
	detector lingua.LanguageDetector
	minLine  int
}

// New builds an identifier over all languages lingua knows. minLine <= 0
// selects DefaultMinLineLength.
func New(minLine int) *Identifier {
	return NewForLanguages(minLine, lingua.AllLanguages()...)
}

// NewForLanguages restricts detection to the given language set. Useful for
// targeted corpora and for tests, where loading every model is wasteful.
func NewForLanguages(minLine int, languages ...lingua.Language) *Identifier {
	if minLine <= 0 {
		minLine = DefaultMinLineLength
	}
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(languages...).
		Build()
	return &Identifier{detector: detector, minLine: minLine}
}

// IdentifyLine identifies a single line of text. Returns nil when the line
// is too short, no language can be determined, or the detected language has
// no usable tag.
func (id *Identifier) IdentifyLine(line string) *models.Identification {
	line = strings.TrimSpace(line)
	if len(line) < id.minLine {
		return nil
	}
	detected, ok := id.detector.DetectLanguageOf(line)
	if !ok {
		return nil
	}
	confidence := id.detector.ComputeLanguageConfidence(line, detected)
	tag, err := language.Parse(strings.ToLower(detected.IsoCode639_1().String()))
	if err != nil {
		return nil
	}
	ident := models.NewIdentification(tag, float32(confidence))
	return &ident
}

// Identify produces the document-level identification plus one slot per
// line of content, in content order. The document-level language is the
// byte-weighted majority over identified lines; its confidence is the
// weighted mean of those lines' confidences. Returns a nil document-level
// identification when no line could be identified.
func (id *Identifier) Identify(content string) (*models.Identification, []*models.Identification) {
	lines := strings.Split(content, "\n")
	sentences := make([]*models.Identification, len(lines))

	weights := make(map[language.Tag]float64)
	confidence := make(map[language.Tag]float64)
	var identified float64

	for i, line := range lines {
		ident := id.IdentifyLine(line)
		sentences[i] = ident
		if ident == nil {
			continue
		}
		w := float64(len(line))
		weights[ident.Label()] += w
		confidence[ident.Label()] += w * float64(ident.Prob())
		identified += w
	}
	if identified == 0 {
		return nil, sentences
	}

	var best language.Tag
	var bestWeight float64
	for tag, w := range weights {
		if w > bestWeight {
			best, bestWeight = tag, w
		}
	}
	doc := models.NewIdentification(best, float32(confidence[best]/bestWeight))
	return &doc, sentences
}
