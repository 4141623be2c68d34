package models

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/language"
)

// Metadata carries the per-document annotations attached by pipeline stages:
//   - identification: the document-level language identification
//   - harmfulPP: perplexity against a model trained to recognize adult
//     content, absent until a scorer has run
//   - qualityWarnings: tags from length/content quality filters
//   - categories: tags derived from the document's URL
//   - sentenceIdentifications: one slot per sentence of the content, in
//     content order; a nil slot means no identification could be computed
//     for that sentence
//
// The slot count is not checked against the content's actual sentence count;
// keeping them in sync is the caller's responsibility.
type Metadata struct {
	identification          Identification
	harmfulPP               *float32
	qualityWarnings         []string
	categories              []string
	sentenceIdentifications []*Identification
}

// NewMetadata builds a Metadata with all optional fields absent. The
// sentence slice is copied; callers keep ownership of theirs.
func NewMetadata(identification Identification, sentenceIdentifications []*Identification) Metadata {
	return Metadata{
		identification:          identification,
		sentenceIdentifications: append([]*Identification(nil), sentenceIdentifications...),
	}
}

// DefaultMetadata is the placeholder used before any classifier has run:
// the whole document and its single sentence are English with confidence
// 1.0, all optional fields absent.
func DefaultMetadata() Metadata {
	doc := NewIdentification(language.English, 1.0)
	sentence := doc
	return Metadata{
		identification:          doc,
		sentenceIdentifications: []*Identification{&sentence},
	}
}

// Identification returns the document-level identification.
func (m *Metadata) Identification() Identification { return m.identification }

// AddAnnotation appends a quality-warning tag, creating the list on first
// use. Tags are kept in append order, duplicates included.
func (m *Metadata) AddAnnotation(annotation string) {
	m.qualityWarnings = append(m.qualityWarnings, annotation)
}

// Annotation returns the quality-warning tags, nil when none have been
// added.
func (m *Metadata) Annotation() []string { return m.qualityWarnings }

// AddCategory appends a category tag, creating the list on first use.
func (m *Metadata) AddCategory(category string) {
	m.categories = append(m.categories, category)
}

// SetCategories replaces the category list wholesale; nil clears it.
func (m *Metadata) SetCategories(categories []string) {
	m.categories = categories
}

// Categories returns the category tags, nil when absent.
func (m *Metadata) Categories() []string { return m.categories }

// SetHarmfulPP replaces the harmfulness perplexity score; nil clears it.
func (m *Metadata) SetHarmfulPP(harmfulPP *float32) {
	m.harmfulPP = harmfulPP
}

// HarmfulPP returns the harmfulness perplexity score, nil when absent.
func (m *Metadata) HarmfulPP() *float32 { return m.harmfulPP }

// SentenceIdentifications returns the per-sentence identifications, in
// content order. Nil slots mean no identification for that sentence.
func (m *Metadata) SentenceIdentifications() []*Identification {
	return m.sentenceIdentifications
}

// metadataSer is the durable form of Metadata. Optional fields are omitted
// when absent so that absence survives the round trip; the list fields go
// through pointers because a present-but-empty list must emit [] rather
// than disappear. Sentence slots without an identification serialize as
// null.
type metadataSer struct {
	Identification          identificationSer    `json:"identification"`
	HarmfulPP               *float32             `json:"harmful_pp,omitempty"`
	QualityWarnings         *[]string            `json:"quality_warnings,omitempty"`
	Categories              *[]string            `json:"categories,omitempty"`
	SentenceIdentifications []*identificationSer `json:"sentence_identifications"`
}

func (m Metadata) ser() metadataSer {
	sentences := make([]*identificationSer, len(m.sentenceIdentifications))
	for i, ident := range m.sentenceIdentifications {
		if ident == nil {
			continue
		}
		s := ident.ser()
		sentences[i] = &s
	}
	ser := metadataSer{
		Identification:          m.identification.ser(),
		HarmfulPP:               m.harmfulPP,
		SentenceIdentifications: sentences,
	}
	if m.qualityWarnings != nil {
		ser.QualityWarnings = &m.qualityWarnings
	}
	if m.categories != nil {
		ser.Categories = &m.categories
	}
	return ser
}

func metadataFromSer(s metadataSer) (Metadata, error) {
	identification, err := identificationFromSer(s.Identification)
	if err != nil {
		return Metadata{}, err
	}
	sentences := make([]*Identification, len(s.SentenceIdentifications))
	for i, ser := range s.SentenceIdentifications {
		if ser == nil {
			continue
		}
		ident, err := identificationFromSer(*ser)
		if err != nil {
			return Metadata{}, err
		}
		sentences[i] = &ident
	}
	m := Metadata{
		identification:          identification,
		harmfulPP:               s.HarmfulPP,
		sentenceIdentifications: sentences,
	}
	if s.QualityWarnings != nil {
		m.qualityWarnings = *s.QualityWarnings
	}
	if s.Categories != nil {
		m.categories = *s.Categories
	}
	return m, nil
}

func (m Metadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ser())
}

func (m *Metadata) UnmarshalJSON(data []byte) error {
	var s metadataSer
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode metadata: %w", err)
	}
	parsed, err := metadataFromSer(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
