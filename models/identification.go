// Package models defines the in-memory representation of a crawled document
// as it moves through the corpus pipeline: language identifications,
// per-document metadata, and the WARC-backed Document itself, together with
// their durable JSON form.
package models

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/language"
)

// Identification is a validated (language tag, confidence) pair as produced
// by a language classifier. Instances are immutable; they are replaced
// wholesale, never mutated field by field.
type Identification struct {
	label language.Tag
	prob  float32
}

// NewIdentification builds an Identification from an already-validated tag.
// prob is semantically in [0, 1] but not enforced.
func NewIdentification(label language.Tag, prob float32) Identification {
	return Identification{label: label, prob: prob}
}

// ParseIdentification builds an Identification from a tag's textual
// rendering. An unparsable label yields a *TagError.
func ParseIdentification(label string, prob float32) (Identification, error) {
	tag, err := language.Parse(label)
	if err != nil {
		return Identification{}, &TagError{Value: label, Err: err}
	}
	return Identification{label: tag, prob: prob}, nil
}

// Label returns the identification's language tag.
func (i Identification) Label() language.Tag { return i.label }

// Prob returns the identification's confidence score.
func (i Identification) Prob() float32 { return i.prob }

// identificationSer is the durable form of Identification. Only the tag's
// canonical string rendering hits disk; the validated tag is rebuilt with a
// full parse on every read.
type identificationSer struct {
	Label string  `json:"label"`
	Prob  float32 `json:"prob"`
}

func (i Identification) ser() identificationSer {
	return identificationSer{Label: i.label.String(), Prob: i.prob}
}

func identificationFromSer(s identificationSer) (Identification, error) {
	return ParseIdentification(s.Label, s.Prob)
}

func (i Identification) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.ser())
}

func (i *Identification) UnmarshalJSON(data []byte) error {
	var s identificationSer
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode identification: %w", err)
	}
	parsed, err := identificationFromSer(s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
