// Package warcio reads WARC captures into the raw records consumed by
// models.FromRecord. Header names are lowercased to the fixed enumeration
// used by the data model; values and bodies stay raw bytes.
package warcio

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/slyrz/warc"

	"github.com/dtnitsch/corpus-doc/models"
)

// Reader yields one RawRecord per WARC record. Gzip-compressed captures are
// handled transparently by the underlying reader.
type Reader struct {
	r *warc.Reader
}

func NewReader(r io.Reader) (*Reader, error) {
	wr, err := warc.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open warc stream: %w", err)
	}
	return &Reader{r: wr}, nil
}

// Next returns the next record, io.EOF at end of stream. Records without a
// warc-record-id get a fresh urn:uuid one, so every document built from
// this reader satisfies the record-id invariant.
func (r *Reader) Next() (models.RawRecord, error) {
	rec, err := r.r.ReadRecord()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return models.RawRecord{}, io.EOF
		}
		return models.RawRecord{}, fmt.Errorf("read warc record: %w", err)
	}

	body, err := io.ReadAll(rec.Content)
	if err != nil {
		return models.RawRecord{}, fmt.Errorf("read warc body: %w", err)
	}

	headers := make(models.WarcHeaders, len(rec.Header))
	for name, value := range rec.Header {
		headers[models.WarcHeader(strings.ToLower(name))] = []byte(value)
	}
	if _, ok := headers[models.WarcRecordID]; !ok {
		headers[models.WarcRecordID] = []byte(fmt.Sprintf("<urn:uuid:%s>", uuid.NewString()))
	}
	return models.RawRecord{Headers: headers, Body: body}, nil
}
