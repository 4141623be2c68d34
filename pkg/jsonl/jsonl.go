// Package jsonl reads and writes the durable document form, one JSON record
// per line. This is the storage and interchange format between pipeline
// stages.
package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dtnitsch/corpus-doc/models"
)

// Single records carry whole web pages.
const maxLineBytes = 64 * 1024 * 1024

type Writer struct {
	buf *bufio.Writer
	enc *json.Encoder
}

func NewWriter(w io.Writer) *Writer {
	buf := bufio.NewWriter(w)
	return &Writer{buf: buf, enc: json.NewEncoder(buf)}
}

// Write appends one document as a single line.
func (w *Writer) Write(doc *models.Document) error {
	if err := w.enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}

// Flush writes any buffered lines to the underlying writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}

type Reader struct {
	sc   *bufio.Scanner
	line int
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Reader{sc: sc}
}

// Next returns the next document, io.EOF at end of input. Blank lines are
// skipped; a malformed line fails with its line number and no document.
func (r *Reader) Next() (*models.Document, error) {
	for r.sc.Scan() {
		r.line++
		line := r.sc.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var doc models.Document
		if err := json.Unmarshal(line, &doc); err != nil {
			return nil, fmt.Errorf("line %d: %w", r.line, err)
		}
		return &doc, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, fmt.Errorf("read jsonl: %w", err)
	}
	return nil, io.EOF
}
