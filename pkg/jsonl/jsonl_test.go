package jsonl

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/dtnitsch/corpus-doc/models"
)

func sampleDocument(t *testing.T, id, content string) *models.Document {
	t.Helper()
	en, err := models.ParseIdentification("en", 0.9)
	if err != nil {
		t.Fatal(err)
	}
	meta := models.NewMetadata(en, []*models.Identification{&en, nil})
	headers := models.WarcHeaders{
		models.WarcRecordID:  []byte(id),
		models.WarcTargetURI: []byte("https://example.com/"),
	}
	return models.NewDocument(content, headers, meta)
}

func TestWriteReadRoundTrip(t *testing.T) {
	docs := []*models.Document{
		sampleDocument(t, "<urn:uuid:1>", "first document\nwith two lines"),
		sampleDocument(t, "<urn:uuid:2>", "second document"),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, doc := range docs {
		if err := w.Write(doc); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	if got := strings.Count(buf.String(), "\n"); got != 2 {
		t.Errorf("output lines = %d, want 2", got)
	}

	r := NewReader(&buf)
	for i, want := range docs {
		got, err := r.Next()
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if !reflect.DeepEqual(*got, *want) {
			t.Errorf("document %d mismatch:\n got %+v\nwant %+v", i, got, want)
		}
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("final Next error = %v, want io.EOF", err)
	}
}

func TestReaderSkipsBlankLines(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Write(sampleDocument(t, "<urn:uuid:3>", "content")); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	input := "\n" + buf.String() + "\n\n"
	r := NewReader(strings.NewReader(input))
	doc, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if doc.WarcID() != "<urn:uuid:3>" {
		t.Errorf("warc id = %q, want <urn:uuid:3>", doc.WarcID())
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next after blanks = %v, want io.EOF", err)
	}
}

func TestReaderMalformedLine(t *testing.T) {
	r := NewReader(strings.NewReader("{not json}\n"))
	_, err := r.Next()
	if err == nil {
		t.Fatal("expected error for malformed line")
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Errorf("error does not carry line number: %v", err)
	}
}

func TestReaderInvalidLanguageTag(t *testing.T) {
	line := `{"content":"x","warc_headers":{"warc-record-id":"<urn:uuid:4>"},"metadata":{"identification":{"label":"not a tag","prob":1},"sentence_identifications":[]}}`
	r := NewReader(strings.NewReader(line + "\n"))
	_, err := r.Next()
	if err == nil {
		t.Fatal("expected error for invalid language tag")
	}
	var tagErr *models.TagError
	if !errors.As(err, &tagErr) {
		t.Errorf("expected *models.TagError in chain, got %v", err)
	}
}
