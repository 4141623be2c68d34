package warcio

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/dtnitsch/corpus-doc/models"
)

func warcRecord(headers map[string]string, body string) string {
	var sb strings.Builder
	sb.WriteString("WARC/1.0\r\n")
	for name, value := range headers {
		fmt.Fprintf(&sb, "%s: %s\r\n", name, value)
	}
	fmt.Fprintf(&sb, "Content-Length: %d\r\n", len(body))
	sb.WriteString("\r\n")
	sb.WriteString(body)
	sb.WriteString("\r\n\r\n")
	return sb.String()
}

func TestReaderNext(t *testing.T) {
	raw := warcRecord(map[string]string{
		"WARC-Type":       "conversion",
		"WARC-Date":       "2024-01-01T00:00:00Z",
		"WARC-Record-ID":  "<urn:uuid:1>",
		"WARC-Target-URI": "https://example.com/",
	}, "foo\nbar\nbaz")

	r, err := NewReader(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	rec, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got := string(rec.Body); got != "foo\nbar\nbaz" {
		t.Errorf("body = %q, want foo\\nbar\\nbaz", got)
	}
	if got := string(rec.Headers[models.WarcRecordID]); got != "<urn:uuid:1>" {
		t.Errorf("record id = %q, want <urn:uuid:1>", got)
	}
	if got := string(rec.Headers[models.WarcTargetURI]); got != "https://example.com/" {
		t.Errorf("target uri = %q, want https://example.com/", got)
	}

	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("second Next error = %v, want io.EOF", err)
	}
}

func TestReaderSynthesizesRecordID(t *testing.T) {
	raw := warcRecord(map[string]string{
		"WARC-Type": "resource",
		"WARC-Date": "2024-01-01T00:00:00Z",
	}, "hello")

	r, err := NewReader(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	rec, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}

	id, ok := rec.Headers[models.WarcRecordID]
	if !ok {
		t.Fatal("no warc-record-id synthesized")
	}
	if !strings.HasPrefix(string(id), "<urn:uuid:") {
		t.Errorf("record id = %q, want <urn:uuid:...> form", id)
	}

	// The synthesized id keeps the document invariant intact.
	doc := models.FromRecord(rec, models.DefaultMetadata())
	if doc.WarcID() == "" {
		t.Error("WarcID is empty")
	}
}
