package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// decodeLossy converts raw captured bytes to text, substituting the Unicode
// replacement character for invalid sequences. Decoding never fails; the
// substitution is a documented fidelity limitation of the durable form.
func decodeLossy(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}

// Document is the unit of work of the pipeline: the decoded text of a
// captured resource, the WARC headers of its capture, and the metadata
// attached by classification and annotation stages. A Document exclusively
// owns its headers and metadata; it is handed to exactly one worker at a
// time and never shares state with other documents.
type Document struct {
	content     string
	warcHeaders WarcHeaders
	metadata    Metadata
}

// NewDocument builds a Document from its parts. No validation is performed.
func NewDocument(content string, warcHeaders WarcHeaders, metadata Metadata) *Document {
	return &Document{
		content:     content,
		warcHeaders: warcHeaders,
		metadata:    metadata,
	}
}

// FromRecord builds a Document from a raw captured record and externally
// computed metadata. The body is decoded lossily, so ingestion never fails
// on bad encoding. This is the sole ingestion path from capture data.
func FromRecord(record RawRecord, metadata Metadata) *Document {
	return &Document{
		content:     decodeLossy(record.Body),
		warcHeaders: record.Headers,
		metadata:    metadata,
	}
}

// Content returns the document's full text.
func (d *Document) Content() string { return d.content }

// SetContent replaces the document's text wholesale. Used by stages that
// normalize or clean content.
func (d *Document) SetContent(content string) { d.content = content }

// WarcHeaders returns the document's capture headers.
func (d *Document) WarcHeaders() WarcHeaders { return d.warcHeaders }

// Metadata returns the document's metadata. The pointer is the mutation
// surface used by annotation stages; the Document remains the sole owner.
func (d *Document) Metadata() *Metadata { return &d.metadata }

// Identification is a shorthand for the document-level identification.
func (d *Document) Identification() Identification {
	return d.metadata.identification
}

// Header looks up a header's raw bytes, reporting whether it is present.
func (d *Document) Header(key WarcHeader) ([]byte, bool) {
	v, ok := d.warcHeaders[key]
	return v, ok
}

// WarcID returns the decoded warc-record-id header. Every real capture
// carries one; a Document without it was built from malformed input
// upstream, which is a representation invariant violation, so the lookup
// panics instead of substituting a value. Callers that must probe use
// Header instead.
func (d *Document) WarcID() string {
	v, ok := d.warcHeaders[WarcRecordID]
	if !ok {
		panic("document has no warc-record-id header")
	}
	return decodeLossy(v)
}

// URL returns the decoded warc-target-uri header when present.
func (d *Document) URL() (string, bool) {
	v, ok := d.warcHeaders[WarcTargetURI]
	if !ok {
		return "", false
	}
	return decodeLossy(v), true
}

// documentSer is the durable form of Document: header values are decoded to
// text so the record stays human-readable. The round trip is bit-exact only
// for headers whose captured bytes were valid UTF-8.
type documentSer struct {
	Content     string            `json:"content"`
	WarcHeaders map[string]string `json:"warc_headers"`
	Metadata    metadataSer       `json:"metadata"`
}

func (d Document) MarshalJSON() ([]byte, error) {
	headers := make(map[string]string, len(d.warcHeaders))
	for k, v := range d.warcHeaders {
		headers[string(k)] = decodeLossy(v)
	}
	return json.Marshal(documentSer{
		Content:     d.content,
		WarcHeaders: headers,
		Metadata:    d.metadata.ser(),
	})
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var s documentSer
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	metadata, err := metadataFromSer(s.Metadata)
	if err != nil {
		return err
	}
	headers := make(WarcHeaders, len(s.WarcHeaders))
	for k, v := range s.WarcHeaders {
		headers[WarcHeader(k)] = []byte(v)
	}
	d.content = s.Content
	d.warcHeaders = headers
	d.metadata = metadata
	return nil
}

// String renders the document for human inspection: content as its line
// list and headers as decoded text, sorted by name. This rendering is for
// diagnostics only and is never round-tripped.
func (d *Document) String() string {
	var sb strings.Builder
	sb.WriteString("Document{\n  content:\n")
	for _, line := range strings.Split(d.content, "\n") {
		fmt.Fprintf(&sb, "    %q\n", line)
	}
	keys := make([]string, 0, len(d.warcHeaders))
	for k := range d.warcHeaders {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	sb.WriteString("  warc_headers:\n")
	for _, k := range keys {
		fmt.Fprintf(&sb, "    %s: %s\n", k, decodeLossy(d.warcHeaders[WarcHeader(k)]))
	}
	meta := &d.metadata
	fmt.Fprintf(&sb, "  identification: %s (%.2f)\n", meta.identification.Label(), meta.identification.Prob())
	if w := meta.Annotation(); w != nil {
		fmt.Fprintf(&sb, "  quality_warnings: %v\n", w)
	}
	if c := meta.Categories(); c != nil {
		fmt.Fprintf(&sb, "  categories: %v\n", c)
	}
	if hp := meta.HarmfulPP(); hp != nil {
		fmt.Fprintf(&sb, "  harmful_pp: %.2f\n", *hp)
	}
	sb.WriteString("  sentence_identifications:\n")
	for i, ident := range meta.sentenceIdentifications {
		if ident == nil {
			fmt.Fprintf(&sb, "    %d: -\n", i)
			continue
		}
		fmt.Fprintf(&sb, "    %d: %s (%.2f)\n", i, ident.Label(), ident.Prob())
	}
	sb.WriteString("}")
	return sb.String()
}
