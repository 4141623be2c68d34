package models

// WarcHeader names a WARC record header field. Values are the lowercase
// header names used in the durable form.
type WarcHeader string

const (
	WarcRecordID          WarcHeader = "warc-record-id"
	WarcTargetURI         WarcHeader = "warc-target-uri"
	WarcDate              WarcHeader = "warc-date"
	WarcType              WarcHeader = "warc-type"
	WarcRefersTo          WarcHeader = "warc-refers-to"
	WarcBlockDigest       WarcHeader = "warc-block-digest"
	WarcIPAddress         WarcHeader = "warc-ip-address"
	WarcContentLanguage   WarcHeader = "warc-identified-content-language"
	WarcContentType       WarcHeader = "content-type"
	WarcContentLength     WarcHeader = "content-length"
	WarcConcurrentTo      WarcHeader = "warc-concurrent-to"
	WarcPayloadDigest     WarcHeader = "warc-payload-digest"
	WarcIdentifiedPayload WarcHeader = "warc-identified-payload-type"
)

// WarcHeaders maps header fields to their raw byte values as captured.
// Values are not guaranteed to be valid text; they are decoded lossily
// wherever text is needed.
type WarcHeaders map[WarcHeader][]byte

// RawRecord is the header/body pair handed over by a web-archive reader.
// It is consumed by FromRecord and never stored as-is.
type RawRecord struct {
	Headers WarcHeaders
	Body    []byte
}
