package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dtnitsch/corpus-doc/models"
)

// InsertDocument upserts a document row keyed by its WARC record id.
func (db *DB) InsertDocument(doc *models.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	meta := doc.Metadata()

	var url sql.NullString
	if u, ok := doc.URL(); ok {
		url = sql.NullString{String: u, Valid: true}
	}
	var harmful sql.NullFloat64
	if hp := meta.HarmfulPP(); hp != nil {
		harmful = sql.NullFloat64{Float64: float64(*hp), Valid: true}
	}
	var categories, warnings sql.NullString
	if c := meta.Categories(); c != nil {
		categories = sql.NullString{String: strings.Join(c, ","), Valid: true}
	}
	if w := meta.Annotation(); w != nil {
		warnings = sql.NullString{String: strings.Join(w, ","), Valid: true}
	}

	_, err = db.Exec(`
		INSERT INTO documents (record_id, url, lang, lang_prob, harmful_pp, categories, quality_warnings, content_bytes, document)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(record_id) DO UPDATE SET
			url = excluded.url,
			lang = excluded.lang,
			lang_prob = excluded.lang_prob,
			harmful_pp = excluded.harmful_pp,
			categories = excluded.categories,
			quality_warnings = excluded.quality_warnings,
			content_bytes = excluded.content_bytes,
			document = excluded.document`,
		doc.WarcID(),
		url,
		meta.Identification().Label().String(),
		float64(meta.Identification().Prob()),
		harmful,
		categories,
		warnings,
		len(doc.Content()),
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	return nil
}

// GetDocument loads the durable form stored for a record id.
func (db *DB) GetDocument(recordID string) (*models.Document, error) {
	var payload []byte
	err := db.QueryRow("SELECT document FROM documents WHERE record_id = ?", recordID).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no document with record id %q", recordID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode stored document: %w", err)
	}
	return &doc, nil
}

// CountByLang returns document counts grouped by language tag.
func (db *DB) CountByLang() (map[string]int64, error) {
	rows, err := db.Query("SELECT lang, COUNT(*) FROM documents GROUP BY lang")
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var lang string
		var count int64
		if err := rows.Scan(&lang, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count row: %w", err)
		}
		counts[lang] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate counts: %w", err)
	}
	return counts, nil
}
