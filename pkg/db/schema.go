package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Documents table: one row per captured document.
-- The full durable JSON form is stored inline; the remaining columns are
-- denormalized from it for querying.
CREATE TABLE IF NOT EXISTS documents (
    record_id TEXT PRIMARY KEY,
    url TEXT,
    lang TEXT NOT NULL,
    lang_prob REAL NOT NULL,
    harmful_pp REAL,
    categories TEXT,          -- comma-joined category tags
    quality_warnings TEXT,    -- comma-joined warning tags
    content_bytes INTEGER NOT NULL,
    document TEXT NOT NULL,   -- durable JSON form
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_documents_lang ON documents(lang);
CREATE INDEX IF NOT EXISTS idx_documents_url ON documents(url);
CREATE INDEX IF NOT EXISTS idx_documents_harmful ON documents(harmful_pp) WHERE harmful_pp IS NOT NULL;
`
