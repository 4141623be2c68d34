// Package importer implements the import command: JSONL documents into the
// SQLite document store.
package importer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/corpus-doc/pkg/db"
	"github.com/dtnitsch/corpus-doc/pkg/jsonl"
)

func ImportAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	f, err := os.Open(c.String("input"))
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	store, err := db.Open(c.String("db"))
	if err != nil {
		return err
	}
	defer store.Close()

	var imported int
	r := jsonl.NewReader(f)
	for {
		doc, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if err := store.InsertDocument(doc); err != nil {
			return err
		}
		imported++
	}

	counts, err := store.CountByLang()
	if err != nil {
		return err
	}
	logger.Info("Import finished", "imported", imported, "db", store.Path(), "languages", len(counts))
	return nil
}
