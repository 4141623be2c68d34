// Package convert implements the convert command: WARC captures in,
// annotated JSONL documents out.
package convert

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/corpus-doc/models"
	"github.com/dtnitsch/corpus-doc/pkg/annotator"
	"github.com/dtnitsch/corpus-doc/pkg/extractor"
	"github.com/dtnitsch/corpus-doc/pkg/identifier"
	"github.com/dtnitsch/corpus-doc/pkg/jsonl"
	"github.com/dtnitsch/corpus-doc/pkg/warcio"
)

func ConvertAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg := models.DefaultPipelineConfig()
	if path := c.String("config"); path != "" {
		loaded, err := models.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	stages, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	in, err := os.Open(c.String("input"))
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	reader, err := warcio.NewReader(in)
	if err != nil {
		return err
	}

	out, err := os.Create(c.String("output"))
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer out.Close()
	writer := jsonl.NewWriter(out)

	logger.Info("Starting conversion", "input", c.String("input"), "workers", cfg.WorkerCount)

	id := identifier.New(cfg.MinSentenceLen)
	ext := &extractor.Extractor{}

	jobs := make(chan models.RawRecord, cfg.WorkerCount)
	results := make(chan *models.Document, cfg.WorkerCount)

	var wg sync.WaitGroup
	for i := 0; i < cfg.WorkerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for rec := range jobs {
				doc, ok := buildDocument(rec, id, ext, stages, logger, workerID)
				if ok {
					results <- doc
				}
			}
		}(i)
	}

	// Feed records off the main goroutine so it can drain results.
	readErr := make(chan error, 1)
	go func() {
		defer close(jobs)
		for {
			rec, err := reader.Next()
			if errors.Is(err, io.EOF) {
				readErr <- nil
				return
			}
			if err != nil {
				readErr <- err
				return
			}
			jobs <- rec
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	written, writeErr := drainResults(results, writer)
	if writeErr != nil {
		return writeErr
	}
	if err := <-readErr; err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	logger.Info("Conversion finished", "documents", written, "output", c.String("output"))
	return nil
}

// docWriter is the output side of the drain loop.
type docWriter interface {
	Write(doc *models.Document) error
}

// drainResults writes documents until the channel closes. After a write
// error it keeps consuming the channel without writing, so the feeder and
// worker goroutines upstream never block on a send and always exit.
func drainResults(results <-chan *models.Document, w docWriter) (int, error) {
	var written int
	var writeErr error
	for doc := range results {
		if writeErr != nil {
			continue
		}
		if err := w.Write(doc); err != nil {
			writeErr = err
			continue
		}
		written++
	}
	return written, writeErr
}

// buildDocument runs one record through the whole per-document pipeline:
// ingestion, optional HTML extraction, language identification, annotation.
// Returns false for records that yield no usable document.
func buildDocument(rec models.RawRecord, id *identifier.Identifier, ext *extractor.Extractor, stages *annotator.Pipeline, logger *slog.Logger, workerID int) (*models.Document, bool) {
	doc := models.FromRecord(rec, models.DefaultMetadata())

	if isHTML(rec) {
		rawURL, _ := doc.URL()
		text, err := ext.ExtractText(rawURL, doc.Content())
		if err != nil {
			logger.Warn("HTML extraction failed, keeping raw body", "worker", workerID, "record", doc.WarcID(), "error", err)
		} else if text != "" {
			doc.SetContent(text)
		}
	}

	docID, sentences := id.Identify(doc.Content())
	if docID == nil {
		logger.Info("Skipping unidentifiable record", "worker", workerID, "record", doc.WarcID())
		return nil, false
	}
	*doc.Metadata() = models.NewMetadata(*docID, sentences)

	stages.Annotate(doc)
	return doc, true
}

func isHTML(rec models.RawRecord) bool {
	ct, ok := rec.Headers[models.WarcContentType]
	return ok && strings.Contains(strings.ToLower(string(ct)), "html")
}

func buildPipeline(cfg *models.PipelineConfig) (*annotator.Pipeline, error) {
	stages := []annotator.Annotator{
		annotator.TinyDocument{MinBytes: cfg.TinyDocBytes},
		annotator.ShortSentences{MinChars: cfg.MinSentenceLen, Threshold: 0.5},
	}
	if cfg.CategoryMap != "" {
		hosts, err := annotator.LoadCategoryMap(cfg.CategoryMap)
		if err != nil {
			return nil, err
		}
		stages = append(stages, annotator.NewURLCategories(hosts))
	}
	return annotator.NewPipeline(stages...), nil
}
