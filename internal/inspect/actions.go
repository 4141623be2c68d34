// Package inspect implements the inspect and schema commands: human-facing
// views of stored JSONL documents and of the durable form itself.
package inspect

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/corpus-doc/models"
	"github.com/dtnitsch/corpus-doc/pkg/jsonl"
)

func InspectAction(c *cli.Context) error {
	f, err := os.Open(c.String("input"))
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	statsOnly := c.Bool("stats")
	langCounts := make(map[string]int)
	warningCounts := make(map[string]int)
	var total int

	r := jsonl.NewReader(f)
	for {
		doc, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		total++
		langCounts[doc.Identification().Label().String()]++
		for _, w := range doc.Metadata().Annotation() {
			warningCounts[w]++
		}
		if !statsOnly {
			fmt.Println(doc)
		}
	}

	fmt.Printf("documents: %d\n", total)
	for lang, count := range langCounts {
		fmt.Printf("  %s: %d\n", lang, count)
	}
	if len(warningCounts) > 0 {
		fmt.Println("quality warnings:")
		for warning, count := range warningCounts {
			fmt.Printf("  %s: %d\n", warning, count)
		}
	}
	return nil
}

func SchemaAction(c *cli.Context) error {
	schema, err := models.DocumentSchema()
	if err != nil {
		return err
	}
	fmt.Println(string(schema))
	return nil
}
