package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/corpus-doc/internal/convert"
	"github.com/dtnitsch/corpus-doc/internal/importer"
	"github.com/dtnitsch/corpus-doc/internal/inspect"
	"github.com/dtnitsch/corpus-doc/pkg/db"
)

func main() {
	app := &cli.App{
		Name:  "corpus-doc",
		Usage: "build, inspect and store corpus documents from WARC captures",
		Commands: []*cli.Command{
			{
				Name:  "convert",
				Usage: "convert a WARC capture into annotated JSONL documents",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "WARC file to read"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: "JSONL file to write"},
					&cli.StringFlag{Name: "config", Usage: "YAML pipeline config"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
				Action: convert.ConvertAction,
			},
			{
				Name:  "inspect",
				Usage: "print stored documents and corpus statistics",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "JSONL file to read"},
					&cli.BoolFlag{Name: "stats", Usage: "only print statistics"},
				},
				Action: inspect.InspectAction,
			},
			{
				Name:   "schema",
				Usage:  "print the JSON schema of the durable document form",
				Action: inspect.SchemaAction,
			},
			{
				Name:  "import",
				Usage: "import JSONL documents into the SQLite store",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "JSONL file to read"},
					&cli.StringFlag{Name: "db", Value: db.DefaultDBName, Usage: "SQLite database path"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
				Action: importer.ImportAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
