// Command dict-indexer parses a source dictionary page and builds the
// possible-word index in a SQLite database.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/fockleyr/fockleyr/pkg/fockleyr"
	"github.com/fockleyr/fockleyr/pkg/fockleyr/config"
	"github.com/fockleyr/fockleyr/pkg/fockleyr/pagetree"
	"github.com/fockleyr/fockleyr/pkg/fockleyr/store/sqlite"
)

func main() {
	var (
		pagePath    = flag.String("page", "", "Source HTML page (required)")
		dbPath      = flag.String("db", "", "Database path (required)")
		correctPath = flag.String("corrections", "", "Bracket-correction table YAML (optional)")
		abbrevPath  = flag.String("abbreviations", "", "Abbreviation table YAML (optional)")
		noDefPath   = flag.String("nodefs", "", "No-definition headword list YAML (optional)")
	)
	flag.Parse()

	if *pagePath == "" {
		log.Fatal("--page required")
	}
	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	loader := config.Loader{
		CorrectionsPath:   *correctPath,
		AbbreviationsPath: *abbrevPath,
		NoDefinitionPath:  *noDefPath,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	page, err := os.Open(*pagePath)
	if err != nil {
		log.Fatal("Failed to open page:", err)
	}
	defer page.Close()

	roots, err := pagetree.Build(page, components.Parser)
	if err != nil {
		log.Fatal("Failed to build page tree:", err)
	}

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}

	engine := fockleyr.New(fockleyr.Options{Store: st})
	defer engine.Close()

	count, err := engine.IndexTree(ctx, roots)
	if err != nil {
		log.Fatal("Failed to index entries:", err)
	}

	log.Printf("Indexed %d entries (%d roots) into %s", count, len(roots), *dbPath)
}
