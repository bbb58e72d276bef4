// Command dict-lookup resolves surface forms against a built index and
// prints the matching entries.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/fockleyr/fockleyr/pkg/fockleyr"
	"github.com/fockleyr/fockleyr/pkg/fockleyr/store/sqlite"
)

func main() {
	dbPath := flag.String("db", "", "Database path (required)")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}
	if flag.NArg() == 0 {
		log.Fatal("usage: dict-lookup --db index.db WORD [WORD...]")
	}

	ctx := context.Background()

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}

	engine := fockleyr.New(fockleyr.Options{Store: st})
	defer engine.Close()

	for _, word := range flag.Args() {
		entries, err := engine.Lookup(ctx, word)
		if err != nil {
			log.Fatal("Lookup failed:", err)
		}
		if len(entries) == 0 {
			fmt.Printf("%s: no entries\n", word)
			continue
		}
		for _, e := range entries {
			line := e.Word
			if len(e.Tags) > 0 {
				line += " [" + strings.Join(e.Tags, ", ") + "]"
			}
			if e.Definition != "" {
				line += " - " + e.Definition
			}
			fmt.Printf("%s: %s\n", word, line)
		}
	}
}
