package config

import (
	"fmt"

	"github.com/fockleyr/fockleyr/pkg/fockleyr/entry"
	"github.com/fockleyr/fockleyr/pkg/fockleyr/markup"
	"github.com/fockleyr/fockleyr/pkg/fockleyr/tags"
)

// Loader loads the rule-table files and constructs parser components.
// Empty paths fall back to the built-in tables.
type Loader struct {
	CorrectionsPath   string
	AbbreviationsPath string
	NoDefinitionPath  string
}

// Components holds the constructed parser components.
type Components struct {
	Normalizer *markup.Normalizer
	Detector   *tags.Detector
	Parser     *entry.Parser
}

// Load reads the configured files and returns initialized components.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.CorrectionsPath != "" {
		corrections, err := LoadCorrections(l.CorrectionsPath)
		if err != nil {
			return nil, fmt.Errorf("load corrections: %w", err)
		}
		comp.Normalizer = markup.NewNormalizer(corrections)
	} else {
		comp.Normalizer = markup.NewNormalizer()
	}

	if l.AbbreviationsPath != "" {
		abbrevs, err := LoadAbbreviations(l.AbbreviationsPath)
		if err != nil {
			return nil, fmt.Errorf("load abbreviations: %w", err)
		}
		comp.Detector = tags.NewDetector(abbrevs)
	} else {
		comp.Detector = tags.NewDetector()
	}

	noDef := entry.DefaultNoDefinition()
	if l.NoDefinitionPath != "" {
		set, err := LoadNoDefinition(l.NoDefinitionPath)
		if err != nil {
			return nil, fmt.Errorf("load no-definition words: %w", err)
		}
		noDef = set
	}

	comp.Parser = &entry.Parser{
		Normalizer:   comp.Normalizer,
		Detector:     comp.Detector,
		NoDefinition: noDef,
	}
	return comp, nil
}
