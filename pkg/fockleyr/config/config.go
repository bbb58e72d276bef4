// Package config loads YAML overrides for the parser's static rule tables:
// bracket corrections, abbreviation tags, and the no-definition headword
// set.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fockleyr/fockleyr/pkg/fockleyr/internalerr"
	"github.com/fockleyr/fockleyr/pkg/fockleyr/markup"
	"github.com/fockleyr/fockleyr/pkg/fockleyr/tags"
)

// Corrections is the bracket-correction table configuration.
type Corrections struct {
	Corrections []struct {
		From string `yaml:"from"`
		To   string `yaml:"to"`
	} `yaml:"corrections"`
}

// LoadCorrections loads a bracket-correction table from a YAML file.
func LoadCorrections(path string) ([]markup.Correction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Corrections
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	out := make([]markup.Correction, 0, len(cfg.Corrections))
	for _, c := range cfg.Corrections {
		if c.From == "" {
			return nil, fmt.Errorf("%w: correction with empty 'from'", internalerr.ErrInvalidConfig)
		}
		out = append(out, markup.Correction{From: c.From, To: c.To})
	}
	return out, nil
}

// Abbreviations is the abbreviation-tag table configuration.
type Abbreviations struct {
	Abbreviations []struct {
		Prefix string `yaml:"prefix"`
		Tag    string `yaml:"tag"`
	} `yaml:"abbreviations"`
}

// LoadAbbreviations loads an abbreviation-prefix table from a YAML file.
func LoadAbbreviations(path string) ([]tags.Abbreviation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Abbreviations
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	out := make([]tags.Abbreviation, 0, len(cfg.Abbreviations))
	for _, a := range cfg.Abbreviations {
		if a.Prefix == "" || a.Tag == "" {
			return nil, fmt.Errorf("%w: abbreviation needs both prefix and tag", internalerr.ErrInvalidConfig)
		}
		out = append(out, tags.Abbreviation{Prefix: a.Prefix, Tag: tags.Tag(a.Tag)})
	}
	return out, nil
}

// NoDefinition is the known no-definition headword list configuration.
type NoDefinition struct {
	Words []string `yaml:"words"`
}

// LoadNoDefinition loads the no-definition headword set from a YAML file.
func LoadNoDefinition(path string) (map[string]struct{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg NoDefinition
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(cfg.Words))
	for _, w := range cfg.Words {
		set[w] = struct{}{}
	}
	return set, nil
}
