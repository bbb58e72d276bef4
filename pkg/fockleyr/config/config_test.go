package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fockleyr/fockleyr/pkg/fockleyr/internalerr"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCorrections(t *testing.T) {
	path := writeFile(t, "corrections.yaml", `corrections:
  - from: "[cha]"
    to: cha
  - from: "[ny]"
    to: ny
`)

	corrections, err := LoadCorrections(path)
	if err != nil {
		t.Fatalf("Failed to load corrections: %v", err)
	}
	if len(corrections) != 2 {
		t.Fatalf("Expected 2 corrections, got %d", len(corrections))
	}
	if corrections[0].From != "[cha]" || corrections[0].To != "cha" {
		t.Errorf("Unexpected first correction: %+v", corrections[0])
	}
}

func TestLoadCorrectionsEmptyFrom(t *testing.T) {
	path := writeFile(t, "corrections.yaml", `corrections:
  - from: ""
    to: x
`)

	_, err := LoadCorrections(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadAbbreviations(t *testing.T) {
	path := writeFile(t, "abbreviations.yaml", `abbreviations:
  - prefix: "s. f."
    tag: substantive feminine
  - prefix: "v."
    tag: verb
`)

	abbrevs, err := LoadAbbreviations(path)
	if err != nil {
		t.Fatalf("Failed to load abbreviations: %v", err)
	}
	if len(abbrevs) != 2 {
		t.Fatalf("Expected 2 abbreviations, got %d", len(abbrevs))
	}
	if abbrevs[0].Prefix != "s. f." {
		t.Errorf("Unexpected first prefix: %q", abbrevs[0].Prefix)
	}
}

func TestLoadAbbreviationsMissingTag(t *testing.T) {
	path := writeFile(t, "abbreviations.yaml", `abbreviations:
  - prefix: "v."
    tag: ""
`)

	_, err := LoadAbbreviations(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadNoDefinition(t *testing.T) {
	path := writeFile(t, "nodefs.yaml", `words:
  - myr shen
  - ny-yeih
`)

	set, err := LoadNoDefinition(path)
	if err != nil {
		t.Fatalf("Failed to load no-definition words: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(set))
	}
	if _, ok := set["myr shen"]; !ok {
		t.Error("Expected 'myr shen' in the set")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadCorrections("/nonexistent/corrections.yaml"); err == nil {
		t.Error("Expected error for missing corrections file")
	}
	if _, err := LoadAbbreviations("/nonexistent/abbreviations.yaml"); err == nil {
		t.Error("Expected error for missing abbreviations file")
	}
	if _, err := LoadNoDefinition("/nonexistent/nodefs.yaml"); err == nil {
		t.Error("Expected error for missing no-definition file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeFile(t, "bad.yaml", "corrections: [unclosed\n")
	if _, err := LoadCorrections(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
