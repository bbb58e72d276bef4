package entry

import (
	"log"
	"strings"

	"github.com/fockleyr/fockleyr/pkg/fockleyr/markup"
	"github.com/fockleyr/fockleyr/pkg/fockleyr/tags"
)

// Scanned headings sometimes close the font declaration before the comma
// that belongs to it, splitting "Times New Roman, serif" across segments.
const fontFaceMarker = `Times New Roman" >`

// crossRefMarker introduces a cross-reference inside the headword segment;
// everything from it onward belongs to the definition.
const crossRefMarker = ". See"

// Parser splits raw fragments into entries. The zero value uses the default
// normalizer, detector, and no-definition set; fields may be overridden
// before first use.
type Parser struct {
	// Normalizer decodes markup; nil means the default correction table.
	Normalizer *markup.Normalizer

	// Detector classifies definitions; nil means the default table.
	Detector *tags.Detector

	// NoDefinition holds the decoded headwords that legitimately lack a
	// definition segment and must not be reported.
	NoDefinition map[string]struct{}

	// Logf receives non-fatal anomaly reports; nil means log.Printf.
	Logf func(format string, args ...any)
}

// DefaultNoDefinition is the known set of headwords the source prints as
// bare cross-reference headings with no definition of their own.
func DefaultNoDefinition() map[string]struct{} {
	words := []string{
		"cha jarg",
		"dy liooar",
		"er-yn-oyr",
		"myr shen",
		"ny-yeih",
		"son shen as ooilley",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// NewParser creates a Parser with all defaults.
func NewParser() *Parser {
	return &Parser{
		Normalizer:   markup.NewNormalizer(),
		Detector:     tags.NewDetector(),
		NoDefinition: DefaultNoDefinition(),
	}
}

// Parse splits one raw fragment and builds its Entry. Parse never fails: a
// fragment with no definition segment produces an Entry with HasDefinition
// false, reported through Logf unless the headword is a known
// no-definition word.
func (p *Parser) Parse(fragment string) *Entry {
	rawWord, rawDefinition, ok := p.Split(fragment)

	e := &Entry{
		RawWord:       rawWord,
		RawDefinition: rawDefinition,
		HasDefinition: ok,
		Depth:         DeriveDepth(rawWord),
		norm:          p.Normalizer,
		detector:      p.Detector,
	}

	if !ok {
		word := strings.TrimSpace(e.Word())
		if !p.knownNoDefinition(word) {
			p.logf("entry: no definition segment for %q", word)
		}
	}
	return e
}

// Split divides a raw fragment into its headword and definition segments.
// The returned bool is false when the fragment has no definition segment.
//
// The fragment is split on commas, then repaired in order: commas that fell
// inside a font-family declaration are re-joined onto the headword, and a
// cross-reference marker inside the headword forces a re-split at the
// marker's period.
func (p *Parser) Split(fragment string) (string, string, bool) {
	parts := strings.Split(fragment, ",")

	for strings.HasSuffix(parts[0], fontFaceMarker) && len(parts) > 1 {
		parts[0] += parts[1]
		parts = append(parts[:1], parts[2:]...)
	}

	if i := strings.Index(parts[0], crossRefMarker); i >= 0 {
		rest := parts[0][i+2:]
		if len(parts) == 1 {
			parts = append(parts, "")
		}
		parts[1] = rest + parts[1]
		parts[0] = parts[0][:i]
	}

	if len(parts) < 2 {
		return parts[0], "", false
	}
	return parts[0], strings.Join(parts[1:], ","), true
}

func (p *Parser) knownNoDefinition(word string) bool {
	set := p.NoDefinition
	if set == nil {
		set = DefaultNoDefinition()
	}
	_, ok := set[word]
	return ok
}

func (p *Parser) logf(format string, args ...any) {
	if p.Logf != nil {
		p.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}
