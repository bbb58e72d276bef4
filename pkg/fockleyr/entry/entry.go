// Package entry models one parsed dictionary record and the heuristics that
// split a raw markup fragment into its headword and definition segments.
package entry

import (
	"strings"
	"unicode/utf8"

	"github.com/fockleyr/fockleyr/pkg/fockleyr/forms"
	"github.com/fockleyr/fockleyr/pkg/fockleyr/markup"
	"github.com/fockleyr/fockleyr/pkg/fockleyr/tags"
)

// Entry is one parsed dictionary record. The raw fields are immutable after
// construction; the tree links are mutated only through AddChild during
// tree assembly. Decoded text, tags, and possible words are computed on
// first access and cached, so an Entry must not be shared across goroutines
// until those accessors have been called.
type Entry struct {
	// RawWord is the original markup of the headword segment, kept verbatim
	// for serializers that must reproduce formatting.
	RawWord string

	// RawDefinition is the original markup of the definition segment. It is
	// meaningful only when HasDefinition is true.
	RawDefinition string

	// HasDefinition is false for the known set of headwords that
	// legitimately lack a definition, and for data anomalies.
	HasDefinition bool

	// Depth is the nesting level, derived from leading whitespace in
	// RawWord when not supplied by the tree builder.
	Depth int

	parent   *Entry
	children []*Entry

	norm     *markup.Normalizer
	detector *tags.Detector

	word         string
	wordDone     bool
	defText      string
	defTextDone  bool
	tagSet       []tags.Tag
	tagSetDone   bool
	possible     []string
	possibleDone bool
}

// New constructs an Entry with a definition, using the default normalizer
// and detector. The tree builder and tests use this directly; Parser.Parse
// is the path for raw fragments.
func New(rawWord, rawDefinition string) *Entry {
	return &Entry{
		RawWord:       rawWord,
		RawDefinition: rawDefinition,
		HasDefinition: true,
		Depth:         DeriveDepth(rawWord),
	}
}

// Word returns the decoded plain-text headword.
func (e *Entry) Word() string {
	if !e.wordDone {
		e.word = e.normalizer().Decode(e.RawWord)
		e.wordDone = true
	}
	return e.word
}

// DefinitionText returns the decoded plain-text definition, or "" when the
// entry has none.
func (e *Entry) DefinitionText() string {
	if !e.defTextDone {
		if e.HasDefinition {
			e.defText = e.normalizer().Decode(e.RawDefinition)
		}
		e.defTextDone = true
	}
	return e.defText
}

// Tags returns the grammatical classifications detected in the raw
// definition text. Detection runs on the undecoded segment so abbreviation
// markers adjacent to markup boundaries are preserved.
func (e *Entry) Tags() []tags.Tag {
	if !e.tagSetDone {
		if e.HasDefinition {
			e.tagSet = e.detect().Detect(e.RawDefinition)
		}
		e.tagSetDone = true
	}
	return e.tagSet
}

// PossibleWords returns every surface form that should resolve to this
// entry, deduplicated in first-occurrence order.
func (e *Entry) PossibleWords() []string {
	if !e.possibleDone {
		e.possible = forms.Derive(e.Word(), e.RawWord, e.DefinitionText(), e.normalizer())
		e.possibleDone = true
	}
	return e.possible
}

// AddChild appends child to this entry's children and sets the reciprocal
// parent link. It is the only tree mutator; children stay in insertion
// (document) order.
func (e *Entry) AddChild(child *Entry) {
	e.children = append(e.children, child)
	child.parent = e
}

// Parent returns the owning entry, or nil for roots.
func (e *Entry) Parent() *Entry { return e.parent }

// Children returns the entry's children in document order.
func (e *Entry) Children() []*Entry { return e.children }

func (e *Entry) normalizer() *markup.Normalizer {
	if e.norm == nil {
		e.norm = markup.NewNormalizer()
	}
	return e.norm
}

func (e *Entry) detect() *tags.Detector {
	if e.detector == nil {
		e.detector = tags.NewDetector()
	}
	return e.detector
}

// DeriveDepth counts the leading indentation of a raw headword segment:
// plain whitespace and &nbsp; entities both count one level per character.
func DeriveDepth(rawWord string) int {
	depth := 0
	rest := rawWord
	for rest != "" {
		if strings.HasPrefix(rest, "&nbsp;") {
			depth++
			rest = rest[len("&nbsp;"):]
			continue
		}
		r, size := utf8.DecodeRuneInString(rest)
		if r != ' ' && r != '\t' && r != ' ' {
			break
		}
		depth++
		rest = rest[size:]
	}
	return depth
}
