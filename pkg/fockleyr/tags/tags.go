// Package tags infers grammatical classifications from the abbreviation
// markers Cregeen used in definition prose ("s. f.", "v.", "adv. p.", ...).
package tags

import "strings"

// Tag is one grammatical classification.
type Tag string

// The full abbreviation inventory of the source dictionary.
const (
	Adjective             Tag = "adjective"
	AdjectiveDerivative   Tag = "adjective derivative"
	AdjectivePlural       Tag = "adjective plural"
	Adverb                Tag = "adverb"
	AdverbAndPronoun      Tag = "adverb and pronoun"
	Article               Tag = "article"
	ArticlePlural         Tag = "article plural"
	Comparative           Tag = "comparative"
	Conjunction           Tag = "conjunction"
	Diminutive            Tag = "diminutive"
	Emphatic              Tag = "emphatic"
	Feminine              Tag = "feminine"
	Idem                  Tag = "idem"
	Interjection          Tag = "interjection"
	Literal               Tag = "literally"
	Plural                Tag = "plural"
	Preposition           Tag = "preposition"
	Pronominal            Tag = "pronominal"
	Pronoun               Tag = "pronoun"
	PronounAndPreposition Tag = "pronoun and preposition"
	Singular              Tag = "singular"
	Substantive           Tag = "substantive"
	SubstantiveFeminine   Tag = "substantive feminine"
	SubstantiveMasculine  Tag = "substantive masculine"
	SubstantivePlural     Tag = "substantive plural"
	Superlative           Tag = "superlative"
	Synonym               Tag = "synonymous"
	Verb                  Tag = "verb"
	VerbImperative        Tag = "verb imperative"
)

// Abbreviation maps one textual abbreviation prefix to its tag.
type Abbreviation struct {
	Prefix string
	Tag    Tag
}

// DefaultAbbreviations is the fixed prefix table. Matching uses substring
// containment, so overlapping prefixes ("s." vs "s. f.") need no particular
// order here; the disambiguation pass resolves them.
func DefaultAbbreviations() []Abbreviation {
	return []Abbreviation{
		{"a. d.", AdjectiveDerivative},
		{"a. pl.", AdjectivePlural},
		{"a.", Adjective},
		{"adv. p.", AdverbAndPronoun},
		{"adv.", Adverb},
		{"art. pl.", ArticlePlural},
		{"art.", Article},
		{"comp.", Comparative},
		{"conj.", Conjunction},
		{"dim.", Diminutive},
		{"emph.", Emphatic},
		{"f.", Feminine},
		{"id.", Idem},
		{"in.", Interjection},
		{"lit.", Literal},
		{"pl.", Plural},
		{"pre.", Preposition},
		{"pro. p.", PronounAndPreposition},
		{"pro.", Pronoun},
		{"p.", Pronominal},
		{"s. f.", SubstantiveFeminine},
		{"s. m.", SubstantiveMasculine},
		{"s. pl.", SubstantivePlural},
		{"s.", Substantive},
		{"sing.", Singular},
		{"sup.", Superlative},
		{"syn.", Synonym},
		{"v. imp.", VerbImperative},
		{"v.", Verb},
	}
}

// A generic tag is dropped whenever one of its specific multi-word forms
// matched; the table is prefix-matched, so "s. f." always also matches "s.".
var subsumed = []struct {
	generic  Tag
	specific []Tag
}{
	{Substantive, []Tag{SubstantiveFeminine, SubstantiveMasculine, SubstantivePlural}},
	{Adjective, []Tag{AdjectiveDerivative, AdjectivePlural}},
	{Adverb, []Tag{AdverbAndPronoun}},
	{Article, []Tag{ArticlePlural}},
	{Verb, []Tag{VerbImperative}},
}

// Detector matches abbreviation prefixes against raw definition text.
type Detector struct {
	abbrevs []Abbreviation
}

// NewDetector creates a Detector. With no arguments the default
// abbreviation table is used.
func NewDetector(abbrevs ...[]Abbreviation) *Detector {
	a := DefaultAbbreviations()
	if len(abbrevs) > 0 {
		a = abbrevs[0]
	}
	return &Detector{abbrevs: a}
}

var defaultDetector = NewDetector()

// Detect runs the default detector; see Detector.Detect.
func Detect(extra string) []Tag {
	return defaultDetector.Detect(extra)
}

// Detect returns the tags whose abbreviation appears in extra. Detection
// runs on the raw, undecoded definition text so tag markers that directly
// follow a closing markup tag are still found. An abbreviation matches when
// it follows a space, starts the text, or follows a '>'.
func (d *Detector) Detect(extra string) []Tag {
	found := make(map[Tag]struct{})
	var out []Tag

	for _, a := range d.abbrevs {
		if !matches(extra, a.Prefix) {
			continue
		}
		if _, ok := found[a.Tag]; ok {
			continue
		}
		found[a.Tag] = struct{}{}
		out = append(out, a.Tag)
	}

	for _, rule := range subsumed {
		if _, ok := found[rule.generic]; !ok {
			continue
		}
		for _, sp := range rule.specific {
			if _, ok := found[sp]; ok {
				out = remove(out, rule.generic)
				break
			}
		}
	}
	return out
}

func matches(text, prefix string) bool {
	return strings.Contains(text, " "+prefix) ||
		strings.HasPrefix(text, prefix) ||
		strings.Contains(text, ">"+prefix)
}

func remove(tags []Tag, t Tag) []Tag {
	out := tags[:0]
	for _, tag := range tags {
		if tag != t {
			out = append(out, tag)
		}
	}
	return out
}
