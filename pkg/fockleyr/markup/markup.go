// Package markup turns the dictionary's raw fragment markup into plain text.
//
// Source fragments carry three layers of noise on top of the prose: HTML
// formatting tags (bold, italics, font declarations), character entity
// references, and editorial notation in square or angle brackets. Decode
// strips all three, in that order.
package markup

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Correction is one bracket-bounded scribal correction and its plain-text
// replacement. Corrections are applied in table order.
type Correction struct {
	From string
	To   string
}

// DefaultCorrections is the fixed table of editorial insertions found in the
// source scans. Each bracketed form reads as its unbracketed text.
func DefaultCorrections() []Correction {
	return []Correction{
		{"[cha]", "cha"},
		{"[er]", "er"},
		{"[ny]", "ny"},
		{"[da]", "da"},
		{"[lesh]", "lesh"},
		{"[yn]", "yn"},
		{"[e]", "e"},
		{"[ad]", "ad"},
		{"[or s'tiark]", "or s'tiark"},
		{"[or cruinnaght]", "or cruinnaght"},
	}
}

var (
	// Residual deletion markers authored as literal <...> in decoded text.
	deletionRe = regexp.MustCompile(`<[^<>]*>`)

	// Entity-escaped angle notation marking provisional additions in raw
	// heading markup; these never belong in index forms.
	additionRe = regexp.MustCompile(`&lt;.*?&gt;`)

	boldRe = regexp.MustCompile(`(?is)<b[^>]*>(.*?)</b>`)
)

// Normalizer decodes raw fragment markup with a configurable correction
// table. The zero value is not usable; call NewNormalizer.
type Normalizer struct {
	corrections []Correction
}

// NewNormalizer creates a Normalizer. With no arguments the default
// correction table is used.
func NewNormalizer(corrections ...[]Correction) *Normalizer {
	c := DefaultCorrections()
	if len(corrections) > 0 {
		c = corrections[0]
	}
	return &Normalizer{corrections: c}
}

var defaultNormalizer = NewNormalizer()

// Decode converts markup to plain text using the default correction table.
func Decode(markup string) string {
	return defaultNormalizer.Decode(markup)
}

// Decode converts a markup fragment to plain text: tags stripped, entities
// decoded, line breaks trimmed, then the literal substitutions applied.
// Malformed markup never fails; the parser is tolerant and text extraction
// is best effort.
func (n *Normalizer) Decode(markup string) string {
	text := extractText(markup)
	text = strings.Trim(text, "\n\r")

	// The asterisk is the verb-suffix marker; [*] is its escape.
	text = strings.ReplaceAll(text, "[*]", "*")

	// Deletion markers written as literal angle brackets survive entity
	// decoding; they and their contents are not part of the prose.
	text = deletionRe.ReplaceAllString(text, "")

	for _, c := range n.corrections {
		text = strings.ReplaceAll(text, c.From, c.To)
	}
	return text
}

// BoldSpans returns the decoded text of every bold span in a raw heading,
// in document order. Entity-escaped angle notation is stripped from the
// heading first so provisional additions never leak into spans.
func (n *Normalizer) BoldSpans(markup string) []string {
	heading := additionRe.ReplaceAllString(markup, "")

	var spans []string
	for _, m := range boldRe.FindAllStringSubmatch(heading, -1) {
		spans = append(spans, n.Decode(m[1]))
	}
	return spans
}

// extractText parses s as an HTML fragment and concatenates its text nodes.
// Entity references are decoded by the parser. Parsing never fails on
// malformed input; if it somehow does, the input is returned untouched.
//
// The tree builder ignores whitespace-only text ahead of body content, but
// a definition segment's leading space is significant: the suffix scan
// matches "whitespace then hyphen". The leading run is carried around the
// parser and re-prepended.
func extractText(s string) string {
	trimmed := strings.TrimLeft(s, " \t\n\r\f")
	lead := s[:len(s)-len(trimmed)]

	doc, err := html.Parse(strings.NewReader(trimmed))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			buf.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return lead + buf.String()
}
