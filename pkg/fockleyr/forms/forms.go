// Package forms derives the full set of surface word-forms that should
// resolve to a dictionary entry: the headword alternatives themselves,
// bold-marked sub-forms from the heading, and suffix variants mined out of
// the definition prose.
package forms

import (
	"regexp"
	"strings"

	"github.com/fockleyr/fockleyr/pkg/fockleyr/markup"
)

// Both the ASCII hyphen and the non-breaking variant (U+2011) occur in the
// scans, interchangeably.
const hyphens = "-‑"

var (
	orRe = regexp.MustCompile(`\s+or\s+`)

	// A suffix candidate is a hyphen-led word run in the definition prose,
	// e.g. "to lift, -agh, -ee." offers -agh and -ee.
	suffixRe = regexp.MustCompile(`\s[-\x{2011}][\p{L}\p{N}_]+`)

	// Explicit substitution instructions of the form "[change -X to -Y]".
	changeRe = regexp.MustCompile(`\[change\s+[-\x{2011}]?([\p{L}\p{N}_]+)\s+to\s+[-\x{2011}]?([\p{L}\p{N}_]+)\]`)

	// Editorial markers flagging a preserved error; anything from the
	// marker on is not part of the word form.
	sicMarkers = []string{"[sic]", "(sic)", "[sic:", "(sic:"}
)

// Derive returns every surface form that should index to the entry with the
// given decoded headword, raw heading markup, and decoded definition text.
// The result preserves first-occurrence order and contains no duplicates.
// A nil norm uses the default normalizer.
func Derive(word, rawHeading, definition string, norm *markup.Normalizer) []string {
	if norm == nil {
		norm = markup.NewNormalizer()
	}

	// 1. Headword alternatives, split on the "or" conjunction. The raw
	// alternative (asterisk intact) decides suffix eligibility below; the
	// yielded form has the verb-suffix marker stripped.
	alts := orRe.Split(word, -1)
	var words []string
	for _, alt := range alts {
		words = append(words, baseForm(alt))
	}

	// 2. Bold sub-forms from the heading. Spans carrying line breaks, an
	// unresolved bracket, or an asterisk are unsuitable for standalone
	// indexing; blank spans are dropped outright.
	for _, span := range norm.BoldSpans(rawHeading) {
		if strings.TrimSpace(span) == "" {
			continue
		}
		if strings.ContainsAny(span, "\n\r*[") {
			continue
		}
		words = append(words, span)
	}

	// 3. Suffix-eligible base forms: when the headword is asterisk-marked
	// anywhere, only the asterisk-marked alternatives take suffixes.
	var bases []string
	if strings.Contains(word, "*") {
		for _, alt := range alts {
			if strings.Contains(alt, "*") {
				bases = append(bases, baseForm(alt))
			}
		}
	} else {
		for _, alt := range alts {
			bases = append(bases, baseForm(alt))
		}
	}

	// 4. Candidate suffixes offered by the definition prose.
	var suffixes []string
	for _, m := range suffixRe.FindAllString(definition, -1) {
		suffixes = append(suffixes, strings.Trim(m, hyphens+" \t\n\r"))
	}

	// 5. Explicit substitution rules. A rule consumes both of its suffixes:
	// they must not also be blindly concatenated in step 6.
	for _, m := range changeRe.FindAllStringSubmatch(definition, -1) {
		oldSuffix := strings.Trim(m[1], hyphens+" \t\n\r")
		newSuffix := strings.Trim(m[2], hyphens+" \t\n\r")
		for _, base := range bases {
			if strings.HasSuffix(base, oldSuffix) {
				words = append(words, base[:len(base)-len(oldSuffix)]+newSuffix)
			}
		}
		suffixes = removeAll(suffixes, oldSuffix)
		suffixes = removeAll(suffixes, newSuffix)
	}

	// 6. Remaining suffixes attach directly, per the dictionary convention
	// that -agh written after trogg* means troggagh.
	for _, suffix := range suffixes {
		for _, base := range bases {
			words = append(words, base+suffix)
		}
	}

	// 7. Uniform cleanup, then order-preserving dedup. Empty candidates are
	// cleaned and deduplicated like any other; sic truncation legitimately
	// collapses distinct yields into one form.
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = Clean(w)
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// baseForm trims an alternative and strips the trailing verb-suffix marker.
func baseForm(alt string) string {
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(alt), "*"))
}

// Clean normalizes one yielded word form: hyphen and right-quote variants
// become their ASCII equivalents, any sic annotation truncates the form,
// and surrounding whitespace goes.
func Clean(w string) string {
	w = strings.ReplaceAll(w, "‑", "-")
	w = strings.ReplaceAll(w, "’", "'")
	for _, marker := range sicMarkers {
		if i := strings.Index(w, marker); i >= 0 {
			w = w[:i]
		}
	}
	return strings.TrimSpace(w)
}

func removeAll(suffixes []string, s string) []string {
	out := suffixes[:0]
	for _, suffix := range suffixes {
		if suffix != s {
			out = append(out, suffix)
		}
	}
	return out
}
