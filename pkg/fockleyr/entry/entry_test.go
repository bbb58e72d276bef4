package entry

import (
	"fmt"
	"strings"
	"testing"
)

func TestSplitWellFormed(t *testing.T) {
	p := NewParser()
	word, def, ok := p.Split("word,def")
	if !ok {
		t.Fatal("Expected a definition segment")
	}
	if word != "word" {
		t.Errorf("Expected word %q, got %q", "word", word)
	}
	if def != "def" {
		t.Errorf("Expected definition %q, got %q", "def", def)
	}
}

func TestSplitRejoinsDefinitionCommas(t *testing.T) {
	p := NewParser()
	_, def, ok := p.Split("aght, manner, fashion, form")
	if !ok {
		t.Fatal("Expected a definition segment")
	}
	if def != " manner, fashion, form" {
		t.Errorf("Definition commas must be preserved, got %q", def)
	}
}

func TestSplitFontFaceRepair(t *testing.T) {
	p := NewParser()
	word, def, ok := p.Split(`Foo<font face="Times New Roman" >,serif, def`)
	if !ok {
		t.Fatal("Expected a definition segment")
	}
	// The comma inside the font declaration is not the word/definition
	// boundary; the one after "serif" is.
	if !strings.Contains(word, "serif") {
		t.Errorf("Font-declaration segment should be re-joined onto the word, got %q", word)
	}
	if def != " def" {
		t.Errorf("Expected definition %q, got %q", " def", def)
	}
}

func TestSplitCrossReference(t *testing.T) {
	p := NewParser()
	word, def, ok := p.Split("abc. See def, x")
	if !ok {
		t.Fatal("Expected a definition segment")
	}
	if word != "abc" {
		t.Errorf("Expected word %q, got %q", "abc", word)
	}
	if !strings.HasPrefix(def, "See def") {
		t.Errorf("Definition should start with the cross-reference text, got %q", def)
	}
	if !strings.Contains(def, "x") {
		t.Errorf("Definition should keep the following segment, got %q", def)
	}
}

func TestSplitCrossReferenceNoComma(t *testing.T) {
	p := NewParser()
	word, def, ok := p.Split("abc. See def")
	if !ok {
		t.Fatal("Cross-reference should produce a definition segment")
	}
	if word != "abc" {
		t.Errorf("Expected word %q, got %q", "abc", word)
	}
	if def != "See def" {
		t.Errorf("Expected definition %q, got %q", "See def", def)
	}
}

func TestSplitNoDefinition(t *testing.T) {
	p := NewParser()
	word, _, ok := p.Split("aght")
	if ok {
		t.Error("Single segment should have no definition")
	}
	if word != "aght" {
		t.Errorf("Expected word %q, got %q", "aght", word)
	}
}

func TestParseLogsUnknownMissingDefinition(t *testing.T) {
	var logged []string
	p := NewParser()
	p.Logf = func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}

	e := p.Parse("aght")
	if e.HasDefinition {
		t.Error("Entry should have no definition")
	}
	if len(logged) != 1 {
		t.Fatalf("Expected 1 warning, got %d: %v", len(logged), logged)
	}
	if !strings.Contains(logged[0], "aght") {
		t.Errorf("Warning should name the headword, got %q", logged[0])
	}
}

func TestParseKnownNoDefinitionIsSilent(t *testing.T) {
	var logged []string
	p := NewParser()
	p.NoDefinition = map[string]struct{}{"myr shen": {}}
	p.Logf = func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}

	e := p.Parse("myr shen")
	if e.HasDefinition {
		t.Error("Entry should have no definition")
	}
	if len(logged) != 0 {
		t.Errorf("Known no-definition word should not be reported: %v", logged)
	}
}

func TestParseDecodesFields(t *testing.T) {
	p := NewParser()
	e := p.Parse("<b>aght</b>, manner&#44; method")
	if e.Word() != "aght" {
		t.Errorf("Expected word %q, got %q", "aght", e.Word())
	}
	if e.DefinitionText() != " manner, method" {
		t.Errorf("Expected definition %q, got %q", " manner, method", e.DefinitionText())
	}
	if e.RawWord != "<b>aght</b>" {
		t.Errorf("RawWord must stay verbatim, got %q", e.RawWord)
	}
}

func TestAddChildReciprocalLink(t *testing.T) {
	parent := New("aght", "manner")
	child := New("aghtal", "mannerly")
	parent.AddChild(child)

	if child.Parent() != parent {
		t.Error("AddChild must set the parent link")
	}
	count := 0
	for _, c := range parent.Children() {
		if c == child {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Child must appear exactly once in parent's children, got %d", count)
	}
}

func TestChildrenKeepDocumentOrder(t *testing.T) {
	parent := New("aght", "manner")
	first := New("aghtal", "mannerly")
	second := New("aght-chaghter", "messenger")
	parent.AddChild(first)
	parent.AddChild(second)

	kids := parent.Children()
	if len(kids) != 2 || kids[0] != first || kids[1] != second {
		t.Errorf("Children must keep insertion order, got %v", kids)
	}
}

func TestDeriveDepth(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"aght", 0},
		{"  aght", 2},
		{"&nbsp;&nbsp;aght", 2},
		{"  aght", 2},
		{"&nbsp; aght", 2},
	}
	for _, c := range cases {
		if got := DeriveDepth(c.raw); got != c.want {
			t.Errorf("DeriveDepth(%q) = %d, want %d", c.raw, got, c.want)
		}
	}
}

func TestPossibleWordsDefinitionOpeningWithSuffix(t *testing.T) {
	// The first segment after the headword is a suffix; the comma split's
	// leading space must survive decoding so the suffix scan sees it.
	p := NewParser()
	e := p.Parse("trogg[*], -al, -agh")

	words := e.PossibleWords()
	for _, want := range []string{"trogg", "troggal", "troggagh"} {
		found := false
		for _, w := range words {
			if w == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected %q in possible words, got %v", want, words)
		}
	}
}

func TestTagsMemoized(t *testing.T) {
	p := NewParser()
	e := p.Parse("aght, s. manner")

	first := e.Tags()
	second := e.Tags()
	if len(first) == 0 {
		t.Fatal("Expected at least one tag")
	}
	if &first[0] != &second[0] {
		t.Error("Tags should be computed once and cached")
	}
}

func TestPossibleWordsMemoized(t *testing.T) {
	p := NewParser()
	e := p.Parse("aght, manner")

	first := e.PossibleWords()
	second := e.PossibleWords()
	if len(first) == 0 {
		t.Fatal("Expected at least one possible word")
	}
	if &first[0] != &second[0] {
		t.Error("Possible words should be computed once and cached")
	}
}
