// Package pagetree walks a source dictionary page and assembles parsed
// entries into a parent/child tree by indentation depth. One paragraph
// element yields one raw fragment, in document order.
package pagetree

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/fockleyr/fockleyr/pkg/fockleyr/entry"
)

// Build parses an HTML page, feeds each paragraph's inner markup through
// the parser as one raw fragment, and links entries by their derived depth:
// an entry becomes a child of the nearest preceding entry with a smaller
// depth. It returns the root entries in document order.
func Build(r io.Reader, p *entry.Parser) ([]*entry.Entry, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var roots []*entry.Entry
	var stack []*entry.Entry

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "p" {
			fragment := innerMarkup(node)
			if strings.TrimSpace(fragment) == "" {
				return
			}
			e := p.Parse(fragment)

			for len(stack) > 0 && stack[len(stack)-1].Depth >= e.Depth {
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				roots = append(roots, e)
			} else {
				stack[len(stack)-1].AddChild(e)
			}
			stack = append(stack, e)
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return roots, nil
}

// innerMarkup re-serializes a node's children so the parser sees the
// paragraph's original markup, entities re-escaped by the renderer.
func innerMarkup(node *html.Node) string {
	var buf strings.Builder
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		// Render only fails on unrenderable node types, which a parsed
		// paragraph never contains.
		_ = html.Render(&buf, c)
	}
	return buf.String()
}
