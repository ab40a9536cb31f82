// Package selector walks a rendered HTML tree and yields the ordered sequence
// of leaf elements eligible for translation.
package selector

import (
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/dangehub/dualtext/internal/dom"
)

// blockTags is the candidate tag set: textual block elements plus the generic
// inline/container tags documents commonly render prose into.
const blockTags = "h1, h2, h3, h4, h5, h6, p, li, blockquote, th, td, pre, button, span, div"

// controlTags are input-capable controls. A candidate containing one is
// interactive UI and must not be annotated.
const controlTags = "input, textarea, select"

// Normalized text length bounds, in runes. Shorter fragments are noise
// (icons, lone punctuation); longer ones risk breaking layout when an inline
// annotation is appended.
const (
	MinRunes = 2
	MaxRunes = 160
)

// Block is a leaf element selected as a translation unit.
type Block struct {
	Sel  *goquery.Selection
	Node *html.Node

	// Text is the normalized text content (whitespace collapsed, trimmed).
	Text string
}

// Collect returns the Blocks under root in document order. The walk is
// read-only and deterministic. skip lists ancestor selectors whose subtrees
// are excluded; entries that fail to compile are treated as never matching.
func Collect(root *goquery.Selection, skip []string) []Block {
	matchers := compileSkips(skip)

	var blocks []Block
	root.Find(blockTags).Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		if matchesAncestor(n, matchers) {
			return
		}
		if insideAnnotation(n) {
			return
		}
		if s.Find(controlTags).Length() > 0 {
			return
		}
		// Leaf-only: translating both a container and its inner text would
		// double-annotate and destroy nested structure.
		if dom.HasElementChildren(n) {
			return
		}
		text := dom.Normalize(s.Text())
		if c := utf8.RuneCountInString(text); c < MinRunes || c > MaxRunes {
			return
		}
		blocks = append(blocks, Block{Sel: s, Node: n, Text: text})
	})
	return blocks
}

// compileSkips compiles the configured skip selectors, dropping invalid ones.
func compileSkips(skip []string) []cascadia.Selector {
	var matchers []cascadia.Selector
	for _, sel := range skip {
		if sel == "" {
			continue
		}
		m, err := cascadia.Compile(sel)
		if err != nil {
			// Invalid selector degrades to "did not match".
			continue
		}
		matchers = append(matchers, m)
	}
	return matchers
}

// matchesAncestor reports whether n or any of its ancestors matches one of the
// compiled selectors.
func matchesAncestor(n *html.Node, matchers []cascadia.Selector) bool {
	for p := n; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		for _, m := range matchers {
			if m.Match(p) {
				return true
			}
		}
	}
	return false
}

// insideAnnotation reports whether n is, or is nested inside, a previously
// inserted annotation node.
func insideAnnotation(n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if dom.IsAnnotation(p) {
			return true
		}
	}
	return false
}
