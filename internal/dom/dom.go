// Package dom provides the small node-level surface the overlay needs from the
// rendered HTML tree: text normalization, sibling insertion, detachment, and
// the class names that mark annotation nodes and hidden originals.
package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

const (
	// AnnotationClass marks an inserted translation node. Selection skips
	// anything carrying it or nested inside it.
	AnnotationClass = "dualtext-annotation"

	// HiddenClass is the presentational flag placed on a paired original when
	// hide-original is active. Purely cosmetic and reversible.
	HiddenClass = "dualtext-hidden"

	// AnnotationAttr tags annotation nodes so they survive class rewriting by
	// other tools.
	AnnotationAttr = "data-dualtext"
)

// Normalize collapses whitespace runs to single spaces, trims, and applies
// NFC. Fragment cache keys and length checks both operate on this form.
func Normalize(text string) string {
	return norm.NFC.String(strings.Join(strings.Fields(text), " "))
}

// Text returns the concatenated text content of n's subtree.
func Text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// HasElementChildren reports whether n has at least one element child. Blocks
// are leaf-only: a node with element children is a container, not a fragment.
func HasElementChildren(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return true
		}
	}
	return false
}

// InsertAfter places n as the next sibling of ref. ref must be attached to a
// parent.
func InsertAfter(ref, n *html.Node) {
	if ref.Parent == nil {
		return
	}
	if ref.NextSibling != nil {
		ref.Parent.InsertBefore(n, ref.NextSibling)
	} else {
		ref.Parent.AppendChild(n)
	}
}

// Detach removes n from its parent. A nil or already detached node is a no-op.
func Detach(n *html.Node) {
	if n == nil || n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// NewAnnotation builds a detached annotation element carrying text.
func NewAnnotation(text string) *html.Node {
	n := &html.Node{
		Type: html.ElementNode,
		Data: "span",
		Attr: []html.Attribute{
			{Key: "class", Val: AnnotationClass},
			{Key: AnnotationAttr, Val: "annotation"},
		},
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

// IsAnnotation reports whether n is an annotation node inserted by this
// package.
func IsAnnotation(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == AnnotationAttr {
			return true
		}
		if a.Key == "class" && hasClass(a.Val, AnnotationClass) {
			return true
		}
	}
	return false
}

// AddClass adds class to n's class attribute if not already present.
func AddClass(n *html.Node, class string) {
	for i, a := range n.Attr {
		if a.Key == "class" {
			if hasClass(a.Val, class) {
				return
			}
			n.Attr[i].Val = strings.TrimSpace(a.Val + " " + class)
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
}

// RemoveClass removes class from n's class attribute. Absent class is a no-op.
func RemoveClass(n *html.Node, class string) {
	for i, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		var kept []string
		for _, c := range strings.Fields(a.Val) {
			if c != class {
				kept = append(kept, c)
			}
		}
		n.Attr[i].Val = strings.Join(kept, " ")
		return
	}
}

// HasClass reports whether n carries class in its class attribute.
func HasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			return hasClass(a.Val, class)
		}
	}
	return false
}

func hasClass(attr, class string) bool {
	for _, c := range strings.Fields(attr) {
		if c == class {
			return true
		}
	}
	return false
}
