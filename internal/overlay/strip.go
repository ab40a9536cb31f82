package overlay

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/dangehub/dualtext/internal/dom"
)

// Strip removes every annotation node and hidden flag in doc, regardless of
// which session inserted them. It is the recovery path for documents saved
// with an overlay baked in: a fresh process has no pair mapping to Clear.
// Returns the number of annotation nodes removed.
func Strip(doc *goquery.Document) int {
	removed := 0
	doc.Find("[" + dom.AnnotationAttr + "], ." + dom.AnnotationClass).Each(func(_ int, s *goquery.Selection) {
		dom.Detach(s.Get(0))
		removed++
	})
	doc.Find("." + dom.HiddenClass).Each(func(_ int, s *goquery.Selection) {
		dom.RemoveClass(s.Get(0), dom.HiddenClass)
	})
	return removed
}
