// Package overlay orchestrates a translation pass over a rendered document:
// block selection, cache-backed translation, sibling annotation insertion,
// and reversible hiding of the originals.
package overlay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/dangehub/dualtext/internal/config"
	"github.com/dangehub/dualtext/internal/dom"
	"github.com/dangehub/dualtext/internal/memory"
	"github.com/dangehub/dualtext/internal/selector"
	"github.com/dangehub/dualtext/internal/translator"
)

// ErrNoTarget is returned when a session has no document or bound root to
// translate into.
var ErrNoTarget = errors.New("no translation target")

// ErrEmptyTranslation is returned when the backend answered but produced no
// usable text. Inserting nothing silently would leave the overlay looking
// complete while dropping content.
var ErrEmptyTranslation = errors.New("backend returned an empty translation")

// Session owns one overlay over one rendered tree: the settings snapshot, the
// fragment cache, and the mapping from each original block to its inserted
// annotation. Sessions assume a single-threaded mutation context; two
// independent sessions over different trees are fine, one session shared
// across goroutines is not.
type Session struct {
	id      string
	doc     *goquery.Document
	root    *goquery.Selection
	cfg     config.Config
	backend translator.Backend
	mem     *memory.Memory

	// pairs maps an original block to its annotation, keyed by node identity.
	// order preserves insertion order for deterministic teardown.
	pairs map[*html.Node]*html.Node
	order []*html.Node

	log *slog.Logger
}

// NewSession creates a session over doc with the given settings snapshot.
// The snapshot is copied; later mutation of the caller's value has no effect
// until UpdateSettings.
func NewSession(doc *goquery.Document, cfg config.Config, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		id:    uuid.NewString(),
		doc:   doc,
		cfg:   cfg,
		mem:   memory.New(),
		pairs: make(map[*html.Node]*html.Node),
		log:   log,
	}
}

// SetRoot binds a non-document root. Translate falls back to it when called
// without an explicit override.
func (s *Session) SetRoot(root *goquery.Selection) {
	s.root = root
}

// Translate runs a full pass: tears down any prior overlay, selects blocks
// under the effective root, translates each sequentially through cache then
// backend, inserts annotations, and applies the original-visibility policy.
//
// The first failing block aborts the rest of the pass; annotations inserted
// before the failure stay in place. There is no partial-continue policy.
func (s *Session) Translate(ctx context.Context, root *goquery.Selection) error {
	s.Clear()

	target := root
	if target == nil {
		target = s.root
	}
	if target == nil && s.doc != nil {
		target = s.doc.Selection
	}
	if target == nil || target.Length() == 0 {
		return ErrNoTarget
	}

	if s.backend == nil {
		b, err := translator.New(s.cfg)
		if err != nil {
			return err
		}
		s.backend = b
	}

	blocks := selector.Collect(target, s.cfg.SkipSelectors)
	s.log.Debug("collected blocks", "session", s.id, "count", len(blocks))

	var passErr error
	for _, b := range blocks {
		if utf8.RuneCountInString(b.Text) < selector.MinRunes {
			continue
		}
		translated, cached := s.mem.Lookup(b.Text)
		if !cached {
			var err error
			translated, err = s.backend.Translate(ctx, b.Text)
			if err != nil {
				passErr = fmt.Errorf("translate %q: %w", b.Text, err)
				break
			}
			if strings.TrimSpace(translated) == "" {
				passErr = fmt.Errorf("translate %q: %w", b.Text, ErrEmptyTranslation)
				break
			}
			s.mem.Store(b.Text, translated)
		}
		s.insert(b.Node, translated)
	}

	s.ApplyOriginalVisibility()

	if passErr != nil {
		s.log.Error("translation pass aborted", "session", s.id, "translated", len(s.pairs), "err", passErr)
		return passErr
	}
	s.log.Info("translation pass complete", "session", s.id,
		"backend", s.backend.Name(), "blocks", len(blocks), "annotations", len(s.pairs))
	return nil
}

// insert places an annotation carrying text immediately after orig and
// registers the pair. At most one annotation per original: a stale one is
// detached first.
func (s *Session) insert(orig *html.Node, text string) {
	if old, ok := s.pairs[orig]; ok {
		dom.Detach(old)
	} else {
		s.order = append(s.order, orig)
	}
	ann := dom.NewAnnotation(text)
	dom.InsertAfter(orig, ann)
	s.pairs[orig] = ann
}

// Clear removes every tracked annotation node, empties the pair mapping, and
// restores original visibility. Safe to call from any state, including
// mid-failure recovery; never errors.
func (s *Session) Clear() {
	for _, orig := range s.order {
		dom.Detach(s.pairs[orig])
		dom.RemoveClass(orig, dom.HiddenClass)
	}
	s.pairs = make(map[*html.Node]*html.Node)
	s.order = nil
}

// ApplyOriginalVisibility marks or unmarks every currently-paired original
// with the hidden flag per the hide-original setting. Presentational only,
// reversible, idempotent.
func (s *Session) ApplyOriginalVisibility() {
	for _, orig := range s.order {
		if s.cfg.HideOriginal {
			dom.AddClass(orig, dom.HiddenClass)
		} else {
			dom.RemoveClass(orig, dom.HiddenClass)
		}
	}
}

// HasTranslations reports whether the overlay currently holds any pairs.
// Callers use it as a toggle: translate when false, clear when true.
func (s *Session) HasTranslations() bool {
	return len(s.pairs) > 0
}

// UpdateSettings replaces the session's settings snapshot. The backend is
// rebuilt and the fragment cache dropped on the next pass; the current overlay
// is left untouched until the caller re-runs Translate or re-applies
// visibility.
func (s *Session) UpdateSettings(cfg config.Config) {
	s.cfg = cfg
	s.backend = nil
	// Cached translations were produced under the old language pair and
	// backend; serving them after a settings change would be stale.
	s.mem.Reset()
}

// CacheLen exposes the fragment cache size, for diagnostics and tests.
func (s *Session) CacheLen() int {
	return s.mem.Len()
}
