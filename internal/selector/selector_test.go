package selector

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func parse(t *testing.T, body string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body>" + body + "</body></html>"))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return doc
}

func collect(t *testing.T, body string, skip ...string) []Block {
	t.Helper()
	return Collect(parse(t, body).Selection, skip)
}

func texts(blocks []Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.Text
	}
	return out
}

func TestCollect_SelectsLeafParagraph(t *testing.T) {
	text := strings.Repeat("a", 50)
	blocks := collect(t, "<p>"+text+"</p>")
	if len(blocks) != 1 {
		t.Fatalf("expected exactly one block, got %d", len(blocks))
	}
	if blocks[0].Text != text {
		t.Errorf("unexpected text %q", blocks[0].Text)
	}
	if blocks[0].Node.Data != "p" {
		t.Errorf("expected p node, got %q", blocks[0].Node.Data)
	}
}

func TestCollect_LengthBounds(t *testing.T) {
	body := "<p>x</p>" +
		"<p>" + strings.Repeat("b", 161) + "</p>" +
		"<p>" + strings.Repeat("c", 160) + "</p>" +
		"<p>ok</p>"
	blocks := collect(t, body)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks (160-rune and 2-rune), got %d: %v", len(blocks), texts(blocks))
	}
}

func TestCollect_RuneCountNotByteCount(t *testing.T) {
	// 100 CJK runes are 300 bytes; the bound is runes.
	blocks := collect(t, "<p>"+strings.Repeat("你", 100)+"</p>")
	if len(blocks) != 1 {
		t.Fatalf("expected CJK paragraph selected, got %d blocks", len(blocks))
	}
}

func TestCollect_NormalizesWhitespace(t *testing.T) {
	blocks := collect(t, "<p>  Hello \n\t world  </p>")
	if len(blocks) != 1 {
		t.Fatalf("expected one block, got %d", len(blocks))
	}
	if blocks[0].Text != "Hello world" {
		t.Errorf("expected normalized text, got %q", blocks[0].Text)
	}
}

func TestCollect_SkipSelector(t *testing.T) {
	body := `<div class="notranslate"><p>skipped paragraph</p></div><p>kept paragraph</p>`
	blocks := collect(t, body, ".notranslate")
	if len(blocks) != 1 || blocks[0].Text != "kept paragraph" {
		t.Fatalf("expected only the unskipped paragraph, got %v", texts(blocks))
	}
}

func TestCollect_InvalidSkipSelectorTolerated(t *testing.T) {
	blocks := collect(t, "<p>kept paragraph</p>", "[[[", "", ".fine")
	if len(blocks) != 1 {
		t.Fatalf("invalid selector must degrade to non-matching, got %d blocks", len(blocks))
	}
}

func TestCollect_SkipsAnnotations(t *testing.T) {
	body := `<p>original text</p>` +
		`<div class="dualtext-annotation"><p>translated text</p></div>`
	blocks := collect(t, body)
	if len(blocks) != 1 || blocks[0].Text != "original text" {
		t.Fatalf("annotation subtree must not be selected, got %v", texts(blocks))
	}
}

func TestCollect_SkipsInteractiveControls(t *testing.T) {
	body := `<div>label text <input type="text"></div><p>plain text</p>`
	blocks := collect(t, body)
	if len(blocks) != 1 || blocks[0].Text != "plain text" {
		t.Fatalf("blocks containing controls must be excluded, got %v", texts(blocks))
	}
}

func TestCollect_LeafOnly(t *testing.T) {
	// The container div has element children and must not be selected even
	// though its own tag is in the candidate set.
	body := `<div><p>inner fragment</p><p>second fragment</p></div>`
	blocks := collect(t, body)
	if len(blocks) != 2 {
		t.Fatalf("expected the two leaf paragraphs, got %v", texts(blocks))
	}
}

func TestCollect_DocumentOrder(t *testing.T) {
	body := `<h1>first heading</h1><p>second paragraph</p><ul><li>third item</li><li>fourth item</li></ul><blockquote>fifth quote</blockquote>`
	blocks := collect(t, body)
	want := []string{"first heading", "second paragraph", "third item", "fourth item", "fifth quote"}
	got := texts(blocks)
	if len(got) != len(want) {
		t.Fatalf("expected %d blocks, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestCollect_TableCells(t *testing.T) {
	body := `<table><tr><th>header cell</th><td>data cell</td></tr></table>`
	blocks := collect(t, body)
	if len(blocks) != 2 {
		t.Fatalf("expected th and td selected, got %v", texts(blocks))
	}
}

func TestCollect_MixedRejections(t *testing.T) {
	// One paragraph of each rejected kind plus one eligible: only the
	// eligible one survives, exactly once.
	body := `<p>x</p>` +
		`<p>` + strings.Repeat("y", 161) + `</p>` +
		`<div class="skipme"><p>inside a skip match</p></div>` +
		`<div class="dualtext-annotation"><p>inside an annotation node</p></div>` +
		`<p>` + strings.Repeat("z", 50) + `</p>`
	blocks := collect(t, body, ".skipme")
	if len(blocks) != 1 {
		t.Fatalf("expected exactly one block, got %v", texts(blocks))
	}
	if blocks[0].Text != strings.Repeat("z", 50) {
		t.Errorf("wrong block selected: %q", blocks[0].Text)
	}
}

func TestCollect_ReadOnly(t *testing.T) {
	doc := parse(t, "<p>some readable text</p>")
	before, _ := doc.Html()
	Collect(doc.Selection, []string{".skip"})
	after, _ := doc.Html()
	if before != after {
		t.Error("Collect must not mutate the tree")
	}
}
