package dom_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfields/pkg/dom"
)

func mustParse(t *testing.T, markup string) dom.Node {
	t.Helper()

	node, err := dom.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return node
}

func TestAttrDistinguishesAbsentFromEmpty(t *testing.T) {
	doc := mustParse(t, `<input name="q" value="">`)
	inputs := doc.FindAll("input")
	if len(inputs) != 1 {
		t.Fatalf("expected 1 input, got %d", len(inputs))
	}
	node := inputs[0]

	if value, ok := node.Attr("value"); !ok || value != "" {
		t.Fatalf("value attr: got (%q, %v), want (%q, true)", value, ok, "")
	}
	if value, ok := node.Attr("placeholder"); ok {
		t.Fatalf("placeholder attr: got (%q, %v), want absent", value, ok)
	}
	if name, ok := node.Attr("name"); !ok || name != "q" {
		t.Fatalf("name attr: got (%q, %v), want (%q, true)", name, ok, "q")
	}
}

func TestTextConcatenatesDescendants(t *testing.T) {
	doc := mustParse(t, `<div><p>a</p>b<span>c</span></div>`)
	divs := doc.FindAll("div")
	if len(divs) != 1 {
		t.Fatalf("expected 1 div, got %d", len(divs))
	}
	if got := divs[0].Text(); got != "abc" {
		t.Fatalf("text: got %q, want %q", got, "abc")
	}
}

func TestFindAllDocumentOrder(t *testing.T) {
	doc := mustParse(t, `<select><option value="x">X</option><option value="y">Y</option><option value="z">Z</option></select>`)

	var values []string
	for _, option := range doc.FindAll("option") {
		value, _ := option.Attr("value")
		values = append(values, value)
	}
	if diff := cmp.Diff([]string{"x", "y", "z"}, values); diff != "" {
		t.Fatalf("option order mismatch (-want +got):\n%s", diff)
	}
}

func TestNextSiblingText(t *testing.T) {
	doc := mustParse(t, `<p><input value="a">Red<input value="b"></p>`)
	inputs := doc.FindAll("input")
	if len(inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(inputs))
	}

	next := inputs[0].NextSibling()
	if next == nil || !next.IsText() {
		t.Fatalf("expected a text node after the first input, got %#v", next)
	}
	if got := next.Text(); got != "Red" {
		t.Fatalf("sibling text: got %q, want %q", got, "Red")
	}

	if sib := inputs[1].NextSibling(); sib != nil {
		t.Fatalf("expected no sibling after the last input, got %#v", sib)
	}
}

func TestParseFragmentKeepsTextNodes(t *testing.T) {
	nodes, err := dom.ParseFragment(strings.NewReader(`<input value="a">Red`))
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 top-level nodes, got %d", len(nodes))
	}
	if nodes[0].IsText() {
		t.Fatal("expected the input element first")
	}
	if !nodes[1].IsText() || nodes[1].Text() != "Red" {
		t.Fatalf("expected trailing text %q, got %q", "Red", nodes[1].Text())
	}
}

func TestWrapNil(t *testing.T) {
	if node := dom.Wrap(nil); node != nil {
		t.Fatalf("expected nil Node, got %#v", node)
	}
}
