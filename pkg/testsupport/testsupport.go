// Package testsupport provides helpers shared by the package tests.
package testsupport

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfields/pkg/dom"
)

// MustParse parses a full HTML document, failing the test on error.
func MustParse(t *testing.T, markup string) dom.Node {
	t.Helper()

	node, err := dom.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return node
}

// MustFindAll parses markup and returns every element with the given tag,
// in document order.
func MustFindAll(t *testing.T, markup, tag string) []dom.Node {
	t.Helper()

	nodes := MustParse(t, markup).FindAll(tag)
	if len(nodes) == 0 {
		t.Fatalf("no <%s> elements in %q", tag, markup)
	}
	return nodes
}

// MustFind parses markup and returns the first element with the given tag.
func MustFind(t *testing.T, markup, tag string) dom.Node {
	t.Helper()

	return MustFindAll(t, markup, tag)[0]
}

// Diff returns a human-readable structural diff, empty when equal.
func Diff(want, got any) string {
	return cmp.Diff(want, got)
}
