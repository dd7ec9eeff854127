// Package dom abstracts the parsed document tree that form fields are
// built from. Fields only need a narrow slice of the tree: attribute
// lookup, text content, sibling traversal and descendant search. The Node
// interface captures those capabilities and the package adapts
// golang.org/x/net/html to it, so field construction never touches the
// parser directly.
package dom

// Node is a single node in a parsed document tree.
type Node interface {
	// Attr returns the value of the named attribute and whether the
	// attribute is present. An attribute present with an empty value
	// reports ("", true); an absent attribute reports ("", false).
	Attr(name string) (string, bool)

	// Text returns the concatenated text content of the node and all of
	// its descendants.
	Text() string

	// NextSibling returns the node immediately following this one in
	// document order, or nil when there is none.
	NextSibling() Node

	// FindAll returns every descendant element with the given tag, in
	// document order.
	FindAll(tag string) []Node

	// IsText reports whether the node is a character-data node rather
	// than an element.
	IsText() bool
}
