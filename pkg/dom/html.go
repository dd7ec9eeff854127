package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// htmlNode adapts a *html.Node to the Node interface.
type htmlNode struct {
	n *html.Node
}

var _ Node = htmlNode{}

// Wrap adapts a parsed html node. A nil node yields a nil Node.
func Wrap(n *html.Node) Node {
	if n == nil {
		return nil
	}
	return htmlNode{n: n}
}

// Parse reads a full HTML document and returns its root node.
func Parse(r io.Reader) (Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse document: %w", err)
	}
	return Wrap(doc), nil
}

// ParseFragment parses markup as body content and returns the top-level
// nodes, text nodes included.
func ParseFragment(r io.Reader) ([]Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	parsed, err := html.ParseFragment(r, context)
	if err != nil {
		return nil, fmt.Errorf("dom: parse fragment: %w", err)
	}
	nodes := make([]Node, 0, len(parsed))
	for _, n := range parsed {
		nodes = append(nodes, Wrap(n))
	}
	return nodes, nil
}

func (h htmlNode) Attr(name string) (string, bool) {
	for _, attr := range h.n.Attr {
		if attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

func (h htmlNode) Text() string {
	var sb strings.Builder
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(h.n)
	return sb.String()
}

func (h htmlNode) NextSibling() Node {
	return Wrap(h.n.NextSibling)
}

func (h htmlNode) FindAll(tag string) []Node {
	var found []Node
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag && n != h.n {
			found = append(found, Wrap(n))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(h.n)
	return found
}

func (h htmlNode) IsText() bool {
	return h.n.Type == html.TextNode
}
