package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// IsElement reports whether n is an element node.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// IsText reports whether n is a text node.
func IsText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// IsComment reports whether n is a comment node.
func IsComment(n *html.Node) bool {
	return n != nil && n.Type == html.CommentNode
}

// TagName returns the lowercased tag name of an element node, or the
// empty string for any other node type.
func TagName(n *html.Node) string {
	if !IsElement(n) {
		return ""
	}
	return strings.ToLower(n.Data)
}

// IsStandardTag reports whether n is an element whose tag name appears in
// the HTML specification table. Elements outside the table (including
// hyphenated custom elements like <my-widget>) report false.
func IsStandardTag(n *html.Node) bool {
	if !IsElement(n) {
		return false
	}
	if n.DataAtom != 0 {
		return true
	}
	return atom.Lookup([]byte(TagName(n))) != 0
}

// FirstElementAncestor walks the parent chain upward from n and returns
// the nearest element ancestor, or nil if none exists.
func FirstElementAncestor(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return p
		}
	}
	return nil
}

// Detach removes n from its parent. The subtree rooted at n stays intact
// but is no longer reachable from the document. Detaching a node that has
// already been removed returns ErrNotAttached instead of panicking, so
// passes can escalate the failure rather than corrupt the walk.
func Detach(n *html.Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.Parent == nil {
		return ErrNotAttached
	}
	n.Parent.RemoveChild(n)
	return nil
}

// SetText writes character data to n. For a text node the data is
// replaced in place. For an element the first text child is replaced, or
// a new text child is appended when the element has none. Any other node
// type returns ErrNotTextCarrier.
func SetText(n *html.Node, s string) error {
	if n == nil {
		return ErrNilNode
	}
	switch n.Type {
	case html.TextNode:
		n.Data = s
		return nil
	case html.ElementNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				c.Data = s
				return nil
			}
		}
		n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
		return nil
	default:
		return ErrNotTextCarrier
	}
}
