package dom

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseFragment parses r as an HTML body fragment and returns the
// synthetic <body> element holding the parsed nodes. The parser always
// produces the html/head/body scaffolding, so the returned node is never
// nil on success.
func ParseFragment(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Join(ErrParseFailed, err)
	}
	body := findBody(doc)
	if body == nil {
		return nil, ErrParseFailed
	}
	return body, nil
}

// ParseFragmentString is ParseFragment for an in-memory string.
func ParseFragmentString(s string) (*html.Node, error) {
	return ParseFragment(strings.NewReader(s))
}

// RenderFragment serializes the children of root to w, omitting root
// itself. Pass the node returned by ParseFragment to get back the
// fragment without the synthetic body wrapper.
func RenderFragment(w io.Writer, root *html.Node) error {
	if root == nil {
		return ErrNilNode
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return errors.Join(ErrRenderFailed, err)
		}
	}
	return nil
}

// RenderFragmentString serializes the children of root into a string.
func RenderFragmentString(root *html.Node) (string, error) {
	var sb strings.Builder
	if err := RenderFragment(&sb, root); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func findBody(doc *html.Node) *html.Node {
	var find func(*html.Node) *html.Node
	find = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if r := find(c); r != nil {
				return r
			}
		}
		return nil
	}
	return find(doc)
}
