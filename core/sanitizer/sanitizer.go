package sanitizer

import (
	"errors"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dmitrymomot/htmlkit/core/dom"
)

// Sanitize walks the subtree rooted at root in document order and strips
// content according to p. The tree is mutated in place; the root itself
// is never removed, but its attributes are filtered when it is an
// element.
//
// The pass is fail-fast and not transactional: on error the subtree is
// partially sanitized and must not be treated as safe to render.
func Sanitize(root *html.Node, p Profile) error {
	if root == nil {
		return ErrNilRoot
	}
	if dom.IsElement(root) {
		filterAttributes(root, p, !dom.IsStandardTag(root))
	}
	return sanitizeChildren(root, p)
}

// Clean parses s as a body fragment, sanitizes it under p, and renders
// the result. It is the one-call form for string-to-string use.
func Clean(s string, p Profile) (string, error) {
	root, err := dom.ParseFragmentString(s)
	if err != nil {
		return "", err
	}
	if err := Sanitize(root, p); err != nil {
		return "", err
	}
	return dom.RenderFragmentString(root)
}

// CleanBytes is Clean for byte slices.
func CleanBytes(b []byte, p Profile) ([]byte, error) {
	out, err := Clean(string(b), p)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// sanitizeChildren visits every child of n, prefetching the next sibling
// before acting on the current one so immediate removals never
// invalidate the iteration. Removed nodes are not descended into.
func sanitizeChildren(n *html.Node, p Profile) error {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		removed, err := sanitizeNode(c, p)
		if err != nil {
			return err
		}
		if !removed {
			if err := sanitizeChildren(c, p); err != nil {
				return err
			}
		}
		c = next
	}
	return nil
}

// sanitizeNode applies the per-node rules and reports whether the node
// was removed from the tree. Text nodes are never altered here; text
// cleanup belongs to the normalizer pass.
func sanitizeNode(n *html.Node, p Profile) (bool, error) {
	switch n.Type {
	case html.CommentNode:
		if p.SkipComments {
			return true, detach(n)
		}

	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script:
			if p.RemoveScripts {
				return true, detach(n)
			}
		case atom.Style:
			if p.RemoveStyles {
				return true, detach(n)
			}
		}

		if !dom.IsStandardTag(n) {
			if !p.AllowCustomElements {
				return true, detach(n)
			}
			// Kept custom elements are expected to carry non-standard
			// attribute names, so only the value-threat rule applies.
			filterAttributes(n, p, true)
			return false, nil
		}

		filterAttributes(n, p, false)
	}

	return false, nil
}

// filterAttributes collects the element's attributes into an owned list
// and re-applies only the survivors, so the attribute set is never
// mutated while being iterated. Attributes with empty names after
// trimming are malformed input and dropped locally rather than
// re-applied.
func filterAttributes(el *html.Node, p Profile, customElement bool) {
	if len(el.Attr) == 0 {
		return
	}

	kept := make([]html.Attribute, 0, len(el.Attr))
	for _, a := range el.Attr {
		name := strings.TrimSpace(a.Key)
		if name == "" {
			continue
		}
		if !customElement && !IsKnownAttribute(name) {
			continue
		}
		// A known name like href or src can still carry a dangerous value.
		if p.isDangerousValue(a.Val) {
			continue
		}
		kept = append(kept, a)
	}
	el.Attr = kept
}

func detach(n *html.Node) error {
	if err := dom.Detach(n); err != nil {
		return errors.Join(ErrMutationFailed, err)
	}
	return nil
}
