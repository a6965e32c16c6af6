package normalizer

import (
	"slices"

	"golang.org/x/net/html"

	"github.com/dmitrymomot/htmlkit/core/dom"
)

// PreservesWhitespace reports whether n sits inside a whitespace-
// preserving container: any element ancestor whose tag name appears in
// preserve. The lookup is linear in tree depth and performed once per
// text run; normalize passes are one-shot batch operations, so no
// caching is done.
func PreservesWhitespace(n *html.Node, preserve []string) bool {
	for a := dom.FirstElementAncestor(n); a != nil; a = dom.FirstElementAncestor(a) {
		if slices.Contains(preserve, dom.TagName(a)) {
			return true
		}
	}
	return false
}
