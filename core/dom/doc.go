// Package dom provides thin wrappers over the golang.org/x/net/html node
// model. The parser owns all node storage and tree linkage; this package
// only adds the few primitives the rest of the library needs on top of
// direct field access: safe detachment, text replacement, standard-tag
// lookup, and fragment parse/render helpers.
//
// Navigation stays on the node itself: use n.FirstChild, n.NextSibling,
// and n.Parent directly; wrapping those would add nothing.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/htmlkit/core/dom"
//
//	root, err := dom.ParseFragmentString(`<p>Hello <b>world</b></p>`)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// ... mutate the subtree ...
//
//	out, err := dom.RenderFragmentString(root)
package dom
