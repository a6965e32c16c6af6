// Package normalizer merges and cleans the text content of a parsed
// HTML subtree for presentation and diffing. It collapses runs of
// adjacent text-node siblings into a single node, trims and joins their
// content with whitespace-aware rules, and optionally drops comments,
// processing instructions, and whitespace-only text nodes.
//
// Content inside whitespace-preserving containers (pre, code, textarea,
// script, style by default) is concatenated verbatim and never trimmed.
//
// Usage:
//
//	import "github.com/dmitrymomot/htmlkit/core/normalizer"
//
//	out, err := normalizer.Clean("<p>  Hello  <b>x</b>World  </p>", normalizer.DefaultProfile())
//
// Or against a live subtree:
//
//	root, _ := dom.ParseFragmentString(input)
//	err := normalizer.Normalize(root, normalizer.DefaultProfile())
//
// All mutation is deferred: each pass first collects an immutable work
// list during the walk and applies it afterwards, so sibling pointers
// are never invalidated mid-iteration.
package normalizer
