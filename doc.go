// Package htmlkit provides a toolkit for cleaning parsed HTML trees:
// a security sanitizer that strips markup capable of script injection,
// and a text normalizer that merges and trims text content for
// presentation and diffing. Both operate in place on trees produced by
// golang.org/x/net/html, which owns all node storage and linkage.
//
// # Package Organization
//
// The library is organized into focused packages under core:
//
//	github.com/dmitrymomot/htmlkit/core/dom        - Thin wrappers over the x/net/html node model (detach, text replace, fragment parse/render)
//	github.com/dmitrymomot/htmlkit/core/sanitizer  - Attribute/element classification and subtree sanitization
//	github.com/dmitrymomot/htmlkit/core/normalizer - Whitespace-aware text-node merging and cleanup
//	github.com/dmitrymomot/htmlkit/core/config     - Type-safe environment variable loading
//	github.com/dmitrymomot/htmlkit/core/logger     - Structured logging built on slog
//
// A small command-line front end lives in cmd/htmlclean.
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/htmlkit/core/sanitizer
//	go doc -all github.com/dmitrymomot/htmlkit/core/normalizer
package htmlkit
