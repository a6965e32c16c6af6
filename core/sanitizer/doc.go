// Package sanitizer strips or neutralizes markup capable of script
// injection from a parsed HTML subtree. It walks the tree in place,
// removing comments, script/style elements, unrecognized custom
// elements, unknown attributes on standard elements, and any attribute
// whose value matches a dangerous URI scheme or inline-script marker.
//
// The sanitizer is a defense-in-depth filter layered on top of the
// escaping golang.org/x/net/html already performs at render time. It is
// best-effort by design and does not claim to remove every conceivable
// XSS vector.
//
// # Profiles
//
// Behavior is selected by an immutable Profile value. Two presets cover
// the common cases:
//
//	import "github.com/dmitrymomot/htmlkit/core/sanitizer"
//
//	// Strict: scripts, styles, comments, and custom elements removed.
//	clean, err := sanitizer.Clean(userHTML, sanitizer.StrictProfile())
//
//	// Permissive: custom elements and framework attributes survive,
//	// styles are kept, scripts still go.
//	clean, err = sanitizer.Clean(widgetHTML, sanitizer.PermissiveProfile())
//
// To sanitize an existing live subtree instead of a string, use Sanitize
// directly:
//
//	root, _ := dom.ParseFragmentString(input)
//	if err := sanitizer.Sanitize(root, sanitizer.StrictProfile()); err != nil {
//		// The subtree is partially sanitized and must not be
//		// treated as safe to render.
//	}
//
// # Classification
//
// IsKnownAttribute and IsDangerousValue expose the two decision
// functions the walker uses, for callers that want to apply the same
// rules to markup they assemble themselves.
package sanitizer
