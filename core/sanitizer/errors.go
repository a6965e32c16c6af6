package sanitizer

import "errors"

// Error variables define failure scenarios for a sanitize pass. A pass is
// fail-fast and not transactional: a caller that receives an error must
// assume the subtree is partially sanitized and must not render it.
var (
	// ErrNilRoot indicates Sanitize was called with a nil subtree root.
	ErrNilRoot = errors.New("sanitizer: nil subtree root")

	// ErrMutationFailed indicates the underlying DOM rejected a node
	// removal, leaving the pass unable to continue safely.
	ErrMutationFailed = errors.New("sanitizer: dom mutation failed")
)
