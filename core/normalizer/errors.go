package normalizer

import "errors"

// Error variables define failure scenarios for a normalize pass. Like the
// sanitizer, a pass is fail-fast: merges already applied when the error
// occurred are not rolled back.
var (
	// ErrNilRoot indicates Normalize was called with a nil subtree root.
	ErrNilRoot = errors.New("normalizer: nil subtree root")

	// ErrMutationFailed indicates the underlying DOM rejected a removal
	// or text replacement.
	ErrMutationFailed = errors.New("normalizer: dom mutation failed")
)
