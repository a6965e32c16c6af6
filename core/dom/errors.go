package dom

import "errors"

// Error variables define failure scenarios for node mutation and fragment
// handling. Mutation errors are deliberately loud: callers treat them as
// fatal for the current pass rather than silently continuing on a tree in
// an unknown state.
var (
	// ErrNilNode indicates a nil node was passed where a live node is required.
	ErrNilNode = errors.New("dom: nil node")

	// ErrNotAttached indicates a detach was requested for a node that has
	// no parent, typically because it was already removed in the same pass.
	ErrNotAttached = errors.New("dom: node is not attached to a parent")

	// ErrNotTextCarrier indicates a text write was requested on a node type
	// that cannot carry character data.
	ErrNotTextCarrier = errors.New("dom: node cannot carry text content")

	// ErrParseFailed indicates the underlying parser rejected the input.
	ErrParseFailed = errors.New("dom: failed to parse fragment")

	// ErrRenderFailed indicates serialization of a subtree failed.
	ErrRenderFailed = errors.New("dom: failed to render fragment")
)
