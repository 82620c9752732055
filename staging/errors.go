package staging

import "errors"

// All staging failures are local, synchronous, and recoverable: a mutator
// that returns an error has written nothing.
var (
	// ErrNotFound signals an operation referencing a nonexistent node id
	ErrNotFound = errors.New("node not found")

	// ErrInvalidParent signals a create/move target that is not an
	// existing folder
	ErrInvalidParent = errors.New("parent is not an existing folder")

	// ErrCyclicMove signals a move whose target is the node itself or one
	// of its own descendants
	ErrCyclicMove = errors.New("move would create a cycle")

	// ErrCycleDetected signals a parent-link cycle found while resolving
	// a path. Unreachable as long as moves are validated; kept so a bug
	// elsewhere surfaces as an error instead of an infinite loop.
	ErrCycleDetected = errors.New("parent cycle detected")
)
