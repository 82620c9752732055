package stagefs

// NodeInfo provides read-only access to staged node information for
// external consumers (display trees, archive naming)
type NodeInfo interface {
	// ID returns the opaque unique node identifier
	ID() string

	// Name returns the node's display name (last path segment)
	Name() string

	// Kind returns the node kind, fixed at creation
	Kind() NodeKind

	// ParentID returns the id of the containing folder, or "" for a
	// top-level node
	ParentID() string

	// IsLocked reports the node's lock state
	IsLocked() bool
}

// TreeOperator defines the staging operations the surrounding console
// drives. Every mutator validates fully before writing; a returned error
// means the collection is unchanged.
type TreeOperator interface {
	CreateFile(name, parentID string, payload Payload) (NodeInfo, error)
	CreateFolder(name, parentID string) (NodeInfo, error)
	Rename(id, newName string) error
	Move(id, newParentID string) error

	// Delete removes the node and every transitive descendant, returning
	// the removed ids so callers can invalidate cached references
	Delete(id string) ([]string, error)

	// ToggleLock flips the node's lock state and the lock state of its
	// direct children. It does not recurse further.
	ToggleLock(id string) error

	// Resolve returns the node's canonical wire path
	Resolve(id string) (string, error)

	// Flatten emits one FileRecord per staged file; folders are not
	// independently represented
	Flatten() ([]FileRecord, error)
}
