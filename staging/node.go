package staging

import (
	"github.com/google/uuid"

	"github.com/stagekit/stagefs"
)

// Node is one entry of the staging collection: a file carrying a borrowed
// payload handle, or a folder. Kind is fixed at construction; the
// constructors are the only way to build one, so a folder can never carry
// a payload.
//
// All mutation goes through the owning [Tree] so its invariants hold
// after every operation.
type Node struct {
	id       string
	name     string
	kind     stagefs.NodeKind
	parentID string // "" = top-level
	locked   bool
	payload  stagefs.Payload // nil unless kind == FileNode
}

// newFileNode creates a detached file node borrowing the given payload
func newFileNode(name string, payload stagefs.Payload) *Node {
	return &Node{
		id:      uuid.NewString(),
		name:    name,
		kind:    stagefs.FileNode,
		payload: payload,
	}
}

// newFolderNode creates a detached empty folder node
func newFolderNode(name string) *Node {
	return &Node{
		id:   uuid.NewString(),
		name: name,
		kind: stagefs.FolderNode,
	}
}

// ID returns the node's immutable opaque identifier
func (n *Node) ID() string {
	return n.id
}

// Name returns the node's display name. Uniqueness among siblings is not
// enforced anywhere in the model.
func (n *Node) Name() string {
	return n.name
}

// Kind returns the node kind, fixed at creation
func (n *Node) Kind() stagefs.NodeKind {
	return n.kind
}

// ParentID returns the id of the containing folder, or "" for a
// top-level node
func (n *Node) ParentID() string {
	return n.parentID
}

// IsLocked reports the node's lock state
func (n *Node) IsLocked() bool {
	return n.locked
}

// Payload returns the borrowed content handle; nil for folders
func (n *Node) Payload() stagefs.Payload {
	return n.payload
}

// IsFolder reports whether the node can contain children
func (n *Node) IsFolder() bool {
	return n.kind == stagefs.FolderNode
}

// Permissions maps the lock state onto the backend's wire value
func (n *Node) Permissions() stagefs.Permissions {
	if n.locked {
		return stagefs.ReadOnly
	}
	return stagefs.ReadWrite
}
