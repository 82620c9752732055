// Package staging implements the hierarchical file-staging model used to
// assemble a component's bundled file set before upload: an in-memory
// forest of file and folder nodes mutated by user-driven commands and
// converted to and from the backend's flat path+permission records.
package staging

import (
	"fmt"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/stagekit/stagefs"
	"github.com/stagekit/stagefs/util"
)

// Tree owns the staging collection for one editing session. There is no
// materialized root entity; top-level nodes have an empty parent id.
//
// Child sets are derived on demand by scanning for a matching parent id
// rather than kept in a per-node index: sibling names need not be unique,
// so a name-keyed child map would silently merge duplicates. Scan order
// is insertion order, tracked by the order slice.
//
// Mutation is single-writer: one logical actor, synchronously to
// completion per command. Every mutator validates fully before its first
// write, which is what makes "return error" equivalent to "collection
// unchanged".
type Tree struct {
	nodes *xsync.Map[string, *Node] // registry of live nodes by id
	order []string                  // live node ids in insertion order
}

// NewTree creates an empty staging collection
func NewTree() *Tree {
	return &Tree{
		nodes: xsync.NewMap[string, *Node](),
	}
}

// Len returns the number of live nodes
func (t *Tree) Len() int {
	return len(t.order)
}

// Get returns the node with the given id
func (t *Tree) Get(id string) (*Node, bool) {
	return t.nodes.Load(id)
}

// Roots returns the top-level nodes in insertion order
func (t *Tree) Roots() []*Node {
	return t.Children("")
}

// Children returns the nodes whose parent is parentID, in insertion
// order. An empty parentID selects top-level nodes.
func (t *Tree) Children(parentID string) []*Node {
	var children []*Node
	for _, id := range t.order {
		if n, ok := t.nodes.Load(id); ok && n.parentID == parentID {
			children = append(children, n)
		}
	}
	return children
}

// attach registers a detached node under the tree
func (t *Tree) attach(n *Node) {
	t.nodes.Store(n.id, n)
	t.order = append(t.order, n.id)
}

// requireFolder validates that parentID is either empty (top-level) or
// the id of an existing folder
func (t *Tree) requireFolder(parentID string) error {
	if parentID == "" {
		return nil
	}
	parent, ok := t.nodes.Load(parentID)
	if !ok || !parent.IsFolder() {
		return fmt.Errorf("%w: %s", ErrInvalidParent, parentID)
	}
	return nil
}

// CreateFile stages a new file node borrowing the given payload handle.
// parentID may be empty for a top-level file; otherwise it must reference
// an existing folder.
func (t *Tree) CreateFile(name, parentID string, payload stagefs.Payload) (*Node, error) {
	logger := util.GetLogger("CreateFile")

	if err := t.requireFolder(parentID); err != nil {
		logger.Error().Err(err).Str("name", name).Msg("Rejected file create")
		return nil, err
	}

	n := newFileNode(name, payload)
	n.parentID = parentID
	t.attach(n)
	logger.Debug().Str("id", n.id).Str("name", name).Msg("Staged new file node")
	return n, nil
}

// CreateFolder stages a new empty folder node
func (t *Tree) CreateFolder(name, parentID string) (*Node, error) {
	logger := util.GetLogger("CreateFolder")

	if err := t.requireFolder(parentID); err != nil {
		logger.Error().Err(err).Str("name", name).Msg("Rejected folder create")
		return nil, err
	}

	n := newFolderNode(name)
	n.parentID = parentID
	t.attach(n)
	logger.Debug().Str("id", n.id).Str("name", name).Msg("Staged new folder node")
	return n, nil
}

// Rename updates the node's display name. No sibling-uniqueness check is
// performed.
func (t *Tree) Rename(id, newName string) error {
	n, ok := t.nodes.Load(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	n.name = newName
	return nil
}

// Move reparents id under newParentID (empty = top-level).
//
// Validation order: the target must be an existing folder or empty
// (ErrInvalidParent), then the target must not be the node itself nor any
// of its descendants (ErrCyclicMove), checked by walking the ancestor
// chain of the target. Any failure leaves every node untouched; success
// changes exactly one field of one node.
func (t *Tree) Move(id, newParentID string) error {
	logger := util.GetLogger("Move")

	n, ok := t.nodes.Load(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := t.requireFolder(newParentID); err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Rejected move")
		return err
	}
	if newParentID == id || t.isDescendant(newParentID, id) {
		err := fmt.Errorf("%w: %s into %s", ErrCyclicMove, id, newParentID)
		logger.Error().Err(err).Msg("Rejected move")
		return err
	}

	n.parentID = newParentID
	logger.Debug().Str("id", id).Str("parent", newParentID).Msg("Moved node")
	return nil
}

// isDescendant reports whether id is ancestorID itself or sits below it,
// by walking id's ancestor chain. The step bound guards against walking a
// corrupted cycle forever.
func (t *Tree) isDescendant(id, ancestorID string) bool {
	steps := 0
	for cur := id; cur != ""; steps++ {
		if steps > t.Len() {
			return false
		}
		if cur == ancestorID {
			return true
		}
		n, ok := t.nodes.Load(cur)
		if !ok {
			return false
		}
		cur = n.parentID
	}
	return false
}

// Delete removes the node and every transitive descendant, returning the
// removed ids (the node itself first) so callers can invalidate cached
// references such as an open-folders display set.
func (t *Tree) Delete(id string) ([]string, error) {
	logger := util.GetLogger("Delete")

	if _, ok := t.nodes.Load(id); !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	// Transitive closure by repeated parent-id matching
	removed := []string{id}
	inClosure := map[string]bool{id: true}
	for frontier := []string{id}; len(frontier) > 0; {
		var next []string
		for _, pid := range frontier {
			for _, child := range t.Children(pid) {
				if !inClosure[child.id] {
					inClosure[child.id] = true
					removed = append(removed, child.id)
					next = append(next, child.id)
				}
			}
		}
		frontier = next
	}

	for _, rid := range removed {
		t.nodes.Delete(rid)
	}
	live := t.order[:0]
	for _, oid := range t.order {
		if !inClosure[oid] {
			live = append(live, oid)
		}
	}
	t.order = live

	logger.Debug().Str("id", id).Int("removed", len(removed)).Msg("Deleted node subtree")
	return removed, nil
}
