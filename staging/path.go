package staging

import (
	"fmt"
	"strings"

	"github.com/stagekit/stagefs"
)

// Resolve returns the node's canonical path: the names of its ancestors
// from the outermost down to the node itself, joined with the wire
// separator. Relative from the forest root, so there is no leading
// separator, and never a trailing one.
//
// If the ancestor walk visits more nodes than the collection holds it
// fails with ErrCycleDetected instead of looping; Move's validation makes
// that unreachable unless an invariant was broken elsewhere.
func (t *Tree) Resolve(id string) (string, error) {
	n, ok := t.nodes.Load(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	segments := []string{n.name}
	steps := 1
	for cur := n.parentID; cur != ""; steps++ {
		if steps > t.Len() {
			return "", fmt.Errorf("%w: resolving %s", ErrCycleDetected, id)
		}
		parent, ok := t.nodes.Load(cur)
		if !ok {
			return "", fmt.Errorf("%w: dangling parent %s", ErrNotFound, cur)
		}
		segments = append([]string{parent.name}, segments...)
		cur = parent.parentID
	}

	return strings.Join(segments, stagefs.PathSeparator), nil
}
