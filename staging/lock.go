package staging

import (
	"fmt"

	"github.com/stagekit/stagefs/util"
)

// ToggleLock flips the lock state of the node and of every direct child.
// Propagation is exactly one level deep: grandchildren are never touched.
// Shallow on purpose; do not generalize into a recursive lock without
// product sign-off.
func (t *Tree) ToggleLock(id string) error {
	logger := util.GetLogger("ToggleLock")

	n, ok := t.nodes.Load(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	n.locked = !n.locked
	for _, child := range t.Children(id) {
		child.locked = !child.locked
	}

	logger.Debug().Str("id", id).Bool("locked", n.locked).Msg("Toggled lock")
	return nil
}
