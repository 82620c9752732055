package staging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagekit/stagefs"
)

func TestToggleLock_NotFound(t *testing.T) {
	t.Parallel()
	tree := NewTree()

	err := tree.ToggleLock("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleLock_File(t *testing.T) {
	t.Parallel()
	tree := NewTree()

	f, err := tree.CreateFile("a.txt", "", stagefs.NewBytesPayload(nil))
	require.NoError(t, err)

	require.NoError(t, tree.ToggleLock(f.ID()))
	assert.True(t, f.IsLocked())
	assert.Equal(t, stagefs.ReadOnly, f.Permissions())

	require.NoError(t, tree.ToggleLock(f.ID()))
	assert.False(t, f.IsLocked())
	assert.Equal(t, stagefs.ReadWrite, f.Permissions())
}

// Scenario: toggling the middle folder flips it and its direct child, and
// nothing above
func TestToggleLock_FolderFlipsDirectChildren(t *testing.T) {
	t.Parallel()
	tree, a, b, c := createNestedTree(t)

	require.NoError(t, tree.ToggleLock(b.ID()))

	assert.True(t, b.IsLocked())
	assert.True(t, c.IsLocked())
	assert.False(t, a.IsLocked(), "parents are never part of the propagation")
}

// Propagation is one level deep only: grandchildren keep their lock state
func TestToggleLock_ShallowPropagation(t *testing.T) {
	t.Parallel()
	tree := NewTree()

	top, err := tree.CreateFolder("top", "")
	require.NoError(t, err)
	mid, err := tree.CreateFolder("mid", top.ID())
	require.NoError(t, err)
	grandchild, err := tree.CreateFile("leaf.txt", mid.ID(), stagefs.NewBytesPayload(nil))
	require.NoError(t, err)

	require.NoError(t, tree.ToggleLock(top.ID()))

	assert.True(t, top.IsLocked())
	assert.True(t, mid.IsLocked())
	assert.False(t, grandchild.IsLocked(), "grandchildren must not be touched")
}

// Mixed starting states flip independently: propagation is a flip, not an
// assignment
func TestToggleLock_FlipsNotAssigns(t *testing.T) {
	t.Parallel()
	tree := NewTree()

	dir, err := tree.CreateFolder("dir", "")
	require.NoError(t, err)
	locked, err := tree.CreateFile("locked.txt", dir.ID(), stagefs.NewBytesPayload(nil))
	require.NoError(t, err)
	unlocked, err := tree.CreateFile("unlocked.txt", dir.ID(), stagefs.NewBytesPayload(nil))
	require.NoError(t, err)

	// Pre-lock one child directly
	require.NoError(t, tree.ToggleLock(locked.ID()))
	require.True(t, locked.IsLocked())

	require.NoError(t, tree.ToggleLock(dir.ID()))

	assert.True(t, dir.IsLocked())
	assert.False(t, locked.IsLocked())
	assert.True(t, unlocked.IsLocked())
}
