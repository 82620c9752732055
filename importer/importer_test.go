package importer

import (
	"context"
	"io"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagekit/stagefs"
)

func TestFromFS(t *testing.T) {
	t.Parallel()

	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "proj/src/main.wasm", []byte("wasm"), 0o644))
	require.NoError(t, util.WriteFile(fsys, "proj/src/lib/util.wasm", []byte("lib"), 0o644))
	require.NoError(t, util.WriteFile(fsys, "proj/readme.txt", []byte("docs"), 0o644))

	recs, err := FromFS(fsys, "proj", 0)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// Lexical order, paths relative to the imported dir
	assert.Equal(t, "readme.txt", recs[0].Path)
	assert.Equal(t, "src/lib/util.wasm", recs[1].Path)
	assert.Equal(t, "src/main.wasm", recs[2].Path)

	for _, r := range recs {
		assert.Equal(t, stagefs.ReadWrite, r.Permissions)
		require.NotNil(t, r.Payload)
	}
	assert.Equal(t, uint64(4), recs[0].Payload.Size())
}

func TestFromFS_PayloadContent(t *testing.T) {
	t.Parallel()

	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "dir/data.bin", []byte("payload-bytes"), 0o644))

	recs, err := FromFS(fsys, "dir", 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rc, err := recs[0].Payload.Open(context.Background())
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload-bytes"), data)
}

func TestFromFS_ReadOnlyFiles(t *testing.T) {
	t.Parallel()

	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "dir/frozen.txt", []byte("x"), 0o444))
	require.NoError(t, util.WriteFile(fsys, "dir/normal.txt", []byte("y"), 0o644))

	recs, err := FromFS(fsys, "dir", 0)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "frozen.txt", recs[0].Path)
	assert.Equal(t, stagefs.ReadOnly, recs[0].Permissions)
	assert.Equal(t, "normal.txt", recs[1].Path)
	assert.Equal(t, stagefs.ReadWrite, recs[1].Permissions)
}

func TestFromFS_SizeCap(t *testing.T) {
	t.Parallel()

	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "dir/big.bin", make([]byte, 100), 0o644))

	_, err := FromFS(fsys, "dir", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "big.bin")

	// Cap of 0 disables the check
	recs, err := FromFS(fsys, "dir", 0)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestFromFS_TrailingSeparator(t *testing.T) {
	t.Parallel()

	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "dir/a.txt", []byte("a"), 0o644))

	recs, err := FromFS(fsys, "dir/", 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "a.txt", recs[0].Path)
}

func TestFromFS_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := FromFS(memfs.New(), "nope", 0)
	assert.Error(t, err)
}
