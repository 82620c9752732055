// Package importer turns a directory of on-disk files into ordered
// staging records, for the batch-import path where a user hands the
// console a whole folder instead of dragging files one at a time. The
// filesystem is abstracted behind go-billy so imports can come from the
// OS, an in-memory tree, or anything else implementing the interface.
package importer

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	billy "github.com/go-git/go-billy/v5"

	"github.com/stagekit/stagefs"
	"github.com/stagekit/stagefs/util"
)

// FromFS walks dir inside fsys and returns one record per regular file,
// in lexical path order. Record paths are relative to dir and use the
// wire separator. Files without owner write permission import as
// read-only; everything else as read-write. maxPayloadSize caps
// individual file sizes in bytes; 0 disables the cap.
func FromFS(fsys billy.Filesystem, dir string, maxPayloadSize int64) ([]stagefs.FileRecord, error) {
	logger := util.GetLogger("FromFS")

	dir = normalizeDir(dir)
	if _, err := fsys.Stat(dir); err != nil {
		logger.Error().Err(err).Str("dir", dir).Msg("Batch import failed")
		return nil, fmt.Errorf("failed to stat %s: %w", dir, err)
	}

	var recs []stagefs.FileRecord
	if err := walk(fsys, dir, "", maxPayloadSize, &recs); err != nil {
		logger.Error().Err(err).Str("dir", dir).Msg("Batch import failed")
		return nil, err
	}

	logger.Debug().Str("dir", dir).Int("files", len(recs)).Msg("Imported file batch")
	return recs, nil
}

func walk(fsys billy.Filesystem, dir, rel string, maxPayloadSize int64, recs *[]stagefs.FileRecord) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		path := fsys.Join(dir, entry.Name())
		relPath := entry.Name()
		if rel != "" {
			relPath = rel + stagefs.PathSeparator + entry.Name()
		}

		if entry.IsDir() {
			if err := walk(fsys, path, relPath, maxPayloadSize, recs); err != nil {
				return err
			}
			continue
		}
		if !entry.Mode().IsRegular() {
			continue
		}
		if maxPayloadSize > 0 && entry.Size() > maxPayloadSize {
			return fmt.Errorf("file %s exceeds payload size limit (%d > %d bytes)", relPath, entry.Size(), maxPayloadSize)
		}

		perms := stagefs.ReadWrite
		if entry.Mode().Perm()&0o200 == 0 {
			perms = stagefs.ReadOnly
		}
		*recs = append(*recs, stagefs.FileRecord{
			Path:        relPath,
			Permissions: perms,
			Payload: &fsPayload{
				fsys: fsys,
				path: path,
				size: uint64(entry.Size()),
			},
		})
	}
	return nil
}

// fsPayload is a borrowed handle to a file inside a billy filesystem; the
// content stays where it is until the packager streams it out
type fsPayload struct {
	fsys billy.Filesystem
	path string
	size uint64
}

func (p *fsPayload) Size() uint64 {
	return p.size
}

func (p *fsPayload) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := p.fsys.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", p.path, err)
	}
	return f, nil
}

// normalizeDir strips any trailing separator so relative paths compose
// cleanly
func normalizeDir(dir string) string {
	return strings.TrimSuffix(dir, stagefs.PathSeparator)
}
