package staging

import (
	"fmt"
	"strings"

	"github.com/stagekit/stagefs"
	"github.com/stagekit/stagefs/util"
)

// Build constructs a fresh staging collection from an ordered flat file
// list, e.g. when hydrating an already-uploaded component's files for
// display. See [Tree.Insert] for the per-record semantics.
func Build(records []stagefs.FileRecord) (*Tree, error) {
	t := NewTree()
	if err := t.Insert(records); err != nil {
		return nil, err
	}
	return t, nil
}

// Insert stages one file node per record, creating any missing ancestor
// folders along the record's path. It reuses an existing sibling folder
// for an intermediate segment when one exists, so records sharing a
// prefix share folders; processing the same ordered input into fresh
// collections therefore yields isomorphic trees (ids aside).
//
// Paths are split on the wire separator with empty segments discarded, so
// "/a/b", "a/b" and "a/b/" all normalize the same way. A record whose
// path has no segments at all rejects the whole batch before any node is
// staged. Two records with an identical
// path yield two sibling files with the same resolved path: ingestion
// does not deduplicate, matching the permissiveness of the rest of the
// model.
func (t *Tree) Insert(records []stagefs.FileRecord) error {
	logger := util.GetLogger("Insert")

	// Validate the whole list before the first write; a malformed record
	// anywhere rejects the batch with the collection untouched
	segmented := make([][]string, len(records))
	for i, rec := range records {
		segments := splitPath(rec.Path)
		if len(segments) == 0 {
			err := fmt.Errorf("record %d: empty path %q", i, rec.Path)
			logger.Error().Err(err).Msg("Rejected file list")
			return err
		}
		segmented[i] = segments
	}

	for i, rec := range records {
		segments := segmented[i]

		parentID := ""
		for _, seg := range segments[:len(segments)-1] {
			parentID = t.folderFor(seg, parentID)
		}

		file, err := t.CreateFile(segments[len(segments)-1], parentID, rec.Payload)
		if err != nil {
			// Unreachable: every parent above is a folder this loop created
			return err
		}
		file.locked = rec.Permissions == stagefs.ReadOnly
	}

	logger.Debug().Int("records", len(records)).Int("nodes", t.Len()).Msg("Built tree from file list")
	return nil
}

// folderFor returns the id of an existing folder named name under
// parentID, creating one if absent. Files with the same name do not
// count; only a folder can take children.
func (t *Tree) folderFor(name, parentID string) string {
	for _, child := range t.Children(parentID) {
		if child.IsFolder() && child.name == name {
			return child.id
		}
	}
	folder := newFolderNode(name)
	folder.parentID = parentID
	t.attach(folder)
	return folder.id
}

// splitPath breaks a wire path into its non-empty segments
func splitPath(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, stagefs.PathSeparator) {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
