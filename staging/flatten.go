package staging

import (
	"github.com/stagekit/stagefs"
)

// Flatten walks the collection depth-first from every top-level node in
// insertion order and emits one record per file: its resolved wire path,
// its lock state mapped onto the permission value, and its borrowed
// payload handle.
//
// Folders are never independently represented — this is the shape of the
// wire format, which only tracks files — so an empty folder contributes
// nothing and is silently lost on flatten.
func (t *Tree) Flatten() ([]stagefs.FileRecord, error) {
	records := []stagefs.FileRecord{}
	for _, root := range t.Roots() {
		if err := t.flattenInto(root, &records); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func (t *Tree) flattenInto(n *Node, records *[]stagefs.FileRecord) error {
	if n.IsFolder() {
		for _, child := range t.Children(n.id) {
			if err := t.flattenInto(child, records); err != nil {
				return err
			}
		}
		return nil
	}

	path, err := t.Resolve(n.id)
	if err != nil {
		return err
	}
	*records = append(*records, stagefs.FileRecord{
		Path:        path,
		Permissions: n.Permissions(),
		Payload:     n.payload,
	})
	return nil
}
