package stagefs

// Permissions is the backend's file permission wire value.
type Permissions string

const (
	ReadOnly  Permissions = "read-only"
	ReadWrite Permissions = "read-write"
)

// PathSeparator separates path segments in wire-format record paths.
// Records never carry a leading or trailing separator.
const PathSeparator = "/"

// FileRecord is one entry of the flat file list exchanged with the
// backend: produced by flattening a staged tree for submission and
// consumed when hydrating the tree of an already-uploaded component.
//
// Payload is nil on hydrated records whose content still lives on the
// backend; it is required for records handed to the archive packager.
type FileRecord struct {
	Path        string      `json:"path"`
	Permissions Permissions `json:"permissions"`
	Payload     Payload     `json:"-"`
}
