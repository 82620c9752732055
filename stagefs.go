// Package stagefs contains the core domain types and interfaces for the
// component file-staging model: the node kinds, the flat wire records
// exchanged with the management backend, and the payload handle boundary
// for externally owned binary content.
package stagefs

// NodeKind discriminates staged nodes. Valid kinds are FileNode "file"
// and FolderNode "folder"; a node's kind never changes after creation.
type NodeKind string

const (
	FileNode   NodeKind = "file"
	FolderNode NodeKind = "folder"
)
