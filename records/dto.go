// Package records unmarshals the backend's stored component file lists
// into staging records for hydration.
package records

// FileRecordDTO is the JSON representation of one stored component file
type FileRecordDTO struct {
	Path string `json:"path"`
	// Permissions is optional; absent values fall back to the configured
	// default (the backend defaults to read-only the same way)
	Permissions *string `json:"permissions,omitempty"`
}
