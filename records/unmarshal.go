package records

import (
	"encoding/json"
	"fmt"

	"github.com/stagekit/stagefs"
)

// UnmarshalFileList decodes a stored component's JSON file list into
// staging records, applying defaultPerms to entries without an explicit
// permissions value. Hydrated records carry no payload; their content
// still lives on the backend.
func UnmarshalFileList(data []byte, defaultPerms stagefs.Permissions) ([]stagefs.FileRecord, error) {
	var dtos []FileRecordDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal file list: %w", err)
	}

	records := make([]stagefs.FileRecord, 0, len(dtos))
	for i, dto := range dtos {
		perms, err := convertPermissions(dto.Permissions, defaultPerms)
		if err != nil {
			return nil, fmt.Errorf("file list entry %d (%s): %w", i, dto.Path, err)
		}
		records = append(records, stagefs.FileRecord{
			Path:        dto.Path,
			Permissions: perms,
		})
	}
	return records, nil
}

func convertPermissions(ptr *string, defaultPerms stagefs.Permissions) (stagefs.Permissions, error) {
	if ptr == nil {
		return defaultPerms, nil
	}
	switch p := stagefs.Permissions(*ptr); p {
	case stagefs.ReadOnly, stagefs.ReadWrite:
		return p, nil
	default:
		return "", fmt.Errorf("unknown permissions value: %q", *ptr)
	}
}

// MarshalFileList encodes flattened records back into the backend's JSON
// file list shape, e.g. for the component file-registration call
func MarshalFileList(records []stagefs.FileRecord) ([]byte, error) {
	dtos := make([]FileRecordDTO, 0, len(records))
	for _, rec := range records {
		perms := string(rec.Permissions)
		dtos = append(dtos, FileRecordDTO{Path: rec.Path, Permissions: &perms})
	}
	return json.Marshal(dtos)
}
