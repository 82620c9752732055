// Package bundle turns flattened staging records plus their payload
// handles into the transmittable component file archive: a ZIP stream
// whose entry names are the records' wire paths, and a JSON manifest
// pairing each path with its permissions for the registration endpoint.
package bundle

import (
	"archive/zip"
	"context"
	"fmt"
	"io"

	"github.com/stagekit/stagefs"
	"github.com/stagekit/stagefs/records"
	"github.com/stagekit/stagefs/util"
)

// Packager writes component file archives from flattened records
type Packager struct {
	compress bool
}

// NewPackager creates a Packager; compress selects deflate vs stored
// entries
func NewPackager(compress bool) *Packager {
	return &Packager{compress: compress}
}

// Pack streams every record's payload into a ZIP archive on w. Entry
// names are the record paths verbatim — forward slashes, no leading
// slash, exactly the segments the resolver produced — and folders get no
// entries of their own, matching what the backend unpacks. Duplicate
// paths are written as duplicate entries, not merged.
//
// Every record must carry a payload handle; a record hydrated from the
// backend without one cannot be packaged.
func (p *Packager) Pack(ctx context.Context, w io.Writer, recs []stagefs.FileRecord) error {
	logger := util.GetLogger("Pack")

	zw := zip.NewWriter(w)
	for _, rec := range recs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.writeEntry(ctx, zw, rec); err != nil {
			logger.Error().Err(err).Str("path", rec.Path).Msg("Failed to write archive entry")
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}

	logger.Debug().Int("entries", len(recs)).Msg("Packed component file archive")
	return nil
}

func (p *Packager) writeEntry(ctx context.Context, zw *zip.Writer, rec stagefs.FileRecord) error {
	if rec.Payload == nil {
		return fmt.Errorf("no payload for %s", rec.Path)
	}

	method := zip.Store
	if p.compress {
		method = zip.Deflate
	}
	ew, err := zw.CreateHeader(&zip.FileHeader{
		Name:   rec.Path,
		Method: method,
	})
	if err != nil {
		return err
	}

	src, err := rec.Payload.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open payload for %s: %w", rec.Path, err)
	}
	defer src.Close()

	if _, err := io.Copy(ew, src); err != nil {
		return fmt.Errorf("failed to copy payload for %s: %w", rec.Path, err)
	}
	return nil
}

// WriteManifest emits the JSON path+permissions list the backend's
// file-registration endpoint consumes alongside the archive
func WriteManifest(w io.Writer, recs []stagefs.FileRecord) error {
	data, err := records.MarshalFileList(recs)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
