package stagefs

import (
	"bytes"
	"context"
	"io"
)

// Payload is a borrowed handle to externally owned binary content backing
// a staged file node. The staging model never copies the content; it only
// tracks the handle and byte length until the archive packager streams it
// out.
type Payload interface {
	// Size returns the content length in bytes
	Size() uint64

	// Open returns a fresh reader over the full content
	Open(ctx context.Context) (io.ReadCloser, error)
}

// BytesPayload wraps an in-memory byte slice as a Payload. The slice is
// borrowed, not copied.
type BytesPayload struct {
	data []byte
}

func NewBytesPayload(data []byte) *BytesPayload {
	return &BytesPayload{data: data}
}

func (p *BytesPayload) Size() uint64 {
	return uint64(len(p.data))
}

func (p *BytesPayload) Open(_ context.Context) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(p.data)), nil
}
