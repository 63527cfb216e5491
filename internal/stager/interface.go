package stager

import "context"

// Blob is an uploaded file as handed over by the UI layer.
type Blob struct {
	Name string
	Data []byte
}

// Stager persists uploaded blobs into the working directory.
type Stager interface {
	Stage(ctx context.Context, blob Blob) (string, error)
}
