package service

import (
	"context"
	"io"
)

// UploadResult is the tagged success shape of the external media service:
// the permanent content identifier plus the byte size and duration it
// reports after its own processing. Duration is 0 for static images.
type UploadResult struct {
	PublicID string
	Bytes    int64
	Duration float64
	Format   string
	URL      string
}

type MediaUploader interface {
	UploadVideo(ctx context.Context, file io.Reader) (*UploadResult, error)
	UploadImage(ctx context.Context, file io.Reader) (*UploadResult, error)
	Destroy(ctx context.Context, publicID string, resourceType string) error
}
