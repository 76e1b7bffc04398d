package service

import (
	"context"

	"github.com/pixelperfect/backend/internal/domain/video"
)

// CatalogCache is a read-through cache for the catalog listing. A miss is
// not an error: (nil, false, nil) means "go to the repository".
type CatalogCache interface {
	Get(ctx context.Context) ([]*video.Video, bool, error)
	Set(ctx context.Context, videos []*video.Video) error
	Invalidate(ctx context.Context) error
}
