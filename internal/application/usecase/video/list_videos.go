package video

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pixelperfect/backend/internal/application/service"
	"github.com/pixelperfect/backend/internal/domain/video"
	"github.com/pixelperfect/backend/pkg/logger"
)

type ListVideosUseCase struct {
	videoRepo video.Repository
	cache     service.CatalogCache
	logger    logger.Logger
}

func NewListVideosUseCase(r video.Repository, c service.CatalogCache, log logger.Logger) *ListVideosUseCase {
	return &ListVideosUseCase{videoRepo: r, cache: c, logger: log}
}

type ListVideosOutput struct {
	Videos []*video.Video
}

// Execute returns every asset ordered by creation time, most recent first.
// An empty store yields an empty list. Cache failures degrade to a direct
// repository read.
func (uc *ListVideosUseCase) Execute(ctx context.Context) (*ListVideosOutput, error) {
	if uc.cache != nil {
		cached, hit, err := uc.cache.Get(ctx)
		if err != nil {
			uc.logger.Warn("Catalog cache read failed, falling back to store", zap.Error(err))
		} else if hit {
			return &ListVideosOutput{Videos: cached}, nil
		}
	}

	videos, err := uc.videoRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get videos failed: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, videos); err != nil {
			uc.logger.Warn("Catalog cache write failed", zap.Error(err))
		}
	}

	return &ListVideosOutput{Videos: videos}, nil
}
