package video

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/pixelperfect/backend/adapters/event"
	"github.com/pixelperfect/backend/internal/application/service"
	"github.com/pixelperfect/backend/internal/domain/video"
	"github.com/pixelperfect/backend/pkg/apperror"
	"github.com/pixelperfect/backend/pkg/logger"
)

var tracer = otel.Tracer("video_usecase")

// EventPublisher is the slice of the Kafka producer the upload flow needs.
type EventPublisher interface {
	PublishVideoEvent(ctx context.Context, payload event.VideoEventPayload) error
}

type UploadVideoUseCase struct {
	videoRepo     video.Repository
	uploader      service.MediaUploader
	cache         service.CatalogCache
	publisher     EventPublisher
	uploadTimeout time.Duration
	logger        logger.Logger
}

func NewUploadVideoUseCase(
	r video.Repository,
	u service.MediaUploader,
	c service.CatalogCache,
	p EventPublisher,
	uploadTimeout time.Duration,
	log logger.Logger,
) *UploadVideoUseCase {
	if uploadTimeout <= 0 {
		uploadTimeout = 60 * time.Second
	}
	return &UploadVideoUseCase{
		videoRepo:     r,
		uploader:      u,
		cache:         c,
		publisher:     p,
		uploadTimeout: uploadTimeout,
		logger:        log,
	}
}

type UploadVideoInput struct {
	OwnerID      uuid.UUID
	File         io.Reader
	Title        string
	Description  string
	OriginalSize int64
}

type UploadVideoOutput struct {
	Video *video.Video
}

// Execute forwards the raw bytes to Cloudinary, then persists one metadata
// row. The upstream call is bounded by the configured timeout. A storage
// failure after a successful upload leaves the asset orphaned in Cloudinary;
// no compensating delete is attempted.
func (uc *UploadVideoUseCase) Execute(ctx context.Context, input UploadVideoInput) (*UploadVideoOutput, error) {
	ctx, span := tracer.Start(ctx, "UploadVideo")
	defer span.End()

	uploadCtx, cancel := context.WithTimeout(ctx, uc.uploadTimeout)
	defer cancel()

	result, err := uc.uploader.UploadVideo(uploadCtx, input.File)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewUpstream("failed to upload video to media service", err)
	}

	newVideo := &video.Video{
		ID:             uuid.New(),
		OwnerID:        input.OwnerID,
		Title:          input.Title,
		Description:    input.Description,
		PublicID:       result.PublicID,
		OriginalSize:   input.OriginalSize,
		CompressedSize: result.Bytes,
		Duration:       result.Duration,
		CreatedAt:      time.Now().UTC(),
	}

	if err := uc.videoRepo.Save(ctx, newVideo); err != nil {
		span.RecordError(err)
		uc.logger.Error("Failed to persist video metadata, asset orphaned upstream", err,
			zap.String("public_id", result.PublicID))
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			uc.logger.Warn("Failed to invalidate catalog cache", zap.Error(err))
		}
	}

	if uc.publisher != nil {
		go func() {
			payload := event.VideoEventPayload{
				EventType:      event.VideoEventTypeUploaded,
				VideoID:        newVideo.ID,
				OwnerID:        newVideo.OwnerID,
				PublicID:       newVideo.PublicID,
				OriginalSize:   newVideo.OriginalSize,
				CompressedSize: newVideo.CompressedSize,
				Duration:       newVideo.Duration,
			}
			if err := uc.publisher.PublishVideoEvent(context.Background(), payload); err != nil {
				uc.logger.Error("Failed to publish Kafka 'video.uploaded' event", err,
					zap.String("video_id", newVideo.ID.String()))
			}
		}()
	}

	return &UploadVideoOutput{Video: newVideo}, nil
}
