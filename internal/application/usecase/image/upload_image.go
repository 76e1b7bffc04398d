package image

import (
	"context"
	"io"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/pixelperfect/backend/internal/application/service"
	"github.com/pixelperfect/backend/pkg/apperror"
	"github.com/pixelperfect/backend/pkg/logger"
)

var tracer = otel.Tracer("image_usecase")

type UploadImageUseCase struct {
	uploader      service.MediaUploader
	uploadTimeout time.Duration
	logger        logger.Logger
}

func NewUploadImageUseCase(u service.MediaUploader, uploadTimeout time.Duration, log logger.Logger) *UploadImageUseCase {
	if uploadTimeout <= 0 {
		uploadTimeout = 60 * time.Second
	}
	return &UploadImageUseCase{uploader: u, uploadTimeout: uploadTimeout, logger: log}
}

type UploadImageInput struct {
	File io.Reader
}

type UploadImageOutput struct {
	PublicID string
}

// Execute uploads an image for the social-share flow. No metadata row is
// written: the returned public ID is all the client needs to derive crops.
func (uc *UploadImageUseCase) Execute(ctx context.Context, input UploadImageInput) (*UploadImageOutput, error) {
	ctx, span := tracer.Start(ctx, "UploadImage")
	defer span.End()

	uploadCtx, cancel := context.WithTimeout(ctx, uc.uploadTimeout)
	defer cancel()

	result, err := uc.uploader.UploadImage(uploadCtx, input.File)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewUpstream("failed to upload image to media service", err)
	}

	return &UploadImageOutput{PublicID: result.PublicID}, nil
}
