package media_storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/pixelperfect/backend/internal/application/service"
	"github.com/pixelperfect/backend/internal/config"
	"github.com/pixelperfect/backend/pkg/logger"
)

const (
	videoFolder = "video-uploads"
	imageFolder = "image-uploads"

	// Incoming transformation: Cloudinary re-encodes every video to mp4
	// with automatic quality selection before storing it.
	videoIncomingTransformation = "q_auto,f_mp4"
)

type cloudinaryAdapter struct {
	cld    *cloudinary.Cloudinary
	logger logger.Logger
}

func NewCloudinaryAdapter(cfg config.Config, log logger.Logger) (service.MediaUploader, error) {

	if cfg.Cloudinary.CloudName == "" {
		return nil, fmt.Errorf("cloudinary cloud_name has not config")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.ApiKey,
		cfg.Cloudinary.ApiSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}

	log.Info("connect Cloudinary successfully.")
	return &cloudinaryAdapter{cld: cld, logger: log}, nil
}

func (a *cloudinaryAdapter) UploadVideo(ctx context.Context, file io.Reader) (*service.UploadResult, error) {
	params := uploader.UploadParams{
		Folder:         videoFolder,
		ResourceType:   "video",
		Transformation: videoIncomingTransformation,
	}
	result, err := a.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return nil, fmt.Errorf("failed to upload video to cloudinary: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary rejected video upload: %s", result.Error.Message)
	}

	return &service.UploadResult{
		PublicID: result.PublicID,
		Bytes:    int64(result.Bytes),
		Duration: result.Duration,
		Format:   result.Format,
		URL:      result.SecureURL,
	}, nil
}

func (a *cloudinaryAdapter) UploadImage(ctx context.Context, file io.Reader) (*service.UploadResult, error) {
	params := uploader.UploadParams{
		Folder:       imageFolder,
		ResourceType: "image",
	}
	result, err := a.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image to cloudinary: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary rejected image upload: %s", result.Error.Message)
	}

	return &service.UploadResult{
		PublicID: result.PublicID,
		Bytes:    int64(result.Bytes),
		Format:   result.Format,
		URL:      result.SecureURL,
	}, nil
}

func (a *cloudinaryAdapter) Destroy(ctx context.Context, publicID string, resourceType string) error {
	_, err := a.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return fmt.Errorf("failed to delete cloudinary asset: %w", err)
	}
	return nil
}
