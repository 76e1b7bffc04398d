package http

import (
	"regexp"
	"time"

	"github.com/pixelperfect/backend/internal/application/service"
	"github.com/pixelperfect/backend/internal/domain/video"
)

// Video DTOs

type VideoDTO struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	PublicID           string    `json:"public_id"`
	OriginalSize       int64     `json:"original_size"`
	CompressedSize     int64     `json:"compressed_size"`
	Duration           float64   `json:"duration"`
	CompressionPercent int       `json:"compression_percent"`
	ThumbnailURL       string    `json:"thumbnail_url"`
	PreviewURL         string    `json:"preview_url"`
	DownloadURL        string    `json:"download_url"`
	DownloadFilename   string    `json:"download_filename"`
	CreatedAt          time.Time `json:"created_at"`
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// SanitizeFilename replaces every non-alphanumeric character so the title
// is safe as a download attachment name.
func SanitizeFilename(title string) string {
	return nonAlphanumeric.ReplaceAllString(title, "_") + ".mp4"
}

func ToVideoDTO(v *video.Video, links service.LinkBuilder) VideoDTO {
	return VideoDTO{
		ID:                 v.ID.String(),
		Title:              v.Title,
		Description:        v.Description,
		PublicID:           v.PublicID,
		OriginalSize:       v.OriginalSize,
		CompressedSize:     v.CompressedSize,
		Duration:           v.Duration,
		CompressionPercent: v.CompressionPercent(),
		ThumbnailURL:       links.VideoThumbnailURL(v.PublicID),
		PreviewURL:         links.VideoPreviewURL(v.PublicID),
		DownloadURL:        links.VideoDownloadURL(v.PublicID),
		DownloadFilename:   SanitizeFilename(v.Title),
		CreatedAt:          v.CreatedAt,
	}
}

// Image DTOs

type ImageUploadResponse struct {
	PublicID string `json:"public_id"`
}

type SocialCropDTO struct {
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	URL    string `json:"url"`
}

func ToSocialCropDTOs(publicID string, links service.LinkBuilder) []SocialCropDTO {
	dtos := make([]SocialCropDTO, len(service.SocialFormats))
	for i, f := range service.SocialFormats {
		dtos[i] = SocialCropDTO{
			Format: f.Name,
			Width:  f.Width,
			Height: f.Height,
			URL:    links.SocialCropURL(publicID, f),
		}
	}
	return dtos
}
