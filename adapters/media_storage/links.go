package media_storage

import (
	"fmt"

	"github.com/pixelperfect/backend/internal/application/service"
	"github.com/pixelperfect/backend/internal/config"
)

// Fixed transformation strings, one per delivery intent. These are the
// bit-exact contract with Cloudinary's URL scheme:
// https://res.cloudinary.com/{cloud}/{video|image}/upload/{params}/{publicID}
const (
	thumbnailTransformation = "c_fill,g_auto,w_400,h_225,q_auto,f_jpg"
	downloadTransformation  = "w_1920,h_1080,f_mp4"

	// AI smart preview: a short clip stitched from up to 3 segments.
	previewTransformation = "c_fill,w_400,h_225,e_preview:duration_10:max_seg_3:min_seg_dur_3"
)

type cloudinaryLinks struct {
	cloudName string
}

func NewCloudinaryLinks(cfg config.Config) service.LinkBuilder {
	return &cloudinaryLinks{cloudName: cfg.Cloudinary.CloudName}
}

func (b *cloudinaryLinks) videoURL(transformation, publicID string) string {
	return fmt.Sprintf("https://res.cloudinary.com/%s/video/upload/%s/%s", b.cloudName, transformation, publicID)
}

func (b *cloudinaryLinks) VideoThumbnailURL(publicID string) string {
	return b.videoURL(thumbnailTransformation, publicID)
}

func (b *cloudinaryLinks) VideoDownloadURL(publicID string) string {
	return b.videoURL(downloadTransformation, publicID)
}

func (b *cloudinaryLinks) VideoPreviewURL(publicID string) string {
	return b.videoURL(previewTransformation, publicID)
}

func (b *cloudinaryLinks) SocialCropURL(publicID string, format service.SocialFormat) string {
	transformation := fmt.Sprintf("c_fill,g_auto,w_%d,h_%d,q_auto", format.Width, format.Height)
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/%s/%s", b.cloudName, transformation, publicID)
}
