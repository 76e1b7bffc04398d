package video

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
)

// Video is one uploaded asset. PublicID is the identifier Cloudinary
// assigned at upload time; every display and download URL is derived from
// it. Rows are insert-only: a video is never updated after creation.
type Video struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PublicID       string    `json:"public_id"`
	OriginalSize   int64     `json:"original_size"`
	CompressedSize int64     `json:"compressed_size"`
	Duration       float64   `json:"duration"`
	CreatedAt      time.Time `json:"created_at"`
}

// CompressionPercent is display-only and never stored. Returns 0 when the
// original size is unknown.
func (v *Video) CompressionPercent() int {
	if v.OriginalSize <= 0 {
		return 0
	}
	ratio := float64(v.CompressedSize) / float64(v.OriginalSize)
	return int(math.Round((1 - ratio) * 100))
}

type Repository interface {
	Save(ctx context.Context, v *Video) error
	ListAll(ctx context.Context) ([]*Video, error)
}
