package video

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCompressionPercent(t *testing.T) {
	v := &Video{
		ID:             uuid.New(),
		OriginalSize:   5242880,
		CompressedSize: 2621440,
	}

	assert.Equal(t, 50, v.CompressionPercent())

	// Recomputing on identical stored values must yield the same integer.
	assert.Equal(t, v.CompressionPercent(), v.CompressionPercent())
}

func TestCompressionPercent_Rounding(t *testing.T) {
	v := &Video{OriginalSize: 3, CompressedSize: 2}
	assert.Equal(t, 33, v.CompressionPercent())

	v = &Video{OriginalSize: 3, CompressedSize: 1}
	assert.Equal(t, 67, v.CompressionPercent())
}

func TestCompressionPercent_UnknownOriginalSize(t *testing.T) {
	v := &Video{OriginalSize: 0, CompressedSize: 1024}
	assert.Equal(t, 0, v.CompressionPercent())
}

func TestCompressionPercent_LargerThanOriginal(t *testing.T) {
	// Cloudinary can report a larger size than the source for tiny inputs.
	v := &Video{OriginalSize: 100, CompressedSize: 150}
	assert.Equal(t, -50, v.CompressionPercent())
}
