package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pixelperfect/backend/internal/application/service"
	videoUC "github.com/pixelperfect/backend/internal/application/usecase/video"
	"github.com/pixelperfect/backend/pkg/logger"
)

type VideoHandler struct {
	uploadVideoUC *videoUC.UploadVideoUseCase
	listVideosUC  *videoUC.ListVideosUseCase
	links         service.LinkBuilder
	maxUploadSize int64
	logger        logger.Logger
}

func NewVideoHandler(
	uploadUC *videoUC.UploadVideoUseCase,
	listUC *videoUC.ListVideosUseCase,
	links service.LinkBuilder,
	maxUploadSize int64,
	log logger.Logger,
) *VideoHandler {
	return &VideoHandler{
		uploadVideoUC: uploadUC,
		listVideosUC:  listUC,
		links:         links,
		maxUploadSize: maxUploadSize,
		logger:        log,
	}
}

// UploadVideo ingests one multipart upload: file (required), title,
// description and the client's originalSize hint (fallback 0 when it does
// not parse).
func (h *VideoHandler) UploadVideo(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File not found"})
		return
	}

	if h.maxUploadSize > 0 && fileHeader.Size > h.maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Video upload failed"})
		return
	}
	defer file.Close()

	title := c.PostForm("title")
	description := c.PostForm("description")

	originalSize, err := strconv.ParseInt(c.PostForm("originalSize"), 10, 64)
	if err != nil || originalSize < 0 {
		originalSize = 0
	}

	input := videoUC.UploadVideoInput{
		OwnerID:      ownerID,
		File:         file,
		Title:        title,
		Description:  description,
		OriginalSize: originalSize,
	}

	output, err := h.uploadVideoUC.Execute(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("Video upload failed", err, zap.String("owner_id", ownerID.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Video upload failed"})
		return
	}

	c.JSON(http.StatusCreated, ToVideoDTO(output.Video, h.links))
}

// ListVideos returns every asset, most recent first. An empty store is an
// empty array, not an error.
func (h *VideoHandler) ListVideos(c *gin.Context) {
	output, err := h.listVideosUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Error("Fetching videos failed", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error fetching videos"})
		return
	}

	dtos := make([]VideoDTO, len(output.Videos))
	for i, v := range output.Videos {
		dtos[i] = ToVideoDTO(v, h.links)
	}
	c.JSON(http.StatusOK, dtos)
}
