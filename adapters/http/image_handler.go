package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pixelperfect/backend/internal/application/service"
	imageUC "github.com/pixelperfect/backend/internal/application/usecase/image"
	"github.com/pixelperfect/backend/pkg/logger"
)

type ImageHandler struct {
	uploadImageUC *imageUC.UploadImageUseCase
	links         service.LinkBuilder
	maxUploadSize int64
	logger        logger.Logger
}

func NewImageHandler(uploadUC *imageUC.UploadImageUseCase, links service.LinkBuilder, maxUploadSize int64, log logger.Logger) *ImageHandler {
	return &ImageHandler{
		uploadImageUC: uploadUC,
		links:         links,
		maxUploadSize: maxUploadSize,
		logger:        log,
	}
}

// UploadImage handles the social-share flow: upload once, derive crops from
// the returned public ID. Nothing is persisted locally.
func (h *ImageHandler) UploadImage(c *gin.Context) {
	_, ok := GetOwnerIDFromGinContext(c)
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
		return
	}
	defer file.Close()

	output, err := h.uploadImageUC.Execute(c.Request.Context(), imageUC.UploadImageInput{File: file})
	if err != nil {
		h.logger.Error("Image upload failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
		return
	}

	c.JSON(http.StatusCreated, ImageUploadResponse{PublicID: output.PublicID})
}

// SocialCrops lists the named crop formats with their derived URLs for an
// already-uploaded image.
func (h *ImageHandler) SocialCrops(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicId is required"})
		return
	}

	h.logger.Info("Deriving social crop URLs", zap.String("public_id", publicID))
	c.JSON(http.StatusOK, ToSocialCropDTOs(publicID, h.links))
}
