package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/pixelperfect/backend/adapters/media_storage"
	"github.com/pixelperfect/backend/internal/application/service"
	videoUC "github.com/pixelperfect/backend/internal/application/usecase/video"
	"github.com/pixelperfect/backend/internal/config"
	"github.com/pixelperfect/backend/internal/domain/video"
	"github.com/pixelperfect/backend/pkg/auth"
	"github.com/pixelperfect/backend/pkg/logger"
)

type stubVideoRepo struct {
	videos  []*video.Video
	saveErr error
	listErr error
}

func (f *stubVideoRepo) Save(ctx context.Context, v *video.Video) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.videos = append(f.videos, v)
	return nil
}

func (f *stubVideoRepo) ListAll(ctx context.Context) ([]*video.Video, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*video.Video, len(f.videos))
	copy(out, f.videos)
	return out, nil
}

type stubUploader struct {
	result *service.UploadResult
	err    error
}

func (f *stubUploader) UploadVideo(ctx context.Context, file io.Reader) (*service.UploadResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *stubUploader) UploadImage(ctx context.Context, file io.Reader) (*service.UploadResult, error) {
	return f.UploadVideo(ctx, file)
}

func (f *stubUploader) Destroy(ctx context.Context, publicID string, resourceType string) error {
	return nil
}

type VideoAPITestSuite struct {
	suite.Suite
	Router   *gin.Engine
	repo     *stubVideoRepo
	uploader *stubUploader
	jwtSvc   *auth.JWTService
	token    string
}

func (s *VideoAPITestSuite) newRouter(maxUploadSize int64) *gin.Engine {
	appLogger := logger.NewZapLogger("development")

	var cfg config.Config
	cfg.Cloudinary.CloudName = "demo"
	links := media_storage.NewCloudinaryLinks(cfg)

	uploadUC := videoUC.NewUploadVideoUseCase(s.repo, s.uploader, nil, nil, time.Minute, appLogger)
	listUC := videoUC.NewListVideosUseCase(s.repo, nil, appLogger)
	handler := NewVideoHandler(uploadUC, listUC, links, maxUploadSize, appLogger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{
		api.GET("/videos", handler.ListVideos)

		private := api.Group("/")
		private.Use(AuthMiddleware(s.jwtSvc))
		{
			private.POST("/videos", handler.UploadVideo)
		}
	}
	return router
}

func (s *VideoAPITestSuite) SetupTest() {
	s.repo = &stubVideoRepo{}
	s.uploader = &stubUploader{result: &service.UploadResult{
		PublicID: "video-uploads/e2e123",
		Bytes:    1048576,
		Duration: 9.8,
		Format:   "mp4",
	}}
	s.jwtSvc = auth.NewJWTService("test-secret", time.Hour)

	token, err := s.jwtSvc.GenerateToken(uuid.New())
	s.Require().NoError(err)
	s.token = token

	s.Router = s.newRouter(60 * 1024 * 1024)
}

func TestVideoAPI(t *testing.T) {
	suite.Run(t, new(VideoAPITestSuite))
}

func uploadRequest(t *testing.T, fields map[string]string, fileBytes []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if fileBytes != nil {
		part, err := writer.CreateFormFile("file", "upload.mp4")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(fileBytes); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/videos", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func (s *VideoAPITestSuite) Test_Upload_Unauthenticated() {
	req := uploadRequest(s.T(), map[string]string{"title": "Trip"}, []byte("data"))

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	s.Equal(http.StatusUnauthorized, rr.Code)

	var resp map[string]string
	s.NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	s.Equal("Unauthorized", resp["error"])
	s.Empty(s.repo.videos)
}

func (s *VideoAPITestSuite) Test_Upload_NoFilePart() {
	req := uploadRequest(s.T(), map[string]string{"title": "Trip"}, nil)
	req.Header.Set("Authorization", "Bearer "+s.token)

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	s.Equal(http.StatusBadRequest, rr.Code)

	var resp map[string]string
	s.NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	s.Equal("File not found", resp["error"])
}

func (s *VideoAPITestSuite) Test_Upload_Success() {
	fields := map[string]string{
		"title":        "Trip",
		"description":  "summer trip",
		"originalSize": "5242880",
	}
	req := uploadRequest(s.T(), fields, []byte("fake mp4 bytes"))
	req.Header.Set("Authorization", "Bearer "+s.token)

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	s.Equal(http.StatusCreated, rr.Code)

	var dto VideoDTO
	s.NoError(json.Unmarshal(rr.Body.Bytes(), &dto))
	s.Equal("Trip", dto.Title)
	s.Equal("video-uploads/e2e123", dto.PublicID)
	s.Equal(int64(5242880), dto.OriginalSize)
	s.Equal(int64(1048576), dto.CompressedSize)
	s.Equal(9.8, dto.Duration)
	s.Equal("Trip.mp4", dto.DownloadFilename)
	s.Equal(
		"https://res.cloudinary.com/demo/video/upload/c_fill,g_auto,w_400,h_225,q_auto,f_jpg/video-uploads/e2e123",
		dto.ThumbnailURL)

	s.Len(s.repo.videos, 1)
}

func (s *VideoAPITestSuite) Test_Upload_BadOriginalSizeFallsBackToZero() {
	fields := map[string]string{
		"title":        "Trip",
		"originalSize": "not-a-number",
	}
	req := uploadRequest(s.T(), fields, []byte("fake mp4 bytes"))
	req.Header.Set("Authorization", "Bearer "+s.token)

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	s.Equal(http.StatusCreated, rr.Code)

	var dto VideoDTO
	s.NoError(json.Unmarshal(rr.Body.Bytes(), &dto))
	s.Equal(int64(0), dto.OriginalSize)
}

func (s *VideoAPITestSuite) Test_Upload_FileTooLarge() {
	router := s.newRouter(1024)

	req := uploadRequest(s.T(), map[string]string{"title": "Trip"}, bytes.Repeat([]byte("a"), 2048))
	req.Header.Set("Authorization", "Bearer "+s.token)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	s.Equal(http.StatusBadRequest, rr.Code)

	var resp map[string]string
	s.NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	s.Equal("File is too large", resp["error"])
	s.Empty(s.repo.videos)
}

func (s *VideoAPITestSuite) Test_Upload_UpstreamFailure() {
	s.uploader.err = errors.New("cloudinary timed out")

	req := uploadRequest(s.T(), map[string]string{"title": "Trip"}, []byte("data"))
	req.Header.Set("Authorization", "Bearer "+s.token)

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	s.Equal(http.StatusInternalServerError, rr.Code)

	var resp map[string]string
	s.NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	s.Equal("Video upload failed", resp["error"])
	s.Empty(s.repo.videos)
}

func (s *VideoAPITestSuite) Test_List_EmptyStore() {
	req := httptest.NewRequest(http.MethodGet, "/api/videos", nil)

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	s.Equal(http.StatusOK, rr.Code)

	var dtos []VideoDTO
	s.NoError(json.Unmarshal(rr.Body.Bytes(), &dtos))
	s.NotNil(dtos)
	s.Empty(dtos)
}

func (s *VideoAPITestSuite) Test_List_MostRecentFirst() {
	now := time.Now().UTC()
	s.repo.videos = []*video.Video{
		{ID: uuid.New(), Title: "newest", PublicID: "video-uploads/n", CreatedAt: now},
		{ID: uuid.New(), Title: "oldest", PublicID: "video-uploads/o", CreatedAt: now.Add(-time.Hour)},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/videos", nil)

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	s.Equal(http.StatusOK, rr.Code)

	var dtos []VideoDTO
	s.NoError(json.Unmarshal(rr.Body.Bytes(), &dtos))
	s.Len(dtos, 2)
	s.Equal("newest", dtos[0].Title)
	s.Equal("oldest", dtos[1].Title)
}

func (s *VideoAPITestSuite) Test_List_StorageFailure() {
	s.repo.listErr = errors.New("connection refused")

	req := httptest.NewRequest(http.MethodGet, "/api/videos", nil)

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	s.Equal(http.StatusBadRequest, rr.Code)

	var resp map[string]string
	s.NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	s.Equal("Error fetching videos", resp["error"])
}
