package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/config"
	apperrors "github.com/Devstrike-DigTech/aideesigns-storefront/pkg/errors"
)

// MaxUploadSize caps inspiration images at 5 MiB.
const MaxUploadSize = 5 << 20

const cloudinaryBase = "https://api.cloudinary.com"

type uploadService struct {
	cloudName    string
	uploadPreset string
	baseURL      string
	httpClient   *http.Client
	logger       *zap.Logger
}

// NewUploadService creates the Cloudinary passthrough used for booking
// inspiration images. Uploads are unsigned (preset-scoped), so no secret
// ever reaches this service.
func NewUploadService(cfg config.CloudinaryConfig, logger *zap.Logger) *uploadService {
	return &uploadService{
		cloudName:    cfg.CloudName,
		uploadPreset: cfg.UploadPreset,
		baseURL:      cloudinaryBase,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// UploadInspiration validates and forwards an image to the media host,
// returning the hosted URL for use as inspirationImageUrl. Not retried;
// the shopper re-picks the file on failure.
func (s *uploadService) UploadInspiration(ctx context.Context, filename, contentType string, size int64, file io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", &apperrors.ErrInvalidInput{Message: "file must be an image"}
	}
	if size <= 0 {
		return "", &apperrors.ErrInvalidInput{Message: "file is empty"}
	}
	if size > MaxUploadSize {
		return "", &apperrors.ErrInvalidInput{Message: "image must be less than 5MB"}
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, io.LimitReader(file, MaxUploadSize)); err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if err := writer.WriteField("upload_preset", s.uploadPreset); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}

	url := fmt.Sprintf("%s/v1_1/%s/image/upload", s.baseURL, s.cloudName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute upload: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Warn("Image upload rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("filename", filename),
		)
		return "", &apperrors.ErrUpstream{Status: resp.StatusCode, Message: "image upload failed"}
	}

	var uploaded struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.Unmarshal(respBody, &uploaded); err != nil {
		return "", fmt.Errorf("failed to unmarshal upload response: %w", err)
	}
	if uploaded.SecureURL == "" {
		return "", &apperrors.ErrUpstream{Status: resp.StatusCode, Message: "upload response missing secure_url"}
	}

	s.logger.Info("Inspiration image uploaded", zap.String("url", uploaded.SecureURL))
	return uploaded.SecureURL, nil
}
