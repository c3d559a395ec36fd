package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/AgriSeed/agriseed-cms-backend/config"
)

const ProductImageFolder = "agriseed/products"

var ErrImagesNotConfigured = errors.New("image storage is not configured")

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

var cloudinaryService *CloudinaryService

// InitCloudinary installs the global uploader. Missing credentials leave
// uploads disabled rather than failing startup.
func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		config.Log.Warn("[cloudinary] ⚠️ credentials not set, image uploads disabled")
		return nil
	}
	svc, err := NewCloudinaryService(cloudName, apiKey, apiSecret)
	if err != nil {
		return err
	}
	cloudinaryService = svc
	config.Log.Info("[cloudinary] ✅ initialized")
	return nil
}

// Images returns the global uploader or ErrImagesNotConfigured.
func Images() (*CloudinaryService, error) {
	if cloudinaryService == nil {
		return nil, ErrImagesNotConfigured
	}
	return cloudinaryService, nil
}

// UploadImage uploads a single image and returns the secure URL
func (s *CloudinaryService) UploadImage(ctx context.Context, file multipart.File, publicID, folder string) (string, error) {
	unique := true
	overwrite := true
	params := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if publicID != "" {
		params.PublicID = publicID
	}

	result, err := s.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", errors.New("upload successful but no URL returned")
	}

	return result.SecureURL, nil
}

// DeleteImage deletes an image using its public ID
func (s *CloudinaryService) DeleteImage(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}

// PublicIDFromURL recovers the public ID from a delivery URL such as
// https://res.cloudinary.com/demo/image/upload/v1712/agriseed/products/okra.jpg.
// Non-Cloudinary URLs yield "".
func PublicIDFromURL(imageURL string) string {
	_, rest, ok := strings.Cut(imageURL, "/upload/")
	if !ok {
		return ""
	}
	parts := strings.Split(rest, "/")
	for i, seg := range parts {
		if isVersion(seg) {
			parts = parts[i+1:]
			break
		}
	}
	for len(parts) > 1 && isTransformation(parts[0]) {
		parts = parts[1:]
	}
	id := strings.Join(parts, "/")
	return strings.TrimSuffix(id, path.Ext(id))
}

// isTransformation matches segments like "c_fill,w_400" or "q_auto".
func isTransformation(seg string) bool {
	key, _, ok := strings.Cut(strings.Split(seg, ",")[0], "_")
	return ok && len(key) >= 1 && len(key) <= 2
}

func isVersion(seg string) bool {
	if len(seg) < 2 || seg[0] != 'v' {
		return false
	}
	for _, r := range seg[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
