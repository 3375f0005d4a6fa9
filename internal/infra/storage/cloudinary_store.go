package storage

import (
	"context"
	"io"

	"internova/config"
	"internova/internal/errors"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore is an ArtifactStore that uploads raw, authenticated assets.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStore builds a store from explicit credentials.
func NewCloudinaryStore(cfg *config.CloudinaryConfig) (*CloudinaryStore, error) {
	if cfg == nil || cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("cloudinary credentials must be provided")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize cloudinary client")
	}

	// Ensure HTTPS URLs.
	cld.Config.URL.Secure = true

	return &CloudinaryStore{cld: cld, folder: cfg.Folder}, nil
}

// Put uploads r as a raw asset that is only reachable through signed URLs.
// The content type is implied by the key's extension for raw assets.
func (s *CloudinaryStore) Put(ctx context.Context, key string, r io.Reader, _ string) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:       key,
		Folder:         s.folder,
		ResourceType:   "raw",
		Type:           api.Authenticated,
		Overwrite:      api.Bool(false),
		UniqueFilename: api.Bool(false),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload to cloudinary")
	}

	if resp.Error.Message != "" {
		return "", errors.Errorf("cloudinary rejected upload: %s", resp.Error.Message)
	}

	if resp.SecureURL == "" {
		return "", errors.New("cloudinary upload succeeded but secure URL is empty")
	}

	return resp.SecureURL, nil
}
