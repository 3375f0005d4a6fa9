// Package storage validates resume uploads and writes them to a private artifact store.
package storage

import (
	"context"
	"io"
	"log/slog"

	"internova/config"
	"internova/internal/errors"

	"go.uber.org/fx"
)

// ArtifactStore writes an object and returns its absolute URL.
type ArtifactStore interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

// StoreParams defines the parameters required for the artifact store
type StoreParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewArtifactStore opens the backend selected by storage.provider.
func NewArtifactStore(params StoreParams) (ArtifactStore, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		return nil, errors.New("storage configuration is missing")
	}

	switch cfg.Provider {
	case config.StorageProviderCloudinary:
		return NewCloudinaryStore(cfg.Cloudinary)
	case config.StorageProviderBlob, "":
		store, err := OpenBlobStore(context.Background(), cfg.BucketURL, cfg.PublicBaseURL)
		if err != nil {
			return nil, err
		}

		params.Append(fx.Hook{
			OnStop: func(context.Context) error {
				params.Logger.Info("Closing artifact bucket")

				return store.Close()
			},
		})

		return store, nil
	default:
		return nil, errors.Errorf("unknown storage provider %q", cfg.Provider)
	}
}
