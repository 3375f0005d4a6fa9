package storage

import (
	"context"
	"io"
	"net/url"
	"strings"

	"internova/internal/errors"

	gcsstorage "cloud.google.com/go/storage"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"gocloud.dev/blob"

	// Bucket URL schemes: azblob://, file://, gs://, mem://, s3://
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// BlobStore is an ArtifactStore on top of a gocloud.dev bucket.
type BlobStore struct {
	bucket  *blob.Bucket
	baseURL string
}

// OpenBlobStore opens bucketURL and serves object URLs under publicBaseURL.
func OpenBlobStore(ctx context.Context, bucketURL, publicBaseURL string) (*BlobStore, error) {
	if bucketURL == "" {
		return nil, errors.New("bucket url must be provided")
	}
	if _, err := url.ParseRequestURI(publicBaseURL); err != nil {
		return nil, errors.Wrapf(err, "invalid public base url %q", publicBaseURL)
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return NewBlobStore(bucket, publicBaseURL), nil
}

// NewBlobStore wraps an already opened bucket.
func NewBlobStore(bucket *blob.Bucket, publicBaseURL string) *BlobStore {
	return &BlobStore{
		bucket:  bucket,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Put streams r into the bucket as a private object.
func (s *BlobStore) Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
		BeforeWrite: privateACL,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	// Close commits the object; a failure here means nothing was stored.
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %s", key)
	}

	objectURL, err := url.JoinPath(s.baseURL, key)
	if err != nil {
		return "", errors.Wrapf(err, "failed to build url for %s", key)
	}

	return objectURL, nil
}

// Close releases the bucket.
func (s *BlobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

// privateACL keeps objects private on providers whose default may be public.
// Azure containers are private unless configured otherwise.
func privateACL(as func(any) bool) error {
	var putInput *s3.PutObjectInput
	if as(&putInput) {
		putInput.ACL = s3types.ObjectCannedACLPrivate

		return nil
	}

	var gcsWriter *gcsstorage.Writer
	if as(&gcsWriter) {
		gcsWriter.PredefinedACL = "private"
	}

	return nil
}
