package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStore_Put(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	store := NewBlobStore(bucket, "https://files.example/base/")
	defer store.Close()

	url, err := store.Put(context.Background(), "resumes/1_a_resume.pdf", strings.NewReader("%PDF-1.7"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://files.example/base/resumes/1_a_resume.pdf", url)

	data, err := bucket.ReadAll(context.Background(), "resumes/1_a_resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(data))
}

func TestBlobStore_PutHonoursCancellation(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	store := NewBlobStore(bucket, "https://files.example")
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Put(ctx, "resumes/cancelled.pdf", strings.NewReader("%PDF"), "application/pdf")
	require.Error(t, err)

	exists, err := bucket.Exists(context.Background(), "resumes/cancelled.pdf")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOpenBlobStore(t *testing.T) {
	store, err := OpenBlobStore(context.Background(), "mem://", "https://files.example")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = OpenBlobStore(context.Background(), "", "https://files.example")
	assert.Error(t, err)

	_, err = OpenBlobStore(context.Background(), "mem://", "not a url")
	assert.Error(t, err)

	_, err = OpenBlobStore(context.Background(), "nosuchscheme://bucket", "https://files.example")
	assert.Error(t, err)
}

func TestNewCloudinaryStore_RequiresCredentials(t *testing.T) {
	_, err := NewCloudinaryStore(nil)
	assert.Error(t, err)
}
