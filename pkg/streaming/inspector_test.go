package streaming

import (
	"context"
	"errors"
	"io"
	"testing"

	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	storage.ObjectStore
	err error
}

func (f failingStore) Exists(context.Context, string) (bool, error) { return false, f.err }

func (f failingStore) Head(context.Context, string) (*storage.ObjectInfo, error) { return nil, f.err }

func (f failingStore) Open(context.Context, string, *storage.ByteRange) (io.ReadCloser, error) {
	return nil, f.err
}

func TestInspectorExists(t *testing.T) {
	store := storage.NewMemoryStore()
	putObject(t, store, "stories/a.mp3", payload(5), "")
	inspector := NewInspector(store)
	ctx := context.Background()

	ok, err := inspector.Exists(ctx, "stories/a.mp3")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = inspector.Exists(ctx, "stories/missing.mp3")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInspectorExistsTreatsNotFoundErrorAsFalse(t *testing.T) {
	inspector := NewInspector(failingStore{err: errorc.NewErrorBuilder("test").NotFound("missing")})

	ok, err := inspector.Exists(context.Background(), "x")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInspectorUpstreamFailure(t *testing.T) {
	inspector := NewInspector(failingStore{err: errors.New("dial tcp: timeout")})
	ctx := context.Background()

	_, err := inspector.Exists(ctx, "x")
	require.Error(t, err)
	assert.Equal(t, errorc.ErrorCodeThird, errorc.CodeOf(err))

	_, err = inspector.Metadata(ctx, "x")
	require.Error(t, err)
	assert.Equal(t, errorc.ErrorCodeThird, errorc.CodeOf(err))
}

func TestInspectorMetadata(t *testing.T) {
	store := storage.NewMemoryStore()
	putObject(t, store, "tracks/b.m4a", payload(2048), "")
	putObject(t, store, "raw/blob", payload(3), "")
	inspector := NewInspector(store)
	ctx := context.Background()

	info, err := inspector.Metadata(ctx, "tracks/b.m4a")
	require.NoError(t, err)
	assert.Equal(t, int64(2048), info.ContentLength)
	assert.Equal(t, "audio/mp4", info.ContentType)

	info, err = inspector.Metadata(ctx, "raw/blob")
	require.NoError(t, err)
	assert.Equal(t, storage.DefaultContentType, info.ContentType)

	_, err = inspector.Metadata(ctx, "tracks/missing.m4a")
	require.Error(t, err)
	assert.True(t, errorc.IsNotFound(err))
}
