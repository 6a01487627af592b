package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"storyhub/pkg/core/config"
	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	ok, err := store.Exists(ctx, "stories/a.mp3")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = store.Head(ctx, "stories/a.mp3")
	assert.True(t, errorc.IsNotFound(err))
	_, err = store.Open(ctx, "stories/a.mp3", nil)
	assert.True(t, errorc.IsNotFound(err))

	require.NoError(t, store.Put(ctx, "/stories/a.mp3", strings.NewReader("0123456789"), 10, ""))

	ok, err = store.Exists(ctx, "stories/a.mp3")
	require.NoError(t, err)
	assert.True(t, ok)

	info, err := store.Head(ctx, "stories/a.mp3")
	require.NoError(t, err)
	assert.Equal(t, "stories/a.mp3", info.Key)
	assert.Equal(t, int64(10), info.ContentLength)
	assert.Equal(t, "audio/mpeg", info.ContentType)
	assert.NotEmpty(t, info.ETag)
	assert.False(t, info.LastModified.IsZero())

	rc, err := store.Open(ctx, "stories/a.mp3", &ByteRange{Start: 2, End: 4})
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "234", string(data))

	rc, err = store.Open(ctx, "stories/a.mp3", &ByteRange{Start: 8, End: 100})
	require.NoError(t, err)
	data, _ = io.ReadAll(rc)
	assert.Equal(t, "89", string(data))

	_, err = store.Open(ctx, "stories/a.mp3", &ByteRange{Start: 10, End: 12})
	assert.True(t, errorc.IsRange(err))

	require.NoError(t, store.Delete(ctx, "stories/a.mp3"))
	require.NoError(t, store.Delete(ctx, "stories/a.mp3"))
	ok, _ = store.Exists(ctx, "stories/a.mp3")
	assert.False(t, ok)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := "k/" + string(rune('a'+i))
			_ = store.Put(ctx, key, bytes.NewReader([]byte{byte(i)}), 1, "")
			_, _ = store.Head(ctx, key)
			_, _ = store.Exists(ctx, key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 16; i++ {
		ok, err := store.Exists(ctx, "k/"+string(rune('a'+i)))
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestResolveContentType(t *testing.T) {
	tests := []struct {
		reported string
		key      string
		want     string
	}{
		{"audio/ogg", "x.mp3", "audio/ogg"},
		{"", "x.mp3", "audio/mpeg"},
		{"", "dir/Y.M4A", "audio/mp4"},
		{DefaultContentType, "a.flac", "audio/flac"},
		{"", "noext", DefaultContentType},
		{"", "weird.zzzunknown", DefaultContentType},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveContentType(tt.reported, tt.key), tt.key)
	}
}

func TestByteRange(t *testing.T) {
	r := ByteRange{Start: 100, End: 499999}
	assert.Equal(t, int64(499900), r.Length())
	assert.Equal(t, "bytes=100-499999", r.Header())
}

func TestNewProvider(t *testing.T) {
	ctx := context.Background()
	log := logger.Discard()

	store, err := New(ctx, config.StorageConfig{Provider: "memory"}, log)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	_, err = New(ctx, config.StorageConfig{Provider: "ftp"}, log)
	assert.True(t, errorc.IsValidation(err))

	_, err = New(ctx, config.StorageConfig{Provider: "oss"}, log)
	assert.True(t, errorc.IsValidation(err))

	_, err = New(ctx, config.StorageConfig{Provider: "s3"}, log)
	assert.True(t, errorc.IsValidation(err))
}
