package storage

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"sync"
	"time"

	errorc "storyhub/pkg/core/err"
)

type memoryObject struct {
	data        []byte
	contentType string
	etag        string
	modified    time.Time
}

// MemoryStore 进程内对象存储，用于本地开发和测试
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]*memoryObject
	err     *errorc.ErrorBuilder
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		objects: make(map[string]*memoryObject),
		err:     errorc.NewErrorBuilder("MemoryStore"),
	}
}

func (m *MemoryStore) get(key string) (*memoryObject, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[normalizeKey(key)]
	return obj, ok
}

func (m *MemoryStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.get(key)
	return ok, nil
}

func (m *MemoryStore) Head(_ context.Context, key string) (*ObjectInfo, error) {
	obj, ok := m.get(key)
	if !ok {
		return nil, m.err.NotFound("对象不存在")
	}
	return &ObjectInfo{
		Key:           normalizeKey(key),
		ContentType:   ResolveContentType(obj.contentType, key),
		ContentLength: int64(len(obj.data)),
		ETag:          obj.etag,
		LastModified:  obj.modified,
	}, nil
}

func (m *MemoryStore) Open(_ context.Context, key string, rng *ByteRange) (io.ReadCloser, error) {
	obj, ok := m.get(key)
	if !ok {
		return nil, m.err.NotFound("对象不存在")
	}
	size := int64(len(obj.data))
	if rng == nil {
		return io.NopCloser(bytes.NewReader(obj.data)), nil
	}
	if rng.Start < 0 || rng.Start > rng.End || rng.Start >= size {
		return nil, m.err.New("读取区间越界", nil).RangeNotSatisfiable()
	}
	end := rng.End
	if end >= size {
		end = size - 1
	}
	return io.NopCloser(bytes.NewReader(obj.data[rng.Start : end+1])), nil
}

func (m *MemoryStore) Put(_ context.Context, key string, body io.Reader, _ int64, contentType string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return m.err.New("读取上传内容失败", err)
	}
	sum := md5.Sum(data)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[normalizeKey(key)] = &memoryObject{
		data:        data,
		contentType: contentType,
		etag:        `"` + hex.EncodeToString(sum[:]) + `"`,
		modified:    time.Now(),
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, normalizeKey(key))
	return nil
}
