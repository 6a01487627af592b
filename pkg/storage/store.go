// Package storage 对象存储抽象：存在性检查、元数据读取、按区间读取与写入。
//
// 后端实现：
//   - OSSStore    阿里云 OSS
//   - S3Store     AWS S3 及兼容存储（MinIO 等）
//   - MemoryStore 进程内存，开发与测试使用
//
// 所有实现均可被多个 goroutine 并发使用；未找到对象时返回 errorc.ErrorCodeNotFound 错误。
package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"
)

// DefaultContentType 无法判定类型时的兜底 MIME
const DefaultContentType = "application/octet-stream"

// ObjectInfo 对象元数据
type ObjectInfo struct {
	Key           string
	ContentType   string
	ContentLength int64
	ETag          string
	LastModified  time.Time
}

// ByteRange 闭区间字节范围 [Start, End]
type ByteRange struct {
	Start int64
	End   int64
}

// Length 区间长度
func (r ByteRange) Length() int64 {
	return r.End - r.Start + 1
}

// Header 转换为上游请求使用的 Range 头
func (r ByteRange) Header() string {
	return fmt.Sprintf("bytes=%d-%d", r.Start, r.End)
}

// ObjectStore 对象存储客户端
type ObjectStore interface {
	// Exists 轻量存在性检查，对象不存在时返回 false, nil
	Exists(ctx context.Context, key string) (bool, error)
	// Head 读取元数据，对象不存在时返回 NotFound 错误
	Head(ctx context.Context, key string) (*ObjectInfo, error)
	// Open 读取对象内容，rng 为 nil 时读取全部；返回的 Reader 按需拉取数据，调用方负责关闭
	Open(ctx context.Context, key string, rng *ByteRange) (io.ReadCloser, error)
	// Put 写入对象
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	// Delete 删除对象，对象不存在时不报错
	Delete(ctx context.Context, key string) error
}

// 音频扩展名不在标准库内置表中，显式登记，保证与系统 mime.types 无关
func init() {
	for ext, typ := range map[string]string{
		".mp3":  "audio/mpeg",
		".m4a":  "audio/mp4",
		".aac":  "audio/aac",
		".ogg":  "audio/ogg",
		".opus": "audio/opus",
		".wav":  "audio/wav",
		".flac": "audio/flac",
	} {
		_ = mime.AddExtensionType(ext, typ)
	}
}

// normalizeKey 保证 key 不以 "/" 开头
func normalizeKey(key string) string {
	return strings.TrimLeft(key, "/")
}

// ResolveContentType 优先使用存储返回的类型，其次按扩展名推断，最后兜底为二进制流
func ResolveContentType(reported, key string) string {
	if reported != "" && reported != DefaultContentType {
		return reported
	}
	if byExt := mime.TypeByExtension(strings.ToLower(path.Ext(key))); byExt != "" {
		return byExt
	}
	return DefaultContentType
}
