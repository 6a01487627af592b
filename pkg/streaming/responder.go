package streaming

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"

	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/storage"

	"github.com/gofiber/fiber/v2"
)

// BytesRecorder 统计写出的媒体字节数
type BytesRecorder interface {
	AddStreamedBytes(status int, n int64)
}

// Responder 将对象内容写入 fiber 响应，body 直接使用存储返回的 Reader，不整体缓冲
type Responder struct {
	store        storage.ObjectStore
	cacheControl string
	recorder     BytesRecorder
}

// NewResponder maxAge 为 Cache-Control 的秒数；recorder 可为 nil
func NewResponder(store storage.ObjectStore, maxAge int, recorder BytesRecorder) *Responder {
	return &Responder{
		store:        store,
		cacheControl: "public, max-age=" + strconv.Itoa(maxAge) + ", immutable",
		recorder:     recorder,
	}
}

// Stream 无 Range 时返回 200 全量；合法 Range 返回 206；非法或越界返回 416 且 body 为空
func (r *Responder) Stream(c *fiber.Ctx, key string, info *storage.ObjectInfo, rangeHeader string) error {
	if rangeHeader == "" {
		body, err := r.store.Open(c.UserContext(), key, nil)
		if err != nil {
			return r.openFailed(c, info, err)
		}
		r.setCommonHeaders(c, info)
		c.Status(fiber.StatusOK)
		c.Response().SetBodyStream(r.wrap(body, fiber.StatusOK), int(info.ContentLength))
		return nil
	}

	rng, err := ParseRange(rangeHeader, info.ContentLength)
	if err != nil {
		return r.notSatisfiable(c, info)
	}

	body, err := r.store.Open(c.UserContext(), key, &rng)
	if err != nil {
		return r.openFailed(c, info, err)
	}
	r.setCommonHeaders(c, info)
	c.Set(fiber.HeaderContentRange, fmt.Sprintf("bytes %d-%d/%d", rng.Start, rng.End, info.ContentLength))
	c.Status(fiber.StatusPartialContent)
	c.Response().SetBodyStream(r.wrap(body, fiber.StatusPartialContent), int(rng.Length()))
	return nil
}

// Head 只写响应头，Content-Length 为对象完整长度
func (r *Responder) Head(c *fiber.Ctx, info *storage.ObjectInfo) error {
	r.setCommonHeaders(c, info)
	c.Set(fiber.HeaderContentDisposition, "inline")
	c.Status(fiber.StatusOK)
	c.Response().ResetBody()
	c.Response().Header.SetContentLength(int(info.ContentLength))
	return nil
}

func (r *Responder) setCommonHeaders(c *fiber.Ctx, info *storage.ObjectInfo) {
	c.Set(fiber.HeaderContentType, info.ContentType)
	c.Set(fiber.HeaderAcceptRanges, "bytes")
	c.Set(fiber.HeaderCacheControl, r.cacheControl)
	if info.ETag != "" {
		c.Set(fiber.HeaderETag, info.ETag)
	}
	if !info.LastModified.IsZero() {
		c.Set(fiber.HeaderLastModified, info.LastModified.UTC().Format(http.TimeFormat))
	}
}

func (r *Responder) notSatisfiable(c *fiber.Ctx, info *storage.ObjectInfo) error {
	c.Set(fiber.HeaderContentRange, fmt.Sprintf("bytes */%d", info.ContentLength))
	c.Status(fiber.StatusRequestedRangeNotSatisfiable)
	c.Response().ResetBody()
	return nil
}

// openFailed 探测之后对象被删除时读取返回 NotFound；对象变短导致区间越界时按 416 处理
func (r *Responder) openFailed(c *fiber.Ctx, info *storage.ObjectInfo, err error) error {
	if errorc.IsRange(err) {
		return r.notSatisfiable(c, info)
	}
	if errorc.IsNotFound(err) {
		return errBuilder.New("媒体文件已不存在", err).NotFound()
	}
	return errBuilder.New("读取媒体文件失败", err).Third()
}

func (r *Responder) wrap(body io.ReadCloser, status int) io.ReadCloser {
	if r.recorder == nil {
		return body
	}
	return &countingBody{ReadCloser: body, status: status, recorder: r.recorder}
}

// countingBody 在 fasthttp 写完并关闭 body 时上报字节数
type countingBody struct {
	io.ReadCloser
	status   int
	n        int64
	recorder BytesRecorder
	once     sync.Once
}

func (b *countingBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	b.n += int64(n)
	return n, err
}

func (b *countingBody) Close() error {
	b.once.Do(func() {
		b.recorder.AddStreamedBytes(b.status, b.n)
	})
	return b.ReadCloser.Close()
}
