// Package streaming 媒体文件的区间流式输出：存在性探测、Range 解析与 200/206/416 响应。
package streaming

import (
	"context"

	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/storage"
)

var errBuilder = errorc.NewErrorBuilder("Streaming")

// Inspector 对象存在性与元数据查询，不缓存，每次调用都访问存储
type Inspector struct {
	store storage.ObjectStore
}

func NewInspector(store storage.ObjectStore) *Inspector {
	return &Inspector{store: store}
}

// Exists 对象不存在时返回 false, nil
func (i *Inspector) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := i.store.Exists(ctx, key)
	if err != nil {
		if errorc.IsNotFound(err) {
			return false, nil
		}
		return false, errBuilder.New("检查媒体文件是否存在失败", err).Third()
	}
	return ok, nil
}

// Metadata 读取对象类型与长度，对象不存在时返回 NotFound 错误
func (i *Inspector) Metadata(ctx context.Context, key string) (*storage.ObjectInfo, error) {
	info, err := i.store.Head(ctx, key)
	if err != nil {
		if errorc.IsNotFound(err) {
			return nil, errBuilder.New("媒体文件不存在", err).NotFound()
		}
		return nil, errBuilder.New("获取媒体文件元数据失败", err).Third()
	}
	if info.ContentLength < 0 {
		return nil, errBuilder.New("存储返回的文件长度无效", nil).Third()
	}

	info.ContentType = storage.ResolveContentType(info.ContentType, key)
	return info, nil
}
