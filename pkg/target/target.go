// Package target 评论与点赞所挂载的内容对象（故事、曲目）的跨模块约定。
package target

import (
	"context"

	errorc "storyhub/pkg/core/err"
)

// Type 内容类型
type Type string

const (
	Story Type = "story"
	Track Type = "track"
)

// FromPath 路由中的复数形式 stories / tracks 转为内容类型
func FromPath(segment string) (Type, error) {
	switch segment {
	case "stories", "story":
		return Story, nil
	case "tracks", "track":
		return Track, nil
	}
	return "", errorc.New("不支持的内容类型: "+segment, nil).ValidWithCtx()
}

// Counter 内容对象的存在性检查与反范式计数维护
type Counter interface {
	Exists(ctx context.Context, id string) (bool, error)
	IncCommentCount(ctx context.Context, id string, delta int64) error
	IncLikeCount(ctx context.Context, id string, delta int64) error
	SetLikeCount(ctx context.Context, id string, n int64) error
	// ListIDs 全部内容ID，供计数校准任务遍历
	ListIDs(ctx context.Context) ([]string, error)
}

// Cleaner 内容删除后的级联清理
type Cleaner func(ctx context.Context, t Type, id string) error

// Registry 按内容类型查找 Counter
type Registry map[Type]Counter

func (r Registry) Get(t Type) (Counter, error) {
	c, ok := r[t]
	if !ok {
		return nil, errorc.New("不支持的内容类型: "+string(t), nil).ValidWithCtx()
	}
	return c, nil
}

// MustExist 内容不存在时返回 NotFound
func (r Registry) MustExist(ctx context.Context, t Type, id string) (Counter, error) {
	c, err := r.Get(t)
	if err != nil {
		return nil, err
	}
	ok, err := c.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errorc.New("内容不存在", nil).NotFound()
	}
	return c, nil
}
