package client

import (
	"context"

	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/target"
	"storyhub/system/story/internal/app"
)

// StoryClient 故事组件对外客户端（供评论、点赞组件维护计数）
type StoryClient struct {
	app *app.App
	err *errorc.ErrorBuilder
}

var _ target.Counter = (*StoryClient)(nil)

// NewStoryClient 创建故事客户端实例
func NewStoryClient(app *app.App) *StoryClient {
	return &StoryClient{
		app: app,
		err: errorc.NewErrorBuilder("StoryClient"),
	}
}

func (c *StoryClient) Exists(ctx context.Context, id string) (bool, error) {
	return c.app.StoryService.Exists(ctx, id)
}

func (c *StoryClient) IncCommentCount(ctx context.Context, id string, delta int64) error {
	return c.app.StoryService.IncCommentCount(ctx, id, delta)
}

func (c *StoryClient) IncLikeCount(ctx context.Context, id string, delta int64) error {
	return c.app.StoryService.IncLikeCount(ctx, id, delta)
}

func (c *StoryClient) SetLikeCount(ctx context.Context, id string, n int64) error {
	return c.app.StoryService.SetLikeCount(ctx, id, n)
}

func (c *StoryClient) ListIDs(ctx context.Context) ([]string, error) {
	return c.app.StoryService.ListIDs(ctx)
}
