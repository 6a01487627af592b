package client

import (
	"context"

	"storyhub/pkg/target"
	"storyhub/system/track/internal/app"
)

// TrackClient 曲目组件对外客户端
type TrackClient struct {
	app *app.App
}

var _ target.Counter = (*TrackClient)(nil)

func NewTrackClient(app *app.App) *TrackClient {
	return &TrackClient{app: app}
}

func (c *TrackClient) Exists(ctx context.Context, id string) (bool, error) {
	return c.app.TrackService.Exists(ctx, id)
}

func (c *TrackClient) IncCommentCount(ctx context.Context, id string, delta int64) error {
	return c.app.TrackService.IncCommentCount(ctx, id, delta)
}

func (c *TrackClient) IncLikeCount(ctx context.Context, id string, delta int64) error {
	return c.app.TrackService.IncLikeCount(ctx, id, delta)
}

func (c *TrackClient) SetLikeCount(ctx context.Context, id string, n int64) error {
	return c.app.TrackService.SetLikeCount(ctx, id, n)
}

func (c *TrackClient) ListIDs(ctx context.Context) ([]string, error) {
	return c.app.TrackService.ListIDs(ctx)
}
