// Package sdk storyhub 的 Go 客户端，封装 JSON 接口与乐观点赞状态机。
package sdk

import (
	"context"
	"net/url"
	"sync"
	"time"

	"storyhub/pkg/core/mvc"
	commentdto "storyhub/system/comment/api/dto"
	likedto "storyhub/system/like/api/dto"
	storydto "storyhub/system/story/api/dto"
	trackdto "storyhub/system/track/api/dto"

	"github.com/valyala/fasthttp"
)

type (
	Story     = storydto.StoryDTO
	Track     = trackdto.TrackDTO
	Comment   = commentdto.CommentDTO
	LikeState = likedto.LikeStateDTO
)

// Page 游标分页结果
type Page[T any] = mvc.CursorResult[T]

// ClientOptions 客户端选项
type ClientOptions struct {
	// Token 用户 JWT，为空时以匿名身份访问
	Token   string
	Timeout time.Duration
	// HTTPClient 为空时使用默认的 fasthttp.Client
	HTTPClient *fasthttp.Client
}

type Client struct {
	baseURL string
	timeout time.Duration
	http    *fasthttp.Client

	mu    sync.RWMutex
	token string
}

// NewClient baseURL 形如 http://127.0.0.1:8080
func NewClient(baseURL string, opts *ClientOptions) *Client {
	if opts == nil {
		opts = &ClientOptions{}
	}
	c := &Client{
		baseURL: baseURL,
		timeout: opts.Timeout,
		http:    opts.HTTPClient,
		token:   opts.Token,
	}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	if c.http == nil {
		c.http = &fasthttp.Client{Name: "storyhub-sdk"}
	}
	return c
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) ListStories(ctx context.Context, cursor string, limit int) (*Page[Story], error) {
	data, err := c.do(ctx, &request{method: fasthttp.MethodGet, path: "/api/stories", query: pageQuery(cursor, limit)})
	if err != nil {
		return nil, err
	}
	var page Page[Story]
	return &page, decode(data, &page)
}

func (c *Client) GetStory(ctx context.Context, id string) (*Story, error) {
	data, err := c.do(ctx, &request{method: fasthttp.MethodGet, path: "/api/stories/" + url.PathEscape(id)})
	if err != nil {
		return nil, err
	}
	var story Story
	return &story, decode(data, &story)
}

// ListTracks genre 为空时不过滤
func (c *Client) ListTracks(ctx context.Context, genre, cursor string, limit int) (*Page[Track], error) {
	q := pageQuery(cursor, limit)
	if genre != "" {
		q.Set("genre", genre)
	}
	data, err := c.do(ctx, &request{method: fasthttp.MethodGet, path: "/api/tracks", query: q})
	if err != nil {
		return nil, err
	}
	var page Page[Track]
	return &page, decode(data, &page)
}

func (c *Client) GetTrack(ctx context.Context, id string) (*Track, error) {
	data, err := c.do(ctx, &request{method: fasthttp.MethodGet, path: "/api/tracks/" + url.PathEscape(id)})
	if err != nil {
		return nil, err
	}
	var track Track
	return &track, decode(data, &track)
}

func (c *Client) ListComments(ctx context.Context, targetType, id, cursor string, limit int) (*Page[Comment], error) {
	data, err := c.do(ctx, &request{
		method: fasthttp.MethodGet,
		path:   targetPath(targetType, id) + "/comments",
		query:  pageQuery(cursor, limit),
	})
	if err != nil {
		return nil, err
	}
	var page Page[Comment]
	return &page, decode(data, &page)
}

func (c *Client) CreateComment(ctx context.Context, targetType, id, body string) (*Comment, error) {
	data, err := c.do(ctx, &request{
		method: fasthttp.MethodPost,
		path:   targetPath(targetType, id) + "/comments",
		body:   commentdto.CreateCommentReq{Body: body},
	})
	if err != nil {
		return nil, err
	}
	var comment Comment
	return &comment, decode(data, &comment)
}

func (c *Client) DeleteComment(ctx context.Context, id string) error {
	_, err := c.do(ctx, &request{method: fasthttp.MethodDelete, path: "/api/comments/" + url.PathEscape(id)})
	return err
}

func (c *Client) LikeState(ctx context.Context, targetType, id string) (*LikeState, error) {
	data, err := c.do(ctx, &request{method: fasthttp.MethodGet, path: targetPath(targetType, id) + "/like"})
	if err != nil {
		return nil, err
	}
	var state LikeState
	return &state, decode(data, &state)
}

// ToggleLike 返回服务端确认后的点赞状态
func (c *Client) ToggleLike(ctx context.Context, targetType, id string) (*LikeState, error) {
	data, err := c.do(ctx, &request{method: fasthttp.MethodPost, path: targetPath(targetType, id) + "/like"})
	if err != nil {
		return nil, err
	}
	var state LikeState
	return &state, decode(data, &state)
}

// targetType 使用路由中的复数形式 stories / tracks
func targetPath(targetType, id string) string {
	return "/api/" + url.PathEscape(targetType) + "/" + url.PathEscape(id)
}
