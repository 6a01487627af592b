package sdk

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrTogglePending 上一次切换尚未得到服务端确认
	ErrTogglePending = errors.New("storyhub: like toggle pending")
	// ErrEmptyLikeState 服务端未返回点赞状态
	ErrEmptyLikeState = errors.New("storyhub: empty like state")
)

// LikeAPI LikeToggle 依赖的远端接口，*Client 实现了它
type LikeAPI interface {
	LikeState(ctx context.Context, targetType, id string) (*LikeState, error)
	ToggleLike(ctx context.Context, targetType, id string) (*LikeState, error)
}

var _ LikeAPI = (*Client)(nil)

// LikeToggle 单个内容的乐观点赞状态机。
//
// confirmed 是服务端最后一次确认的状态；pending 为 true 时对外可见的状态
// 是 confirmed 翻转后的结果。请求失败时丢弃 pending，回到 confirmed。
type LikeToggle struct {
	api        LikeAPI
	targetType string
	id         string

	mu        sync.Mutex
	confirmed LikeState
	pending   bool
	// version 每次发起切换加一，Refresh 据此丢弃过期结果
	version uint64
}

func NewLikeToggle(api LikeAPI, targetType, id string, initial LikeState) *LikeToggle {
	return &LikeToggle{
		api:        api,
		targetType: targetType,
		id:         id,
		confirmed:  initial,
	}
}

// State 对外可见的状态
func (t *LikeToggle) State() LikeState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible()
}

// Pending 是否有未确认的切换
func (t *LikeToggle) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

// Toggle 立即翻转可见状态并请求服务端，返回服务端确认后的状态。
// 失败时可见状态回滚到切换前。
func (t *LikeToggle) Toggle(ctx context.Context) (LikeState, error) {
	t.mu.Lock()
	if t.pending {
		state := t.visible()
		t.mu.Unlock()
		return state, ErrTogglePending
	}
	t.pending = true
	t.version++
	t.mu.Unlock()

	state, err := t.api.ToggleLike(ctx, t.targetType, t.id)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = false
	if err == nil && state == nil {
		err = ErrEmptyLikeState
	}
	if err != nil {
		return t.confirmed, err
	}
	t.confirmed = *state
	return t.confirmed, nil
}

// Refresh 从服务端拉取最新状态；有未确认的切换时直接返回 ErrTogglePending
func (t *LikeToggle) Refresh(ctx context.Context) (LikeState, error) {
	t.mu.Lock()
	if t.pending {
		state := t.visible()
		t.mu.Unlock()
		return state, ErrTogglePending
	}
	version := t.version
	t.mu.Unlock()

	state, err := t.api.LikeState(ctx, t.targetType, t.id)
	if err == nil && state == nil {
		err = ErrEmptyLikeState
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		return t.visible(), err
	}
	// 拉取期间发起过切换，以切换的结果为准
	if t.version == version {
		t.confirmed = *state
	}
	return t.visible(), nil
}

func (t *LikeToggle) visible() LikeState {
	if !t.pending {
		return t.confirmed
	}
	state := LikeState{Liked: !t.confirmed.Liked, LikeCount: t.confirmed.LikeCount}
	if state.Liked {
		state.LikeCount++
	} else if state.LikeCount > 0 {
		state.LikeCount--
	}
	return state
}
