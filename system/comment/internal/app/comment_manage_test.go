package app

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"

	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/core/mvc"
	"storyhub/pkg/target"
	"storyhub/system/comment/api/dto"
	"storyhub/system/comment/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCommentRepo struct {
	mu       sync.Mutex
	comments map[string]*model.Comment
}

func (r *memoryCommentRepo) Create(_ context.Context, c *model.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.comments[c.IDHex()] = &cp
	return nil
}

func (r *memoryCommentRepo) FindById(_ context.Context, id string) (*model.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, errorc.New("记录不存在", nil).NotFound()
	}
	cp := *c
	return &cp, nil
}

func (r *memoryCommentRepo) DeleteById(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.comments[id]
	delete(r.comments, id)
	return ok, nil
}

func (r *memoryCommentRepo) ListByTarget(_ context.Context, t target.Type, targetID string, page *mvc.CursorPage) ([]*model.Comment, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Comment
	for _, c := range r.comments {
		if c.TargetType != t || c.TargetID != targetID {
			continue
		}
		if page != nil && page.Cursor != "" && c.IDHex() >= page.Cursor {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IDHex() > out[j].IDHex() })
	if len(out) > page.Size() {
		return out[:page.Size()], true, nil
	}
	return out, false, nil
}

func (r *memoryCommentRepo) DeleteByTarget(_ context.Context, t target.Type, targetID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, c := range r.comments {
		if c.TargetType == t && c.TargetID == targetID {
			delete(r.comments, id)
			n++
		}
	}
	return n, nil
}

// fakeCounter 内存中的内容计数
type fakeCounter struct {
	mu       sync.Mutex
	ids      map[string]bool
	comments map[string]int64
}

func newFakeCounter(ids ...string) *fakeCounter {
	c := &fakeCounter{ids: map[string]bool{}, comments: map[string]int64{}}
	for _, id := range ids {
		c.ids[id] = true
	}
	return c
}

func (f *fakeCounter) Exists(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ids[id], nil
}

func (f *fakeCounter) IncCommentCount(_ context.Context, id string, delta int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comments[id] += delta
	return nil
}

func (f *fakeCounter) IncLikeCount(context.Context, string, int64) error { return nil }

func (f *fakeCounter) SetLikeCount(context.Context, string, int64) error { return nil }

func (f *fakeCounter) ListIDs(context.Context) ([]string, error) { return nil, nil }

func newTestApp() (*App, *memoryCommentRepo, *fakeCounter) {
	repo := &memoryCommentRepo{comments: map[string]*model.Comment{}}
	stories := newFakeCounter("s1", "s2")
	registry := target.Registry{target.Story: stories, target.Track: newFakeCounter()}
	return NewAppWithRepository(repo, registry, logger.Discard()), repo, stories
}

var alice = Author{UserID: "u1", Username: "alice"}

func TestCreateComment(t *testing.T) {
	a, _, stories := newTestApp()
	ctx := context.Background()

	c, err := a.CreateComment(ctx, target.Story, "s1", alice, &dto.CreateCommentReq{Body: "  真好听  "})
	require.NoError(t, err)
	assert.Equal(t, "真好听", c.Body)
	assert.Equal(t, "story", c.TargetType)
	assert.Equal(t, "alice", c.Username)
	assert.Equal(t, int64(1), stories.comments["s1"])
}

func TestCreateCommentRejects(t *testing.T) {
	a, repo, stories := newTestApp()
	ctx := context.Background()

	_, err := a.CreateComment(ctx, target.Story, "s1", alice, &dto.CreateCommentReq{Body: "   "})
	assert.True(t, errorc.IsValidation(err))

	_, err = a.CreateComment(ctx, target.Story, "s1", alice, &dto.CreateCommentReq{Body: strings.Repeat("好", 1001)})
	assert.True(t, errorc.IsValidation(err))

	_, err = a.CreateComment(ctx, target.Story, "nope", alice, &dto.CreateCommentReq{Body: "hi"})
	assert.True(t, errorc.IsNotFound(err))

	_, err = a.CreateComment(ctx, target.Track, "s1", alice, &dto.CreateCommentReq{Body: "hi"})
	assert.True(t, errorc.IsNotFound(err))

	_, err = a.CreateComment(ctx, target.Story, "s1", alice, &dto.CreateCommentReq{Body: strings.Repeat("好", 1000)})
	assert.NoError(t, err)

	assert.Len(t, repo.comments, 1)
	assert.Equal(t, int64(1), stories.comments["s1"])
}

func TestListComments(t *testing.T) {
	a, _, _ := newTestApp()
	ctx := context.Background()

	for _, body := range []string{"1", "2", "3"} {
		_, err := a.CreateComment(ctx, target.Story, "s1", alice, &dto.CreateCommentReq{Body: body})
		require.NoError(t, err)
	}
	_, err := a.CreateComment(ctx, target.Story, "s2", alice, &dto.CreateCommentReq{Body: "other"})
	require.NoError(t, err)

	page, err := a.ListComments(ctx, target.Story, "s1", &mvc.CursorPage{Limit: 2})
	require.NoError(t, err)
	require.Equal(t, 2, page.Count)
	assert.Equal(t, "3", page.Items[0].Body)
	assert.True(t, page.HasMore)

	next, err := a.ListComments(ctx, target.Story, "s1", &mvc.CursorPage{Cursor: page.NextCursor, Limit: 2})
	require.NoError(t, err)
	require.Equal(t, 1, next.Count)
	assert.Equal(t, "1", next.Items[0].Body)

	_, err = a.ListComments(ctx, target.Story, "nope", nil)
	assert.True(t, errorc.IsNotFound(err))
}

func TestDeleteCommentPermissions(t *testing.T) {
	a, repo, stories := newTestApp()
	ctx := context.Background()

	c, err := a.CreateComment(ctx, target.Story, "s1", alice, &dto.CreateCommentReq{Body: "hi"})
	require.NoError(t, err)

	err = a.DeleteComment(ctx, c.ID, Author{UserID: "u2"})
	assert.Equal(t, errorc.ErrorCodeForbidden, errorc.CodeOf(err))

	require.NoError(t, a.DeleteComment(ctx, c.ID, alice))
	assert.Empty(t, repo.comments)
	assert.Equal(t, int64(0), stories.comments["s1"])

	err = a.DeleteComment(ctx, c.ID, alice)
	assert.True(t, errorc.IsNotFound(err))

	c, err = a.CreateComment(ctx, target.Story, "s1", alice, &dto.CreateCommentReq{Body: "again"})
	require.NoError(t, err)
	require.NoError(t, a.DeleteComment(ctx, c.ID, Author{UserID: "root", IsAdmin: true}))
}

func TestDeleteByTarget(t *testing.T) {
	a, repo, _ := newTestApp()
	ctx := context.Background()

	for _, id := range []string{"s1", "s1", "s2"} {
		_, err := a.CreateComment(ctx, target.Story, id, alice, &dto.CreateCommentReq{Body: "x"})
		require.NoError(t, err)
	}

	require.NoError(t, a.DeleteByTarget(ctx, target.Story, "s1"))
	require.Len(t, repo.comments, 1)
	for _, c := range repo.comments {
		assert.Equal(t, "s2", c.TargetID)
	}
}
