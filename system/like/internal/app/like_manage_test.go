package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"storyhub/pkg/core/config"
	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/target"
	"storyhub/system/like/internal/model"

	"github.com/go-redis/cache/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type likeKey struct {
	t        target.Type
	targetID string
	userID   string
}

type memoryLikeRepo struct {
	mu    sync.Mutex
	likes map[likeKey]bool
}

func newMemoryLikeRepo() *memoryLikeRepo {
	return &memoryLikeRepo{likes: map[likeKey]bool{}}
}

func (r *memoryLikeRepo) Exists(_ context.Context, t target.Type, targetID, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.likes[likeKey{t, targetID, userID}], nil
}

func (r *memoryLikeRepo) Insert(_ context.Context, like *model.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := likeKey{like.TargetType, like.TargetID, like.UserID}
	if r.likes[k] {
		return errorc.New("记录已存在", nil).Conflict()
	}
	r.likes[k] = true
	return nil
}

func (r *memoryLikeRepo) Remove(_ context.Context, t target.Type, targetID, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := likeKey{t, targetID, userID}
	ok := r.likes[k]
	delete(r.likes, k)
	return ok, nil
}

func (r *memoryLikeRepo) Count(_ context.Context, t target.Type, targetID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for k := range r.likes {
		if k.t == t && k.targetID == targetID {
			n++
		}
	}
	return n, nil
}

func (r *memoryLikeRepo) DeleteByTarget(_ context.Context, t target.Type, targetID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for k := range r.likes {
		if k.t == t && k.targetID == targetID {
			delete(r.likes, k)
			n++
		}
	}
	return n, nil
}

type fakeCounter struct {
	mu    sync.Mutex
	likes map[string]int64
}

func newFakeCounter(ids ...string) *fakeCounter {
	c := &fakeCounter{likes: map[string]int64{}}
	for _, id := range ids {
		c.likes[id] = 0
	}
	return c
}

func (f *fakeCounter) Exists(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.likes[id]
	return ok, nil
}

func (f *fakeCounter) IncCommentCount(context.Context, string, int64) error { return nil }

func (f *fakeCounter) IncLikeCount(_ context.Context, id string, delta int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.likes[id] += delta
	return nil
}

func (f *fakeCounter) SetLikeCount(_ context.Context, id string, n int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.likes[id] = n
	return nil
}

func (f *fakeCounter) ListIDs(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0, len(f.likes))
	for id := range f.likes {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeCounter) get(id string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.likes[id]
}

func newTestApp(withCache bool) (*App, *memoryLikeRepo, *fakeCounter) {
	repo := newMemoryLikeRepo()
	tracks := newFakeCounter("t1", "t2")
	opts := Options{
		Targets: target.Registry{target.Track: tracks, target.Story: newFakeCounter()},
		Config:  config.LikeConfig{CountCacheTTL: 60},
	}
	if withCache {
		opts.Cache = cache.New(&cache.Options{LocalCache: cache.NewTinyLFU(100, time.Minute)})
	}
	return NewAppWithRepository(repo, opts, logger.Discard()), repo, tracks
}

func TestToggle(t *testing.T) {
	for _, withCache := range []bool{false, true} {
		a, _, tracks := newTestApp(withCache)
		ctx := context.Background()

		state, err := a.Toggle(ctx, target.Track, "t1", "u1")
		require.NoError(t, err)
		assert.True(t, state.Liked)
		assert.Equal(t, int64(1), state.LikeCount)

		state, err = a.Toggle(ctx, target.Track, "t1", "u2")
		require.NoError(t, err)
		assert.Equal(t, int64(2), state.LikeCount)

		state, err = a.Toggle(ctx, target.Track, "t1", "u1")
		require.NoError(t, err)
		assert.False(t, state.Liked)
		assert.Equal(t, int64(1), state.LikeCount)
		assert.Equal(t, int64(1), tracks.get("t1"))

		state, err = a.State(ctx, target.Track, "t1", "u2")
		require.NoError(t, err)
		assert.True(t, state.Liked)
		assert.Equal(t, int64(1), state.LikeCount)

		state, err = a.State(ctx, target.Track, "t1", "")
		require.NoError(t, err)
		assert.False(t, state.Liked)
		assert.Equal(t, int64(1), state.LikeCount)
	}
}

func TestToggleUnknownTarget(t *testing.T) {
	a, repo, _ := newTestApp(false)
	ctx := context.Background()

	_, err := a.Toggle(ctx, target.Track, "missing", "u1")
	assert.True(t, errorc.IsNotFound(err))

	_, err = a.State(ctx, target.Story, "t1", "u1")
	assert.True(t, errorc.IsNotFound(err))

	_, err = a.Toggle(ctx, target.Type("album"), "t1", "u1")
	assert.True(t, errorc.IsValidation(err))

	assert.Empty(t, repo.likes)
}

func TestToggleConcurrentSameUser(t *testing.T) {
	a, repo, tracks := newTestApp(false)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := a.Toggle(ctx, target.Track, "t2", "u1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// 偶数次切换后回到未点赞
	assert.Empty(t, repo.likes)
	assert.Equal(t, int64(0), tracks.get("t2"))
}

func TestDeleteByTargetAndReconcile(t *testing.T) {
	a, repo, tracks := newTestApp(true)
	ctx := context.Background()

	for _, u := range []string{"u1", "u2", "u3"} {
		_, err := a.Toggle(ctx, target.Track, "t1", u)
		require.NoError(t, err)
	}
	_, err := a.Toggle(ctx, target.Track, "t2", "u1")
	require.NoError(t, err)

	// 制造计数漂移
	require.NoError(t, tracks.SetLikeCount(ctx, "t1", 42))
	fixed, err := a.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fixed)
	assert.Equal(t, int64(3), tracks.get("t1"))
	assert.Equal(t, int64(1), tracks.get("t2"))

	require.NoError(t, a.DeleteByTarget(ctx, target.Track, "t1"))
	assert.Len(t, repo.likes, 1)

	state, err := a.State(ctx, target.Track, "t1", "u1")
	require.NoError(t, err)
	assert.False(t, state.Liked)
	assert.Equal(t, int64(0), state.LikeCount)
}

func TestReconcilerCronExpr(t *testing.T) {
	a, _, _ := newTestApp(false)

	r := NewReconciler(a, "not a cron")
	assert.True(t, errorc.IsValidation(r.Start()))

	r = NewReconciler(a, "@every 1h")
	require.NoError(t, r.Start())
	<-r.Stop().Done()
}

func TestLocalLocker(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	release, err := l.Lock(ctx, "k")
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		r, _ := l.Lock(ctx, "k")
		close(acquired)
		r()
	}()

	select {
	case <-acquired:
		t.Fatal("lock acquired twice")
	case <-time.After(50 * time.Millisecond):
	}
	release()
	<-acquired

	assert.Eventually(t, func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		return len(l.locks) == 0
	}, time.Second, 10*time.Millisecond)
}
