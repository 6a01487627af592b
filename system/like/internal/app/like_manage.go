package app

import (
	"context"

	"storyhub/pkg/target"
	"storyhub/system/like/api/dto"

	"github.com/go-redis/cache/v9"
)

// Toggle 切换当前用户的点赞状态，同一用户对同一内容的切换串行执行
func (a *App) Toggle(ctx context.Context, t target.Type, targetID, userID string) (*dto.LikeStateDTO, error) {
	counter, err := a.targets.MustExist(ctx, t, targetID)
	if err != nil {
		return nil, err
	}

	release, err := a.locker.Lock(ctx, lockKey(t, targetID, userID))
	if err != nil {
		return nil, err
	}
	defer release()

	liked, delta, err := a.LikeService.Toggle(ctx, t, targetID, userID)
	if err != nil {
		return nil, err
	}
	a.invalidate(ctx, t, targetID)

	if delta != 0 {
		if err := counter.IncLikeCount(ctx, targetID, delta); err != nil {
			// 反范式计数由校准任务修正
			a.log.WithTrace(ctx).WithUserID(userID).WithErr(err).WithField("targetId", targetID).Warn("更新点赞数失败")
		}
	}

	count, err := a.count(ctx, t, targetID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeStateDTO{Liked: liked, LikeCount: count}, nil
}

// State userID 为空时 liked 恒为 false
func (a *App) State(ctx context.Context, t target.Type, targetID, userID string) (*dto.LikeStateDTO, error) {
	if _, err := a.targets.MustExist(ctx, t, targetID); err != nil {
		return nil, err
	}

	liked, err := a.LikeService.Liked(ctx, t, targetID, userID)
	if err != nil {
		return nil, err
	}
	count, err := a.count(ctx, t, targetID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeStateDTO{Liked: liked, LikeCount: count}, nil
}

// DeleteByTarget 内容删除后的级联清理
func (a *App) DeleteByTarget(ctx context.Context, t target.Type, targetID string) error {
	n, err := a.LikeService.DeleteByTarget(ctx, t, targetID)
	if err != nil {
		return err
	}
	a.invalidate(ctx, t, targetID)
	a.log.WithTrace(ctx).WithField("targetId", targetID).WithField("count", n).Info("删除内容下的点赞")
	return nil
}

// count 点赞数以 likes 集合为准，结果缓存 countTTL
func (a *App) count(ctx context.Context, t target.Type, targetID string) (int64, error) {
	if a.cache == nil {
		return a.LikeService.Count(ctx, t, targetID)
	}

	var n int64
	err := a.cache.Once(&cache.Item{
		Ctx:   ctx,
		Key:   countKey(t, targetID),
		Value: &n,
		TTL:   a.countTTL,
		Do: func(*cache.Item) (interface{}, error) {
			return a.LikeService.Count(ctx, t, targetID)
		},
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (a *App) invalidate(ctx context.Context, t target.Type, targetID string) {
	if a.cache == nil {
		return
	}
	if err := a.cache.Delete(ctx, countKey(t, targetID)); err != nil {
		a.log.WithTrace(ctx).WithErr(err).WithField("targetId", targetID).Warn("清除点赞数缓存失败")
	}
}
