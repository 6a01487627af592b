package service

import (
	"context"

	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/target"
	"storyhub/system/like/internal/model"
)

// LikeRepository 点赞存储，由 dao.LikeDao 实现
type LikeRepository interface {
	Exists(ctx context.Context, t target.Type, targetID, userID string) (bool, error)
	Insert(ctx context.Context, like *model.Like) error
	Remove(ctx context.Context, t target.Type, targetID, userID string) (bool, error)
	Count(ctx context.Context, t target.Type, targetID string) (int64, error)
	DeleteByTarget(ctx context.Context, t target.Type, targetID string) (int64, error)
}

type LikeService struct {
	Dao LikeRepository
	log *logger.Log
	err *errorc.ErrorBuilder
}

func NewLikeService(dao LikeRepository, log *logger.Log) *LikeService {
	return &LikeService{
		Dao: dao,
		log: log.WithEntryName("LikeService"),
		err: errorc.NewErrorBuilder("LikeService"),
	}
}

func (s *LikeService) Liked(ctx context.Context, t target.Type, targetID, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return s.Dao.Exists(ctx, t, targetID, userID)
}

// Toggle 已赞则取消，未赞则点赞；返回切换后的状态和计数增量
func (s *LikeService) Toggle(ctx context.Context, t target.Type, targetID, userID string) (bool, int64, error) {
	liked, err := s.Dao.Exists(ctx, t, targetID, userID)
	if err != nil {
		return false, 0, err
	}

	if liked {
		removed, err := s.Dao.Remove(ctx, t, targetID, userID)
		if err != nil {
			return false, 0, err
		}
		if !removed {
			return false, 0, nil
		}
		return false, -1, nil
	}

	like := &model.Like{TargetType: t, TargetID: targetID, UserID: userID}
	like.Init()
	if err := s.Dao.Insert(ctx, like); err != nil {
		// 唯一索引冲突说明已被并发点赞
		if errorc.CodeOf(err) == errorc.ErrorCodeConflict {
			return true, 0, nil
		}
		return false, 0, err
	}
	return true, 1, nil
}

func (s *LikeService) Count(ctx context.Context, t target.Type, targetID string) (int64, error) {
	return s.Dao.Count(ctx, t, targetID)
}

func (s *LikeService) DeleteByTarget(ctx context.Context, t target.Type, targetID string) (int64, error) {
	return s.Dao.DeleteByTarget(ctx, t, targetID)
}
