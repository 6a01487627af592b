package service

import (
	"context"

	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/core/mvc"
	"storyhub/pkg/target"
	"storyhub/system/comment/internal/model"
)

// CommentRepository 评论存储，由 dao.CommentDao 实现
type CommentRepository interface {
	Create(ctx context.Context, entity *model.Comment) error
	FindById(ctx context.Context, id string) (*model.Comment, error)
	DeleteById(ctx context.Context, id string) (bool, error)
	ListByTarget(ctx context.Context, t target.Type, targetID string, page *mvc.CursorPage) ([]*model.Comment, bool, error)
	DeleteByTarget(ctx context.Context, t target.Type, targetID string) (int64, error)
}

type CommentService struct {
	Dao CommentRepository
	log *logger.Log
	err *errorc.ErrorBuilder
}

func NewCommentService(dao CommentRepository, log *logger.Log) *CommentService {
	return &CommentService{
		Dao: dao,
		log: log.WithEntryName("CommentService"),
		err: errorc.NewErrorBuilder("CommentService"),
	}
}

func (s *CommentService) FindById(ctx context.Context, id string) (*model.Comment, error) {
	comment, err := s.Dao.FindById(ctx, id)
	if err != nil {
		if errorc.IsNotFound(err) {
			return nil, s.err.New("评论不存在", err).NotFound()
		}
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Create(ctx context.Context, comment *model.Comment) error {
	comment.Init()
	return s.Dao.Create(ctx, comment)
}

// Delete 返回 false 表示评论已被并发删除
func (s *CommentService) Delete(ctx context.Context, id string) (bool, error) {
	return s.Dao.DeleteById(ctx, id)
}

func (s *CommentService) ListByTarget(ctx context.Context, t target.Type, targetID string, page *mvc.CursorPage) ([]*model.Comment, bool, error) {
	return s.Dao.ListByTarget(ctx, t, targetID, page)
}

func (s *CommentService) DeleteByTarget(ctx context.Context, t target.Type, targetID string) (int64, error) {
	return s.Dao.DeleteByTarget(ctx, t, targetID)
}
