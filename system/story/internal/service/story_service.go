package service

import (
	"context"

	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/core/mvc"
	"storyhub/system/story/internal/model"

	"go.mongodb.org/mongo-driver/bson"
)

// StoryRepository 故事存储，由 dao.StoryDao 实现
type StoryRepository interface {
	Create(ctx context.Context, entity *model.Story) error
	FindById(ctx context.Context, id string) (*model.Story, error)
	UpdateById(ctx context.Context, id string, entity *model.Story) error
	UpdateFieldsById(ctx context.Context, id string, fields bson.M) error
	IncById(ctx context.Context, id string, field string, delta int64) error
	DeleteById(ctx context.Context, id string) (bool, error)
	ExistsById(ctx context.Context, id string) (bool, error)
	ListIDs(ctx context.Context, conditions bson.M) ([]string, error)
	ListPage(ctx context.Context, publishedOnly bool, page *mvc.CursorPage) ([]*model.Story, bool, error)
}

// StoryService 故事业务逻辑层
type StoryService struct {
	Dao StoryRepository
	log *logger.Log
	err *errorc.ErrorBuilder
}

// NewStoryService 创建故事服务实例
func NewStoryService(dao StoryRepository, log *logger.Log) *StoryService {
	return &StoryService{
		Dao: dao,
		log: log.WithEntryName("StoryService"),
		err: errorc.NewErrorBuilder("StoryService"),
	}
}

func (s *StoryService) FindById(ctx context.Context, id string) (*model.Story, error) {
	story, err := s.Dao.FindById(ctx, id)
	if err != nil {
		if errorc.IsNotFound(err) {
			return nil, s.err.New("故事不存在", err).NotFound()
		}
		return nil, err
	}
	return story, nil
}

// FindPublished 只返回已发布的故事，未发布视为不存在
func (s *StoryService) FindPublished(ctx context.Context, id string) (*model.Story, error) {
	story, err := s.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if !story.Published {
		return nil, s.err.New("故事不存在", nil).NotFound()
	}
	return story, nil
}

func (s *StoryService) Create(ctx context.Context, story *model.Story) error {
	story.Init()
	return s.Dao.Create(ctx, story)
}

func (s *StoryService) Update(ctx context.Context, story *model.Story) error {
	story.Init()
	return s.Dao.UpdateById(ctx, story.IDHex(), story)
}

func (s *StoryService) Delete(ctx context.Context, id string) error {
	deleted, err := s.Dao.DeleteById(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return s.err.New("故事不存在", nil).NotFound()
	}
	return nil
}

func (s *StoryService) ListPage(ctx context.Context, publishedOnly bool, page *mvc.CursorPage) ([]*model.Story, bool, error) {
	return s.Dao.ListPage(ctx, publishedOnly, page)
}

func (s *StoryService) Exists(ctx context.Context, id string) (bool, error) {
	return s.Dao.ExistsById(ctx, id)
}

func (s *StoryService) IncCommentCount(ctx context.Context, id string, delta int64) error {
	return s.Dao.IncById(ctx, id, "commentCount", delta)
}

func (s *StoryService) IncLikeCount(ctx context.Context, id string, delta int64) error {
	return s.Dao.IncById(ctx, id, "likeCount", delta)
}

func (s *StoryService) SetLikeCount(ctx context.Context, id string, n int64) error {
	return s.Dao.UpdateFieldsById(ctx, id, bson.M{"likeCount": n})
}

func (s *StoryService) ListIDs(ctx context.Context) ([]string, error) {
	return s.Dao.ListIDs(ctx, bson.M{})
}
