package service

import (
	"context"

	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/core/mvc"
	"storyhub/system/track/internal/model"

	"go.mongodb.org/mongo-driver/bson"
)

// TrackRepository 曲目存储，由 dao.TrackDao 实现
type TrackRepository interface {
	Create(ctx context.Context, entity *model.Track) error
	FindById(ctx context.Context, id string) (*model.Track, error)
	UpdateById(ctx context.Context, id string, entity *model.Track) error
	UpdateFieldsById(ctx context.Context, id string, fields bson.M) error
	IncById(ctx context.Context, id string, field string, delta int64) error
	DeleteById(ctx context.Context, id string) (bool, error)
	ExistsById(ctx context.Context, id string) (bool, error)
	ListIDs(ctx context.Context, conditions bson.M) ([]string, error)
	ListPage(ctx context.Context, genre string, page *mvc.CursorPage) ([]*model.Track, bool, error)
}

type TrackService struct {
	Dao TrackRepository
	log *logger.Log
	err *errorc.ErrorBuilder
}

func NewTrackService(dao TrackRepository, log *logger.Log) *TrackService {
	return &TrackService{
		Dao: dao,
		log: log.WithEntryName("TrackService"),
		err: errorc.NewErrorBuilder("TrackService"),
	}
}

func (s *TrackService) FindById(ctx context.Context, id string) (*model.Track, error) {
	track, err := s.Dao.FindById(ctx, id)
	if err != nil {
		if errorc.IsNotFound(err) {
			return nil, s.err.New("曲目不存在", err).NotFound()
		}
		return nil, err
	}
	return track, nil
}

func (s *TrackService) Create(ctx context.Context, track *model.Track) error {
	track.Init()
	return s.Dao.Create(ctx, track)
}

func (s *TrackService) Update(ctx context.Context, track *model.Track) error {
	track.Init()
	return s.Dao.UpdateById(ctx, track.IDHex(), track)
}

func (s *TrackService) Delete(ctx context.Context, id string) error {
	deleted, err := s.Dao.DeleteById(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return s.err.New("曲目不存在", nil).NotFound()
	}
	return nil
}

func (s *TrackService) ListPage(ctx context.Context, genre string, page *mvc.CursorPage) ([]*model.Track, bool, error) {
	return s.Dao.ListPage(ctx, genre, page)
}

func (s *TrackService) Exists(ctx context.Context, id string) (bool, error) {
	return s.Dao.ExistsById(ctx, id)
}

func (s *TrackService) IncCommentCount(ctx context.Context, id string, delta int64) error {
	return s.Dao.IncById(ctx, id, "commentCount", delta)
}

func (s *TrackService) IncLikeCount(ctx context.Context, id string, delta int64) error {
	return s.Dao.IncById(ctx, id, "likeCount", delta)
}

func (s *TrackService) SetLikeCount(ctx context.Context, id string, n int64) error {
	return s.Dao.UpdateFieldsById(ctx, id, bson.M{"likeCount": n})
}

func (s *TrackService) ListIDs(ctx context.Context) ([]string, error) {
	return s.Dao.ListIDs(ctx, bson.M{})
}
