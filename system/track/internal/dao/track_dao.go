package dao

import (
	"context"

	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/core/mvc"
	"storyhub/system/track/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TrackDao 曲目数据访问层
type TrackDao struct {
	mvc.IBaseDao[model.Track]
	log  *logger.Log
	err  *errorc.ErrorBuilder
	coll *mongo.Collection
}

func NewTrackDao(db *mongo.Database, log *logger.Log) *TrackDao {
	coll := db.Collection(model.CollectionName)
	return &TrackDao{
		IBaseDao: mvc.NewMongoDao[model.Track](coll),
		log:      log.WithEntryName("TrackDao"),
		err:      errorc.NewErrorBuilder("TrackDao"),
		coll:     coll,
	}
}

// ListPage 游标分页，genre 为空时不过滤
func (d *TrackDao) ListPage(ctx context.Context, genre string, page *mvc.CursorPage) ([]*model.Track, bool, error) {
	filter := bson.M{}
	if genre != "" {
		filter["genre"] = genre
	}
	return d.FindCursorPage(ctx, filter, page)
}

func (d *TrackDao) EnsureIndexes(ctx context.Context) error {
	_, err := d.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "genre", Value: 1}, {Key: "_id", Value: -1}}},
	})
	if err != nil {
		return d.err.New("创建曲目索引失败", err).DB()
	}
	return nil
}
