package dao

import (
	"context"

	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/core/mvc"
	"storyhub/system/story/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StoryDao 故事数据访问层
type StoryDao struct {
	mvc.IBaseDao[model.Story]
	log  *logger.Log
	err  *errorc.ErrorBuilder
	coll *mongo.Collection
}

// NewStoryDao 创建故事 DAO 实例
func NewStoryDao(db *mongo.Database, log *logger.Log) *StoryDao {
	coll := db.Collection(model.CollectionName)
	return &StoryDao{
		IBaseDao: mvc.NewMongoDao[model.Story](coll),
		log:      log.WithEntryName("StoryDao"),
		err:      errorc.NewErrorBuilder("StoryDao"),
		coll:     coll,
	}
}

// ListPage 游标分页，publishedOnly 为 true 时只返回已发布的故事
func (d *StoryDao) ListPage(ctx context.Context, publishedOnly bool, page *mvc.CursorPage) ([]*model.Story, bool, error) {
	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}
	return d.FindCursorPage(ctx, filter, page)
}

// EnsureIndexes 创建查询所需索引
func (d *StoryDao) EnsureIndexes(ctx context.Context) error {
	_, err := d.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "published", Value: 1}, {Key: "_id", Value: -1}}},
		{Keys: bson.D{{Key: "authorId", Value: 1}}},
	})
	if err != nil {
		return d.err.New("创建故事索引失败", err).DB()
	}
	return nil
}
