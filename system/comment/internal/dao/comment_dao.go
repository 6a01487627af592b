package dao

import (
	"context"

	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/core/mvc"
	"storyhub/pkg/target"
	"storyhub/system/comment/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CommentDao 评论数据访问层
type CommentDao struct {
	mvc.IBaseDao[model.Comment]
	log  *logger.Log
	err  *errorc.ErrorBuilder
	coll *mongo.Collection
}

func NewCommentDao(db *mongo.Database, log *logger.Log) *CommentDao {
	coll := db.Collection(model.CollectionName)
	return &CommentDao{
		IBaseDao: mvc.NewMongoDao[model.Comment](coll),
		log:      log.WithEntryName("CommentDao"),
		err:      errorc.NewErrorBuilder("CommentDao"),
		coll:     coll,
	}
}

func byTarget(t target.Type, targetID string) bson.M {
	return bson.M{"targetType": t, "targetId": targetID}
}

// ListByTarget 某个内容下的评论，按时间倒序
func (d *CommentDao) ListByTarget(ctx context.Context, t target.Type, targetID string, page *mvc.CursorPage) ([]*model.Comment, bool, error) {
	return d.FindCursorPage(ctx, byTarget(t, targetID), page)
}

// DeleteByTarget 删除某个内容下的全部评论
func (d *CommentDao) DeleteByTarget(ctx context.Context, t target.Type, targetID string) (int64, error) {
	return d.DeleteByMap(ctx, byTarget(t, targetID))
}

func (d *CommentDao) EnsureIndexes(ctx context.Context) error {
	_, err := d.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "targetType", Value: 1}, {Key: "targetId", Value: 1}, {Key: "_id", Value: -1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	})
	if err != nil {
		return d.err.New("创建评论索引失败", err).DB()
	}
	return nil
}
