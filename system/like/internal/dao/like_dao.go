package dao

import (
	"context"

	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/core/mvc"
	"storyhub/pkg/target"
	"storyhub/system/like/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LikeDao 点赞数据访问层
type LikeDao struct {
	mvc.IBaseDao[model.Like]
	log  *logger.Log
	err  *errorc.ErrorBuilder
	coll *mongo.Collection
}

func NewLikeDao(db *mongo.Database, log *logger.Log) *LikeDao {
	coll := db.Collection(model.CollectionName)
	return &LikeDao{
		IBaseDao: mvc.NewMongoDao[model.Like](coll),
		log:      log.WithEntryName("LikeDao"),
		err:      errorc.NewErrorBuilder("LikeDao"),
		coll:     coll,
	}
}

func byTarget(t target.Type, targetID string) bson.M {
	return bson.M{"targetType": t, "targetId": targetID}
}

func byUser(t target.Type, targetID, userID string) bson.M {
	return bson.M{"targetType": t, "targetId": targetID, "userId": userID}
}

func (d *LikeDao) Exists(ctx context.Context, t target.Type, targetID, userID string) (bool, error) {
	n, err := d.CountByMap(ctx, byUser(t, targetID, userID))
	return n > 0, err
}

// Insert 重复点赞时返回 Conflict
func (d *LikeDao) Insert(ctx context.Context, like *model.Like) error {
	return d.Create(ctx, like)
}

// Remove 返回是否确实删除了一条记录
func (d *LikeDao) Remove(ctx context.Context, t target.Type, targetID, userID string) (bool, error) {
	n, err := d.DeleteByMap(ctx, byUser(t, targetID, userID))
	return n > 0, err
}

func (d *LikeDao) Count(ctx context.Context, t target.Type, targetID string) (int64, error) {
	return d.CountByMap(ctx, byTarget(t, targetID))
}

func (d *LikeDao) DeleteByTarget(ctx context.Context, t target.Type, targetID string) (int64, error) {
	return d.DeleteByMap(ctx, byTarget(t, targetID))
}

func (d *LikeDao) EnsureIndexes(ctx context.Context) error {
	_, err := d.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "targetType", Value: 1}, {Key: "targetId", Value: 1}, {Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return d.err.New("创建点赞索引失败", err).DB()
	}
	return nil
}
