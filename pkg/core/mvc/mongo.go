package mvc

import (
	"context"
	"errors"

	errorc "storyhub/pkg/core/err"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IBaseDao 定义通用的数据访问接口
type IBaseDao[T any] interface {
	// Create 创建记录
	Create(ctx context.Context, entity *T) error
	// DeleteById 根据ID删除记录，返回是否删除了记录
	DeleteById(ctx context.Context, id string) (bool, error)
	// DeleteByMap 根据多个条件删除记录
	DeleteByMap(ctx context.Context, conditions bson.M) (int64, error)
	// UpdateById 根据ID整体更新记录（_id 不变）
	UpdateById(ctx context.Context, id string, entity *T) error
	// UpdateFieldsById 根据ID更新部分字段
	UpdateFieldsById(ctx context.Context, id string, fields bson.M) error
	// IncById 根据ID原子增减数值字段
	IncById(ctx context.Context, id string, field string, delta int64) error
	// FindById 根据ID查询记录
	FindById(ctx context.Context, id string) (*T, error)
	// FindByMap 根据多个条件查询记录
	FindByMap(ctx context.Context, conditions bson.M) ([]*T, error)
	// FindOneByMap 根据多个条件查询单条记录
	FindOneByMap(ctx context.Context, conditions bson.M) (*T, error)
	// FindCursorPage 按 _id 倒序（即创建时间倒序）游标分页
	FindCursorPage(ctx context.Context, conditions bson.M, page *CursorPage) ([]*T, bool, error)
	// CountByMap 根据多个条件统计记录数
	CountByMap(ctx context.Context, conditions bson.M) (int64, error)
	// ExistsById 判断记录是否存在
	ExistsById(ctx context.Context, id string) (bool, error)
	// ListIDs 只查询 _id
	ListIDs(ctx context.Context, conditions bson.M) ([]string, error)
}

// MongoDaoImpl MongoDB数据访问实现
type MongoDaoImpl[T any] struct {
	coll *mongo.Collection
	err  *errorc.ErrorBuilder
}

// NewMongoDao 创建MongoDB数据访问实例
func NewMongoDao[T any](coll *mongo.Collection) IBaseDao[T] {
	return &MongoDaoImpl[T]{
		coll: coll,
		err:  errorc.NewErrorBuilder("MongoDao:" + coll.Name()),
	}
}

func (d *MongoDaoImpl[T]) Create(ctx context.Context, entity *T) error {
	if _, err := d.coll.InsertOne(ctx, entity); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return d.err.New("记录已存在", err).Conflict()
		}
		return d.err.New("创建记录失败", err).DB()
	}
	return nil
}

func (d *MongoDaoImpl[T]) DeleteById(ctx context.Context, id string) (bool, error) {
	oid, err := ToObjectId(id)
	if err != nil {
		return false, nil
	}
	result, err := d.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, d.err.New("删除记录失败", err).DB()
	}
	return result.DeletedCount > 0, nil
}

func (d *MongoDaoImpl[T]) DeleteByMap(ctx context.Context, conditions bson.M) (int64, error) {
	result, err := d.coll.DeleteMany(ctx, conditions)
	if err != nil {
		return 0, d.err.New("批量删除记录失败", err).DB()
	}
	return result.DeletedCount, nil
}

func (d *MongoDaoImpl[T]) UpdateById(ctx context.Context, id string, entity *T) error {
	oid, err := ToObjectId(id)
	if err != nil {
		return err
	}
	result, err := d.coll.ReplaceOne(ctx, bson.M{"_id": oid}, entity)
	if err != nil {
		return d.err.New("更新记录失败", err).DB()
	}
	if result.MatchedCount == 0 {
		return d.err.New("记录不存在", nil).NotFound()
	}
	return nil
}

func (d *MongoDaoImpl[T]) UpdateFieldsById(ctx context.Context, id string, fields bson.M) error {
	oid, err := ToObjectId(id)
	if err != nil {
		return err
	}
	result, err := d.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return d.err.New("更新记录失败", err).DB()
	}
	if result.MatchedCount == 0 {
		return d.err.New("记录不存在", nil).NotFound()
	}
	return nil
}

func (d *MongoDaoImpl[T]) IncById(ctx context.Context, id string, field string, delta int64) error {
	oid, err := ToObjectId(id)
	if err != nil {
		return err
	}
	result, err := d.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return d.err.New("更新计数失败", err).DB()
	}
	if result.MatchedCount == 0 {
		return d.err.New("记录不存在", nil).NotFound()
	}
	return nil
}

func (d *MongoDaoImpl[T]) FindById(ctx context.Context, id string) (*T, error) {
	oid, err := ToObjectId(id)
	if err != nil {
		return nil, err
	}
	return d.FindOneByMap(ctx, bson.M{"_id": oid})
}

func (d *MongoDaoImpl[T]) FindByMap(ctx context.Context, conditions bson.M) ([]*T, error) {
	return d.find(ctx, conditions)
}

func (d *MongoDaoImpl[T]) FindOneByMap(ctx context.Context, conditions bson.M) (*T, error) {
	var entity T
	err := d.coll.FindOne(ctx, conditions).Decode(&entity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, d.err.New("记录不存在", err).NotFound()
		}
		return nil, d.err.New("查询记录失败", err).DB()
	}
	return &entity, nil
}

func (d *MongoDaoImpl[T]) FindCursorPage(ctx context.Context, conditions bson.M, page *CursorPage) ([]*T, bool, error) {
	filter := bson.M{}
	for k, v := range conditions {
		filter[k] = v
	}
	if page != nil && page.Cursor != "" {
		oid, err := primitive.ObjectIDFromHex(page.Cursor)
		if err != nil {
			return nil, false, d.err.New("无效的分页游标", err).ValidWithCtx()
		}
		filter["_id"] = bson.M{"$lt": oid}
	}

	size := page.Size()
	// 多取一条用于判断是否还有下一页
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(int64(size + 1))

	entities, err := d.find(ctx, filter, opts)
	if err != nil {
		return nil, false, err
	}
	hasMore := len(entities) > size
	if hasMore {
		entities = entities[:size]
	}
	return entities, hasMore, nil
}

func (d *MongoDaoImpl[T]) CountByMap(ctx context.Context, conditions bson.M) (int64, error) {
	n, err := d.coll.CountDocuments(ctx, conditions)
	if err != nil {
		return 0, d.err.New("统计记录数失败", err).DB()
	}
	return n, nil
}

func (d *MongoDaoImpl[T]) ExistsById(ctx context.Context, id string) (bool, error) {
	oid, err := ToObjectId(id)
	if err != nil {
		return false, nil
	}
	n, err := d.coll.CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
	if err != nil {
		return false, d.err.New("查询记录失败", err).DB()
	}
	return n > 0, nil
}

func (d *MongoDaoImpl[T]) ListIDs(ctx context.Context, conditions bson.M) ([]string, error) {
	cursor, err := d.coll.Find(ctx, conditions, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, d.err.New("查询ID失败", err).DB()
	}
	defer cursor.Close(ctx)

	ids := make([]string, 0)
	for cursor.Next(ctx) {
		if oid, ok := cursor.Current.Lookup("_id").ObjectIDOK(); ok {
			ids = append(ids, oid.Hex())
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, d.err.New("遍历ID失败", err).DB()
	}
	return ids, nil
}

// find 通用查询方法
func (d *MongoDaoImpl[T]) find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]*T, error) {
	cursor, err := d.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, d.err.New("查询记录失败", err).DB()
	}
	defer cursor.Close(ctx)

	var entities []*T
	if err = cursor.All(ctx, &entities); err != nil {
		return nil, d.err.New("解析查询结果失败", err).DB()
	}
	return entities, nil
}

// ToObjectId 转换为MongoDB的ObjectId，格式不合法时按记录不存在处理
func ToObjectId(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errorc.New("记录不存在", err).NotFound()
	}
	return oid, nil
}
