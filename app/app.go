package app

import (
	"context"

	"storyhub/pkg/core/config"
	"storyhub/pkg/core/fiber_handle"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/core/start"
	"storyhub/pkg/storage"
	"storyhub/pkg/target"
	"storyhub/system/comment"
	"storyhub/system/like"
	"storyhub/system/story"
	"storyhub/system/stream"
	"storyhub/system/track"

	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// App 应用组合根，所有客户端在这里显式创建并注入各组件
type App struct {
	Configures *start.Configures
	Log        *logger.Log

	Mongo   *mongo.Client
	DB      *mongo.Database
	RDB     *redis.Client
	Cache   *cache.Cache
	Store   storage.ObjectStore
	Metrics *fiber_handle.Metrics
	Targets target.Registry

	StoryModule   *story.Module
	TrackModule   *track.Module
	CommentModule *comment.Module
	LikeModule    *like.Module
	StreamModule  *stream.Module
}

func NewApp(ctx context.Context, configures *start.Configures) (*App, error) {
	cfg := configures.Config
	log := configures.Logger

	mongoClient, db, err := config.InitMongo(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}
	log.WithField("db", cfg.Mongo.DBName).Info("连接 MongoDB 成功")

	store, err := storage.New(ctx, cfg.Storage, log)
	if err != nil {
		_ = mongoClient.Disconnect(context.Background())
		return nil, err
	}

	rdb := configures.EnableRedis()
	a := &App{
		Configures: configures,
		Log:        log,
		Mongo:      mongoClient,
		DB:         db,
		RDB:        rdb,
		Cache:      configures.EnableCache(rdb),
		Store:      store,
		Metrics:    fiber_handle.NewMetrics(cfg.AppName),
	}

	a.StreamModule = stream.NewModule(store, cfg.Stream.MaxAge(), a.Metrics, log)
	a.StoryModule = story.NewModule(db, a.StreamModule.Inspector, log)
	a.TrackModule = track.NewModule(db, a.StreamModule.Inspector, log)

	a.Targets = target.Registry{
		target.Story: a.StoryModule.Client,
		target.Track: a.TrackModule.Client,
	}

	likeOpts := like.Options{
		Targets: a.Targets,
		Cache:   a.Cache,
		Config:  cfg.Like,
	}
	if locker := configures.EnableLocker(rdb); locker != nil {
		likeOpts.Locker = like.NewRedisLocker(locker)
	}
	a.CommentModule = comment.NewModule(db, a.Targets, log)
	a.LikeModule = like.NewModule(db, likeOpts, log)

	// 删除故事、曲目时级联清理评论与点赞
	a.StoryModule.OnDelete(a.CommentModule.DeleteByTarget, a.LikeModule.DeleteByTarget)
	a.TrackModule.OnDelete(a.CommentModule.DeleteByTarget, a.LikeModule.DeleteByTarget)

	return a, nil
}

// Migrate 创建各集合索引
func (a *App) Migrate(ctx context.Context) error {
	migrations := []func(context.Context) error{
		a.StoryModule.Migrate,
		a.TrackModule.Migrate,
		a.CommentModule.Migrate,
		a.LikeModule.Migrate,
	}
	for _, migrate := range migrations {
		if err := migrate(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Start 启动后台任务
func (a *App) Start() error {
	return a.LikeModule.StartReconciler()
}

// Close 停止后台任务并断开连接
func (a *App) Close(ctx context.Context) {
	select {
	case <-a.LikeModule.StopReconciler().Done():
	case <-ctx.Done():
		a.Log.Warn("等待点赞计数校准任务结束超时")
	}
	if a.RDB != nil {
		if err := a.RDB.Close(); err != nil {
			a.Log.WithErr(err).Warn("关闭 redis 连接失败")
		}
	}
	if err := a.Mongo.Disconnect(ctx); err != nil {
		a.Log.WithErr(err).Warn("断开 MongoDB 连接失败")
	}
}
