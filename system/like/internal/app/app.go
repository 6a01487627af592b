package app

import (
	"fmt"
	"time"

	"storyhub/pkg/core/config"
	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/target"
	"storyhub/system/like/internal/dao"
	"storyhub/system/like/internal/service"

	"github.com/go-redis/cache/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// App 点赞组件应用层
type App struct {
	LikeService *service.LikeService
	Dao         *dao.LikeDao
	targets     target.Registry
	locker      Locker
	cache       *cache.Cache
	countTTL    time.Duration
	log         *logger.Log
	err         *errorc.ErrorBuilder
}

// Options 点赞组件依赖，Locker 为空时使用进程内锁
type Options struct {
	Targets target.Registry
	Locker  Locker
	Cache   *cache.Cache
	Config  config.LikeConfig
}

func NewApp(db *mongo.Database, opts Options, log *logger.Log) *App {
	log = log.WithEntryName("LikeApp")

	likeDao := dao.NewLikeDao(db, log)
	a := NewAppWithRepository(likeDao, opts, log)
	a.Dao = likeDao
	return a
}

func NewAppWithRepository(repo service.LikeRepository, opts Options, log *logger.Log) *App {
	locker := opts.Locker
	if locker == nil {
		locker = NewLocalLocker()
	}
	return &App{
		LikeService: service.NewLikeService(repo, log),
		targets:     opts.Targets,
		locker:      locker,
		cache:       opts.Cache,
		countTTL:    opts.Config.CountTTL(),
		log:         log,
		err:         errorc.NewErrorBuilder("LikeApp"),
	}
}

func lockKey(t target.Type, targetID, userID string) string {
	return fmt.Sprintf("like:lock:%s:%s:%s", t, targetID, userID)
}

func countKey(t target.Type, targetID string) string {
	return fmt.Sprintf("like:count:%s:%s", t, targetID)
}
