package app

import (
	"context"

	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/target"
	"storyhub/system/story/internal/dao"
	"storyhub/system/story/internal/service"

	"go.mongodb.org/mongo-driver/mongo"
)

// MediaChecker 校验引用的媒体文件在对象存储中存在
type MediaChecker interface {
	Exists(ctx context.Context, key string) (bool, error)
}

// App 故事组件应用层
type App struct {
	StoryService *service.StoryService
	Dao          *dao.StoryDao
	media        MediaChecker
	cleaners     []target.Cleaner
	log          *logger.Log
	err          *errorc.ErrorBuilder
}

// NewApp 创建故事组件应用层实例
func NewApp(db *mongo.Database, media MediaChecker, log *logger.Log) *App {
	log = log.WithEntryName("StoryApp")

	storyDao := dao.NewStoryDao(db, log)
	a := NewAppWithRepository(storyDao, media, log)
	a.Dao = storyDao
	return a
}

// NewAppWithRepository 使用指定存储创建应用层，测试中注入内存实现
func NewAppWithRepository(repo service.StoryRepository, media MediaChecker, log *logger.Log) *App {
	return &App{
		StoryService: service.NewStoryService(repo, log),
		media:        media,
		log:          log,
		err:          errorc.NewErrorBuilder("StoryApp"),
	}
}

// AddCleaner 注册故事删除后的级联清理（评论、点赞）
func (a *App) AddCleaner(cleaners ...target.Cleaner) {
	a.cleaners = append(a.cleaners, cleaners...)
}
