package story

import (
	"context"

	"storyhub/pkg/core/logger"
	"storyhub/pkg/target"
	"storyhub/system/story/api/client"
	"storyhub/system/story/internal/app"

	"go.mongodb.org/mongo-driver/mongo"
)

// Module 故事组件模块门面
type Module struct {
	internalApp *app.App
	// Client 对外客户端，供评论、点赞组件维护计数
	Client *client.StoryClient
	log    *logger.Log
}

// NewModule 创建故事组件模块
func NewModule(db *mongo.Database, media app.MediaChecker, log *logger.Log) *Module {
	internalApp := app.NewApp(db, media, log)
	return &Module{
		internalApp: internalApp,
		Client:      client.NewStoryClient(internalApp),
		log:         log.WithEntryName("StoryModule"),
	}
}

// OnDelete 注册故事删除后的级联清理
func (m *Module) OnDelete(cleaners ...target.Cleaner) {
	m.internalApp.AddCleaner(cleaners...)
}

// Migrate 创建集合索引
func (m *Module) Migrate(ctx context.Context) error {
	if m.internalApp.Dao == nil {
		return nil
	}
	return m.internalApp.Dao.EnsureIndexes(ctx)
}
