package comment

import (
	"context"

	"storyhub/pkg/core/logger"
	"storyhub/pkg/target"
	"storyhub/system/comment/internal/app"

	"go.mongodb.org/mongo-driver/mongo"
)

// Module 评论组件模块门面
type Module struct {
	internalApp *app.App
}

func NewModule(db *mongo.Database, targets target.Registry, log *logger.Log) *Module {
	return &Module{internalApp: app.NewApp(db, targets, log)}
}

// DeleteByTarget 作为 target.Cleaner 注册到故事、曲目组件
func (m *Module) DeleteByTarget(ctx context.Context, t target.Type, targetID string) error {
	return m.internalApp.DeleteByTarget(ctx, t, targetID)
}

func (m *Module) Migrate(ctx context.Context) error {
	if m.internalApp.Dao == nil {
		return nil
	}
	return m.internalApp.Dao.EnsureIndexes(ctx)
}
