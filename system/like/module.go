package like

import (
	"context"

	"storyhub/pkg/core/logger"
	"storyhub/pkg/target"
	"storyhub/system/like/internal/app"

	"github.com/bsm/redislock"
	"go.mongodb.org/mongo-driver/mongo"
)

// Options 点赞组件依赖
type Options = app.Options

// Module 点赞组件模块门面
type Module struct {
	internalApp *app.App
	reconciler  *app.Reconciler
}

func NewModule(db *mongo.Database, opts Options, log *logger.Log) *Module {
	internalApp := app.NewApp(db, opts, log)
	return &Module{
		internalApp: internalApp,
		reconciler:  app.NewReconciler(internalApp, opts.Config.ReconcileSpec()),
	}
}

// NewRedisLocker 基于 redislock 客户端创建点赞锁
func NewRedisLocker(client *redislock.Client) app.Locker {
	return app.NewRedisLocker(client)
}

func (m *Module) DeleteByTarget(ctx context.Context, t target.Type, targetID string) error {
	return m.internalApp.DeleteByTarget(ctx, t, targetID)
}

func (m *Module) Migrate(ctx context.Context) error {
	if m.internalApp.Dao == nil {
		return nil
	}
	return m.internalApp.Dao.EnsureIndexes(ctx)
}

// StartReconciler 启动点赞数定时校准
func (m *Module) StartReconciler() error {
	return m.reconciler.Start()
}

func (m *Module) StopReconciler() context.Context {
	return m.reconciler.Stop()
}
