package track

import (
	"context"

	"storyhub/pkg/core/logger"
	"storyhub/pkg/target"
	"storyhub/system/track/api/client"
	"storyhub/system/track/internal/app"

	"go.mongodb.org/mongo-driver/mongo"
)

// Module 曲目组件模块门面
type Module struct {
	internalApp *app.App
	Client      *client.TrackClient
}

func NewModule(db *mongo.Database, media app.MediaChecker, log *logger.Log) *Module {
	internalApp := app.NewApp(db, media, log)
	return &Module{
		internalApp: internalApp,
		Client:      client.NewTrackClient(internalApp),
	}
}

// OnDelete 注册曲目删除后的级联清理
func (m *Module) OnDelete(cleaners ...target.Cleaner) {
	m.internalApp.AddCleaner(cleaners...)
}

func (m *Module) Migrate(ctx context.Context) error {
	if m.internalApp.Dao == nil {
		return nil
	}
	return m.internalApp.Dao.EnsureIndexes(ctx)
}
