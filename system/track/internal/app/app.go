package app

import (
	"context"

	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/target"
	"storyhub/system/track/internal/dao"
	"storyhub/system/track/internal/service"

	"go.mongodb.org/mongo-driver/mongo"
)

// MediaChecker 校验引用的媒体文件在对象存储中存在
type MediaChecker interface {
	Exists(ctx context.Context, key string) (bool, error)
}

// App 曲目组件应用层
type App struct {
	TrackService *service.TrackService
	Dao          *dao.TrackDao
	media        MediaChecker
	cleaners     []target.Cleaner
	log          *logger.Log
	err          *errorc.ErrorBuilder
}

func NewApp(db *mongo.Database, media MediaChecker, log *logger.Log) *App {
	log = log.WithEntryName("TrackApp")

	trackDao := dao.NewTrackDao(db, log)
	a := NewAppWithRepository(trackDao, media, log)
	a.Dao = trackDao
	return a
}

func NewAppWithRepository(repo service.TrackRepository, media MediaChecker, log *logger.Log) *App {
	return &App{
		TrackService: service.NewTrackService(repo, log),
		media:        media,
		log:          log,
		err:          errorc.NewErrorBuilder("TrackApp"),
	}
}

func (a *App) AddCleaner(cleaners ...target.Cleaner) {
	a.cleaners = append(a.cleaners, cleaners...)
}
