package app

import (
	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/target"
	"storyhub/system/comment/internal/dao"
	"storyhub/system/comment/internal/service"

	"go.mongodb.org/mongo-driver/mongo"
)

// App 评论组件应用层
type App struct {
	CommentService *service.CommentService
	Dao            *dao.CommentDao
	targets        target.Registry
	log            *logger.Log
	err            *errorc.ErrorBuilder
}

func NewApp(db *mongo.Database, targets target.Registry, log *logger.Log) *App {
	log = log.WithEntryName("CommentApp")

	commentDao := dao.NewCommentDao(db, log)
	a := NewAppWithRepository(commentDao, targets, log)
	a.Dao = commentDao
	return a
}

func NewAppWithRepository(repo service.CommentRepository, targets target.Registry, log *logger.Log) *App {
	return &App{
		CommentService: service.NewCommentService(repo, log),
		targets:        targets,
		log:            log,
		err:            errorc.NewErrorBuilder("CommentApp"),
	}
}
