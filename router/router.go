package router

import (
	"storyhub/app"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/core/start"
	"storyhub/system/comment"
	"storyhub/system/like"
	"storyhub/system/story"
	"storyhub/system/stream"
	"storyhub/system/track"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// Register 负责集中注册所有 HTTP 路由。
// 按规范：
//   - 只依赖 app.App（业务编排入口）和 fiber.App（HTTP Server）。
//   - 不直接依赖任何 DAO / Service / system/internal 包。
//   - 不包含业务逻辑，只做分组与路由绑定。
func Register(a *app.App, f *fiber.App) {
	auth := a.Configures.UserAuth
	apiLogger := logger.NewApiLogger(logger.Config{Logger: a.Log})

	f.Use(start.UseMonitor(a.Metrics))
	f.Get("/metrics", adaptor.HTTPHandler(a.Metrics.Handler()))

	api := f.Group("/api", apiLogger)

	// 后台管理路由分组，要求 isAdmin 声明
	admin := f.Group("/admin", logger.NewAdminLogger(logger.AdminConfig{Logger: a.Log}), auth.RequireAdmin())

	// 媒体流读取与上传
	stream.RegisterRoutes(a.StreamModule, f, admin, apiLogger)

	story.RegisterRoutes(a.StoryModule, api, admin)
	track.RegisterRoutes(a.TrackModule, api, admin)

	// 评论、点赞挂在 /api/:targetType/:id 下
	comment.RegisterRoutes(a.CommentModule, api, auth.RequireAuth())
	like.RegisterRoutes(a.LikeModule, api, auth.OptionalAuth(), auth.RequireAuth())
}
