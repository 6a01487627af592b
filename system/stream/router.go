package stream

import (
	"storyhub/pkg/core/fiber_handle"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes root 为应用根路由，admin 为已挂载管理员校验的路由组；
// middlewares 挂在 /stream 分组上，位于纯文本错误处理之外
func RegisterRoutes(m *Module, root, admin fiber.Router, middlewares ...fiber.Handler) {
	handlers := append(middlewares, fiber_handle.PlainErrHandler())
	group := root.Group("/stream", handlers...)
	m.stream.RegisterRoutes(group)
	m.media.RegisterRoutes(admin)
}
