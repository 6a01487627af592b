package comment

import (
	controller "storyhub/system/comment/external/http"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes requireAuth 为登录校验中间件
func RegisterRoutes(m *Module, api fiber.Router, requireAuth fiber.Handler) {
	controller.NewCommentController(m.internalApp).RegisterRoutes(api, requireAuth)
}
