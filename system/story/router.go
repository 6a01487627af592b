package story

import (
	controller "storyhub/system/story/external/http"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes 注册故事组件的所有 HTTP 路由
func RegisterRoutes(m *Module, api, admin fiber.Router) {
	controller.NewStoryAPIController(m.internalApp, m.log).RegisterRoutes(api)
	controller.NewStoryAdminController(m.internalApp, m.log).RegisterRoutes(admin)
}
