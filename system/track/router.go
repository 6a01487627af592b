package track

import (
	controller "storyhub/system/track/external/http"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes 注册曲目组件路由
func RegisterRoutes(m *Module, api, admin fiber.Router) {
	ctrl := controller.NewTrackController(m.internalApp)
	ctrl.RegisterRoutes(api)
	ctrl.RegisterAdminRoutes(admin)
}
