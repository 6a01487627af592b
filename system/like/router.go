package like

import (
	controller "storyhub/system/like/external/http"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(m *Module, api fiber.Router, optionalAuth, requireAuth fiber.Handler) {
	controller.NewLikeController(m.internalApp).RegisterRoutes(api, optionalAuth, requireAuth)
}
