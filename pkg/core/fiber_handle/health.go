package fiber_handle

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type HealthCheckConfig struct {
	Path string
}

// HealthCheck 命中健康检查路径时直接返回，不进入后续中间件
func HealthCheck(config HealthCheckConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		url := strings.SplitN(c.OriginalURL(), "?", 2)[0]
		if url == config.Path {
			return c.Status(fiber.StatusOK).SendString("ok")
		}
		return c.Next()
	}
}
