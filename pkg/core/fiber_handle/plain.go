package fiber_handle

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// PlainErrHandler 媒体流路由使用纯文本错误响应，不走 JSON 包装
func PlainErrHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}

		var e *fiber.Error
		if errors.As(err, &e) {
			return c.Status(e.Code).SendString(e.Message)
		}

		status, msg := resolve(err)
		c.Response().Header.Del(fiber.HeaderContentRange)
		c.Response().Header.Del(fiber.HeaderCacheControl)
		return c.Status(status).SendString(msg)
	}
}
