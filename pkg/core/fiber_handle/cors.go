package fiber_handle

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func Cors() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,HEAD,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "*",
		//AllowCredentials: true,
		// 播放器跨域读取区间响应需要这些头
		ExposeHeaders: "Authorization,Content-Range,Accept-Ranges,Content-Length",
		MaxAge:        1800,
	})
}
