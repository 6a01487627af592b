package start

import (
	"fmt"

	"storyhub/pkg/core/config"
	"storyhub/pkg/core/fiber_handle"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/core/tracer"

	"github.com/gofiber/fiber/v2"
	recover2 "github.com/gofiber/fiber/v2/middleware/recover"
)

// GetApp 创建 fiber 应用，WriteTimeout 同时是媒体流响应的最长执行时间
func GetApp(cfg config.HttpConfig, tr tracer.Tracer, log *logger.Log) *fiber.App {
	app := fiber.New(
		fiber.Config{
			ReadTimeout:           cfg.ReadTimeoutDuration(),
			WriteTimeout:          cfg.WriteTimeoutDuration(),
			BodyLimit:             cfg.BodyLimitBytes(),
			ErrorHandler:          fiber_handle.ErrHandler,
			DisableStartupMessage: true,
		})
	app.Use(fiber_handle.NewApiTracer(tr))
	app.Use(fiber_handle.Cors())
	app.Use(recover2.New(recover2.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.WithTrace(c.UserContext()).WithField("path", c.Path()).Error(fmt.Sprintf("请求处理崩溃: %+v", e))
		},
	}))
	app.Use(fiber_handle.HealthCheck(fiber_handle.HealthCheckConfig{Path: "/health"}))
	return app
}

// UseMonitor 只统计业务路由
func UseMonitor(metrics *fiber_handle.Metrics) fiber.Handler {
	return fiber_handle.NewAPIMonitor(fiber_handle.MonitorConfig{
		Metrics: metrics,
	}, fiber_handle.SkipHealthCheck, fiber_handle.SkipMetrics,
		fiber_handle.OnlyPathStartWith("/api", "/admin", "/stream"))
}
