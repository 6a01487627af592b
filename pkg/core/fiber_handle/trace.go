package fiber_handle

import (
	"storyhub/pkg/core/consts"
	"storyhub/pkg/core/tracer"

	"github.com/gofiber/fiber/v2"
)

// NewApiTracer 为每个请求开启追踪，trace id 写回响应头
func NewApiTracer(tr tracer.Tracer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, traceID, finish := tr.StartTrace(c.UserContext(), c.Method()+" "+c.Path(), func(key string) string {
			return c.Get(key)
		})
		defer finish()

		c.SetUserContext(ctx)
		c.Locals(consts.TraceKey, traceID)
		c.Set(consts.TraceHeaderName, traceID)
		return c.Next()
	}
}
