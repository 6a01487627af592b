package logger

import (
	"strings"
	"time"

	"storyhub/pkg/core/consts"
	errorc "storyhub/pkg/core/err"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	Logger *Log
}

// NewApiLogger 访问日志中间件，出错时输出完整错误链
func NewApiLogger(config Config) fiber.Handler {
	log := config.Logger.WithField("EntryName", "API")

	return func(c *fiber.Ctx) (err error) {
		url := strings.SplitN(c.OriginalURL(), "?", 2)[0]
		start := time.Now()

		err = c.Next()

		cLog := log.WithField("status", c.Response().StatusCode()).
			WithField("latency", time.Since(start).Round(time.Millisecond)).
			WithField("method", c.Method()).
			WithField("path", url).
			WithField("TraceId", c.Locals(consts.TraceKey)).
			WithField("userId", c.Locals(consts.UserIDKey))

		if err != nil {
			errc := errorc.ParseError(err)
			if errc.HTTPStatus() >= fiber.StatusInternalServerError {
				errc.ToLog(log.WithTrace(c.UserContext()).GetLogger())
			}
			cLog = cLog.WithField("Err", errc.RootCause())
		}

		cLog.Debug("请求处理完毕")

		return err
	}
}
