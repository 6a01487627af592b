package logger

import (
	"strings"
	"time"

	"storyhub/pkg/core/consts"
	errorc "storyhub/pkg/core/err"

	"github.com/gofiber/fiber/v2"
)

type AdminConfig struct {
	Logger *Log
}

// NewAdminLogger 后台操作日志中间件，写操作额外记录请求体（文件上传除外）
func NewAdminLogger(config AdminConfig) fiber.Handler {
	log := config.Logger.WithField("EntryName", "ADMIN")

	return func(c *fiber.Ctx) (err error) {
		start := time.Now()
		err = c.Next()

		cLog := log.WithField("status", c.Response().StatusCode()).
			WithField("latency", time.Since(start).Round(time.Millisecond)).
			WithField("method", c.Method()).
			WithField("path", c.OriginalURL()).
			WithField("operator", c.Locals(consts.UserIDKey)).
			WithField("TraceId", c.Locals(consts.TraceKey))

		if c.Method() != fiber.MethodGet && !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
			cLog = cLog.WithField("req", string(c.Request().Body()))
		}

		if err != nil {
			errc := errorc.ParseError(err)
			errc.ToLog(log.WithTrace(c.UserContext()).GetLogger())
			cLog = cLog.WithField("Err", errc.RootCause())
		}

		cLog.Info("后台请求处理完毕")

		return err
	}
}
