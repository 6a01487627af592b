package fiber_handle

import (
	"errors"
	"net/http"

	errorc "storyhub/pkg/core/err"

	"github.com/gofiber/fiber/v2"
)

// InternalErrMsg 5xx 统一对外文案，具体原因只写日志
const InternalErrMsg = "服务器内部错误"

// ErrHandler JSON 接口的统一错误出口，HTTP 状态码与 body 中的 status 一致
func ErrHandler(ctx *fiber.Ctx, err error) error {
	var e *fiber.Error
	if errors.As(err, &e) {
		return ctx.Status(e.Code).JSON(fiber.Map{"status": e.Code, "message": e.Message})
	}

	status, msg := resolve(err)
	return ctx.Status(status).JSON(fiber.Map{"status": status, "message": msg})
}

// resolve 错误 -> (HTTP 状态码, 对外文案)
func resolve(err error) (int, string) {
	cError := errorc.ParseError(err)
	status := cError.HTTPStatus()
	if status >= fiber.StatusInternalServerError {
		return status, InternalErrMsg
	}
	if cError.Msg != "" {
		return status, cError.Msg
	}
	return status, http.StatusText(status)
}
