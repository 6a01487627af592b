package errorc

import (
	"fmt"
	"net/http"
)

type Error struct {
	*ErrorCode
	Msg      string
	Cause    error
	Stack    string `json:"-"`
	TraceID  string
	Entry    string `json:"-"`
	FileName string `json:"-"`
	Line     int    `json:"-"`
	FuncName string `json:"-"`
}

// Unwrap 支持 errors.Is / errors.As 沿 Cause 链查找
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

type ErrorCode struct {
	Code int
	Name string
}

func (c *ErrorCode) String() string {
	return fmt.Sprintf("%d: %s", c.Code, c.Name)
}

// HTTPStatus 错误码对应的 HTTP 状态码，5xx 一律收敛为 500，不向客户端暴露上游细节
func (c *ErrorCode) HTTPStatus() int {
	if c == nil {
		return http.StatusInternalServerError
	}
	switch c.Code {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden,
		http.StatusNotFound, http.StatusConflict, http.StatusRequestedRangeNotSatisfiable:
		return c.Code
	}
	return http.StatusInternalServerError
}

var (
	ErrorCodeUnknown     *ErrorCode = &ErrorCode{500, "Unknown"}
	ErrorCodeDB          *ErrorCode = &ErrorCode{501, "DB"}
	ErrorCodeThird       *ErrorCode = &ErrorCode{502, "Upstream"}
	ErrorCodeValid       *ErrorCode = &ErrorCode{400, "Validation"}
	ErrorCodeNoAuth      *ErrorCode = &ErrorCode{401, "Unauthenticated"}
	ErrorCodeForbidden   *ErrorCode = &ErrorCode{403, "Forbidden"}
	ErrorCodeNotFound    *ErrorCode = &ErrorCode{404, "NotFound"}
	ErrorCodeConflict    *ErrorCode = &ErrorCode{409, "Conflict"}
	ErrorCodeRange       *ErrorCode = &ErrorCode{416, "MalformedRange"}
	ErrorCodeUnavailable *ErrorCode = &ErrorCode{503, "Unavailable"}
	ErrorCodeInternal    *ErrorCode = &ErrorCode{500, "InternalError"}
)
