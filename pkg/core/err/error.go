package errorc

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"storyhub/pkg/core/consts"

	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	enableFullStack = true
	stackBufferPool = sync.Pool{
		New: func() interface{} {
			return make([]byte, 4096)
		},
	}
)

// 视为"不存在"的第三方哨兵错误
var notfounds = []error{mongo.ErrNoDocuments, redis.Nil, cache.ErrCacheMiss}

type ErrorBuilder struct {
	entryName string
}

func NewErrorBuilder(entryName string) *ErrorBuilder {
	return &ErrorBuilder{entryName: entryName}
}

func (e *ErrorBuilder) New(msg string, err error) *Error {
	stack := caller(2)
	stack.Msg = msg
	stack.Cause = err
	stack.Entry = e.entryName
	stack.ErrorCode = getErrCode(err)
	return stack
}

// New err 或 msg 可以为空
func New(msg string, err error) *Error {
	stack := caller(2)
	stack.Msg = msg
	stack.Cause = err
	stack.ErrorCode = getErrCode(err)
	return stack
}

func (e *Error) WithTraceID(ctx context.Context) *Error {
	if ctx == nil {
		return e
	}
	if traceID, ok := ctx.Value(consts.TraceKey).(string); ok {
		e.TraceID = traceID
	}
	return e
}

func (e *Error) WithCode(code *ErrorCode) *Error {
	e.ErrorCode = code
	return e
}

func (e *Error) DB() *Error {
	if e.ErrorCode == ErrorCodeNotFound {
		return e
	}
	e.ErrorCode = ErrorCodeDB
	return e
}

// Third 上游（对象存储等第三方服务）调用失败
func (e *Error) Third() *Error {
	if e.ErrorCode == ErrorCodeNotFound {
		return e
	}
	e.ErrorCode = ErrorCodeThird
	return e
}

func (e *Error) ValidWithCtx() *Error {
	e.ErrorCode = ErrorCodeValid
	return e
}

func (e *Error) NoAuth() *Error {
	e.ErrorCode = ErrorCodeNoAuth
	return e
}

func (e *Error) Forbidden() *Error {
	e.ErrorCode = ErrorCodeForbidden
	return e
}

func (e *Error) NotFound() *Error {
	e.ErrorCode = ErrorCodeNotFound
	return e
}

func (e *Error) Conflict() *Error {
	e.ErrorCode = ErrorCodeConflict
	return e
}

// RangeNotSatisfiable Range 头无法解析或越界
func (e *Error) RangeNotSatisfiable() *Error {
	e.ErrorCode = ErrorCodeRange
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	chain := e.chain()
	root, original := rootOf(chain)

	var sb strings.Builder
	sb.WriteString(root.Msg)
	if original != nil {
		if root.Msg != "" {
			sb.WriteString(": ")
		}
		sb.WriteString(original.Error())
	}
	return sb.String()
}

// RootCause 根因的简短描述，附带出错位置
func (e *Error) RootCause() string {
	if e == nil {
		return ""
	}
	root, original := rootOf(e.chain())

	var sb strings.Builder
	sb.WriteString(root.Msg)
	if original != nil {
		sb.WriteString(fmt.Sprintf(": %v", original))
	}
	if root.FileName != "" {
		sb.WriteString(fmt.Sprintf(" at %s:%d", root.FileName, root.Line))
	}
	return sb.String()
}

// Trace 完整错误链，逐层打印
func (e *Error) Trace() string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	for i, err := range e.chain() {
		sb.WriteString(fmt.Sprintf("%d: ", i+1))
		if err.ErrorCode != nil {
			sb.WriteString(fmt.Sprintf("[%s] ", err.ErrorCode.String()))
		}
		sb.WriteString(err.Msg)
		if err.FileName != "" {
			sb.WriteString(fmt.Sprintf("\n   at %s:%d", err.FileName, err.Line))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (e *Error) ToLog(log *logrus.Entry, msgs ...string) *Error {
	if e == nil {
		return nil
	}
	chain := e.chain()
	root, original := rootOf(chain)

	fields := logrus.Fields{
		"root_cause_file": root.FileName,
		"root_cause_line": root.Line,
		"root_cause_func": root.FuncName,
		"root_cause_msg":  root.Msg,
	}
	if original != nil {
		fields["root_cause_original_error"] = original.Error()
	}
	if root.ErrorCode != nil {
		fields["root_cause_error_code"] = root.ErrorCode.String()
	}

	levels := make([]map[string]interface{}, 0, len(chain))
	for _, err := range chain {
		level := map[string]interface{}{
			"file": err.FileName,
			"line": err.Line,
			"func": err.FuncName,
			"msg":  err.Msg,
		}
		if err.ErrorCode != nil {
			level["code"] = err.ErrorCode.String()
		}
		if err == e && enableFullStack {
			if stack := err.fullStack(); stack != "" {
				level["stack_trace"] = stack
			}
		}
		levels = append(levels, level)
	}
	fields["error_chain"] = levels
	if e.TraceID != "" {
		fields["trace_id"] = e.TraceID
	}

	finalMsg := e.Msg
	if len(msgs) > 0 {
		finalMsg = strings.Join(msgs, ", ")
	}
	if finalMsg == "" {
		finalMsg = "An error occurred"
	}

	log.WithFields(fields).Error(finalMsg)
	return e
}

// chain 收集 *Error 组成的错误链，最外层在前
func (e *Error) chain() []*Error {
	var errChain []*Error
	curr := e
	for {
		errChain = append(errChain, curr)
		next, ok := curr.Cause.(*Error)
		if !ok || next == nil {
			break
		}
		curr = next
	}
	return errChain
}

// rootOf 找到第一个包装了非 *Error 错误的节点，找不到时取最内层
func rootOf(chain []*Error) (*Error, error) {
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].Cause == nil {
			continue
		}
		if _, ok := chain[i].Cause.(*Error); !ok {
			return chain[i], chain[i].Cause
		}
	}
	inner := chain[len(chain)-1]
	return inner, inner.Cause
}

func caller(skip int) *Error {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return &Error{FileName: "<unknown>", FuncName: "<unknown>"}
	}
	funcName := "<unknown>"
	if details := runtime.FuncForPC(pc); details != nil {
		funcName = details.Name()
	}
	return &Error{FileName: file, Line: line, FuncName: funcName}
}

func (e *Error) fullStack() string {
	if e.Stack != "" || !enableFullStack {
		return e.Stack
	}
	buf := stackBufferPool.Get().([]byte)
	defer stackBufferPool.Put(buf)

	n := runtime.Stack(buf, false)
	e.Stack = string(buf[:n])
	return e.Stack
}

// SetStackTraceEnabled 控制 ToLog 是否附带完整堆栈
func SetStackTraceEnabled(enabled bool) {
	enableFullStack = enabled
}

func getErrCode(err error) *ErrorCode {
	if err == nil {
		return ErrorCodeUnknown
	}
	var inner *Error
	if errors.As(err, &inner) && inner.ErrorCode != nil {
		return inner.ErrorCode
	}
	for _, e := range notfounds {
		if errors.Is(err, e) {
			return ErrorCodeNotFound
		}
	}
	return ErrorCodeUnknown
}

// Quick 不采集调用位置，适用于热路径
func (e *ErrorBuilder) Quick(msg string, err error) *Error {
	return &Error{
		Msg:       msg,
		Cause:     err,
		Entry:     e.entryName,
		ErrorCode: getErrCode(err),
	}
}

func Quick(msg string, err error) *Error {
	return &Error{
		Msg:       msg,
		Cause:     err,
		ErrorCode: getErrCode(err),
	}
}

func (e *ErrorBuilder) NotFound(msg string) *Error {
	return &Error{Msg: msg, Entry: e.entryName, ErrorCode: ErrorCodeNotFound}
}

func ParseError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Quick("", err)
}

// CodeOf 错误链上最外层 *Error 的错误码，非 *Error 时按哨兵错误推断
func CodeOf(err error) *ErrorCode {
	if err == nil {
		return nil
	}
	return getErrCode(err)
}

func IsNotFound(err error) bool {
	return CodeOf(err) == ErrorCodeNotFound
}

func IsRange(err error) bool {
	return CodeOf(err) == ErrorCodeRange
}

func IsValidation(err error) bool {
	return CodeOf(err) == ErrorCodeValid
}
