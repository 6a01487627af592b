package tracer

import (
	"context"

	"storyhub/pkg/core/consts"

	uuid "github.com/satori/go.uuid"
)

// Tracer 请求链路追踪
type Tracer interface {
	// StartTrace header 用于读取上游传来的追踪头，返回携带 trace id 的上下文和结束函数
	StartTrace(ctx context.Context, name string, header func(string) string) (context.Context, string, func())
	Close() error
}

// SimpleTracer 只生成和传递 trace id
type SimpleTracer struct{}

func NewSimpleTracer() *SimpleTracer {
	return &SimpleTracer{}
}

func (t *SimpleTracer) StartTrace(ctx context.Context, _ string, header func(string) string) (context.Context, string, func()) {
	traceID := header(consts.TraceHeaderName)
	if traceID == "" {
		traceID = uuid.NewV4().String()
	}
	return context.WithValue(ctx, consts.TraceKey, traceID), traceID, func() {}
}

func (t *SimpleTracer) Close() error {
	return nil
}
