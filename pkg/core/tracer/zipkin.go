package tracer

import (
	"context"
	"fmt"

	"storyhub/pkg/core/config"
	"storyhub/pkg/core/consts"

	"github.com/openzipkin/zipkin-go"
	"github.com/openzipkin/zipkin-go/propagation/b3"
	"github.com/openzipkin/zipkin-go/reporter"
	zipkinhttp "github.com/openzipkin/zipkin-go/reporter/http"
)

// ZipkinTracer Zipkin追踪实现，上游带 B3 头时接续其链路
type ZipkinTracer struct {
	tracer   *zipkin.Tracer
	reporter reporter.Reporter
	appName  string
}

// NewZipkinTracer hostPort 为本服务对外地址，写入 span 的 local endpoint
func NewZipkinTracer(cfg config.TracingConfig, appName, hostPort string) (*ZipkinTracer, error) {
	rep := zipkinhttp.NewReporter(cfg.ZipkinURL)
	return newZipkinTracer(rep, cfg.SampleRate, appName, hostPort)
}

func newZipkinTracer(rep reporter.Reporter, rate float64, appName, hostPort string) (*ZipkinTracer, error) {
	endpoint, err := zipkin.NewEndpoint(appName, hostPort)
	if err != nil {
		_ = rep.Close()
		return nil, fmt.Errorf("创建 zipkin endpoint 失败: %w", err)
	}

	var sampler zipkin.Sampler = zipkin.AlwaysSample
	if rate > 0 && rate < 1 {
		if sampler, err = zipkin.NewBoundarySampler(rate, 0); err != nil {
			_ = rep.Close()
			return nil, fmt.Errorf("创建 zipkin 采样器失败: %w", err)
		}
	}

	tracer, err := zipkin.NewTracer(rep,
		zipkin.WithLocalEndpoint(endpoint),
		zipkin.WithSampler(sampler),
	)
	if err != nil {
		_ = rep.Close()
		return nil, fmt.Errorf("创建 zipkin tracer 失败: %w", err)
	}
	return &ZipkinTracer{tracer: tracer, reporter: rep, appName: appName}, nil
}

func (t *ZipkinTracer) StartTrace(ctx context.Context, name string, header func(string) string) (context.Context, string, func()) {
	var opts []zipkin.SpanOption
	parent, err := b3.ParseHeaders(
		header(b3.TraceID), header(b3.SpanID), header(b3.ParentSpanID), header(b3.Sampled), header(b3.Flags),
	)
	if err == nil && parent != nil && !parent.TraceID.Empty() {
		opts = append(opts, zipkin.Parent(*parent))
	}

	span := t.tracer.StartSpan(t.appName+"."+name, opts...)
	traceID := span.Context().TraceID.String()
	ctx = zipkin.NewContext(ctx, span)
	return context.WithValue(ctx, consts.TraceKey, traceID), traceID, span.Finish
}

func (t *ZipkinTracer) Close() error {
	return t.reporter.Close()
}
