package config

// TracingConfig zipkin-url 为空时只生成 trace id，不上报
type TracingConfig struct {
	ZipkinURL  string  `yaml:"zipkin-url"`
	SampleRate float64 `yaml:"sample-rate"`
}
