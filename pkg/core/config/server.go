package config

import "time"

// HttpConfig HTTP 服务配置
type HttpConfig struct {
	ReadTimeout  int `yaml:"read-timeout"`  // 秒
	WriteTimeout int `yaml:"write-timeout"` // 秒，流式响应的最长执行时间
	BodyLimit    int `yaml:"body-limit"`    // MB
}

func (h HttpConfig) ReadTimeoutDuration() time.Duration {
	if h.ReadTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(h.ReadTimeout) * time.Second
}

func (h HttpConfig) WriteTimeoutDuration() time.Duration {
	if h.WriteTimeout <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(h.WriteTimeout) * time.Second
}

func (h HttpConfig) BodyLimitBytes() int {
	if h.BodyLimit <= 0 {
		return 200 * 1024 * 1024
	}
	return h.BodyLimit * 1024 * 1024
}

// StreamConfig 媒体流配置
type StreamConfig struct {
	CacheMaxAge int `yaml:"cache-max-age"` // 秒，默认一年
}

func (s StreamConfig) MaxAge() int {
	if s.CacheMaxAge <= 0 {
		return 31536000
	}
	return s.CacheMaxAge
}

// LikeConfig 点赞计数相关配置
type LikeConfig struct {
	CountCacheTTL int    `yaml:"count-cache-ttl"` // 秒
	ReconcileCron string `yaml:"reconcile-cron"`
}

func (l LikeConfig) CountTTL() time.Duration {
	if l.CountCacheTTL <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(l.CountCacheTTL) * time.Second
}

func (l LikeConfig) ReconcileSpec() string {
	if l.ReconcileCron == "" {
		return "@every 10m"
	}
	return l.ReconcileCron
}
