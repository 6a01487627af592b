package storage

import (
	"context"
	"strings"

	"storyhub/pkg/core/config"
	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"
)

const (
	ProviderOSS    = "oss"
	ProviderS3     = "s3"
	ProviderMemory = "memory"
)

// New 按配置选择存储后端
func New(ctx context.Context, cfg config.StorageConfig, log *logger.Log) (ObjectStore, error) {
	// 显式判错，避免把 typed nil 装进接口
	switch strings.ToLower(cfg.Provider) {
	case ProviderOSS, "":
		store, err := NewOSSStore(&cfg.Oss, log)
		if err != nil {
			return nil, err
		}
		return store, nil
	case ProviderS3:
		store, err := NewS3Store(ctx, &cfg.S3, log)
		if err != nil {
			return nil, err
		}
		return store, nil
	case ProviderMemory:
		return NewMemoryStore(), nil
	default:
		return nil, errorc.New("不支持的存储类型: "+cfg.Provider, nil).ValidWithCtx()
	}
}
