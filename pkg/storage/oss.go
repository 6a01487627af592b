package storage

import (
	"context"
	"errors"
	"io"
	"net/http"

	"storyhub/pkg/core/config"
	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

// OSSStore 阿里云OSS对象存储实现
type OSSStore struct {
	config *config.OssConfig
	client *oss.Client
	log    *logger.Log
	err    *errorc.ErrorBuilder
}

// NewOSSStore 创建阿里云OSS存储实例
func NewOSSStore(cfg *config.OssConfig, log *logger.Log) (*OSSStore, error) {
	log = log.WithEntryName("OSSStore")
	errBuilder := errorc.NewErrorBuilder("OSSStore")

	if cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" || cfg.Bucket == "" {
		return nil, errBuilder.New("阿里云OSS配置不完整", nil).ValidWithCtx().ToLog(log.Entry)
	}

	provider := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.AccessKeySecret, "")
	ossCfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(provider).
		WithRegion(cfg.Region)

	if cfg.Domain != "" {
		ossCfg = ossCfg.WithEndpoint(cfg.Domain).WithUseCName(true)
	} else if cfg.Internal {
		ossCfg = ossCfg.WithUseInternalEndpoint(true)
	}

	return &OSSStore{
		config: cfg,
		client: oss.NewClient(ossCfg),
		log:    log,
		err:    errBuilder,
	}, nil
}

// Exists 检查对象是否存在
func (s *OSSStore) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.IsObjectExist(ctx, s.config.Bucket, normalizeKey(key))
	if err != nil {
		return false, s.wrap("检查OSS对象是否存在失败", err)
	}
	return ok, nil
}

// Head 获取对象元数据
func (s *OSSStore) Head(ctx context.Context, key string) (*ObjectInfo, error) {
	key = normalizeKey(key)
	result, err := s.client.HeadObject(ctx, &oss.HeadObjectRequest{
		Bucket: oss.Ptr(s.config.Bucket),
		Key:    oss.Ptr(key),
	})
	if err != nil {
		return nil, s.wrap("获取OSS对象元数据失败", err)
	}

	info := &ObjectInfo{
		Key:           key,
		ContentType:   ResolveContentType(oss.ToString(result.ContentType), key),
		ContentLength: result.ContentLength,
		ETag:          oss.ToString(result.ETag),
	}
	if result.LastModified != nil {
		info.LastModified = *result.LastModified
	}
	return info, nil
}

// Open 读取对象内容，支持区间读取
func (s *OSSStore) Open(ctx context.Context, key string, rng *ByteRange) (io.ReadCloser, error) {
	request := &oss.GetObjectRequest{
		Bucket: oss.Ptr(s.config.Bucket),
		Key:    oss.Ptr(normalizeKey(key)),
	}
	if rng != nil {
		request.Range = oss.Ptr(rng.Header())
		// 区间越界时由服务端报错而不是返回整个对象
		request.RangeBehavior = oss.Ptr("standard")
	}

	result, err := s.client.GetObject(ctx, request)
	if err != nil {
		return nil, s.wrap("读取OSS对象失败", err)
	}
	return result.Body, nil
}

// Put 上传对象
func (s *OSSStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	s.log.WithTrace(ctx).WithKey(key).Info("上传文件到阿里云OSS")

	request := &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.config.Bucket),
		Key:    oss.Ptr(normalizeKey(key)),
		Body:   body,
	}
	if contentType != "" {
		request.ContentType = oss.Ptr(contentType)
	}
	if size >= 0 {
		request.ContentLength = oss.Ptr(size)
	}

	if _, err := s.client.PutObject(ctx, request); err != nil {
		return s.wrap("上传文件到阿里云OSS失败", err).WithTraceID(ctx).ToLog(s.log.Entry)
	}
	return nil
}

// Delete 删除对象
func (s *OSSStore) Delete(ctx context.Context, key string) error {
	s.log.WithTrace(ctx).WithKey(key).Info("删除阿里云OSS文件")

	_, err := s.client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.config.Bucket),
		Key:    oss.Ptr(normalizeKey(key)),
	})
	if err != nil {
		wrapped := s.wrap("删除阿里云OSS文件失败", err)
		if errorc.IsNotFound(wrapped) {
			return nil
		}
		return wrapped.WithTraceID(ctx).ToLog(s.log.Entry)
	}
	return nil
}

// wrap 将 SDK 错误归类为 NotFound / MalformedRange / Upstream
func (s *OSSStore) wrap(msg string, err error) *errorc.Error {
	var serr *oss.ServiceError
	if errors.As(err, &serr) {
		switch {
		case serr.StatusCode == http.StatusNotFound || serr.Code == "NoSuchKey":
			return s.err.New(msg, err).NotFound()
		case serr.StatusCode == http.StatusRequestedRangeNotSatisfiable || serr.Code == "InvalidRange":
			return s.err.New(msg, err).RangeNotSatisfiable()
		}
	}
	return s.err.New(msg, err).Third()
}
