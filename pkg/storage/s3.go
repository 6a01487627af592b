package storage

import (
	"context"
	"errors"
	"io"
	"net/http"

	"storyhub/pkg/core/config"
	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Store AWS S3 及兼容存储实现
type S3Store struct {
	bucket string
	client *s3.Client
	log    *logger.Log
	err    *errorc.ErrorBuilder
}

// NewS3Store 创建 S3 存储实例，未配置 AccessKey 时走默认凭证链
func NewS3Store(ctx context.Context, cfg *config.S3Config, log *logger.Log) (*S3Store, error) {
	log = log.WithEntryName("S3Store")
	errBuilder := errorc.NewErrorBuilder("S3Store")

	if cfg.Bucket == "" {
		return nil, errBuilder.New("S3 bucket 未配置", nil).ValidWithCtx().ToLog(log.Entry)
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errBuilder.New("加载 S3 配置失败", err).Third().ToLog(log.Entry)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &S3Store{
		bucket: cfg.Bucket,
		client: client,
		log:    log,
		err:    errBuilder,
	}, nil
}

func (s *S3Store) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.Head(ctx, key)
	if err == nil {
		return true, nil
	}
	if errorc.IsNotFound(err) {
		return false, nil
	}
	return false, err
}

func (s *S3Store) Head(ctx context.Context, key string) (*ObjectInfo, error) {
	key = normalizeKey(key)
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, s.wrap("获取S3对象元数据失败", err)
	}

	return &ObjectInfo{
		Key:           key,
		ContentType:   ResolveContentType(aws.ToString(out.ContentType), key),
		ContentLength: aws.ToInt64(out.ContentLength),
		ETag:          aws.ToString(out.ETag),
		LastModified:  aws.ToTime(out.LastModified),
	}, nil
}

func (s *S3Store) Open(ctx context.Context, key string, rng *ByteRange) (io.ReadCloser, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(normalizeKey(key)),
	}
	if rng != nil {
		input.Range = aws.String(rng.Header())
	}

	out, err := s.client.GetObject(ctx, input)
	if err != nil {
		return nil, s.wrap("读取S3对象失败", err)
	}
	return out.Body, nil
}

func (s *S3Store) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	s.log.WithTrace(ctx).WithKey(key).Info("上传文件到S3")

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(normalizeKey(key)),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return s.wrap("上传文件到S3失败", err).WithTraceID(ctx).ToLog(s.log.Entry)
	}
	return nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	s.log.WithTrace(ctx).WithKey(key).Info("删除S3文件")

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(normalizeKey(key)),
	})
	if err != nil {
		wrapped := s.wrap("删除S3文件失败", err)
		if errorc.IsNotFound(wrapped) {
			return nil
		}
		return wrapped.WithTraceID(ctx).ToLog(s.log.Entry)
	}
	return nil
}

func (s *S3Store) wrap(msg string, err error) *errorc.Error {
	var (
		noSuchKey *types.NoSuchKey
		notFound  *types.NotFound
	)
	if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
		return s.err.New(msg, err).NotFound()
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return s.err.New(msg, err).NotFound()
		case "InvalidRange":
			return s.err.New(msg, err).RangeNotSatisfiable()
		}
	}

	// HeadObject 的 404 没有响应体，只能从状态码判断
	var respErr interface{ HTTPStatusCode() int }
	if errors.As(err, &respErr) {
		switch respErr.HTTPStatusCode() {
		case http.StatusNotFound:
			return s.err.New(msg, err).NotFound()
		case http.StatusRequestedRangeNotSatisfiable:
			return s.err.New(msg, err).RangeNotSatisfiable()
		}
	}
	return s.err.New(msg, err).Third()
}
