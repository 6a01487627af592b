package start

import (
	"testing"
	"time"

	"storyhub/pkg/core/logger"
	"storyhub/pkg/core/tracer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
app-name: storyhub-test
port: 9090
log:
  level: debug
  format: json
server:
  read-timeout: 5
  write-timeout: 600
  body-limit: 50
jwt:
  secret: s3cr3t
  issuer: storyhub
mongo:
  uri: mongodb://localhost:27017
  db-name: storyhub
storage:
  provider: s3
  s3:
    endpoint: http://localhost:9000
    bucket: media
    use-path-style: true
stream:
  cache-max-age: 86400
like:
  count-cache-ttl: 30
  reconcile-cron: "0 */5 * * *"
tracing:
  zipkin-url: http://localhost:9411/api/v2/spans
  sample-rate: 0.5
`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig([]byte(sampleConfig), "test")
	require.NoError(t, err)

	assert.Equal(t, "storyhub-test", cfg.AppName)
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeoutDuration())
	assert.Equal(t, 10*time.Minute, cfg.Server.WriteTimeoutDuration())
	assert.Equal(t, 50*1024*1024, cfg.Server.BodyLimitBytes())
	assert.Equal(t, "s3cr3t", cfg.Jwt.Secret)
	assert.Equal(t, "storyhub", cfg.Mongo.DBName)
	assert.Equal(t, "s3", cfg.Storage.Provider)
	assert.Equal(t, "media", cfg.Storage.S3.Bucket)
	assert.True(t, cfg.Storage.S3.UsePathStyle)
	assert.Equal(t, 86400, cfg.Stream.MaxAge())
	assert.Equal(t, 30*time.Second, cfg.Like.CountTTL())
	assert.Equal(t, "0 */5 * * *", cfg.Like.ReconcileSpec())
	assert.Equal(t, "http://localhost:9411/api/v2/spans", cfg.Tracing.ZipkinURL)
	assert.Equal(t, 0.5, cfg.Tracing.SampleRate)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte("jwt:\n  secret: x\n"), "dev")
	require.NoError(t, err)

	assert.Equal(t, "storyhub", cfg.AppName)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeoutDuration())
	assert.Equal(t, 31536000, cfg.Stream.MaxAge())
	assert.Equal(t, 5*time.Minute, cfg.Like.CountTTL())
	assert.Equal(t, "@every 10m", cfg.Like.ReconcileSpec())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig([]byte("port: [1"), "dev")
	assert.Error(t, err)

	_, err = LoadConfig([]byte("port: 80\n"), "dev")
	assert.ErrorContains(t, err, "jwt.secret")
}

func TestEnableTracer(t *testing.T) {
	cfg, err := LoadConfig([]byte("jwt:\n  secret: x\n"), "dev")
	require.NoError(t, err)
	c := &Configures{Config: cfg, Logger: logger.Discard()}

	_, ok := c.EnableTracer().(*tracer.SimpleTracer)
	assert.True(t, ok)

	c.Config.Host = "127.0.0.1"
	c.Config.Tracing.ZipkinURL = "http://localhost:9411/api/v2/spans"
	tr := c.EnableTracer()
	defer tr.Close()
	_, ok = tr.(*tracer.ZipkinTracer)
	assert.True(t, ok)
}
