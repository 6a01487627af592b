package start

import (
	"fmt"
	"net"
	"time"

	"storyhub/pkg/core/config"
	"storyhub/pkg/core/logger"
	"storyhub/pkg/core/security"
	"storyhub/pkg/core/tracer"

	"github.com/bsm/redislock"
	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AppName string               `yaml:"app-name"`
	Env     string               `yaml:"env"`
	Host    string               `yaml:"host"`
	Port    int                  `yaml:"port"`
	Log     config.LogConfig     `yaml:"log"`
	Server  config.HttpConfig    `yaml:"server"`
	Jwt     config.JwtConfig     `yaml:"jwt"`
	Redis   config.RedisConfig   `yaml:"redis"`
	Mongo   config.MongoConfig   `yaml:"mongo"`
	Storage config.StorageConfig `yaml:"storage"`
	Stream  config.StreamConfig  `yaml:"stream"`
	Like    config.LikeConfig    `yaml:"like"`
	Tracing config.TracingConfig `yaml:"tracing"`
}

type Configures struct {
	Config   Config
	Logger   *logger.Log
	UserAuth *security.UserAuth
}

// LoadConfig 解析 YAML 配置并补全默认值
func LoadConfig(file []byte, env string) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return cfg, fmt.Errorf("解析配置文件失败: %w", err)
	}

	cfg.Env = env
	if cfg.AppName == "" {
		cfg.AppName = "storyhub"
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.Jwt.Secret == "" {
		return cfg, fmt.Errorf("jwt.secret 未配置")
	}
	return cfg, nil
}

func NewConfigures(file []byte, env string) *Configures {
	cfg, err := LoadConfig(file, env)
	if err != nil {
		panic(fmt.Sprintf("读取文件信息失败，因为%v", err))
	}
	cfg.Host, _ = getLocalIP()

	c := &Configures{
		Config: cfg,
		Logger: logger.InitLogger(cfg.Log),
	}
	c.UserAuth = c.EnableUserAuth()
	return c
}

// getLocalIP 获取本机IP地址（优先获取内网IP）
func getLocalIP() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}

	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil && ipnet.IP.IsPrivate() {
				return ipnet.IP.String(), nil
			}
		}
	}

	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String(), nil
			}
		}
	}

	return "127.0.0.1", nil
}

func (c *Configures) EnableUserAuth() *security.UserAuth {
	return security.NewUserAuth(c.Config.Jwt)
}

// EnableRedis 未配置 host 时返回 nil，点赞锁与缓存退化为进程内实现
func (c *Configures) EnableRedis() *redis.Client {
	if c.Config.Redis.Host == "" {
		c.Logger.Warn("未配置 redis，点赞锁与计数缓存使用进程内实现")
		return nil
	}
	return config.InitRDB(c.Config.Redis)
}

// EnableCache rdb 为 nil 时只使用本地缓存
func (c *Configures) EnableCache(rdb *redis.Client) *cache.Cache {
	if rdb == nil {
		return cache.New(&cache.Options{
			LocalCache: cache.NewTinyLFU(1000, time.Minute),
		})
	}
	return config.InitCache(rdb)
}

func (c *Configures) EnableLocker(rdb *redis.Client) *redislock.Client {
	if rdb == nil {
		return nil
	}
	return redislock.New(rdb)
}

// EnableTracer 配置了 zipkin 地址时上报链路，否则只传递 trace id
func (c *Configures) EnableTracer() tracer.Tracer {
	cfg := c.Config.Tracing
	if cfg.ZipkinURL == "" {
		return tracer.NewSimpleTracer()
	}
	hostPort := fmt.Sprintf("%s:%d", c.Config.Host, c.Config.Port)
	tr, err := tracer.NewZipkinTracer(cfg, c.Config.AppName, hostPort)
	if err != nil {
		c.Logger.WithErr(err).Warn("创建 zipkin tracer 失败，退化为只传递 trace id")
		return tracer.NewSimpleTracer()
	}
	return tr
}
