package config

// StorageConfig 对象存储配置，Provider 取值 oss | s3 | memory
type StorageConfig struct {
	Provider string    `yaml:"provider"`
	Oss      OssConfig `yaml:"oss"`
	S3       S3Config  `yaml:"s3"`
}

// OssConfig 阿里云OSS配置
type OssConfig struct {
	AccessKeyID     string `yaml:"access-key"`       // 访问密钥ID
	AccessKeySecret string `yaml:"access-secret"`    // 访问密钥Secret
	Bucket          string `yaml:"bucket-name"`      // 存储空间名称
	Domain          string `yaml:"domain"`           // 绑定的自定义域名
	Region          string `yaml:"region,omitempty"` // 区域
	Internal        bool   `yaml:"internal"`         // 是否走内网 endpoint
}

// S3Config S3 及兼容存储（MinIO 等）配置
type S3Config struct {
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	AccessKeyID     string `yaml:"access-key"`
	SecretAccessKey string `yaml:"secret-key"`
	UsePathStyle    bool   `yaml:"use-path-style"`
}
