package config

// JwtConfig 身份令牌校验配置
type JwtConfig struct {
	Secret     string `yaml:"secret" json:"secret,omitempty"`
	Issuer     string `yaml:"issuer" json:"issuer,omitempty"`
	ExpireTime int    `yaml:"expire-time" json:"expire-time,omitempty"` // 小时，仅签发测试/内部令牌时使用
}
