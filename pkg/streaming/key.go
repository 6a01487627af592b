package streaming

import (
	"net/url"
	"strings"
)

// PathPrefix 媒体流路由前缀
const PathPrefix = "/stream/"

// DecodeKey 对路由中的 key 做且仅做一次百分号解码，结果为空时返回 Validation 错误
func DecodeKey(raw string) (string, error) {
	key, err := url.PathUnescape(raw)
	if err != nil {
		return "", errBuilder.New("媒体文件 key 编码错误", err).ValidWithCtx()
	}
	if strings.TrimLeft(key, "/") == "" {
		return "", errBuilder.New("媒体文件 key 不能为空", nil).ValidWithCtx()
	}
	return key, nil
}

// EncodeKey 百分号编码，"/" 也会被编码，保证 DecodeKey 能还原
func EncodeKey(key string) string {
	return url.PathEscape(key)
}

// StreamPath key 对应的媒体流访问路径
func StreamPath(key string) string {
	if key == "" {
		return ""
	}
	return PathPrefix + EncodeKey(key)
}
