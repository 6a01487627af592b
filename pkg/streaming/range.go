package streaming

import (
	"strconv"
	"strings"

	errorc "storyhub/pkg/core/err"
	"storyhub/pkg/storage"
)

// ByteRange 闭区间 [Start, End]
type ByteRange = storage.ByteRange

const rangeUnit = "bytes="

// ParseRange 解析 Range 头，只取第一个区间，其余区间忽略。
//
// 支持 start-end、start-、-suffix 三种写法；end 超出对象长度时截断到 size-1。
// 格式错误、start > end 或 start >= size 时返回 MalformedRange 错误。
func ParseRange(header string, size int64) (ByteRange, error) {
	header = strings.TrimSpace(header)
	if len(header) < len(rangeUnit) || !strings.EqualFold(header[:len(rangeUnit)], rangeUnit) {
		return ByteRange{}, malformed("不支持的 Range 单位")
	}

	first := strings.SplitN(header[len(rangeUnit):], ",", 2)[0]
	bounds := strings.SplitN(strings.TrimSpace(first), "-", 2)
	if len(bounds) != 2 {
		return ByteRange{}, malformed("Range 格式错误")
	}
	startStr, endStr := strings.TrimSpace(bounds[0]), strings.TrimSpace(bounds[1])

	// 后缀形式: 最后 N 个字节
	if startStr == "" {
		suffix, ok := parseOffset(endStr)
		if !ok || suffix == 0 || size == 0 {
			return ByteRange{}, malformed("Range 后缀长度无效")
		}
		if suffix > size {
			suffix = size
		}
		return ByteRange{Start: size - suffix, End: size - 1}, nil
	}

	start, ok := parseOffset(startStr)
	if !ok {
		return ByteRange{}, malformed("Range 起点无效")
	}
	if start >= size {
		return ByteRange{}, malformed("Range 起点超出文件长度")
	}

	end := size - 1
	if endStr != "" {
		parsed, ok := parseOffset(endStr)
		if !ok {
			return ByteRange{}, malformed("Range 终点无效")
		}
		if start > parsed {
			return ByteRange{}, malformed("Range 起点大于终点")
		}
		if parsed < end {
			end = parsed
		}
	}
	return ByteRange{Start: start, End: end}, nil
}

// parseOffset 只接受十进制数字，拒绝符号和空串
func parseOffset(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func malformed(msg string) *errorc.Error {
	return errBuilder.Quick(msg, nil).RangeNotSatisfiable()
}
