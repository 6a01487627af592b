package sdk

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"
	"github.com/valyala/fasthttp"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// APIError 服务端返回的错误响应
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("storyhub: status %d: %s", e.Status, e.Message)
}

type Header struct {
	Key   string
	Value string
}

type request struct {
	method  string
	path    string
	query   url.Values
	body    interface{}
	headers []Header
}

// do 发出请求并返回响应体中的 data 字段
func (c *Client) do(ctx context.Context, r *request) (gjson.Result, error) {
	if err := ctx.Err(); err != nil {
		return gjson.Result{}, err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	uri := strings.TrimRight(c.baseURL, "/") + r.path
	if len(r.query) > 0 {
		uri += "?" + r.query.Encode()
	}
	req.SetRequestURI(uri)
	req.Header.SetMethod(r.method)

	if r.body != nil {
		jsonBytes, err := json.Marshal(r.body)
		if err != nil {
			return gjson.Result{}, fmt.Errorf("序列化请求体失败: %w", err)
		}
		req.Header.SetContentType("application/json")
		req.SetBody(jsonBytes)
	}
	if token := c.Token(); token != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+token)
	}
	for _, header := range r.headers {
		req.Header.Set(header.Key, header.Value)
	}

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.http.DoDeadline(req, resp, deadline)
	} else {
		err = c.http.DoTimeout(req, resp, c.timeout)
	}
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%s %s 请求失败: %w", r.method, r.path, err)
	}

	// resp 释放后 body 不再可用
	body := append([]byte(nil), resp.Body()...)
	status := resp.StatusCode()
	if status >= fasthttp.StatusBadRequest {
		msg := gjson.GetBytes(body, "message").String()
		if msg == "" {
			msg = strings.TrimSpace(string(body))
		}
		return gjson.Result{}, &APIError{Status: status, Message: msg}
	}
	return gjson.GetBytes(body, "data"), nil
}

// decode 把 data 字段解析到 v
func decode(data gjson.Result, v interface{}) error {
	if !data.Exists() {
		return fmt.Errorf("响应缺少 data 字段")
	}
	return json.Unmarshal([]byte(data.Raw), v)
}

func pageQuery(cursor string, limit int) url.Values {
	q := url.Values{}
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	return q
}

const defaultTimeout = 10 * time.Second
