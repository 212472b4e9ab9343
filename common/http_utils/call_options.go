package http_utils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

const (
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"
	HeaderUserAgent   = "User-Agent"
	HeaderRequestID   = "X-Request-Id"

	MIMEApplicationJSON = "application/json"
)

// CallOptions 单次请求选项
type CallOptions struct {
	Method  string            // 请求方法 默认 GET
	Headers map[string]string // 请求头 覆盖会话默认请求头
	Params  map[string]string // URL 查询参数 追加到已有参数
	Body    any               // 请求体 序列化为 JSON
	Timeout time.Duration     // 单次请求超时 0 表示不限制
}

// method 请求方法 为空取 GET
func (o *CallOptions) method() string {
	if o == nil || o.Method == "" {
		return http.MethodGet
	}
	return o.Method
}

// bodyReader 序列化请求体
func (o *CallOptions) bodyReader() (io.Reader, error) {
	if o == nil || o.Body == nil {
		return nil, nil
	}
	data, err := json.Marshal(o.Body)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// applyRequestOpt 应用请求选项
func (o *CallOptions) applyRequestOpt(r *http.Request) {
	if o == nil {
		return
	}
	if len(o.Params) > 0 {
		setQuery(r, o.Params)
	}
	if o.Body != nil {
		r.Header.Set(HeaderContentType, MIMEApplicationJSON)
	}
	setHeaders(r, o.Headers)
}

// setQuery 设置查询参数
func setQuery(r *http.Request, params map[string]string) {
	query := r.URL.Query()
	for key, value := range params {
		query.Set(key, value)
	}
	r.URL.RawQuery = query.Encode()
}

// setHeaders 设置请求头
func setHeaders(r *http.Request, headers map[string]string) {
	for headerKey, headerVal := range headers {
		r.Header.Set(headerKey, headerVal)
	}
}

// mergeHeaders 合并请求头 后者覆盖前者 键名统一为规范格式
func mergeHeaders(layers ...map[string]string) map[string]string {
	merged := make(map[string]string)
	for _, layer := range layers {
		for key, val := range layer {
			merged[http.CanonicalHeaderKey(key)] = val
		}
	}
	return merged
}
