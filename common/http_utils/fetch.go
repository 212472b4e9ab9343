package http_utils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// Transport 网络传输能力 由调用方提供
// 超时 重试 连接池等行为由实现方负责
type Transport interface {
	Call(ctx context.Context, url string, opts *CallOptions) (JSONResponse, error)
}

// JSONResponse 可以按 JSON 解析的响应
type JSONResponse interface {
	ParseJSON(v any) error
}

// TransportFunc 函数适配 Transport
type TransportFunc func(ctx context.Context, url string, opts *CallOptions) (JSONResponse, error)

// Call 实现 Transport
func (f TransportFunc) Call(ctx context.Context, url string, opts *CallOptions) (JSONResponse, error) {
	return f(ctx, url, opts)
}

// RequestConfig 类型化请求配置
type RequestConfig struct {
	URL     string
	Method  string            // 默认 GET
	Headers map[string]string // 覆盖默认请求头
}

// defaultJSONHeaders 默认请求头
func defaultJSONHeaders() map[string]string {
	return map[string]string{
		HeaderAccept:      MIMEApplicationJSON,
		HeaderContentType: MIMEApplicationJSON,
	}
}

// callOptions 生成传输选项
func (c RequestConfig) callOptions() *CallOptions {
	method := c.Method
	if method == "" {
		method = http.MethodGet
	}
	return &CallOptions{
		Method:  method,
		Headers: mergeHeaders(defaultJSONHeaders(), c.Headers),
	}
}

// Fetch 发送请求并把响应体解析为 T
//
// T 只在调用处声明一次 这里不会校验 JSON 的结构是否真的符合 T:
// 字段类型不匹配时对应字段保持零值 不作为错误返回 由调用方在使用时发现.
// 请求失败 ctx 取消 或者响应体不是合法 JSON 时返回 *TransportError. 不重试.
func Fetch[T any](ctx context.Context, transport Transport, cfg RequestConfig) (T, error) {
	var result T

	resp, err := transport.Call(ctx, cfg.URL, cfg.callOptions())
	if err != nil {
		return result, newTransportError("call", cfg.URL, err)
	}
	if resp == nil {
		return result, newTransportError("call", cfg.URL, errNilResponse)
	}
	if err = resp.ParseJSON(&result); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return result, nil
		}
		var zero T
		return zero, newTransportError("parse", cfg.URL, err)
	}
	return result, nil
}

// FetchAll 并发发送多个请求 结果顺序与 cfgs 一致
// limit <= 0 不限制并发数. 任一请求失败会取消其余请求并返回第一个错误
func FetchAll[T any](ctx context.Context, transport Transport, cfgs []RequestConfig, limit int) ([]T, error) {
	results := make([]T, len(cfgs))
	group, groupCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}
	for i, cfg := range cfgs {
		group.Go(func() error {
			val, err := Fetch[T](groupCtx, transport, cfg)
			if err != nil {
				return err
			}
			results[i] = val
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
