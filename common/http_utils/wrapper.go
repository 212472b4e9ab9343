package http_utils

import (
	"context"
	"sync/atomic"
)

var (
	defaultSession atomic.Pointer[Session]
)

func init() {
	defaultSession.Store(NewSession())
}

// DefaultSession 获取默认会话
func DefaultSession() *Session {
	return defaultSession.Load()
}

// SetDefaultSession 替换默认会话 nil 忽略
func SetDefaultSession(s *Session) {
	if s == nil {
		return
	}
	defaultSession.Store(s)
}

// Get 使用默认会话发送 get 请求
func Get(ctx context.Context, url string, opts *CallOptions) (*Response, error) {
	return DefaultSession().Get(ctx, url, opts)
}

// Post 使用默认会话发送 post 请求
func Post(ctx context.Context, url string, opts *CallOptions) (*Response, error) {
	return DefaultSession().Post(ctx, url, opts)
}

// Delete 使用默认会话发送 delete 请求
func Delete(ctx context.Context, url string, opts *CallOptions) (*Response, error) {
	return DefaultSession().Delete(ctx, url, opts)
}

// Put 使用默认会话发送 put 请求
func Put(ctx context.Context, url string, opts *CallOptions) (*Response, error) {
	return DefaultSession().Put(ctx, url, opts)
}

// Patch 使用默认会话发送 patch 请求
func Patch(ctx context.Context, url string, opts *CallOptions) (*Response, error) {
	return DefaultSession().Patch(ctx, url, opts)
}

// FetchDefault 使用默认会话发送类型化请求
func FetchDefault[T any](ctx context.Context, cfg RequestConfig) (T, error) {
	return Fetch[T](ctx, DefaultSession(), cfg)
}
