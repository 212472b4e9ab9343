package http_utils

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/peng-qing/typed_tools/common/container"
	"github.com/peng-qing/typed_tools/common/options"
)

var (
	_ Transport = (*Session)(nil)

	// userAgent
	userAgent = "typed_tools/http_utils"

	// supportHttpMethod 支持的http方法
	supportHttpMethod = container.NewSet(
		http.MethodGet,
		http.MethodPost,
		http.MethodDelete,
		http.MethodPut,
		http.MethodPatch,
		http.MethodHead,
		http.MethodOptions,
	)
)

// RequestHookFunc request hook
type RequestHookFunc func(r *http.Request) error

// ResponseHookFunc response hook
type ResponseHookFunc func(r *http.Response) error

// Session http session 可并发使用
// lock 只保护钩子列表 请求发送时使用快照 不持锁
type Session struct {
	client             *http.Client
	userAgent          string
	headers            map[string]string // 每次请求附带的请求头
	metrics            *Metrics
	beforeRequestHooks []RequestHookFunc
	afterResponseHooks []ResponseHookFunc
	lock               sync.Mutex
}

// WithClient 使用自定义客户端
func WithClient(client *http.Client) options.Option[Session] {
	return options.WrapperOptions[Session](func(s *Session) {
		s.client = client
	})
}

// WithUserAgent 设置 UA
func WithUserAgent(ua string) options.Option[Session] {
	return options.WrapperOptions[Session](func(s *Session) {
		s.userAgent = ua
	})
}

// WithHeaders 设置每次请求附带的请求头
func WithHeaders(headers map[string]string) options.Option[Session] {
	return options.WrapperOptions[Session](func(s *Session) {
		s.headers = mergeHeaders(s.headers, headers)
	})
}

// WithMetrics 记录请求指标
func WithMetrics(m *Metrics) options.Option[Session] {
	return options.WrapperOptions[Session](func(s *Session) {
		s.metrics = m
	})
}

// NewSession new session
func NewSession(opts ...options.Option[Session]) *Session {
	s := &Session{
		client:    newHttpClient(),
		userAgent: userAgent,
	}
	options.ApplyAll(s, opts...)
	return s
}

// NewSessionFromConfig 按配置创建会话 opts 在配置之后应用
func NewSessionFromConfig(cfg *SessionConfig, opts ...options.Option[Session]) (*Session, error) {
	client, err := cfg.newHttpClient()
	if err != nil {
		return nil, err
	}
	base := []options.Option[Session]{WithClient(client)}
	if cfg != nil {
		if cfg.UserAgent != "" {
			base = append(base, WithUserAgent(cfg.UserAgent))
		}
		base = append(base, WithHeaders(cfg.Headers))
	}
	return NewSession(append(base, opts...)...), nil
}

// Call 实现 Transport 接口
func (s *Session) Call(ctx context.Context, url string, opts *CallOptions) (JSONResponse, error) {
	resp, err := s.Request(ctx, url, opts)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Request 发送请求 响应体已读取完毕
func (s *Session) Request(ctx context.Context, urlStr string, opts *CallOptions) (*Response, error) {
	method := strings.ToUpper(opts.method())
	// 检查方法
	if !supportHttpMethod.Contains(method) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}

	if opts != nil && opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	body, err := opts.bodyReader()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, urlStr, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(HeaderUserAgent, s.userAgent) // 设置UA
	setHeaders(req, s.headers)
	opts.applyRequestOpt(req)
	if req.Header.Get(HeaderRequestID) == "" {
		req.Header.Set(HeaderRequestID, uuid.NewString())
	}

	requestHooks, responseHooks := s.hooks()
	// 执行钩子函数
	for _, hookFn := range requestHooks {
		if err = hookFn(req); err != nil {
			return nil, err
		}
	}

	requestID := req.Header.Get(HeaderRequestID)
	slog.Debug("[Session] Request starting", slog.String("method", method), slog.String("url", req.URL.Redacted()), slog.String("requestID", requestID))
	start := time.Now()
	resp, err := s.do(req)
	s.metrics.observe(method, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	slog.Debug("[Session] Request finished", slog.String("requestID", requestID), slog.Int("status", resp.StatusCode), slog.Duration("elapsed", time.Since(start)))

	// 执行钩子函数
	for _, hookFn := range responseHooks {
		if err = hookFn(resp.Response); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

// do 发送请求并读取响应体
func (s *Session) do(req *http.Request) (*Response, error) {
	rowResp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	return NewResponse(rowResp)
}

// hooks 钩子函数快照
func (s *Session) hooks() ([]RequestHookFunc, []ResponseHookFunc) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.beforeRequestHooks, s.afterResponseHooks
}

// AddRequestHooks 添加请求钩子函数
func (s *Session) AddRequestHooks(hooks ...RequestHookFunc) error {
	if len(hooks) <= 0 {
		return ErrNilHook
	}
	s.lock.Lock()
	defer s.lock.Unlock()

	// 重新分配 避免与正在使用的快照共享底层数组
	s.beforeRequestHooks = append(append([]RequestHookFunc(nil), s.beforeRequestHooks...), hooks...)
	return nil
}

// ResetRequestHooks 重置请求钩子函数
func (s *Session) ResetRequestHooks() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.beforeRequestHooks = nil
}

// AddResponseHooks 添加响应钩子函数
func (s *Session) AddResponseHooks(hooks ...ResponseHookFunc) error {
	if len(hooks) <= 0 {
		return ErrNilHook
	}
	s.lock.Lock()
	defer s.lock.Unlock()

	s.afterResponseHooks = append(append([]ResponseHookFunc(nil), s.afterResponseHooks...), hooks...)
	return nil
}

// ResetResponseHooks 重置响应钩子函数
func (s *Session) ResetResponseHooks() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.afterResponseHooks = nil
}

// Get 使用get请求
func (s *Session) Get(ctx context.Context, urlStr string, opts *CallOptions) (*Response, error) {
	return s.Request(ctx, urlStr, withMethod(opts, http.MethodGet))
}

// Post 使用post请求
func (s *Session) Post(ctx context.Context, urlStr string, opts *CallOptions) (*Response, error) {
	return s.Request(ctx, urlStr, withMethod(opts, http.MethodPost))
}

// Delete 使用delete请求
func (s *Session) Delete(ctx context.Context, urlStr string, opts *CallOptions) (*Response, error) {
	return s.Request(ctx, urlStr, withMethod(opts, http.MethodDelete))
}

// Put 使用put请求
func (s *Session) Put(ctx context.Context, urlStr string, opts *CallOptions) (*Response, error) {
	return s.Request(ctx, urlStr, withMethod(opts, http.MethodPut))
}

// Patch 使用patch请求
func (s *Session) Patch(ctx context.Context, urlStr string, opts *CallOptions) (*Response, error) {
	return s.Request(ctx, urlStr, withMethod(opts, http.MethodPatch))
}

// withMethod 复制选项并覆盖方法 不修改调用方的选项
func withMethod(opts *CallOptions, method string) *CallOptions {
	copied := CallOptions{}
	if opts != nil {
		copied = *opts
	}
	copied.Method = method
	return &copied
}
