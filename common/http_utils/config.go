package http_utils

import (
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxRedirects = 10 // 默认最大重定向次数
)

var (
	ErrUnsupportedConfigFormat = errors.New("unsupported config format")
)

// SessionConfig 会话配置
type SessionConfig struct {
	UserAgent          string            `json:"user_agent" yaml:"user_agent" toml:"user_agent"`                            // 默认 UA
	Timeout            int64             `json:"timeout" yaml:"timeout" toml:"timeout"`                                     // 请求超时时间 单位-秒 0 表示不限制
	Proxy              string            `json:"proxy" yaml:"proxy" toml:"proxy"`                                           // 代理地址
	MaxRedirects       int               `json:"max_redirects" yaml:"max_redirects" toml:"max_redirects"`                   // 最大重定向次数 0 取默认值 小于 0 不跟随重定向
	DisableKeepalives  bool              `json:"disable_keepalives" yaml:"disable_keepalives" toml:"disable_keepalives"`    // 是否禁用 Keep-Alive
	DisableCompression bool              `json:"disable_compression" yaml:"disable_compression" toml:"disable_compression"` // 是否禁用压缩
	SkipVerifyTLS      bool              `json:"skip_verify_tls" yaml:"skip_verify_tls" toml:"skip_verify_tls"`             // 是否跳过 TLS 验证
	Headers            map[string]string `json:"headers" yaml:"headers" toml:"headers"`                                     // 每次请求附带的请求头
}

// LoadSessionConfig 按扩展名加载配置文件 支持 yaml/yml/toml/json
func LoadSessionConfig(path string) (*SessionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSessionConfig(data, filepath.Ext(path))
}

// ParseSessionConfig 解析配置 format 为 yaml/yml/toml/json 可带前导点
func ParseSessionConfig(data []byte, format string) (*SessionConfig, error) {
	cfg := &SessionConfig{}
	var err error
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "yaml", "yml":
		err = yaml.Unmarshal(data, cfg)
	case "toml":
		err = toml.Unmarshal(data, cfg)
	case "json":
		err = json.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("parse session config: %w", err)
	}
	return cfg, nil
}

// newHttpClient 按配置创建客户端
func (c *SessionConfig) newHttpClient() (*http.Client, error) {
	client := newHttpClient()
	if c == nil {
		return client, nil
	}
	client.Timeout = time.Duration(c.Timeout) * time.Second

	switch {
	case c.MaxRedirects < 0:
		client.CheckRedirect = disableRedirect
	case c.MaxRedirects > 0:
		client.CheckRedirect = limitRedirect(c.MaxRedirects)
	}

	transport := client.Transport.(*http.Transport)
	transport.DisableKeepAlives = c.DisableKeepalives
	transport.DisableCompression = c.DisableCompression
	if c.SkipVerifyTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	if c.Proxy != "" {
		proxyURL, err := url.Parse(c.Proxy)
		if err != nil {
			return nil, fmt.Errorf("parse proxy: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}
	return client, nil
}

// newHttpClient 默认客户端
func newHttpClient() *http.Client {
	jar, _ := cookiejar.New(nil)
	return &http.Client{
		Jar:           jar,
		Transport:     http.DefaultTransport.(*http.Transport).Clone(),
		CheckRedirect: limitRedirect(DefaultMaxRedirects),
	}
}

// limitRedirect 限制重定向次数
func limitRedirect(maxRedirects int) func(req *http.Request, via []*http.Request) error {
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= maxRedirects {
			return fmt.Errorf("stopped after %d redirects", maxRedirects)
		}
		return nil
	}
}

// disableRedirect 禁用重定向 返回最后一次的响应结果
func disableRedirect(req *http.Request, via []*http.Request) error {
	return http.ErrUseLastResponse
}
