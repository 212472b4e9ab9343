package http_utils

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport 网络请求失败或响应体不是合法 JSON
	ErrTransport = errors.New("transport error")
	// ErrUnsupportedMethod 不支持的 http 方法
	ErrUnsupportedMethod = errors.New("unsupported method")
	// ErrUnrecognizedEncoding 无法识别的编码
	ErrUnrecognizedEncoding = errors.New("unrecognized encoding string")
	// ErrNilHook 注册空的钩子函数
	ErrNilHook = errors.New("hook function is nil")

	// errNilResponse 传输层未返回错误也未返回响应
	errNilResponse = errors.New("transport returned nil response")
)

// TransportError 请求错误 携带阶段与地址
type TransportError struct {
	Op  string // call 发送请求 / parse 解析响应
	URL string
	Err error
}

func (e *TransportError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v: %s %s: %v", ErrTransport, e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is 匹配 ErrTransport
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// newTransportError 包装错误 已经是 TransportError 则原样返回
func newTransportError(op, url string, err error) error {
	var te *TransportError
	if errors.As(err, &te) {
		return err
	}
	return &TransportError{Op: op, URL: url, Err: err}
}
