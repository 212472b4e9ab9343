package http_utils

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/peng-qing/typed_tools/common/encode_utils"
)

var (
	_ JSONResponse = (*Response)(nil)
)

// Response 响应对象 wrapper for http.Response
// 响应体在构造时一次读完并关闭 Bytes/Text 均为 UTF-8
type Response struct {
	*http.Response
	charset  string // 响应声明的编码
	encoding string // Text 当前的编码
	Text     string
	Bytes    []byte
}

// NewResponse 创建一个响应对象
func NewResponse(r *http.Response) (*Response, error) {
	defer r.Body.Close()

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Response: r,
		charset:  encode_utils.EncodingUTF8,
		encoding: encode_utils.EncodingUTF8,
	}
	// 非 UTF-8 响应先转码
	if charset := contentCharset(r.Header.Get(HeaderContentType)); charset != "" && charset != encode_utils.EncodingUTF8 {
		decoded, ok, err := encode_utils.DecodeBytes(charset, data)
		if err != nil {
			return nil, err
		}
		if ok {
			data = decoded
			resp.charset = charset
		}
	}

	resp.Bytes = data
	resp.Text = string(data)
	r.Body = http.NoBody

	return resp, nil
}

// contentCharset 解析 Content-Type 中的 charset
func contentCharset(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return encode_utils.Normalize(params["charset"])
}

// ParseJSON 解析响应数据为 JSON
// 这里不一定是 application/json 因为是直接对body数据进行解析
func (r *Response) ParseJSON(v any) error {
	return json.Unmarshal(r.Bytes, v)
}

// Charset 响应声明的编码
func (r *Response) Charset() string {
	return r.charset
}

// SetEncoding 把 Text 转换为指定编码
func (r *Response) SetEncoding(e string) error {
	e = strings.ToUpper(e)
	if e == r.encoding {
		return nil
	}
	encoder := encode_utils.NewEncoder(e)
	if encoder == nil {
		return ErrUnrecognizedEncoding
	}
	text, err := encoder.String(string(r.Bytes))
	if err != nil {
		return err
	}
	r.encoding = e
	r.Text = text

	return nil
}

// GetEncoding 获取 Text 当前编码
func (r *Response) GetEncoding() string {
	return r.encoding
}
