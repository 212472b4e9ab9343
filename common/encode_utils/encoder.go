package encode_utils

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

const (
	EncodingUTF8     = "UTF-8"
	EncodingUTF8BOM  = "UTF-8-BOM"
	EncodingGBK      = "GBK"
	EncodingGB18030  = "GB18030"
	EncodingHZGB2312 = "HZ-GB2312"
)

// charsetAliases Content-Type charset 常见写法
var charsetAliases = map[string]string{
	"UTF8":       EncodingUTF8,
	"UTF-8":      EncodingUTF8,
	"UTF-8-BOM":  EncodingUTF8BOM,
	"GBK":        EncodingGBK,
	"CP936":      EncodingGBK,
	"GB2312":     EncodingGBK,
	"GB18030":    EncodingGB18030,
	"HZ-GB-2312": EncodingHZGB2312,
	"HZ-GB2312":  EncodingHZGB2312,
}

// Normalize 规范化编码名称 无法识别返回空串
func Normalize(charset string) string {
	return charsetAliases[strings.ToUpper(strings.TrimSpace(charset))]
}

// lookup 获取编码实现
func lookup(encodingStr string) encoding.Encoding {
	switch encodingStr {
	case EncodingUTF8:
		return unicode.UTF8
	case EncodingUTF8BOM:
		return unicode.UTF8BOM
	case EncodingGBK:
		return simplifiedchinese.GBK
	case EncodingGB18030:
		return simplifiedchinese.GB18030
	case EncodingHZGB2312:
		return simplifiedchinese.HZGB2312
	default:
		return nil
	}
}

// NewEncoder 创建编码器 UTF-8 转目标编码
func NewEncoder(encodingStr string) *encoding.Encoder {
	enc := lookup(encodingStr)
	if enc == nil {
		return nil
	}
	return enc.NewEncoder()
}

// NewDecoder 创建解码器 目标编码转 UTF-8
func NewDecoder(encodingStr string) *encoding.Decoder {
	enc := lookup(encodingStr)
	if enc == nil {
		return nil
	}
	return enc.NewDecoder()
}

// DecodeBytes 按给定编码解码为 UTF-8
// 第二个返回值表示编码是否可识别
func DecodeBytes(encodingStr string, data []byte) ([]byte, bool, error) {
	decoder := NewDecoder(encodingStr)
	if decoder == nil {
		return nil, false, nil
	}
	decoded, err := decoder.Bytes(data)
	return decoded, true, err
}
