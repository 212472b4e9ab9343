package encode_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, EncodingUTF8, Normalize("utf-8"))
	assert.Equal(t, EncodingGBK, Normalize(" gb2312 "))
	assert.Equal(t, EncodingHZGB2312, Normalize("hz-gb-2312"))
	assert.Equal(t, "", Normalize("latin-9"))
}

func TestEncodeDecodeGBK(t *testing.T) {
	encoded, err := NewEncoder(EncodingGBK).String("你好")
	require.NoError(t, err)
	assert.NotEqual(t, "你好", encoded)

	decoded, ok, err := DecodeBytes(EncodingGBK, []byte(encoded))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "你好", string(decoded))
}

func TestDecodeBytesUnknown(t *testing.T) {
	decoded, ok, err := DecodeBytes("EBCDIC", []byte("x"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, decoded)
	assert.Nil(t, NewEncoder("EBCDIC"))
}
