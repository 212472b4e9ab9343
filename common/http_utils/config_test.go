package http_utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlConfig = `
user_agent: yaml-agent
timeout: 5
max_redirects: -1
disable_keepalives: true
headers:
  x-token: abc
`

const tomlConfig = `
user_agent = "toml-agent"
timeout = 3
skip_verify_tls = true

[headers]
x-token = "def"
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSessionConfig(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		want SessionConfig
	}{
		{
			name: "yaml",
			file: "session.yaml",
			body: yamlConfig,
			want: SessionConfig{
				UserAgent:         "yaml-agent",
				Timeout:           5,
				MaxRedirects:      -1,
				DisableKeepalives: true,
				Headers:           map[string]string{"x-token": "abc"},
			},
		},
		{
			name: "toml",
			file: "session.toml",
			body: tomlConfig,
			want: SessionConfig{
				UserAgent:     "toml-agent",
				Timeout:       3,
				SkipVerifyTLS: true,
				Headers:       map[string]string{"x-token": "def"},
			},
		},
		{
			name: "json",
			file: "session.json",
			body: `{"user_agent":"json-agent","proxy":"http://127.0.0.1:3128"}`,
			want: SessionConfig{
				UserAgent: "json-agent",
				Proxy:     "http://127.0.0.1:3128",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadSessionConfig(writeConfig(t, tt.file, tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestLoadSessionConfig_Errors(t *testing.T) {
	_, err := LoadSessionConfig(writeConfig(t, "session.ini", "a=b"))
	assert.ErrorIs(t, err, ErrUnsupportedConfigFormat)

	_, err = LoadSessionConfig(writeConfig(t, "broken.yaml", "headers: [\n"))
	assert.Error(t, err)

	_, err = LoadSessionConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewSessionFromConfig(t *testing.T) {
	cfg, err := ParseSessionConfig([]byte(yamlConfig), "yml")
	require.NoError(t, err)

	s, err := NewSessionFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "yaml-agent", s.userAgent)
	assert.Equal(t, map[string]string{"X-Token": "abc"}, s.headers)
	assert.Equal(t, 5*time.Second, s.client.Timeout)

	transport, ok := s.client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.True(t, transport.DisableKeepAlives)

	redirect := httptest.NewServer(http.RedirectHandler("/elsewhere", http.StatusFound))
	defer redirect.Close()

	resp, err := s.Get(context.Background(), redirect.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestNewSessionFromConfig_BadProxy(t *testing.T) {
	_, err := NewSessionFromConfig(&SessionConfig{Proxy: "://bad"})
	assert.Error(t, err)

	s, err := NewSessionFromConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, userAgent, s.userAgent)
}
