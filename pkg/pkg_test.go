package pkg

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	buf, err := os.ReadFile("VERSION")
	require.NoError(t, err)

	assert.Equal(t, strings.TrimSpace(string(buf)), Version)
	assert.NotEmpty(t, Version)
}

func TestNormalizePrefix(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"minigrep", "minigrep"},
		{"grep2", "grep2"},
		{"__debug_bin", Name},
		{"__debug_bin3141", Name},
		{".minigrep", "minigrep"},
		{"..", Name},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePrefix(tt.in))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, ConfigDir(), ConfigPath())
	assert.Equal(t, filepath.Join(ConfigDir(), "config.yaml"), ConfigPath("config.yaml"))
	assert.Equal(t, Prefix(), filepath.Base(ConfigDir()))
	assert.Equal(t, Prefix(), filepath.Base(CacheDir()))
}

func TestUserDir_Fallback(t *testing.T) {
	fail := func() (string, error) { return "", errors.New("unset") }

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	assert.Equal(t, filepath.Join(home, ".hidden"), userDir(fail, ".hidden"))
	assert.Equal(t, "/x", userDir(func() (string, error) { return "/x", nil }, ".hidden"))
}
