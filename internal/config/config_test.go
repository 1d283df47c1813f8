package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.Notifications.Enabled, "notifications should be enabled by default")
	assert.Equal(t, "~/.focusforge", cfg.Storage.DataDir)
	assert.NotEmpty(t, cfg.Theme.ColorFocus)
	assert.NotEmpty(t, cfg.Theme.ColorBreak)
}

func TestExpandDataDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"default", "~/.focusforge", filepath.Join(home, ".focusforge")},
		{"empty", "", filepath.Join(home, ".focusforge")},
		{"tilde prefix", "~/custom", filepath.Join(home, "custom")},
		{"absolute path untouched", "/var/data/ff", "/var/data/ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandDataDir(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
