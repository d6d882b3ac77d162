package fetch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileDirectory(t *testing.T) {
	root := t.TempDir()

	dir, err := TileDirectory(root, "vesterbro", 256, 19)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "vesterbro", "tiles", "static", "256_19"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// existing directories are reused
	again, err := TileDirectory(root, "vesterbro", 256, 19)
	require.NoError(t, err)
	assert.Equal(t, dir, again)

	_, err = TileDirectory(root, "", 256, 19)
	assert.Error(t, err)
}

func TestRedact(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://x/y?token=abc&layer=a", "https://x/y?layer=a&token=REDACTED"},
		{"https://x/tiles/1/2/3?session=s&key=k", "https://x/tiles/1/2/3?key=REDACTED&session=REDACTED"},
		{"https://x/y?layer=a", "https://x/y?layer=a"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, redact(tt.in))
	}
}
