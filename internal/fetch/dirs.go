package fetch

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// TileDirectory creates, if needed, the directory tiles of one project are
// stored in: <root>/<project>/tiles/static/<resolution>_<zoom>. The layout
// is the one tile2net expects.
func TileDirectory(root, project string, resolution, zoom int) (string, error) {
	if project == "" {
		return "", fmt.Errorf("project name is required")
	}
	dir := filepath.Join(root, project, "tiles", "static",
		strconv.Itoa(resolution)+"_"+strconv.Itoa(zoom))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create tile directory: %w", err)
	}
	return dir, nil
}
