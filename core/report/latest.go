package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LatestJSON returns the path of the most recently modified report JSON
// in dir, so the serve command always exposes the newest run.
func LatestJSON(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read report directory: %w", err)
	}

	var latest string
	var latestMod int64
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); latest == "" || mod > latestMod {
			latest = filepath.Join(dir, entry.Name())
			latestMod = mod
		}
	}

	if latest == "" {
		return "", fmt.Errorf("no report found in %s", dir)
	}
	return latest, nil
}
