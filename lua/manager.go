package lua

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samaelod/enigma/types"
)

// SaveToRecent writes the key sheet into recentDir as <name>_N.lua, using
// the first free N. Returns the path of the new file.
func SaveToRecent(sheet *types.Machine, recentDir string) (string, error) {
	if recentDir == "" {
		recentDir = "recent"
	}

	if err := os.MkdirAll(recentDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create recent directory: %w", err)
	}

	baseName := filepath.Base(sheet.Name)
	nameWithoutExt := strings.TrimSuffix(baseName, filepath.Ext(baseName))
	if nameWithoutExt == "" || nameWithoutExt == "." {
		nameWithoutExt = "machine"
	}

	counter := 1
	var newPath string
	for {
		newPath = filepath.Join(recentDir, fmt.Sprintf("%s_%d.lua", nameWithoutExt, counter))
		if _, err := os.Stat(newPath); os.IsNotExist(err) {
			break
		}
		counter++
	}

	f, err := os.OpenFile(newPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0600)
	if err != nil {
		return "", fmt.Errorf("failed to create key sheet: %w", err)
	}
	defer f.Close()

	if err := WriteConfig(f, sheet); err != nil {
		return "", fmt.Errorf("failed to write key sheet: %w", err)
	}

	return newPath, nil
}
