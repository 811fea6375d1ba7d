package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SanitizeFileName replaces characters that are unsafe in file names.
func SanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}

// TimestampedFileName builds "name_unixts.ext" from an original file name.
func TimestampedFileName(original string) string {
	ext := filepath.Ext(original)
	base := strings.TrimSuffix(filepath.Base(original), ext)
	return SanitizeFileName(fmt.Sprintf("%s_%d%s", base, time.Now().Unix(), ext))
}

// SaveTextResult writes a finished result string into dir under the given
// file name and returns the full path. The directory is created if missing.
func SaveTextResult(text, dir, fileName string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	if fileName == "" {
		fileName = "result.txt"
	}
	if filepath.Ext(fileName) == "" {
		fileName += ".txt"
	}
	destPath := filepath.Join(dir, SanitizeFileName(fileName))

	if err := os.WriteFile(destPath, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("failed to write result file: %w", err)
	}
	return destPath, nil
}
