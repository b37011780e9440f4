package pathutil

import (
	"path/filepath"
	"strings"
)

// Resolve turns relPath into an absolute, cleaned path plus the directory
// containing it.
func Resolve(relPath string) (fullPath string, parentDir string, err error) {
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}
	parentDir = filepath.Dir(fullPath)
	return fullPath, parentDir, nil
}

// DefaultOutputPath derives an output path from inPath by swapping its
// extension for ".py", or appending ".py" if inPath has none.
func DefaultOutputPath(inPath string) string {
	ext := filepath.Ext(inPath)
	if ext == "" {
		return inPath + ".py"
	}
	return strings.TrimSuffix(inPath, ext) + ".py"
}
