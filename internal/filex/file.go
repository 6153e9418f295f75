// Package filex holds small filesystem helpers for the CLI: managing
// the download directory and writing retrieved files without
// clobbering existing ones.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureSubdDir creates dirName under the current working directory if
// needed and returns its absolute path.
func EnsureSubdDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// SaveUnique writes data to fileName inside dir. When a file with that
// name already exists, a numeric suffix is inserted before the
// extension ("report.pdf" -> "report (1).pdf") so earlier downloads
// are never overwritten. The final path is returned.
func SaveUnique(dir, fileName string, data []byte) (string, error) {
	path := filepath.Join(dir, fileName)

	ext := filepath.Ext(fileName)
	base := fileName[:len(fileName)-len(ext)]
	for i := 1; ; i++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		path = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, i, ext))
	}

	if err := os.WriteFile(path, data, 0o660); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
