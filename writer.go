package sitegen

import (
	"fmt"
	"os"
	"path/filepath"
)

// checkOutputDir verifies the output directory exists and is a directory.
// The writer never creates it; a missing or unwritable directory is fatal.
func checkOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output directory: %s is not a directory", dir)
	}
	return nil
}

// writeFile persists one rendered document, overwriting any existing file.
func writeFile(dir, name string, data []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
