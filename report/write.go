// ABOUTME: Atomic newsletter file writing
// ABOUTME: Stages content in a temp file and renames it into place

package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes the rendered newsletter to path atomically. Readers
// never observe a partially written file.
func WriteFile(path, content string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".newsletter-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write newsletter: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close newsletter file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move newsletter into place: %w", err)
	}

	return nil
}
