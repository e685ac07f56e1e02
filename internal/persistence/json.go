// Package persistence reads and writes the JSON artifacts as atomic
// whole-object operations. A save goes through a temp file plus a backup of
// the previous artifact, so a crashed run never leaves a half-written file
// in place of a valid one.
package persistence

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// SaveJSON encodes the given object as JSON and atomically replaces the file
// at filePath with it. The previous file, if any, is kept as a ".backup"
// copy until the rename succeeds. Necessary directories are created.
func SaveJSON(filePath string, object interface{}) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.Marshal(object)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact for %s: %w", filePath, err)
	}

	tmpPath := filePath + ".tmp"
	backupPath := filePath + ".backup"

	if _, err := os.Stat(filePath); err == nil {
		if err := copyFile(filePath, backupPath); err != nil {
			return fmt.Errorf("failed to back up %s: %w", filePath, err)
		}
	}

	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		// Put the previous artifact back if we clobbered it.
		if _, statErr := os.Stat(backupPath); statErr == nil {
			_ = os.Rename(backupPath, filePath)
		}
		return fmt.Errorf("failed to move temp file into place for %s: %w", filePath, err)
	}

	if _, err := os.Stat(backupPath); err == nil {
		_ = os.Remove(backupPath)
	}
	return nil
}

// LoadJSON decodes the JSON artifact at filePath into objectPointer. When the
// primary file is missing or corrupt, the ".backup" copy left by an
// interrupted save is tried before giving up. If neither file exists, it
// returns os.ErrNotExist so callers can handle fresh starts gracefully.
func LoadJSON(filePath string, objectPointer interface{}) error {
	primaryErr := tryLoadFile(filePath, objectPointer)
	if primaryErr == nil {
		return nil
	}

	backupPath := filePath + ".backup"
	if backupErr := tryLoadFile(backupPath, objectPointer); backupErr == nil {
		// Restore the primary file from the good backup.
		if err := copyFile(backupPath, filePath); err != nil {
			fmt.Printf("Warning: failed to restore %s from backup: %v\n", filePath, err)
		}
		return nil
	}

	if os.IsNotExist(primaryErr) {
		return os.ErrNotExist
	}
	return fmt.Errorf("failed to load %s (backup also unusable): %w", filePath, primaryErr)
}

func tryLoadFile(filePath string, objectPointer interface{}) error {
	data, err := os.ReadFile(filePath) // #nosec G304 -- filePath is controlled by application, not user input
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, objectPointer); err != nil {
		return fmt.Errorf("failed to decode %s: %w", filePath, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) // #nosec G304 -- paths are controlled by application, not user input
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := in.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", src, closeErr)
		}
	}()

	out, err := os.Create(dst) // #nosec G304
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
