package filesystem

import (
	"fmt"
	"os"
)

// WriteFileAtomic writes a file to disk in an atomic, crash-safe fashion. It
// writes the data to a sibling temporary file (path + ".tmp"), moves any
// existing file at the target path aside to path + ".bak", renames the
// temporary file into place, and finally unlinks the backup. If any step
// after the backup rename fails, the backup is restored before the error is
// propagated, so the target path always holds either its previous contents or
// the complete new contents, never a truncated file.
func WriteFileAtomic(path string, data []byte, permissions os.FileMode) error {
	// Compute the temporary and backup paths.
	temporary := path + ".tmp"
	backup := path + ".bak"

	// Write the data to the temporary file. A partial write here never
	// touches the target path.
	if err := os.WriteFile(temporary, data, permissions); err != nil {
		os.Remove(temporary)
		return fmt.Errorf("unable to write temporary file: %w", err)
	}

	// If the target already exists, move it aside so that it can be restored
	// if the final rename fails.
	haveBackup := false
	if _, err := os.Lstat(path); err == nil {
		if err := os.Rename(path, backup); err != nil {
			os.Remove(temporary)
			return fmt.Errorf("unable to create backup file: %w", err)
		}
		haveBackup = true
	} else if !os.IsNotExist(err) {
		os.Remove(temporary)
		return fmt.Errorf("unable to probe target file: %w", err)
	}

	// Rename the temporary file into place, restoring the backup on failure.
	if err := os.Rename(temporary, path); err != nil {
		if haveBackup {
			os.Rename(backup, path)
		}
		os.Remove(temporary)
		return fmt.Errorf("unable to rename temporary file: %w", err)
	}

	// Unlink the backup. The new contents are already durable at this point,
	// so a leftover backup is harmless and not worth failing over.
	if haveBackup {
		os.Remove(backup)
	}

	// Success.
	return nil
}
