package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/bgraf/diashow/logging"
)

// InstallFS copies the tree of fsys below root, creating directories as
// needed and overwriting existing files.
func InstallFS(fsys fs.FS, root string) error {
	return installFSDirectory(fsys, ".", root)
}

func installFSDirectory(fsys fs.FS, sourceDirectory string, targetDirectory string) error {
	if err := CreateDirectoryIfNotExists(targetDirectory); err != nil {
		return fmt.Errorf("creating directory '%s' failed: %w", targetDirectory, err)
	}

	entries, err := fs.ReadDir(fsys, sourceDirectory)
	if err != nil {
		return fmt.Errorf("could not read resource directory '%s': %w", sourceDirectory, err)
	}

	for _, entry := range entries {
		source := path.Join(sourceDirectory, entry.Name())
		target := filepath.Join(targetDirectory, entry.Name())

		if entry.IsDir() {
			if err = installFSDirectory(fsys, source, target); err != nil {
				return fmt.Errorf("could not install subdirectory: %w", err)
			}
			continue
		}

		logging.Info("installing resource", logging.String("file", source), logging.String("target", target))

		content, err := fs.ReadFile(fsys, source)
		if err != nil {
			return fmt.Errorf("could not read resource '%s': %w", source, err)
		}

		if err := os.WriteFile(target, content, 0666); err != nil {
			return fmt.Errorf("could not write file '%s': %w", target, err)
		}
	}

	return nil
}
