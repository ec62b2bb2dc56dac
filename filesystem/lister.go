package filesystem

import (
	"io/fs"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// Entry is one item of a directory listing.
type Entry struct {
	Name    string
	IsDir   bool
	ModTime time.Time
	Size    int64
}

// Lister gives read access to a directory hierarchy. Paths are absolute and
// use the host separator.
type Lister interface {
	// List returns the immediate entries of dir.
	List(dir string) ([]Entry, error)

	// Stat returns the entry for path. A missing path yields an error
	// satisfying errors.Is(err, fs.ErrNotExist).
	Stat(path string) (Entry, error)
}

// FsLister lists an afero file system. Symbolic links are resolved through
// Stat, so a link to a directory is reported as a directory.
type FsLister struct {
	Fs afero.Fs
}

// NewOSLister returns a Lister for the local disk.
func NewOSLister() FsLister {
	return FsLister{Fs: afero.NewOsFs()}
}

func (l FsLister) List(dir string) ([]Entry, error) {
	infos, err := afero.ReadDir(l.Fs, dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(infos))
	for _, fi := range infos {
		name := fi.Name()

		if fi.Mode()&fs.ModeSymlink != 0 {
			fi, err = l.Fs.Stat(filepath.Join(dir, name))
			if err != nil {
				// dangling link
				continue
			}
		}

		entries = append(entries, entryFromFileInfo(name, fi))
	}

	return entries, nil
}

func (l FsLister) Stat(path string) (Entry, error) {
	fi, err := l.Fs.Stat(path)
	if err != nil {
		return Entry{}, err
	}

	return entryFromFileInfo(filepath.Base(path), fi), nil
}

func entryFromFileInfo(name string, fi fs.FileInfo) Entry {
	return Entry{
		Name:    name,
		IsDir:   fi.IsDir(),
		ModTime: fi.ModTime(),
		Size:    fi.Size(),
	}
}
