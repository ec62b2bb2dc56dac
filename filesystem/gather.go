package filesystem

import (
	"path/filepath"
	"sort"
	"strings"
)

// ImageExtensions lists the lower-case extensions of selectable images.
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// IsImageFile reports whether name carries one of the ImageExtensions,
// compared case-insensitively.
func IsImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range ImageExtensions {
		if e == ext {
			return true
		}
	}

	return false
}

// FilterImages keeps the non-directory entries that are image files.
func FilterImages(entries []Entry) []Entry {
	var images []Entry
	for _, entry := range entries {
		if entry.IsDir || !IsImageFile(entry.Name) {
			continue
		}
		images = append(images, entry)
	}

	return images
}

// ImageNames returns the names of the image files in entries in byte-wise
// ascending order.
func ImageNames(entries []Entry) []string {
	images := FilterImages(entries)

	names := make([]string, len(images))
	for i, entry := range images {
		names[i] = entry.Name
	}

	sort.Strings(names)

	return names
}
