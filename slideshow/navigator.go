package slideshow

import (
	"fmt"
	"path"
	"strings"

	"github.com/bgraf/diashow/filesystem"
)

// Direction selects the neighbour returned by Navigator.Navigate.
type Direction int

const (
	Next Direction = iota
	Prev
)

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// ParseDirection accepts "next" and "prev".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "next":
		return Next, nil
	case "prev", "previous":
		return Prev, nil
	}

	return Next, fmt.Errorf("unknown direction %q: %w", s, ErrBadRequest)
}

// Navigator steps through the images of one folder in byte-wise filename
// order, wrapping around at both ends. It keeps no cursor; every call
// re-reads the folder.
type Navigator struct {
	Lister   filesystem.Lister
	Resolver Resolver
}

// Navigate returns the relative path of the image next to or before current
// in current's folder.
func (n *Navigator) Navigate(dir Direction, current string) (string, error) {
	if current == "" {
		return "", fmt.Errorf("current image required: %w", ErrBadRequest)
	}

	current, err := Validate(current)
	if err != nil {
		return "", err
	}
	if current == "" {
		return "", fmt.Errorf("current image required: %w", ErrBadRequest)
	}

	folder, name := path.Split(current)
	folder = strings.TrimSuffix(folder, "/")

	entries, err := n.Lister.List(n.Resolver.ToAbsolute(folder))
	if err != nil {
		return "", fmt.Errorf("list folder '%s': %w", folder, ErrNotFound)
	}

	names := filesystem.ImageNames(entries)
	if len(names) == 0 {
		return "", fmt.Errorf("no images in folder '%s': %w", folder, ErrNotFound)
	}

	index := indexOf(names, name)
	if index < 0 {
		return "", fmt.Errorf("image '%s' not in folder '%s': %w", name, folder, ErrNotFound)
	}

	var neighbour int
	switch dir {
	case Prev:
		neighbour = (index - 1 + len(names)) % len(names)
	default:
		neighbour = (index + 1) % len(names)
	}

	if folder == "" {
		return names[neighbour], nil
	}

	return folder + "/" + names[neighbour], nil
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}

	return -1
}
