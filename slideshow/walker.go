package slideshow

import (
	"fmt"
	"path/filepath"

	"github.com/bgraf/diashow/filesystem"
)

// DefaultBudget bounds the number of directory listings of one random walk.
const DefaultBudget = 100

// skippedName is an archive artifact folder that is never descended into.
const skippedName = "__MACOSX"

// Walker picks a random image below a search root by descending through
// uniformly chosen directory entries. Every dead end restarts the walk from
// the search root; Budget bounds the total number of steps.
//
// Images are not sampled uniformly: each level weighs its entries equally,
// so images in shallow or sparse folders are favoured.
type Walker struct {
	Lister filesystem.Lister
	Rand   RandomSource
	Budget int
}

// Walk returns the absolute path of a randomly chosen image below
// searchRoot. It fails with ErrNotFound if searchRoot is not a directory and
// with ErrExhausted once the budget is used up.
func (w *Walker) Walk(searchRoot string) (string, error) {
	if w.Budget <= 0 {
		return "", ErrExhausted
	}

	searchRoot = filepath.Clean(searchRoot)
	if entry, err := w.Lister.Stat(searchRoot); err != nil || !entry.IsDir {
		return "", fmt.Errorf("search root '%s': %w", searchRoot, ErrNotFound)
	}

	dir := searchRoot
	for budget := w.Budget; budget > 0; budget-- {
		entries, err := w.Lister.List(dir)
		if err != nil {
			if dir == searchRoot {
				return "", fmt.Errorf("list search root '%s': %w", searchRoot, ErrNotFound)
			}
			dir = searchRoot
			continue
		}

		if len(entries) == 0 {
			dir = searchRoot
			continue
		}

		picked := entries[w.Rand.IntN(len(entries))]
		if picked.Name == skippedName {
			dir = searchRoot
			continue
		}

		if picked.IsDir {
			dir = filepath.Join(dir, picked.Name)
			continue
		}

		images := filesystem.FilterImages(entries)
		if len(images) == 0 {
			dir = searchRoot
			continue
		}

		return filepath.Join(dir, images[w.Rand.IntN(len(images))].Name), nil
	}

	return "", ErrExhausted
}
