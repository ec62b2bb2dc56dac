// Package slideshow selects images from a directory tree: random picks
// below an optional subtree and wraparound stepping through a folder.
package slideshow

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/bgraf/diashow/filesystem"
)

// Engine answers random, next and prev requests for one collection root.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	resolver  Resolver
	lister    filesystem.Lister
	random    RandomSource
	budget    int
	walker    *Walker
	navigator *Navigator
}

type Option func(*Engine)

// WithLister replaces the default disk lister.
func WithLister(l filesystem.Lister) Option {
	return func(e *Engine) {
		e.lister = l
	}
}

// WithRandom replaces DefaultRandom.
func WithRandom(r RandomSource) Option {
	return func(e *Engine) {
		e.random = r
	}
}

// WithBudget sets the random walk budget. Non-positive values keep
// DefaultBudget.
func WithBudget(budget int) Option {
	return func(e *Engine) {
		if budget > 0 {
			e.budget = budget
		}
	}
}

// New creates an Engine for root.
func New(root string, opts ...Option) *Engine {
	e := &Engine{
		resolver: NewResolver(root),
		lister:   filesystem.NewOSLister(),
		random:   DefaultRandom,
		budget:   DefaultBudget,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.walker = &Walker{Lister: e.lister, Rand: e.random, Budget: e.budget}
	e.navigator = &Navigator{Lister: e.lister, Resolver: e.resolver}

	return e
}

// Root returns the collection root.
func (e *Engine) Root() string {
	return e.resolver.Root
}

// Random returns a random image below the subtree prefix. An empty prefix
// searches the whole collection.
func (e *Engine) Random(prefix string) (string, error) {
	searchRoot, _, err := e.resolver.Resolve(prefix)
	if err != nil {
		return "", err
	}

	abs, err := e.walker.Walk(searchRoot)
	if err != nil {
		return "", err
	}

	return e.resolver.ToRelative(abs)
}

// Next returns the image after current in its folder.
func (e *Engine) Next(current string) (string, error) {
	return e.navigator.Navigate(Next, current)
}

// Prev returns the image before current in its folder.
func (e *Engine) Prev(current string) (string, error) {
	return e.navigator.Navigate(Prev, current)
}

// Navigate dispatches to Next or Prev.
func (e *Engine) Navigate(dir Direction, current string) (string, error) {
	return e.navigator.Navigate(dir, current)
}

// Image describes an existing image file of the collection.
type Image struct {
	Path     string
	Absolute string
	filesystem.Entry
}

// Lookup resolves rel to an existing image file.
func (e *Engine) Lookup(rel string) (Image, error) {
	if rel == "" {
		return Image{}, fmt.Errorf("image path required: %w", ErrBadRequest)
	}

	abs, clean, err := e.resolver.Resolve(rel)
	if err != nil {
		return Image{}, err
	}

	entry, err := e.lister.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Image{}, fmt.Errorf("image '%s': %w", clean, ErrNotFound)
		}
		return Image{}, fmt.Errorf("stat image '%s' (%v): %w", clean, err, ErrNotFound)
	}

	if entry.IsDir || !filesystem.IsImageFile(entry.Name) {
		return Image{}, fmt.Errorf("'%s' is not an image: %w", clean, ErrNotFound)
	}

	return Image{Path: clean, Absolute: abs, Entry: entry}, nil
}
