package slideshow

import (
	"sync"

	"github.com/bgraf/diashow/filesystem"
)

const testRoot = "/photos"

// scriptedRandom replays fixed draws and falls back to zero when exhausted.
type scriptedRandom struct {
	mu    sync.Mutex
	draws []int
	calls []int
}

func (s *scriptedRandom) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, n)
	if len(s.draws) == 0 {
		return 0
	}

	v := s.draws[0]
	s.draws = s.draws[1:]

	return v % n
}

// countingLister counts List calls and fails listings of selected paths.
type countingLister struct {
	filesystem.Lister

	mu     sync.Mutex
	lists  int
	failOn map[string]error
}

func (c *countingLister) List(dir string) ([]filesystem.Entry, error) {
	c.mu.Lock()
	c.lists++
	err := c.failOn[dir]
	c.mu.Unlock()

	if err != nil {
		return nil, err
	}

	return c.Lister.List(dir)
}

// memoryTree builds an in-memory collection below testRoot; a trailing
// slash marks a directory.
func memoryTree(files ...string) filesystem.FsLister {
	m, err := filesystem.NewMemoryLister(testRoot, files...)
	if err != nil {
		panic(err)
	}

	return m
}
