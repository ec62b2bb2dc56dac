package slideshow

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
)

func abs(rel string) string {
	return filepath.Join(testRoot, filepath.FromSlash(rel))
}

func TestWalker_TerminatesWithoutImages(t *testing.T) {
	var files []string

	// A spine of depth 6; every level carries 19 junk siblings.
	spine := ""
	for depth := 0; depth < 6; depth++ {
		for i := 0; i < 19; i++ {
			switch i % 3 {
			case 0:
				files = append(files, fmt.Sprintf("%sjunk%02d.txt", spine, i))
			case 1:
				files = append(files, fmt.Sprintf("%sempty%02d/", spine, i))
			default:
				files = append(files, fmt.Sprintf("%sraw%02d.CR2", spine, i))
			}
		}
		spine += fmt.Sprintf("level%d/", depth)
		files = append(files, spine)
	}

	m := memoryTree(files...)

	lister := &countingLister{Lister: m}
	w := &Walker{Lister: lister, Rand: DefaultRandom, Budget: DefaultBudget}

	_, err := w.Walk(testRoot)
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("Walk error = %v, want ErrExhausted", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("exhaustion must be reported as ErrNotFound, got %v", err)
	}
	if lister.lists > DefaultBudget {
		t.Fatalf("walk listed %d directories, budget is %d", lister.lists, DefaultBudget)
	}
}

func TestWalker_BudgetCountsEveryStep(t *testing.T) {
	m := memoryTree("empty/")
	lister := &countingLister{Lister: m}

	w := &Walker{Lister: lister, Rand: DefaultRandom, Budget: 7}
	if _, err := w.Walk(testRoot); !errors.Is(err, ErrExhausted) {
		t.Fatalf("Walk error = %v, want ErrExhausted", err)
	}

	// Descending into "empty" and restarting each use one unit of budget.
	if lister.lists != 7 {
		t.Fatalf("walk listed %d directories, want 7", lister.lists)
	}
}

func TestWalker_ZeroBudget(t *testing.T) {
	w := &Walker{Lister: memoryTree("1.jpg"), Rand: DefaultRandom, Budget: 0}
	if _, err := w.Walk(testRoot); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Walk error = %v, want ErrNotFound", err)
	}
}

func TestWalker_MissingSearchRoot(t *testing.T) {
	w := &Walker{Lister: memoryTree("a/1.jpg"), Rand: DefaultRandom, Budget: DefaultBudget}

	for _, root := range []string{abs("missing"), abs("a/1.jpg")} {
		_, err := w.Walk(root)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Walk(%s) error = %v, want ErrNotFound", root, err)
		}
	}
}

func TestWalker_SecondDrawAmongImages(t *testing.T) {
	m := memoryTree("a.jpg", "b.txt", "c.png")

	// First draw lands on b.txt, a file; the second draw picks among the two
	// images of the same folder.
	rnd := &scriptedRandom{draws: []int{1, 1}}
	w := &Walker{Lister: m, Rand: rnd, Budget: DefaultBudget}

	got, err := w.Walk(testRoot)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if got != abs("c.png") {
		t.Fatalf("Walk = %s, want %s", got, abs("c.png"))
	}
	if len(rnd.calls) != 2 || rnd.calls[0] != 3 || rnd.calls[1] != 2 {
		t.Fatalf("unexpected draws %v, want [3 2]", rnd.calls)
	}
}

func TestWalker_SkipsMacOSXFolder(t *testing.T) {
	m := memoryTree("__MACOSX/._1.jpg", "real/1.jpg")

	// __MACOSX sorts first; picking it restarts the walk at the root.
	rnd := &scriptedRandom{draws: []int{0, 1, 0, 0}}
	lister := &countingLister{Lister: m}
	w := &Walker{Lister: lister, Rand: rnd, Budget: DefaultBudget}

	got, err := w.Walk(testRoot)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if got != abs("real/1.jpg") {
		t.Fatalf("Walk = %s, want real/1.jpg", got)
	}
	if lister.lists != 3 {
		t.Fatalf("expected 3 listings (root, root, real), got %d", lister.lists)
	}
}

func TestWalker_RestartsFromSearchRootNotCurrentDir(t *testing.T) {
	m := memoryTree("sub/deep/notes.txt", "sub/deep/more.txt", "sub/img.png", "other.gif")
	lister := &countingLister{Lister: m}

	// sub -> deep -> more.txt (no images in deep) -> restart at sub, the
	// search root, then img.png. Restarting at the collection root instead
	// would end on other.gif.
	rnd := &scriptedRandom{draws: []int{0, 0, 1, 0}}
	w := &Walker{Lister: lister, Rand: rnd, Budget: DefaultBudget}

	got, err := w.Walk(abs("sub"))
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if got != abs("sub/img.png") {
		t.Fatalf("Walk = %s, want sub/img.png", got)
	}
}

func TestWalker_VanishedDirectoryRestarts(t *testing.T) {
	m := memoryTree("gone/1.jpg", "here/2.jpg")
	lister := &countingLister{
		Lister: m,
		failOn: map[string]error{abs("gone"): fs.ErrPermission},
	}

	rnd := &scriptedRandom{draws: []int{0, 1, 0, 0}}
	w := &Walker{Lister: lister, Rand: rnd, Budget: DefaultBudget}

	got, err := w.Walk(testRoot)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if got != abs("here/2.jpg") {
		t.Fatalf("Walk = %s, want here/2.jpg", got)
	}
}

func TestWalker_SingletonSubtree(t *testing.T) {
	m := memoryTree(
		"a/readme.txt",
		"a/x/only.JPEG",
		"a/x/thumbs.db",
		"b/3.gif",
		"b/4.png",
	)
	w := &Walker{Lister: m, Rand: DefaultRandom, Budget: DefaultBudget}

	for i := 0; i < 100; i++ {
		got, err := w.Walk(abs("a"))
		if err != nil {
			t.Fatalf("Walk #%d: %v", i, err)
		}
		if got != abs("a/x/only.JPEG") {
			t.Fatalf("Walk #%d = %s, want the single image", i, got)
		}
	}
}

func TestWalker_DepthBias(t *testing.T) {
	// "shallow" holds one image, "deep" holds 9 images one level further
	// down. Per-level uniform choice picks each top-level folder about half
	// of the time, so the single shallow image is chosen far more often than
	// one ninth of the time.
	files := []string{"shallow/s.jpg"}
	for i := 0; i < 9; i++ {
		files = append(files, fmt.Sprintf("deep/d/%d.jpg", i))
	}
	m := memoryTree(files...)
	w := &Walker{Lister: m, Rand: DefaultRandom, Budget: DefaultBudget}

	const runs = 2000
	shallow := 0
	for i := 0; i < runs; i++ {
		got, err := w.Walk(testRoot)
		if err != nil {
			t.Fatalf("Walk: %v", err)
		}
		if strings.HasSuffix(got, "s.jpg") {
			shallow++
		}
	}

	if shallow < runs*35/100 || shallow > runs*65/100 {
		t.Fatalf("shallow image picked %d of %d times, expected roughly half", shallow, runs)
	}
}
