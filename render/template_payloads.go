package render

import (
	"strings"
	"time"
)

// FolderLink offers a random pick below one ancestor folder of the shown
// image.
type FolderLink struct {
	Name   string
	Prefix string
}

type TimerPreset struct {
	Label   string
	Seconds int
}

var DefaultTimerPresets = []TimerPreset{
	{Label: "30s", Seconds: 30},
	{Label: "1m", Seconds: 60},
	{Label: "5m", Seconds: 300},
	{Label: "30m", Seconds: 1800},
}

// PagePayload feeds index.html.
type PagePayload struct {
	Base   string
	Img    string
	Prefix string
	Timer  int
}

// ImagePayload feeds the image.html fragment.
type ImagePayload struct {
	Base    string
	Src     string
	Prefix  string
	Timer   int
	Folders []FolderLink
	Timers  []TimerPreset

	Taken  *time.Time
	Camera string
}

func MakeImagePayload(base, src, prefix string, timer int) ImagePayload {
	return ImagePayload{
		Base:    base,
		Src:     src,
		Prefix:  prefix,
		Timer:   timer,
		Folders: MakeFolderLinks(src),
		Timers:  DefaultTimerPresets,
	}
}

// MakeFolderLinks returns one link per folder of src, from the outermost
// folder inwards, each carrying the cumulative prefix.
func MakeFolderLinks(src string) []FolderLink {
	segments := strings.Split(src, "/")
	if len(segments) < 2 {
		return nil
	}

	folders := segments[:len(segments)-1]
	links := make([]FolderLink, len(folders))
	for i, name := range folders {
		links[i] = FolderLink{
			Name:   name,
			Prefix: strings.Join(folders[:i+1], "/"),
		}
	}

	return links
}
