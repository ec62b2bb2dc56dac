package cmd

import (
	"errors"
	"fmt"

	"github.com/bgraf/diashow/config"
	"github.com/bgraf/diashow/filesystem"
	"github.com/bgraf/diashow/slideshow"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	errNoRootDirectory = errors.New("no root directory configured")
	errNoRefDirectory  = errors.New("no reference directory configured")
)

func bindFlag(flag *pflag.Flag, key string) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// collectionEngine builds the engine for the main or, with ref set, the
// reference collection.
func collectionEngine(ref bool) (*slideshow.Engine, error) {
	if !config.HasRootDirectory() {
		return nil, errNoRootDirectory
	}

	name := config.MainCollectionName
	if ref {
		name = config.RefCollectionName
	}

	collection, ok := config.CollectionByName(name)
	if !ok {
		return nil, errNoRefDirectory
	}

	if !filesystem.IsDirectory(collection.Root) {
		return nil, fmt.Errorf("collection root '%s' is not a directory", collection.Root)
	}

	return slideshow.New(
		filesystem.Abs(collection.Root),
		slideshow.WithBudget(config.WalkBudget()),
	), nil
}
