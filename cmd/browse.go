package cmd

import (
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/bgraf/diashow/cmd/tools"
	"github.com/bgraf/diashow/config"
	"github.com/bgraf/diashow/images"
	"github.com/bgraf/diashow/logging"
	"github.com/bgraf/diashow/render"
	"github.com/bgraf/diashow/slideshow"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse [IMAGE]",
	Short: "Step through the collection interactively",
	Long: `Step through the collection interactively, starting at IMAGE or at a
random image. Each image is opened in the viewer configured by tools.viewer
or the VIEWER environment variable, if any.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringP("prefix", "p", "", "Restrict random selections to this folder")
	browseCmd.Flags().Bool("ref", false, "Browse the reference collection")
}

const (
	choiceNext         = "Next"
	choicePrevious     = "Previous"
	choiceRandom       = "Random"
	choiceRandomFolder = "Random in folder"
	choiceQuit         = "Quit"
)

var browseChoices = []string{
	choiceNext,
	choicePrevious,
	choiceRandom,
	choiceRandomFolder,
	choiceQuit,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	prefix, _ := cmd.Flags().GetString("prefix")
	ref, _ := cmd.Flags().GetBool("ref")

	engine, err := collectionEngine(ref)
	if err != nil {
		return err
	}

	var current string
	if len(args) == 1 {
		img, err := engine.Lookup(args[0])
		if err != nil {
			return fmt.Errorf("image '%s': %w", args[0], err)
		}
		current = img.Path
	} else {
		current, err = engine.Random(prefix)
		if err != nil {
			return fmt.Errorf("no image found below '%s': %w", prefix, err)
		}
	}

	_, viewerErr := tools.LookupViewer()
	useViewer := viewerErr == nil

	out := cmd.OutOrStdout()

	for {
		img, err := engine.Lookup(current)
		if err != nil {
			return err
		}

		printImage(out, img)

		if useViewer {
			if err := tools.RunViewer(img.Absolute); err != nil {
				logging.Warn("viewer failed", logging.String("img", img.Path), logging.Err(err))
			}
		}

		choice := ""
		prompt := &survey.Select{
			Message: "Action",
			Options: browseChoices,
			Default: choiceNext,
		}
		err = survey.AskOne(prompt, &choice)
		if errors.Is(err, terminal.InterruptErr) {
			return nil
		}
		if err != nil {
			return err
		}

		if choice == choiceQuit {
			return nil
		}

		next, err := browseStep(engine, choice, current, prefix)
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", choice, err)
			continue
		}

		current = next
	}
}

// browseStep applies one menu choice to the current image.
func browseStep(engine *slideshow.Engine, choice, current, prefix string) (string, error) {
	switch choice {
	case choiceNext:
		return engine.Next(current)
	case choicePrevious:
		return engine.Prev(current)
	case choiceRandom:
		return engine.Random(prefix)
	case choiceRandomFolder:
		return engine.Random(folderOf(current))
	}

	return "", fmt.Errorf("unknown choice '%s'", choice)
}

func folderOf(rel string) string {
	dir := path.Dir(rel)
	if dir == "." {
		return ""
	}
	return dir
}

func printImage(w io.Writer, img slideshow.Image) {
	fmt.Fprintln(w, img.Path)

	if !config.DisplayEXIF() {
		return
	}

	data, err := images.ReadEXIFFromFile(img.Absolute)
	if err != nil {
		return
	}

	if data.Time != nil {
		fmt.Fprintf(w, "  taken:  %s\n", render.DisplayDate(*data.Time, config.DisplayLocale()))
	}
	if camera := data.Camera(); camera != "" {
		fmt.Fprintf(w, "  camera: %s\n", camera)
	}
}
