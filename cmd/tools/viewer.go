package tools

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/bgraf/diashow/config"
)

const viewerEnvironmentKey = "VIEWER"

// RunViewer opens file in the user configured image viewer and waits for it
// to exit. The viewer is taken from the configuration `tools.viewer`, or the
// environment variable VIEWER if the configuration is not set.
func RunViewer(file string) error {
	viewerName, err := LookupViewer()
	if err != nil {
		return err
	}

	cmd := exec.Command(viewerName, file)

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// LookupViewer returns the path of the configured viewer executable.
func LookupViewer() (string, error) {
	if config.HasToolsViewer() {
		return exec.LookPath(config.ToolsViewer())
	}

	viewer, ok := os.LookupEnv(viewerEnvironmentKey)
	if !ok || viewer == "" {
		return "", fmt.Errorf("neither tools.viewer nor environment variable %s set", viewerEnvironmentKey)
	}

	return exec.LookPath(viewer)
}
