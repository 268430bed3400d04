package cfg

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrNoDot is returned when the Graphviz dot command is not installed.
var ErrNoDot = errors.New("graphviz 'dot' command not found")

// Render writes g to dotFile and converts it to outFile with Graphviz. The DOT
// file is written even if dot is missing.
func Render(g *Graph, dotFile, outFile, format string) error {
	raw, err := g.MarshalDOT()
	if err != nil {
		return fmt.Errorf("marshalling graph: %w", err)
	}
	if err := os.WriteFile(dotFile, raw, 0644); err != nil {
		return fmt.Errorf("writing %v: %w", dotFile, err)
	}

	dot, err := exec.LookPath("dot")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoDot, err)
	}

	cmd := exec.Command(dot, "-T"+format, dotFile, "-o", outFile)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("graphviz error: %w\nOutput: %s", err, string(output))
	}

	if _, err := os.Stat(outFile); os.IsNotExist(err) {
		return fmt.Errorf("%v was not created", outFile)
	}

	return nil
}
