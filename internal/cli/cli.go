// Package cli implements the interactive bundle workflows.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// InteractiveCLI holds the terminal plumbing shared by the bundle
// workflows.
type InteractiveCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	green        *color.Color
}

func newInteractiveCLI() *InteractiveCLI {
	return &InteractiveCLI{
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		green:        color.New(color.FgGreen),
	}
}

// readLine reads one line of input and trims surrounding whitespace.
// End of input is reported as an empty line, which the decision and
// score parsers treat like any other unrecognized input.
func (c *InteractiveCLI) readLine() (string, error) {
	line, err := c.stdinReader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
