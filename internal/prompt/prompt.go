// Package prompt provides the interactive input surface for review and
// browsing sessions. The review and browse flows depend on the Prompter
// interface so tests can drive them with scripted answers.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// Prompter reads operator input.
type Prompter interface {
	// ReadLine prints the prompt and returns one trimmed line of input.
	ReadLine(prompt string) (string, error)
	// ReadInt keeps asking until it gets an integer in [min, max].
	ReadInt(prompt string, min, max int) (int, error)
}

// Terminal is the Prompter used in real sessions.
type Terminal struct {
	in    *bufio.Reader
	out   io.Writer
	color bool
}

// NewTerminal builds a Terminal over the given streams.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	color := false
	if f, ok := out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Terminal{in: bufio.NewReader(in), out: out, color: color}
}

// ReadLine implements Prompter.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	arrow := "==> "
	if t.color {
		arrow = text.FgCyan.Sprint(arrow)
	}
	fmt.Fprintf(t.out, "%s%s ", arrow, prompt)

	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ReadInt implements Prompter. Invalid or out-of-range answers re-prompt.
func (t *Terminal) ReadInt(prompt string, min, max int) (int, error) {
	for {
		line, err := t.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		value, convErr := strconv.Atoi(line)
		if convErr != nil || value < min || value > max {
			fmt.Fprintf(t.out, "enter a number between %d and %d\n", min, max)
			continue
		}
		return value, nil
	}
}
