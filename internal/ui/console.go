// Package ui provides a line-oriented console for the game's narrative
// input and output.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// maxWidth is the wrap column for long narrative lines.
const maxWidth = 79

// Console reads one command line per turn and writes narrative text.
// Both ends are injectable so tests can script complete sessions.
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewConsole creates a console over the given reader and writer.
func NewConsole(in io.Reader, out io.Writer) *Console {
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	return &Console{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// Interactive returns true when input comes from a terminal rather than
// a pipe or file.
func (c *Console) Interactive() bool {
	return c.interactive
}

// Println writes a line of output.
func (c *Console) Println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

// Printf writes formatted output.
func (c *Console) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

// WrapPrintln writes text wrapped at the console width. Embedded
// newlines are respected; each resulting line wraps independently.
func (c *Console) WrapPrintln(text string) {
	for _, line := range strings.Split(text, "\n") {
		c.wrapLine(line)
	}
}

// wrapLine writes one logical line, breaking at the last space that
// fits in the wrap column.
func (c *Console) wrapLine(text string) {
	for utf8.RuneCountInString(text) > maxWidth {
		runes := []rune(text)
		pos := maxWidth
		for pos > 0 && runes[pos] != ' ' {
			pos--
		}
		if pos == 0 {
			pos = maxWidth
		}
		c.Println(string(runes[:pos]))
		text = strings.TrimLeft(string(runes[pos:]), " ")
	}
	c.Println(text)
}

// ReadLine prints the prompt and blocks for one line of input, with the
// trailing newline stripped. A final unterminated line before EOF is
// still returned; EOF with nothing buffered reports the error.
func (c *Console) ReadLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}
