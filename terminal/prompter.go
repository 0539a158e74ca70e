// SPDX-License-Identifier: MIT

package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Prompter asks questions on out and reads one-line answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	question *color.Color
	warn     *color.Color
	note     *color.Color
}

// NewPrompter returns a Prompter over (in, out). Colors are used only when
// out is a terminal and NO_COLOR is unset.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		in:       bufio.NewReader(in),
		out:      out,
		question: color.New(color.FgCyan, color.Bold),
		warn:     color.New(color.FgRed),
		note:     color.New(color.FgGreen),
	}
	use := shouldUseColor(out)
	for _, c := range []*color.Color{p.question, p.warn, p.note} {
		if use {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Ask prints msg and returns the next input line without its line ending.
// A final line without a newline is still returned; io.EOF is reported only
// when nothing was read.
func (p *Prompter) Ask(msg string) (string, error) {
	if _, err := p.question.Fprintln(p.out, msg); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(p.out, "> "); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Warnf prints a highlighted warning line.
func (p *Prompter) Warnf(format string, args ...any) {
	_, _ = p.warn.Fprintf(p.out, format+"\n", args...)
}

// Notef prints a highlighted status line.
func (p *Prompter) Notef(format string, args ...any) {
	_, _ = p.note.Fprintf(p.out, format+"\n", args...)
}

func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
