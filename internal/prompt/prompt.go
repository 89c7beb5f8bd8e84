// SPDX-License-Identifier: MPL-2.0

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"pedir-cli/internal/style"
)

// DefaultCancelWord is the sentinel that aborts any prompt loop. It is
// matched case-insensitively against the trimmed raw line, before any
// parsing happens.
const DefaultCancelWord = "CANCELAR"

// ErrCancelled is returned by every prompt operation when the user
// enters the cancel word (or the input source is exhausted). The loop
// never retries after cancellation; the error always propagates to the
// caller.
var ErrCancelled = errors.New("el usuario canceló la operación")

type (
	// Options configures a Prompter. Zero-value fields fall back to
	// stdin, stdout, the plain styler and DefaultCancelWord.
	Options struct {
		// Input is the line source.
		Input io.Reader
		// Output receives prompts and per-attempt messages.
		Output io.Writer
		// Styler decorates per-attempt messages.
		Styler style.Styler
		// Cancel overrides the cancel word.
		Cancel string
	}

	// Prompter reads validated values line by line. Each operation
	// loops until the input is valid or the user cancels; there is no
	// retry limit.
	Prompter struct {
		in     *bufio.Scanner
		out    io.Writer
		styler style.Styler
		cancel string
	}
)

// New builds a Prompter from opts.
func New(opts Options) *Prompter {
	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	styler := opts.Styler
	if styler == nil {
		styler = style.Plain{}
	}
	cancel := opts.Cancel
	if cancel == "" {
		cancel = DefaultCancelWord
	}

	return &Prompter{
		in:     bufio.NewScanner(in),
		out:    out,
		styler: styler,
		cancel: cancel,
	}
}

// CancelWord returns the configured cancel sentinel.
func (p *Prompter) CancelWord() string {
	return p.cancel
}

// readLine writes the prompt, reads one line and trims it. The cancel
// sentinel is checked here so that every operation aborts the same way
// regardless of its validation rule. An exhausted input source counts
// as cancellation: there are no further lines the loop could wait for.
func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", ErrCancelled
	}
	line := strings.TrimSpace(p.in.Text())
	if strings.EqualFold(line, p.cancel) {
		return "", ErrCancelled
	}
	return line, nil
}

func (p *Prompter) errorf(format string, args ...any) {
	fmt.Fprintln(p.out, p.styler.Error(fmt.Sprintf(format, args...)))
}

func (p *Prompter) warnf(format string, args ...any) {
	fmt.Fprintln(p.out, p.styler.Warn(fmt.Sprintf(format, args...)))
}

func (p *Prompter) infof(format string, args ...any) {
	fmt.Fprintln(p.out, p.styler.Info(fmt.Sprintf(format, args...)))
}
