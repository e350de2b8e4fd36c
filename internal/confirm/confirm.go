// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package confirm

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ErrNoAnswer is returned when the input ends before an answer is given.
var ErrNoAnswer = errors.New("no confirmation answer available; use --force to skip confirmation")

// ErrAborted is returned when the user interrupts the prompt.
var ErrAborted = errors.New("confirmation aborted")

// Prompter implements the dispatcher's Confirmer over a pair of streams.
type Prompter struct {
	In  io.Reader
	Out io.Writer
	// TUI enables the Bubble Tea prompt when In is a terminal.
	TUI bool
}

// New returns a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer, tui bool) *Prompter {
	return &Prompter{In: in, Out: out, TUI: tui}
}

// Confirm shows prompt and reports whether the user approved it.
func (p *Prompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if p.TUI && isTerminal(p.In) {
		log.Debugf("confirm: tui prompt")
		return p.tui(ctx, prompt)
	}
	log.Debugf("confirm: line prompt")
	return p.line(ctx, prompt)
}

func (p *Prompter) tui(ctx context.Context, prompt string) (bool, error) {
	prog := tea.NewProgram(newModel(prompt),
		tea.WithContext(ctx),
		tea.WithInput(p.In),
		tea.WithOutput(p.Out),
	)
	final, err := prog.Run()
	if err != nil {
		return false, err
	}

	m := final.(model)
	if m.aborted {
		return false, ErrAborted
	}
	return m.yes, nil
}

// line writes the prompt and reads a single answer. Only y or yes (any case)
// approves. Cancelling ctx returns ErrAborted without waiting for the read,
// which is left to finish in the background.
func (p *Prompter) line(ctx context.Context, prompt string) (bool, error) {
	fmt.Fprintf(p.Out, "%s\n%s ", prompt, hint)

	type reply struct {
		answer string
		err    error
	}
	read := make(chan reply, 1)
	go func() {
		answer, err := bufio.NewReader(p.In).ReadString('\n')
		read <- reply{answer, err}
	}()

	var r reply
	select {
	case <-ctx.Done():
		fmt.Fprintln(p.Out)
		return false, ErrAborted
	case r = <-read:
	}

	if r.err != nil && (r.answer == "" || !errors.Is(r.err, io.EOF)) {
		if errors.Is(r.err, io.EOF) {
			return false, ErrNoAnswer
		}
		return false, fmt.Errorf("failed to read confirmation: %w", r.err)
	}

	return isYes(r.answer), nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
