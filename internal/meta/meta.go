// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"io"
	"os"

	"github.com/tfctl/awsctl/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context and the standard streams commands read from
// and write to.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// In returns the input stream, defaulting to os.Stdin.
func (m Meta) In() io.Reader {
	if m.Stdin != nil {
		return m.Stdin
	}
	return os.Stdin
}

// Out returns the output stream, defaulting to os.Stdout.
func (m Meta) Out() io.Writer {
	if m.Stdout != nil {
		return m.Stdout
	}
	return os.Stdout
}

// ErrOut returns the diagnostic stream, defaulting to os.Stderr.
func (m Meta) ErrOut() io.Writer {
	if m.Stderr != nil {
		return m.Stderr
	}
	return os.Stderr
}
