// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package confirm

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Line(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr error
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "YES", input: "  YES \n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "blank is no", input: "\n", want: false},
		{name: "anything else is no", input: "sure\n", want: false},
		{name: "answer without newline", input: "yes", want: true},
		{name: "no input", input: "", wantErr: ErrNoAnswer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out, true)

			got, err := p.Confirm(context.Background(), "Performing DeleteWidget on \"w-1\"")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Performing DeleteWidget on \"w-1\"")
			assert.Contains(t, out.String(), hint)
		})
	}
}

func TestPrompter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(strings.NewReader("y\n"), &bytes.Buffer{}, false)
	_, err := p.Confirm(ctx, "prompt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrompter_LineInterrupted(t *testing.T) {
	// Nothing is ever typed, so the read blocks until the pipe is closed.
	r, w := io.Pipe()
	t.Cleanup(func() { w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	var out bytes.Buffer
	p := New(r, &out, false)

	done := make(chan error, 1)
	go func() {
		_, err := p.Confirm(ctx, "Performing DeleteNamespace on \"analytics\"")
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrAborted)
	case <-time.After(5 * time.Second):
		t.Fatal("line prompt kept waiting after the context was cancelled")
	}
}

func TestModel_Update(t *testing.T) {
	runes := func(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		done    bool
		yes     bool
		aborted bool
	}{
		{name: "y", msg: runes("y"), done: true, yes: true},
		{name: "Y", msg: runes("Y"), done: true, yes: true},
		{name: "n", msg: runes("n"), done: true},
		{name: "enter defaults to no", msg: tea.KeyMsg{Type: tea.KeyEnter}, done: true},
		{name: "ctrl+c aborts", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, done: true, aborted: true},
		{name: "other keys ignored", msg: runes("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, cmd := newModel("prompt").Update(tt.msg)
			m := next.(model)
			assert.Equal(t, tt.done, m.done)
			assert.Equal(t, tt.yes, m.yes)
			assert.Equal(t, tt.aborted, m.aborted)
			assert.Equal(t, tt.done, cmd != nil)
		})
	}
}

func TestModel_View(t *testing.T) {
	m := newModel("Performing DeleteNamespace")
	assert.Contains(t, m.View(), "Performing DeleteNamespace")
	assert.Contains(t, m.View(), hint)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.Contains(t, next.View(), "yes")
}
