// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/awsctl/internal/meta"
)

func TestNewApp(t *testing.T) {
	app := NewApp(meta.Meta{})

	assert.Equal(t, "awsctl", app.Name)
	require.Len(t, app.Commands, 3)
	assert.Equal(t, []string{"cognito-sync", "completion", "redshift-serverless"}, names(app.Commands))

	for _, svc := range app.Commands {
		ops := names(svc.Commands)
		for i := 1; i < len(ops); i++ {
			assert.Less(t, ops[i-1], ops[i], "%s operations are sorted", svc.Name)
		}
	}

	assert.Len(t, app.Command("cognito-sync").Commands, 17)
	assert.Len(t, app.Command("redshift-serverless").Commands, 37)
	assert.NotNil(t, app.Command("rss"), "service aliases resolve")
}

func TestNewMeta_Namespace(t *testing.T) {
	t.Setenv("AWSCTL_CFG_FILE", "")

	m := newMeta(context.Background(), []string{"awsctl", "redshift-serverless", "list-workgroups"})
	assert.Equal(t, "redshift-serverless", m.Config.Namespace)

	m = newMeta(context.Background(), []string{"awsctl", "rss", "list-workgroups"})
	assert.Equal(t, "redshift-serverless", m.Config.Namespace)

	m = newMeta(context.Background(), []string{"awsctl", "--help"})
	assert.Empty(t, m.Config.Namespace)
}

func TestServiceName(t *testing.T) {
	assert.Equal(t, "redshift-serverless", ServiceName("rss"))
	assert.Equal(t, "redshift-serverless", ServiceName("redshift-serverless"))
	assert.Equal(t, "cognito-sync", ServiceName("cognito-sync"))
	assert.Equal(t, "nope", ServiceName("nope"))
}

func TestCompletion(t *testing.T) {
	tests := []struct {
		shell    string
		contains []string
	}{
		{
			shell: "bash",
			contains: []string{
				"complete -F _awsctl awsctl",
				"redshift-serverless|rss)",
				"delete-namespace) opts=",
				"--final-snapshot-name",
				"text json raw yaml",
			},
		},
		{
			shell: "zsh",
			contains: []string{
				"#compdef awsctl",
				"'cognito-sync:",
				"'list-datasets:",
				"--identity-pool-id",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			var out bytes.Buffer
			app := NewApp(meta.Meta{Stdout: &out, Stderr: io.Discard})

			require.NoError(t, app.Run(context.Background(), []string{"awsctl", "completion", tt.shell}))
			for _, s := range tt.contains {
				assert.Contains(t, out.String(), s)
			}
		})
	}
}

func TestCompletion_UnknownShell(t *testing.T) {
	t.Setenv("SHELL", "/bin/fish")

	var out, errOut bytes.Buffer
	app := NewApp(meta.Meta{Stdout: &out, Stderr: &errOut})

	require.NoError(t, app.Run(context.Background(), []string{"awsctl", "completion"}))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "usage: awsctl completion")
}

func TestGetMeta(t *testing.T) {
	assert.Equal(t, meta.Meta{}, GetMeta(nil))

	app := NewApp(meta.Meta{Args: []string{"awsctl"}})
	m := GetMeta(app.Command("completion"))
	assert.Equal(t, []string{"awsctl"}, m.Args)
}
