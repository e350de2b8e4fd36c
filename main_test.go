// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/awsctl/internal/config"
)

func TestHandleNakedCommand(t *testing.T) {
	assert.Equal(t, []string{"awsctl", "--help"}, handleNakedCommand([]string{"awsctl"}))
	assert.Equal(t, []string{"awsctl", "rss"}, handleNakedCommand([]string{"awsctl", "rss"}))
}

func TestProcessSetOnly(t *testing.T) {
	sets := map[string][]string{
		"redshift-serverless.prod": {"--region", "eu-west-1", "--profile", "prod"},
		"cognito-sync.pool":        {"--identity-pool-id", "us-east-1:abc"},
	}
	lookup := func(service, set string) ([]string, error) {
		if words, ok := sets[service+"."+set]; ok {
			return words, nil
		}
		return nil, errors.New("not found")
	}

	tests := []struct {
		name     string
		args     []string
		expected []string
		err      bool
	}{
		{
			name:     "no set",
			args:     []string{"awsctl", "redshift-serverless", "list-workgroups"},
			expected: []string{"awsctl", "redshift-serverless", "list-workgroups"},
		},
		{
			name:     "expanded in place",
			args:     []string{"awsctl", "redshift-serverless", "list-workgroups", "@prod", "-o", "json"},
			expected: []string{"awsctl", "redshift-serverless", "list-workgroups", "--region", "eu-west-1", "--profile", "prod", "-o", "json"},
		},
		{
			name:     "only the first set",
			args:     []string{"awsctl", "cognito-sync", "list-datasets", "@pool", "@pool"},
			expected: []string{"awsctl", "cognito-sync", "list-datasets", "--identity-pool-id", "us-east-1:abc", "@pool"},
		},
		{
			name:     "bare at sign is left alone",
			args:     []string{"awsctl", "cognito-sync", "list-datasets", "@"},
			expected: []string{"awsctl", "cognito-sync", "list-datasets", "@"},
		},
		{
			name: "unknown set",
			args: []string{"awsctl", "cognito-sync", "list-datasets", "@nope"},
			err:  true,
		},
		{
			name:     "too short",
			args:     []string{"awsctl", "cognito-sync"},
			expected: []string{"awsctl", "cognito-sync"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := processSetOnly(tt.args, lookup)
			if tt.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLookupSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "awsctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
redshift-serverless:
  prod:
    - --region eu-west-1
    - --tags "owner=data team"
  dev: --profile dev
`), 0o600))
	_, err := config.Load(path)
	require.NoError(t, err)
	t.Cleanup(func() { config.Config = config.Type{} })

	words, err := lookupSet("redshift-serverless", "prod")
	require.NoError(t, err)
	assert.Equal(t, []string{"--region", "eu-west-1", "--tags", "owner=data team"}, words)

	words, err = lookupSet("redshift-serverless", "dev")
	require.NoError(t, err)
	assert.Equal(t, []string{"--profile", "dev"}, words)

	words, err = lookupSet("rss", "dev")
	require.NoError(t, err, "aliases resolve to the service's section")
	assert.Equal(t, []string{"--profile", "dev"}, words)

	_, err = lookupSet("redshift-serverless", "missing")
	assert.Error(t, err)
}

func TestProcessCommandArgs_Completion(t *testing.T) {
	args := []string{"awsctl", "completion", "@zsh"}
	got, err := processCommandArgs(args)
	require.NoError(t, err)
	assert.Equal(t, args, got)
}
