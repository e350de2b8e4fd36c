// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/config"
	"github.com/tfctl/awsctl/internal/meta"
	"github.com/tfctl/awsctl/internal/service/cognitosync"
	"github.com/tfctl/awsctl/internal/service/redshiftserverless"
	"github.com/tfctl/awsctl/internal/version"
)

// InitApp builds the root command for args.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	return NewApp(newMeta(ctx, args)), nil
}

func newMeta(ctx context.Context, args []string) meta.Meta {
	// The arg immediately following the binary is the service and also the
	// config namespace. It could be -h/--help, so ignore flags.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = ServiceName(args[1])
	}

	cfg, _ := config.Load() //nolint
	cfg.Namespace = ns

	return meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
	}
}

// ServiceName resolves a service command name or alias, e.g. "rss", to the
// canonical name that keys its config section. Unknown names are returned
// unchanged.
func ServiceName(name string) string {
	if c := NewApp(meta.Meta{}).Command(name); c != nil {
		return c.Name
	}
	return name
}

// NewApp returns the root command with every service group wired to m.
func NewApp(m meta.Meta) *cli.Command {
	app := &cli.Command{
		Name:  version.Name,
		Usage: "AWS service operations from the command line",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "awsctl version info",
				HideDefault: true,
			},
		},
		Writer:    m.Out(),
		ErrWriter: m.ErrOut(),
	}

	app.Commands = append(app.Commands,
		cognitosync.Service().Command(m),
		redshiftserverless.Service().Command(m),
		completionCommandBuilder(m),
	)

	// Make sure commands and flags are sorted for the --help text.
	sort.Slice(app.Commands, func(i, j int) bool {
		return app.Commands[i].Name < app.Commands[j].Name
	})
	for _, svc := range app.Commands {
		sort.Slice(svc.Commands, func(i, j int) bool {
			return svc.Commands[i].Name < svc.Commands[j].Name
		})
	}

	return app
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}
