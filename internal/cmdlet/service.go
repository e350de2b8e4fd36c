// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cmdlet

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/aws"
	"github.com/tfctl/awsctl/internal/config"
	"github.com/tfctl/awsctl/internal/meta"
)

// Service groups the operation commands of one AWS service.
type Service[C any] struct {
	// Name is the parent command name and the config namespace.
	Name     string
	Aliases  []string
	Usage    string
	Factory  Factory[C]
	Commands []Builder[C]
}

// Command builds the parent command and all of its operations.
func (s Service[C]) Command(m meta.Meta) *cli.Command {
	parent := &cli.Command{
		Name:    s.Name,
		Aliases: s.Aliases,
		Usage:   s.Usage,
		Metadata: map[string]any{
			"meta": m,
		},
		Before: func(ctx context.Context, _ *cli.Command) (context.Context, error) {
			config.Config.Namespace = s.Name
			return ctx, nil
		},
	}

	for _, b := range s.Commands {
		parent.Commands = append(parent.Commands, b.Build(m, s.Name, s.Factory))
	}

	return parent
}

// AWSFactory returns a Factory that loads the AWS config from the command's
// --profile, --region, --endpoint-url, --max-attempts and --header flags and
// hands it to newClient. prefix names the service endpoint in diagnostics.
func AWSFactory[C any](prefix string, newClient func(awsv2.Config) C) Factory[C] {
	return func(ctx context.Context, cmd *cli.Command) (C, string, error) {
		var zero C

		cfg, err := aws.LoadAWSConfig(ctx,
			aws.WithProfile(cmd.String("profile")),
			aws.WithRegion(cmd.String("region")),
			aws.WithEndpoint(cmd.String("endpoint-url")),
			aws.WithMaxAttempts(cmd.Int("max-attempts")),
			aws.WithHeaders(cmd.StringSlice("header")),
		)
		if err != nil {
			return zero, "", err
		}

		return newClient(cfg), aws.Endpoint(prefix, cfg), nil
	}
}
