// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package redshiftserverless

import (
	"sort"

	"github.com/aws/aws-sdk-go-v2/service/redshiftserverless/types"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/cmdlet"
	"github.com/tfctl/awsctl/internal/dispatch"
)

const (
	flagNamespace     = "namespace-name"
	flagNamespaceArn  = "namespace-arn"
	flagWorkgroup     = "workgroup-name"
	flagSnapshot      = "snapshot-name"
	flagSnapshotArn   = "snapshot-arn"
	flagOwner         = "owner-account"
	flagRetention     = "retention-period"
	flagEndpoint      = "endpoint-name"
	flagRecoveryPoint = "recovery-point-id"
	flagUsageLimit    = "usage-limit-id"
	flagResourceArn   = "resource-arn"
	flagTags          = "tags"
	flagSubnets       = "subnet-ids"
	flagStart         = "start-time"
	flagEnd           = "end-time"
	flagMax           = "max-results"
	flagToken         = "next-token"
)

func namespaceFlag() cli.Flag { return cmdlet.String(flagNamespace, "namespace name") }

func workgroupFlag() cli.Flag { return cmdlet.String(flagWorkgroup, "workgroup name") }

func snapshotFlag() cli.Flag { return cmdlet.String(flagSnapshot, "snapshot name") }

func resourceArnFlag() cli.Flag { return cmdlet.String(flagResourceArn, "ARN of the resource") }

func tagsFlag() cli.Flag { return cmdlet.Map(flagTags, "key=value tags") }

func pageFlags(extra ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		cmdlet.Int32(flagMax, "maximum number of results per page"),
		cmdlet.String(flagToken, "token of the page to fetch"),
	}, extra...)
}

// tags converts a key=value map parameter into SDK tags sorted by key.
func tags(p dispatch.Params, name string) []types.Tag {
	m := p.StringMap(name)
	if m == nil {
		return nil
	}
	keys := sortedKeys(m)
	out := make([]types.Tag, 0, len(keys))
	for _, k := range keys {
		out = append(out, types.Tag{Key: ptr(k), Value: ptr(m[k])})
	}
	return out
}

// configParameters converts a key=value map parameter into workgroup config
// parameters sorted by key.
func configParameters(p dispatch.Params, name string) []types.ConfigParameter {
	m := p.StringMap(name)
	if m == nil {
		return nil
	}
	keys := sortedKeys(m)
	out := make([]types.ConfigParameter, 0, len(keys))
	for _, k := range keys {
		out = append(out, types.ConfigParameter{ParameterKey: ptr(k), ParameterValue: ptr(m[k])})
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func ptr[T any](v T) *T { return &v }
