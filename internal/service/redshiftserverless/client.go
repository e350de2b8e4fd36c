// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package redshiftserverless

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/redshiftserverless"

	"github.com/tfctl/awsctl/internal/aws"
	"github.com/tfctl/awsctl/internal/cmdlet"
)

// Client is the subset of the Redshift Serverless SDK client used by the
// commands.
type Client interface {
	CreateNamespace(context.Context, *sdk.CreateNamespaceInput, ...func(*sdk.Options)) (*sdk.CreateNamespaceOutput, error)
	DeleteNamespace(context.Context, *sdk.DeleteNamespaceInput, ...func(*sdk.Options)) (*sdk.DeleteNamespaceOutput, error)
	GetNamespace(context.Context, *sdk.GetNamespaceInput, ...func(*sdk.Options)) (*sdk.GetNamespaceOutput, error)
	ListNamespaces(context.Context, *sdk.ListNamespacesInput, ...func(*sdk.Options)) (*sdk.ListNamespacesOutput, error)
	UpdateNamespace(context.Context, *sdk.UpdateNamespaceInput, ...func(*sdk.Options)) (*sdk.UpdateNamespaceOutput, error)

	CreateWorkgroup(context.Context, *sdk.CreateWorkgroupInput, ...func(*sdk.Options)) (*sdk.CreateWorkgroupOutput, error)
	DeleteWorkgroup(context.Context, *sdk.DeleteWorkgroupInput, ...func(*sdk.Options)) (*sdk.DeleteWorkgroupOutput, error)
	GetWorkgroup(context.Context, *sdk.GetWorkgroupInput, ...func(*sdk.Options)) (*sdk.GetWorkgroupOutput, error)
	ListWorkgroups(context.Context, *sdk.ListWorkgroupsInput, ...func(*sdk.Options)) (*sdk.ListWorkgroupsOutput, error)
	UpdateWorkgroup(context.Context, *sdk.UpdateWorkgroupInput, ...func(*sdk.Options)) (*sdk.UpdateWorkgroupOutput, error)
	GetCredentials(context.Context, *sdk.GetCredentialsInput, ...func(*sdk.Options)) (*sdk.GetCredentialsOutput, error)

	CreateSnapshot(context.Context, *sdk.CreateSnapshotInput, ...func(*sdk.Options)) (*sdk.CreateSnapshotOutput, error)
	DeleteSnapshot(context.Context, *sdk.DeleteSnapshotInput, ...func(*sdk.Options)) (*sdk.DeleteSnapshotOutput, error)
	GetSnapshot(context.Context, *sdk.GetSnapshotInput, ...func(*sdk.Options)) (*sdk.GetSnapshotOutput, error)
	ListSnapshots(context.Context, *sdk.ListSnapshotsInput, ...func(*sdk.Options)) (*sdk.ListSnapshotsOutput, error)
	UpdateSnapshot(context.Context, *sdk.UpdateSnapshotInput, ...func(*sdk.Options)) (*sdk.UpdateSnapshotOutput, error)
	RestoreFromSnapshot(context.Context, *sdk.RestoreFromSnapshotInput, ...func(*sdk.Options)) (*sdk.RestoreFromSnapshotOutput, error)

	CreateEndpointAccess(context.Context, *sdk.CreateEndpointAccessInput, ...func(*sdk.Options)) (*sdk.CreateEndpointAccessOutput, error)
	DeleteEndpointAccess(context.Context, *sdk.DeleteEndpointAccessInput, ...func(*sdk.Options)) (*sdk.DeleteEndpointAccessOutput, error)
	GetEndpointAccess(context.Context, *sdk.GetEndpointAccessInput, ...func(*sdk.Options)) (*sdk.GetEndpointAccessOutput, error)
	ListEndpointAccess(context.Context, *sdk.ListEndpointAccessInput, ...func(*sdk.Options)) (*sdk.ListEndpointAccessOutput, error)
	UpdateEndpointAccess(context.Context, *sdk.UpdateEndpointAccessInput, ...func(*sdk.Options)) (*sdk.UpdateEndpointAccessOutput, error)

	ConvertRecoveryPointToSnapshot(context.Context, *sdk.ConvertRecoveryPointToSnapshotInput, ...func(*sdk.Options)) (*sdk.ConvertRecoveryPointToSnapshotOutput, error)
	GetRecoveryPoint(context.Context, *sdk.GetRecoveryPointInput, ...func(*sdk.Options)) (*sdk.GetRecoveryPointOutput, error)
	ListRecoveryPoints(context.Context, *sdk.ListRecoveryPointsInput, ...func(*sdk.Options)) (*sdk.ListRecoveryPointsOutput, error)
	RestoreFromRecoveryPoint(context.Context, *sdk.RestoreFromRecoveryPointInput, ...func(*sdk.Options)) (*sdk.RestoreFromRecoveryPointOutput, error)

	CreateUsageLimit(context.Context, *sdk.CreateUsageLimitInput, ...func(*sdk.Options)) (*sdk.CreateUsageLimitOutput, error)
	DeleteUsageLimit(context.Context, *sdk.DeleteUsageLimitInput, ...func(*sdk.Options)) (*sdk.DeleteUsageLimitOutput, error)
	GetUsageLimit(context.Context, *sdk.GetUsageLimitInput, ...func(*sdk.Options)) (*sdk.GetUsageLimitOutput, error)
	ListUsageLimits(context.Context, *sdk.ListUsageLimitsInput, ...func(*sdk.Options)) (*sdk.ListUsageLimitsOutput, error)
	UpdateUsageLimit(context.Context, *sdk.UpdateUsageLimitInput, ...func(*sdk.Options)) (*sdk.UpdateUsageLimitOutput, error)

	GetResourcePolicy(context.Context, *sdk.GetResourcePolicyInput, ...func(*sdk.Options)) (*sdk.GetResourcePolicyOutput, error)
	PutResourcePolicy(context.Context, *sdk.PutResourcePolicyInput, ...func(*sdk.Options)) (*sdk.PutResourcePolicyOutput, error)
	DeleteResourcePolicy(context.Context, *sdk.DeleteResourcePolicyInput, ...func(*sdk.Options)) (*sdk.DeleteResourcePolicyOutput, error)

	TagResource(context.Context, *sdk.TagResourceInput, ...func(*sdk.Options)) (*sdk.TagResourceOutput, error)
	UntagResource(context.Context, *sdk.UntagResourceInput, ...func(*sdk.Options)) (*sdk.UntagResourceOutput, error)
	ListTagsForResource(context.Context, *sdk.ListTagsForResourceInput, ...func(*sdk.Options)) (*sdk.ListTagsForResourceOutput, error)
}

var _ Client = (*sdk.Client)(nil)

// Service returns the redshift-serverless command group backed by the AWS SDK.
func Service() cmdlet.Service[Client] {
	return cmdlet.Service[Client]{
		Name:    aws.RedshiftServerlessPrefix,
		Aliases: []string{"rss"},
		Usage:   "Amazon Redshift Serverless namespaces, workgroups and snapshots",
		Factory: cmdlet.AWSFactory(aws.RedshiftServerlessPrefix, func(cfg awsv2.Config) Client {
			return aws.NewRedshiftServerless(cfg)
		}),
		Commands: Commands(),
	}
}

// Commands returns every Redshift Serverless operation.
func Commands() []cmdlet.Builder[Client] {
	var cmds []cmdlet.Builder[Client]
	for _, group := range [][]cmdlet.Builder[Client]{
		namespaceCommands(),
		workgroupCommands(),
		snapshotCommands(),
		endpointAccessCommands(),
		recoveryPointCommands(),
		usageLimitCommands(),
		resourcePolicyCommands(),
		tagCommands(),
	} {
		cmds = append(cmds, group...)
	}
	return cmds
}
