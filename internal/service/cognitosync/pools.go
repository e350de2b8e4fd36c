// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cognitosync

import (
	sdk "github.com/aws/aws-sdk-go-v2/service/cognitosync"
	"github.com/aws/aws-sdk-go-v2/service/cognitosync/types"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/cmdlet"
	"github.com/tfctl/awsctl/internal/dispatch"
)

const (
	flagEvents          = "events"
	flagStreamsRole     = "cognito-streams-role-arn"
	flagStreamsName     = "cognito-streams-stream-name"
	flagStreamsStatus   = "cognito-streams-streaming-status"
	flagPushSyncApps    = "push-sync-application-arns"
	flagPushSyncRoleArn = "push-sync-role-arn"
)

func bulkPublish() cmdlet.Builder[Client] {
	return cmdlet.New(Client.BulkPublish, cmdlet.Def{
		Name:     "bulk-publish",
		Op:       "BulkPublish",
		Usage:    "publish every existing dataset of an identity pool to its configured stream",
		Mutating: true,
		Required: []string{flagPool},
		Default:  dispatch.Field("IdentityPoolId"),
		Target:   flagPool,
		Flags:    []cli.Flag{poolFlag()},
	}, func(p dispatch.Params, r *sdk.BulkPublishInput) {
		r.IdentityPoolId = p.String(flagPool)
	})
}

func getBulkPublishDetails() cmdlet.Builder[Client] {
	return cmdlet.New(Client.GetBulkPublishDetails, cmdlet.Def{
		Name:     "get-bulk-publish-details",
		Op:       "GetBulkPublishDetails",
		Usage:    "show the status of the last bulk publish of an identity pool",
		Required: []string{flagPool},
		Flags:    []cli.Flag{poolFlag()},
	}, func(p dispatch.Params, r *sdk.GetBulkPublishDetailsInput) {
		r.IdentityPoolId = p.String(flagPool)
	})
}

func getCognitoEvents() cmdlet.Builder[Client] {
	return cmdlet.New(Client.GetCognitoEvents, cmdlet.Def{
		Name:     "get-cognito-events",
		Op:       "GetCognitoEvents",
		Usage:    "show the event to Lambda function mapping of an identity pool",
		Required: []string{flagPool},
		Default:  dispatch.Field("Events"),
		Flags:    []cli.Flag{poolFlag()},
	}, func(p dispatch.Params, r *sdk.GetCognitoEventsInput) {
		r.IdentityPoolId = p.String(flagPool)
	})
}

func setCognitoEvents() cmdlet.Builder[Client] {
	return cmdlet.New(Client.SetCognitoEvents, cmdlet.Def{
		Name:     "set-cognito-events",
		Op:       "SetCognitoEvents",
		Usage:    "map events of an identity pool to Lambda functions",
		Mutating: true,
		Required: []string{flagPool, flagEvents},
		PassThru: flagPool,
		Target:   flagPool,
		Flags: []cli.Flag{
			poolFlag(),
			cmdlet.Map(flagEvents, "event=lambda-arn pairs, e.g. SyncTrigger=arn:aws:lambda:..."),
		},
	}, func(p dispatch.Params, r *sdk.SetCognitoEventsInput) {
		r.IdentityPoolId = p.String(flagPool)
		r.Events = p.StringMap(flagEvents)
	})
}

func getIdentityPoolConfiguration() cmdlet.Builder[Client] {
	return cmdlet.New(Client.GetIdentityPoolConfiguration, cmdlet.Def{
		Name:     "get-identity-pool-configuration",
		Op:       "GetIdentityPoolConfiguration",
		Usage:    "show the push sync and stream configuration of an identity pool",
		Required: []string{flagPool},
		Flags:    []cli.Flag{poolFlag()},
	}, func(p dispatch.Params, r *sdk.GetIdentityPoolConfigurationInput) {
		r.IdentityPoolId = p.String(flagPool)
	})
}

func setIdentityPoolConfiguration() cmdlet.Builder[Client] {
	return cmdlet.New(Client.SetIdentityPoolConfiguration, cmdlet.Def{
		Name:     "set-identity-pool-configuration",
		Op:       "SetIdentityPoolConfiguration",
		Usage:    "configure push sync and streams of an identity pool",
		Mutating: true,
		Required: []string{flagPool},
		Target:   flagPool,
		Flags: []cli.Flag{
			poolFlag(),
			cmdlet.String(flagStreamsRole, "role Cognito assumes to publish to the stream"),
			cmdlet.String(flagStreamsName, "Kinesis stream name"),
			cmdlet.Enum(flagStreamsStatus, "stream status",
				cmdlet.EnumValues(types.StreamingStatus("").Values())),
			cmdlet.Strings(flagPushSyncApps, "SNS platform application ARN"),
			cmdlet.String(flagPushSyncRoleArn, "role Cognito assumes to send push notifications"),
		},
	}, func(p dispatch.Params, r *sdk.SetIdentityPoolConfigurationInput) {
		r.IdentityPoolId = p.String(flagPool)
		if p.Has(flagStreamsRole) || p.Has(flagStreamsName) || p.Has(flagStreamsStatus) {
			r.CognitoStreams = &types.CognitoStreams{
				RoleArn:         p.String(flagStreamsRole),
				StreamName:      p.String(flagStreamsName),
				StreamingStatus: dispatch.Enum[types.StreamingStatus](p, flagStreamsStatus),
			}
		}
		if p.Has(flagPushSyncApps) || p.Has(flagPushSyncRoleArn) {
			r.PushSync = &types.PushSync{
				ApplicationArns: p.Strings(flagPushSyncApps),
				RoleArn:         p.String(flagPushSyncRoleArn),
			}
		}
	})
}
