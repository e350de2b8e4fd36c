// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package redshiftserverless

import (
	sdk "github.com/aws/aws-sdk-go-v2/service/redshiftserverless"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/cmdlet"
	"github.com/tfctl/awsctl/internal/dispatch"
)

func recoveryPointCommands() []cmdlet.Builder[Client] {
	return []cmdlet.Builder[Client]{
		convertRecoveryPointToSnapshot(),
		getRecoveryPoint(),
		listRecoveryPoints(),
		restoreFromRecoveryPoint(),
	}
}

func recoveryPointFlag() cli.Flag { return cmdlet.String(flagRecoveryPoint, "recovery point id") }

func convertRecoveryPointToSnapshot() cmdlet.Builder[Client] {
	return cmdlet.New(Client.ConvertRecoveryPointToSnapshot, cmdlet.Def{
		Name:     "convert-recovery-point-to-snapshot",
		Op:       "ConvertRecoveryPointToSnapshot",
		Usage:    "keep a recovery point as a named snapshot",
		Mutating: true,
		Required: []string{flagRecoveryPoint, flagSnapshot},
		Default:  dispatch.Field("Snapshot"),
		Target:   flagRecoveryPoint,
		Flags: []cli.Flag{
			recoveryPointFlag(),
			snapshotFlag(),
			retentionFlag(),
			tagsFlag(),
		},
	}, func(p dispatch.Params, r *sdk.ConvertRecoveryPointToSnapshotInput) {
		r.RecoveryPointId = p.String(flagRecoveryPoint)
		r.SnapshotName = p.String(flagSnapshot)
		dispatch.SetInt32(&r.RetentionPeriod, p.Int32(flagRetention))
		r.Tags = tags(p, flagTags)
	})
}

func getRecoveryPoint() cmdlet.Builder[Client] {
	return cmdlet.New(Client.GetRecoveryPoint, cmdlet.Def{
		Name:     "get-recovery-point",
		Op:       "GetRecoveryPoint",
		Usage:    "show a recovery point",
		Required: []string{flagRecoveryPoint},
		Default:  dispatch.Field("RecoveryPoint"),
		Flags:    []cli.Flag{recoveryPointFlag()},
	}, func(p dispatch.Params, r *sdk.GetRecoveryPointInput) {
		r.RecoveryPointId = p.String(flagRecoveryPoint)
	})
}

func listRecoveryPoints() cmdlet.Builder[Client] {
	return cmdlet.New(Client.ListRecoveryPoints, cmdlet.Def{
		Name:    "list-recovery-points",
		Op:      "ListRecoveryPoints",
		Usage:   "list recovery points, optionally of one namespace or time range",
		Default: dispatch.Field("RecoveryPoints"),
		Flags: pageFlags(
			namespaceFlag(),
			cmdlet.String(flagNamespaceArn, "namespace ARN"),
			cmdlet.Time(flagStart, "earliest recovery point time"),
			cmdlet.Time(flagEnd, "latest recovery point time"),
		),
	}, func(p dispatch.Params, r *sdk.ListRecoveryPointsInput) {
		r.NamespaceName = p.String(flagNamespace)
		r.NamespaceArn = p.String(flagNamespaceArn)
		r.StartTime = p.Time(flagStart)
		r.EndTime = p.Time(flagEnd)
		dispatch.SetInt32(&r.MaxResults, p.Int32(flagMax))
		r.NextToken = p.String(flagToken)
	}).WithPager(cmdlet.Pager[sdk.ListRecoveryPointsInput, sdk.ListRecoveryPointsOutput]{
		SetToken: func(r *sdk.ListRecoveryPointsInput, t *string) { r.NextToken = t },
		Token:    func(r *sdk.ListRecoveryPointsOutput) *string { return r.NextToken },
		Merge: func(into, page *sdk.ListRecoveryPointsOutput) {
			into.RecoveryPoints = append(into.RecoveryPoints, page.RecoveryPoints...)
			into.NextToken = page.NextToken
		},
	})
}

func restoreFromRecoveryPoint() cmdlet.Builder[Client] {
	return cmdlet.New(Client.RestoreFromRecoveryPoint, cmdlet.Def{
		Name:     "restore-from-recovery-point",
		Op:       "RestoreFromRecoveryPoint",
		Usage:    "restore a namespace to a recovery point",
		Mutating: true,
		Required: []string{flagNamespace, flagRecoveryPoint, flagWorkgroup},
		Default:  dispatch.Field("Namespace"),
		Target:   flagNamespace,
		Flags: []cli.Flag{
			namespaceFlag(),
			recoveryPointFlag(),
			workgroupFlag(),
		},
	}, func(p dispatch.Params, r *sdk.RestoreFromRecoveryPointInput) {
		r.NamespaceName = p.String(flagNamespace)
		r.RecoveryPointId = p.String(flagRecoveryPoint)
		r.WorkgroupName = p.String(flagWorkgroup)
	})
}
