// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package redshiftserverless

import (
	sdk "github.com/aws/aws-sdk-go-v2/service/redshiftserverless"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/cmdlet"
	"github.com/tfctl/awsctl/internal/dispatch"
)

func snapshotCommands() []cmdlet.Builder[Client] {
	return []cmdlet.Builder[Client]{
		createSnapshot(),
		deleteSnapshot(),
		getSnapshot(),
		listSnapshots(),
		updateSnapshot(),
		restoreFromSnapshot(),
	}
}

func retentionFlag() cli.Flag {
	return cmdlet.Int32(flagRetention, "days to retain the snapshot, -1 to keep it indefinitely")
}

func createSnapshot() cmdlet.Builder[Client] {
	return cmdlet.New(Client.CreateSnapshot, cmdlet.Def{
		Name:     "create-snapshot",
		Op:       "CreateSnapshot",
		Usage:    "take a snapshot of a namespace",
		Mutating: true,
		Required: []string{flagNamespace, flagSnapshot},
		Default:  dispatch.Field("Snapshot"),
		Target:   flagSnapshot,
		Flags: []cli.Flag{
			namespaceFlag(),
			snapshotFlag(),
			retentionFlag(),
			tagsFlag(),
		},
	}, func(p dispatch.Params, r *sdk.CreateSnapshotInput) {
		r.NamespaceName = p.String(flagNamespace)
		r.SnapshotName = p.String(flagSnapshot)
		dispatch.SetInt32(&r.RetentionPeriod, p.Int32(flagRetention))
		r.Tags = tags(p, flagTags)
	})
}

func deleteSnapshot() cmdlet.Builder[Client] {
	return cmdlet.New(Client.DeleteSnapshot, cmdlet.Def{
		Name:     "delete-snapshot",
		Op:       "DeleteSnapshot",
		Usage:    "delete a snapshot",
		Mutating: true,
		Required: []string{flagSnapshot},
		Default:  dispatch.Field("Snapshot"),
		Target:   flagSnapshot,
		Flags:    []cli.Flag{snapshotFlag()},
	}, func(p dispatch.Params, r *sdk.DeleteSnapshotInput) {
		r.SnapshotName = p.String(flagSnapshot)
	})
}

func getSnapshot() cmdlet.Builder[Client] {
	return cmdlet.New(Client.GetSnapshot, cmdlet.Def{
		Name:    "get-snapshot",
		Op:      "GetSnapshot",
		Usage:   "show a snapshot by name or ARN",
		Default: dispatch.Field("Snapshot"),
		Flags: []cli.Flag{
			snapshotFlag(),
			cmdlet.String(flagSnapshotArn, "snapshot ARN"),
			cmdlet.String(flagOwner, "account owning the snapshot"),
		},
	}, func(p dispatch.Params, r *sdk.GetSnapshotInput) {
		r.SnapshotName = p.String(flagSnapshot)
		r.SnapshotArn = p.String(flagSnapshotArn)
		r.OwnerAccount = p.String(flagOwner)
	})
}

func listSnapshots() cmdlet.Builder[Client] {
	return cmdlet.New(Client.ListSnapshots, cmdlet.Def{
		Name:    "list-snapshots",
		Op:      "ListSnapshots",
		Usage:   "list snapshots, optionally of one namespace or time range",
		Default: dispatch.Field("Snapshots"),
		Flags: pageFlags(
			namespaceFlag(),
			cmdlet.String(flagNamespaceArn, "namespace ARN"),
			cmdlet.String(flagOwner, "account owning the snapshots"),
			cmdlet.Time(flagStart, "earliest creation time"),
			cmdlet.Time(flagEnd, "latest creation time"),
		),
	}, func(p dispatch.Params, r *sdk.ListSnapshotsInput) {
		r.NamespaceName = p.String(flagNamespace)
		r.NamespaceArn = p.String(flagNamespaceArn)
		r.OwnerAccount = p.String(flagOwner)
		r.StartTime = p.Time(flagStart)
		r.EndTime = p.Time(flagEnd)
		dispatch.SetInt32(&r.MaxResults, p.Int32(flagMax))
		r.NextToken = p.String(flagToken)
	}).WithPager(cmdlet.Pager[sdk.ListSnapshotsInput, sdk.ListSnapshotsOutput]{
		SetToken: func(r *sdk.ListSnapshotsInput, t *string) { r.NextToken = t },
		Token:    func(r *sdk.ListSnapshotsOutput) *string { return r.NextToken },
		Merge: func(into, page *sdk.ListSnapshotsOutput) {
			into.Snapshots = append(into.Snapshots, page.Snapshots...)
			into.NextToken = page.NextToken
		},
	})
}

func updateSnapshot() cmdlet.Builder[Client] {
	return cmdlet.New(Client.UpdateSnapshot, cmdlet.Def{
		Name:     "update-snapshot",
		Op:       "UpdateSnapshot",
		Usage:    "change the retention period of a snapshot",
		Mutating: true,
		Required: []string{flagSnapshot},
		Default:  dispatch.Field("Snapshot"),
		Target:   flagSnapshot,
		Flags:    []cli.Flag{snapshotFlag(), retentionFlag()},
	}, func(p dispatch.Params, r *sdk.UpdateSnapshotInput) {
		r.SnapshotName = p.String(flagSnapshot)
		dispatch.SetInt32(&r.RetentionPeriod, p.Int32(flagRetention))
	})
}

func restoreFromSnapshot() cmdlet.Builder[Client] {
	return cmdlet.New(Client.RestoreFromSnapshot, cmdlet.Def{
		Name:     "restore-from-snapshot",
		Op:       "RestoreFromSnapshot",
		Usage:    "restore a namespace from a snapshot",
		Mutating: true,
		Required: []string{flagNamespace, flagWorkgroup},
		Default:  dispatch.Field("Namespace"),
		Target:   flagNamespace,
		Flags: []cli.Flag{
			namespaceFlag(),
			workgroupFlag(),
			snapshotFlag(),
			cmdlet.String(flagSnapshotArn, "snapshot ARN, required for snapshots of another account"),
			cmdlet.String(flagOwner, "account owning the snapshot"),
			cmdlet.Bool(flagManagePassword, "manage the admin password in AWS Secrets Manager"),
			cmdlet.String(flagPasswordKmsKey, "KMS key encrypting the managed admin password"),
		},
	}, func(p dispatch.Params, r *sdk.RestoreFromSnapshotInput) {
		r.NamespaceName = p.String(flagNamespace)
		r.WorkgroupName = p.String(flagWorkgroup)
		r.SnapshotName = p.String(flagSnapshot)
		r.SnapshotArn = p.String(flagSnapshotArn)
		r.OwnerAccount = p.String(flagOwner)
		r.ManageAdminPassword = p.Bool(flagManagePassword)
		r.AdminPasswordSecretKmsKeyId = p.String(flagPasswordKmsKey)
	})
}
