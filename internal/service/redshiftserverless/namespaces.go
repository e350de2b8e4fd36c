// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package redshiftserverless

import (
	sdk "github.com/aws/aws-sdk-go-v2/service/redshiftserverless"
	"github.com/aws/aws-sdk-go-v2/service/redshiftserverless/types"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/cmdlet"
	"github.com/tfctl/awsctl/internal/dispatch"
)

const (
	flagAdminUser      = "admin-username"
	flagAdminPassword  = "admin-user-password"
	flagManagePassword = "manage-admin-password"
	flagPasswordKmsKey = "admin-password-secret-kms-key-id"
	flagDbName         = "db-name"
	flagDefaultRole    = "default-iam-role-arn"
	flagIamRoles       = "iam-roles"
	flagKmsKey         = "kms-key-id"
	flagLogExports     = "log-exports"
	flagFinalSnapshot  = "final-snapshot-name"
	flagFinalRetention = "final-snapshot-retention-period"
)

func namespaceCommands() []cmdlet.Builder[Client] {
	return []cmdlet.Builder[Client]{
		createNamespace(),
		deleteNamespace(),
		getNamespace(),
		listNamespaces(),
		updateNamespace(),
	}
}

// namespaceSettingFlags are the settings shared by create-namespace and
// update-namespace.
func namespaceSettingFlags() []cli.Flag {
	return []cli.Flag{
		cmdlet.String(flagAdminUser, "admin user name"),
		cmdlet.String(flagAdminPassword, "admin user password"),
		cmdlet.Bool(flagManagePassword, "manage the admin password in AWS Secrets Manager"),
		cmdlet.String(flagPasswordKmsKey, "KMS key encrypting the managed admin password"),
		cmdlet.String(flagDefaultRole, "default IAM role ARN"),
		cmdlet.Strings(flagIamRoles, "IAM role ARN"),
		cmdlet.String(flagKmsKey, "KMS key encrypting the namespace"),
		cmdlet.EnumSlice(flagLogExports, "log type to export",
			cmdlet.EnumValues(types.LogExport("").Values())),
	}
}

func createNamespace() cmdlet.Builder[Client] {
	return cmdlet.New(Client.CreateNamespace, cmdlet.Def{
		Name:     "create-namespace",
		Op:       "CreateNamespace",
		Usage:    "create a namespace",
		Mutating: true,
		Required: []string{flagNamespace},
		Default:  dispatch.Field("Namespace"),
		Target:   flagNamespace,
		Flags: append([]cli.Flag{
			namespaceFlag(),
			cmdlet.String(flagDbName, "name of the first database"),
			tagsFlag(),
		}, namespaceSettingFlags()...),
	}, func(p dispatch.Params, r *sdk.CreateNamespaceInput) {
		r.NamespaceName = p.String(flagNamespace)
		r.DbName = p.String(flagDbName)
		r.AdminUsername = p.String(flagAdminUser)
		r.AdminUserPassword = p.String(flagAdminPassword)
		r.ManageAdminPassword = p.Bool(flagManagePassword)
		r.AdminPasswordSecretKmsKeyId = p.String(flagPasswordKmsKey)
		r.DefaultIamRoleArn = p.String(flagDefaultRole)
		r.IamRoles = p.Strings(flagIamRoles)
		r.KmsKeyId = p.String(flagKmsKey)
		r.LogExports = dispatch.EnumSlice[types.LogExport](p, flagLogExports)
		r.Tags = tags(p, flagTags)
	})
}

func deleteNamespace() cmdlet.Builder[Client] {
	return cmdlet.New(Client.DeleteNamespace, cmdlet.Def{
		Name:     "delete-namespace",
		Op:       "DeleteNamespace",
		Usage:    "delete a namespace, optionally taking a final snapshot",
		Mutating: true,
		Required: []string{flagNamespace},
		Default:  dispatch.Field("Namespace"),
		Target:   flagNamespace,
		Flags: []cli.Flag{
			namespaceFlag(),
			cmdlet.String(flagFinalSnapshot, "name of the final snapshot"),
			cmdlet.Int32(flagFinalRetention, "days to retain the final snapshot"),
		},
	}, func(p dispatch.Params, r *sdk.DeleteNamespaceInput) {
		r.NamespaceName = p.String(flagNamespace)
		r.FinalSnapshotName = p.String(flagFinalSnapshot)
		dispatch.SetInt32(&r.FinalSnapshotRetentionPeriod, p.Int32(flagFinalRetention))
	})
}

func getNamespace() cmdlet.Builder[Client] {
	return cmdlet.New(Client.GetNamespace, cmdlet.Def{
		Name:     "get-namespace",
		Op:       "GetNamespace",
		Usage:    "show a namespace",
		Required: []string{flagNamespace},
		Default:  dispatch.Field("Namespace"),
		Flags:    []cli.Flag{namespaceFlag()},
	}, func(p dispatch.Params, r *sdk.GetNamespaceInput) {
		r.NamespaceName = p.String(flagNamespace)
	})
}

func listNamespaces() cmdlet.Builder[Client] {
	return cmdlet.New(Client.ListNamespaces, cmdlet.Def{
		Name:    "list-namespaces",
		Op:      "ListNamespaces",
		Usage:   "list namespaces",
		Default: dispatch.Field("Namespaces"),
		Flags:   pageFlags(),
	}, func(p dispatch.Params, r *sdk.ListNamespacesInput) {
		dispatch.SetInt32(&r.MaxResults, p.Int32(flagMax))
		r.NextToken = p.String(flagToken)
	}).WithPager(cmdlet.Pager[sdk.ListNamespacesInput, sdk.ListNamespacesOutput]{
		SetToken: func(r *sdk.ListNamespacesInput, t *string) { r.NextToken = t },
		Token:    func(r *sdk.ListNamespacesOutput) *string { return r.NextToken },
		Merge: func(into, page *sdk.ListNamespacesOutput) {
			into.Namespaces = append(into.Namespaces, page.Namespaces...)
			into.NextToken = page.NextToken
		},
	})
}

func updateNamespace() cmdlet.Builder[Client] {
	return cmdlet.New(Client.UpdateNamespace, cmdlet.Def{
		Name:     "update-namespace",
		Op:       "UpdateNamespace",
		Usage:    "update the settings of a namespace",
		Mutating: true,
		Required: []string{flagNamespace},
		Default:  dispatch.Field("Namespace"),
		Target:   flagNamespace,
		Flags:    append([]cli.Flag{namespaceFlag()}, namespaceSettingFlags()...),
	}, func(p dispatch.Params, r *sdk.UpdateNamespaceInput) {
		r.NamespaceName = p.String(flagNamespace)
		r.AdminUsername = p.String(flagAdminUser)
		r.AdminUserPassword = p.String(flagAdminPassword)
		r.ManageAdminPassword = p.Bool(flagManagePassword)
		r.AdminPasswordSecretKmsKeyId = p.String(flagPasswordKmsKey)
		r.DefaultIamRoleArn = p.String(flagDefaultRole)
		r.IamRoles = p.Strings(flagIamRoles)
		r.KmsKeyId = p.String(flagKmsKey)
		r.LogExports = dispatch.EnumSlice[types.LogExport](p, flagLogExports)
	})
}
