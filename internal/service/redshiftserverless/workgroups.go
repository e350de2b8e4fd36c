// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package redshiftserverless

import (
	sdk "github.com/aws/aws-sdk-go-v2/service/redshiftserverless"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/cmdlet"
	"github.com/tfctl/awsctl/internal/dispatch"
)

const (
	flagBaseCapacity   = "base-capacity"
	flagMaxCapacity    = "max-capacity"
	flagConfigParams   = "config-parameters"
	flagEnhancedVpc    = "enhanced-vpc-routing"
	flagPort           = "port"
	flagPublic         = "publicly-accessible"
	flagSecurityGroups = "security-group-ids"
	flagCustomDomain   = "custom-domain-name"
	flagDuration       = "duration-seconds"
)

func workgroupCommands() []cmdlet.Builder[Client] {
	return []cmdlet.Builder[Client]{
		createWorkgroup(),
		deleteWorkgroup(),
		getWorkgroup(),
		listWorkgroups(),
		updateWorkgroup(),
		getCredentials(),
	}
}

// workgroupSettingFlags are the settings shared by create-workgroup and
// update-workgroup.
func workgroupSettingFlags() []cli.Flag {
	return []cli.Flag{
		cmdlet.Int32(flagBaseCapacity, "base compute capacity in RPUs"),
		cmdlet.Int32(flagMaxCapacity, "maximum compute capacity in RPUs"),
		cmdlet.Map(flagConfigParams, "key=value configuration parameters, e.g. search_path=public"),
		cmdlet.Bool(flagEnhancedVpc, "route network traffic through the VPC"),
		cmdlet.Int32(flagPort, "custom port"),
		cmdlet.Bool(flagPublic, "make the workgroup accessible from outside the VPC"),
		cmdlet.Strings(flagSecurityGroups, "security group id"),
		cmdlet.Strings(flagSubnets, "subnet id"),
	}
}

func createWorkgroup() cmdlet.Builder[Client] {
	return cmdlet.New(Client.CreateWorkgroup, cmdlet.Def{
		Name:     "create-workgroup",
		Op:       "CreateWorkgroup",
		Usage:    "create a workgroup in a namespace",
		Mutating: true,
		Required: []string{flagWorkgroup, flagNamespace},
		Default:  dispatch.Field("Workgroup"),
		Target:   flagWorkgroup,
		Flags: append([]cli.Flag{
			workgroupFlag(),
			namespaceFlag(),
			tagsFlag(),
		}, workgroupSettingFlags()...),
	}, func(p dispatch.Params, r *sdk.CreateWorkgroupInput) {
		r.WorkgroupName = p.String(flagWorkgroup)
		r.NamespaceName = p.String(flagNamespace)
		dispatch.SetInt32(&r.BaseCapacity, p.Int32(flagBaseCapacity))
		dispatch.SetInt32(&r.MaxCapacity, p.Int32(flagMaxCapacity))
		r.ConfigParameters = configParameters(p, flagConfigParams)
		r.EnhancedVpcRouting = p.Bool(flagEnhancedVpc)
		dispatch.SetInt32(&r.Port, p.Int32(flagPort))
		r.PubliclyAccessible = p.Bool(flagPublic)
		r.SecurityGroupIds = p.Strings(flagSecurityGroups)
		r.SubnetIds = p.Strings(flagSubnets)
		r.Tags = tags(p, flagTags)
	})
}

func deleteWorkgroup() cmdlet.Builder[Client] {
	return cmdlet.New(Client.DeleteWorkgroup, cmdlet.Def{
		Name:     "delete-workgroup",
		Op:       "DeleteWorkgroup",
		Usage:    "delete a workgroup",
		Mutating: true,
		Required: []string{flagWorkgroup},
		Default:  dispatch.Field("Workgroup"),
		Target:   flagWorkgroup,
		Flags:    []cli.Flag{workgroupFlag()},
	}, func(p dispatch.Params, r *sdk.DeleteWorkgroupInput) {
		r.WorkgroupName = p.String(flagWorkgroup)
	})
}

func getWorkgroup() cmdlet.Builder[Client] {
	return cmdlet.New(Client.GetWorkgroup, cmdlet.Def{
		Name:     "get-workgroup",
		Op:       "GetWorkgroup",
		Usage:    "show a workgroup",
		Required: []string{flagWorkgroup},
		Default:  dispatch.Field("Workgroup"),
		Flags:    []cli.Flag{workgroupFlag()},
	}, func(p dispatch.Params, r *sdk.GetWorkgroupInput) {
		r.WorkgroupName = p.String(flagWorkgroup)
	})
}

func listWorkgroups() cmdlet.Builder[Client] {
	return cmdlet.New(Client.ListWorkgroups, cmdlet.Def{
		Name:    "list-workgroups",
		Op:      "ListWorkgroups",
		Usage:   "list workgroups",
		Default: dispatch.Field("Workgroups"),
		Flags:   pageFlags(),
	}, func(p dispatch.Params, r *sdk.ListWorkgroupsInput) {
		dispatch.SetInt32(&r.MaxResults, p.Int32(flagMax))
		r.NextToken = p.String(flagToken)
	}).WithPager(cmdlet.Pager[sdk.ListWorkgroupsInput, sdk.ListWorkgroupsOutput]{
		SetToken: func(r *sdk.ListWorkgroupsInput, t *string) { r.NextToken = t },
		Token:    func(r *sdk.ListWorkgroupsOutput) *string { return r.NextToken },
		Merge: func(into, page *sdk.ListWorkgroupsOutput) {
			into.Workgroups = append(into.Workgroups, page.Workgroups...)
			into.NextToken = page.NextToken
		},
	})
}

func updateWorkgroup() cmdlet.Builder[Client] {
	return cmdlet.New(Client.UpdateWorkgroup, cmdlet.Def{
		Name:     "update-workgroup",
		Op:       "UpdateWorkgroup",
		Usage:    "update the settings of a workgroup",
		Mutating: true,
		Required: []string{flagWorkgroup},
		Default:  dispatch.Field("Workgroup"),
		Target:   flagWorkgroup,
		Flags:    append([]cli.Flag{workgroupFlag()}, workgroupSettingFlags()...),
	}, func(p dispatch.Params, r *sdk.UpdateWorkgroupInput) {
		r.WorkgroupName = p.String(flagWorkgroup)
		dispatch.SetInt32(&r.BaseCapacity, p.Int32(flagBaseCapacity))
		dispatch.SetInt32(&r.MaxCapacity, p.Int32(flagMaxCapacity))
		r.ConfigParameters = configParameters(p, flagConfigParams)
		r.EnhancedVpcRouting = p.Bool(flagEnhancedVpc)
		dispatch.SetInt32(&r.Port, p.Int32(flagPort))
		r.PubliclyAccessible = p.Bool(flagPublic)
		r.SecurityGroupIds = p.Strings(flagSecurityGroups)
		r.SubnetIds = p.Strings(flagSubnets)
	})
}

// getCredentials is read-only: it issues temporary database credentials but
// changes no resource.
func getCredentials() cmdlet.Builder[Client] {
	return cmdlet.New(Client.GetCredentials, cmdlet.Def{
		Name:  "get-credentials",
		Op:    "GetCredentials",
		Usage: "issue temporary database credentials for a workgroup or custom domain",
		Flags: []cli.Flag{
			workgroupFlag(),
			cmdlet.String(flagCustomDomain, "custom domain name of the workgroup"),
			cmdlet.String(flagDbName, "database to log on to"),
			cmdlet.Int32(flagDuration, "seconds until the credentials expire"),
		},
	}, func(p dispatch.Params, r *sdk.GetCredentialsInput) {
		r.WorkgroupName = p.String(flagWorkgroup)
		r.CustomDomainName = p.String(flagCustomDomain)
		r.DbName = p.String(flagDbName)
		dispatch.SetInt32(&r.DurationSeconds, p.Int32(flagDuration))
	})
}
