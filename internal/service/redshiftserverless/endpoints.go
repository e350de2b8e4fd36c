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
	flagVpcSecurityGroups = "vpc-security-group-ids"
	flagVpc               = "vpc-id"
)

func endpointAccessCommands() []cmdlet.Builder[Client] {
	return []cmdlet.Builder[Client]{
		createEndpointAccess(),
		deleteEndpointAccess(),
		getEndpointAccess(),
		listEndpointAccess(),
		updateEndpointAccess(),
	}
}

func endpointFlag() cli.Flag { return cmdlet.String(flagEndpoint, "VPC endpoint name") }

func createEndpointAccess() cmdlet.Builder[Client] {
	return cmdlet.New(Client.CreateEndpointAccess, cmdlet.Def{
		Name:     "create-endpoint-access",
		Op:       "CreateEndpointAccess",
		Usage:    "create a VPC endpoint to a workgroup",
		Mutating: true,
		Required: []string{flagEndpoint, flagSubnets, flagWorkgroup},
		Default:  dispatch.Field("Endpoint"),
		Target:   flagEndpoint,
		Flags: []cli.Flag{
			endpointFlag(),
			workgroupFlag(),
			cmdlet.Strings(flagSubnets, "subnet id"),
			cmdlet.Strings(flagVpcSecurityGroups, "VPC security group id"),
		},
	}, func(p dispatch.Params, r *sdk.CreateEndpointAccessInput) {
		r.EndpointName = p.String(flagEndpoint)
		r.WorkgroupName = p.String(flagWorkgroup)
		r.SubnetIds = p.Strings(flagSubnets)
		r.VpcSecurityGroupIds = p.Strings(flagVpcSecurityGroups)
	})
}

func deleteEndpointAccess() cmdlet.Builder[Client] {
	return cmdlet.New(Client.DeleteEndpointAccess, cmdlet.Def{
		Name:     "delete-endpoint-access",
		Op:       "DeleteEndpointAccess",
		Usage:    "delete a VPC endpoint",
		Mutating: true,
		Required: []string{flagEndpoint},
		Default:  dispatch.Field("Endpoint"),
		Target:   flagEndpoint,
		Flags:    []cli.Flag{endpointFlag()},
	}, func(p dispatch.Params, r *sdk.DeleteEndpointAccessInput) {
		r.EndpointName = p.String(flagEndpoint)
	})
}

func getEndpointAccess() cmdlet.Builder[Client] {
	return cmdlet.New(Client.GetEndpointAccess, cmdlet.Def{
		Name:     "get-endpoint-access",
		Op:       "GetEndpointAccess",
		Usage:    "show a VPC endpoint",
		Required: []string{flagEndpoint},
		Default:  dispatch.Field("Endpoint"),
		Flags:    []cli.Flag{endpointFlag()},
	}, func(p dispatch.Params, r *sdk.GetEndpointAccessInput) {
		r.EndpointName = p.String(flagEndpoint)
	})
}

func listEndpointAccess() cmdlet.Builder[Client] {
	return cmdlet.New(Client.ListEndpointAccess, cmdlet.Def{
		Name:    "list-endpoint-access",
		Op:      "ListEndpointAccess",
		Usage:   "list VPC endpoints, optionally of one workgroup or VPC",
		Default: dispatch.Field("Endpoints"),
		Flags: pageFlags(
			workgroupFlag(),
			cmdlet.String(flagVpc, "VPC id"),
		),
	}, func(p dispatch.Params, r *sdk.ListEndpointAccessInput) {
		r.WorkgroupName = p.String(flagWorkgroup)
		r.VpcId = p.String(flagVpc)
		dispatch.SetInt32(&r.MaxResults, p.Int32(flagMax))
		r.NextToken = p.String(flagToken)
	}).WithPager(cmdlet.Pager[sdk.ListEndpointAccessInput, sdk.ListEndpointAccessOutput]{
		SetToken: func(r *sdk.ListEndpointAccessInput, t *string) { r.NextToken = t },
		Token:    func(r *sdk.ListEndpointAccessOutput) *string { return r.NextToken },
		Merge: func(into, page *sdk.ListEndpointAccessOutput) {
			into.Endpoints = append(into.Endpoints, page.Endpoints...)
			into.NextToken = page.NextToken
		},
	})
}

func updateEndpointAccess() cmdlet.Builder[Client] {
	return cmdlet.New(Client.UpdateEndpointAccess, cmdlet.Def{
		Name:     "update-endpoint-access",
		Op:       "UpdateEndpointAccess",
		Usage:    "replace the security groups of a VPC endpoint",
		Mutating: true,
		Required: []string{flagEndpoint},
		Default:  dispatch.Field("Endpoint"),
		Target:   flagEndpoint,
		Flags: []cli.Flag{
			endpointFlag(),
			cmdlet.Strings(flagVpcSecurityGroups, "VPC security group id"),
		},
	}, func(p dispatch.Params, r *sdk.UpdateEndpointAccessInput) {
		r.EndpointName = p.String(flagEndpoint)
		r.VpcSecurityGroupIds = p.Strings(flagVpcSecurityGroups)
	})
}
