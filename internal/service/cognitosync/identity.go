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
	flagPlatform = "platform"
	flagPush     = "token"
)

func describeIdentityPoolUsage() cmdlet.Builder[Client] {
	return cmdlet.New(Client.DescribeIdentityPoolUsage, cmdlet.Def{
		Name:     "describe-identity-pool-usage",
		Op:       "DescribeIdentityPoolUsage",
		Usage:    "show usage details of an identity pool",
		Required: []string{flagPool},
		Default:  dispatch.Field("IdentityPoolUsage"),
		Flags:    []cli.Flag{poolFlag()},
	}, func(p dispatch.Params, r *sdk.DescribeIdentityPoolUsageInput) {
		r.IdentityPoolId = p.String(flagPool)
	})
}

func describeIdentityUsage() cmdlet.Builder[Client] {
	return cmdlet.New(Client.DescribeIdentityUsage, cmdlet.Def{
		Name:     "describe-identity-usage",
		Op:       "DescribeIdentityUsage",
		Usage:    "show usage details of one identity",
		Required: []string{flagPool, flagIdentity},
		Default:  dispatch.Field("IdentityUsage"),
		Flags:    []cli.Flag{poolFlag(), identityFlag()},
	}, func(p dispatch.Params, r *sdk.DescribeIdentityUsageInput) {
		r.IdentityPoolId = p.String(flagPool)
		r.IdentityId = p.String(flagIdentity)
	})
}

func listIdentityPoolUsage() cmdlet.Builder[Client] {
	return cmdlet.New(Client.ListIdentityPoolUsage, cmdlet.Def{
		Name:    "list-identity-pool-usage",
		Op:      "ListIdentityPoolUsage",
		Usage:   "list usage details of every identity pool",
		Default: dispatch.Field("IdentityPoolUsages"),
		Flags:   pageFlags(),
	}, func(p dispatch.Params, r *sdk.ListIdentityPoolUsageInput) {
		dispatch.SetInt32(&r.MaxResults, p.Int32(flagMax))
		r.NextToken = p.String(flagToken)
	}).WithPager(cmdlet.Pager[sdk.ListIdentityPoolUsageInput, sdk.ListIdentityPoolUsageOutput]{
		SetToken: func(r *sdk.ListIdentityPoolUsageInput, t *string) { r.NextToken = t },
		Token:    func(r *sdk.ListIdentityPoolUsageOutput) *string { return r.NextToken },
		Merge: func(into, page *sdk.ListIdentityPoolUsageOutput) {
			into.IdentityPoolUsages = append(into.IdentityPoolUsages, page.IdentityPoolUsages...)
			into.NextToken = page.NextToken
		},
	})
}

func registerDevice() cmdlet.Builder[Client] {
	return cmdlet.New(Client.RegisterDevice, cmdlet.Def{
		Name:     "register-device",
		Op:       "RegisterDevice",
		Usage:    "register a device to receive push sync notifications",
		Mutating: true,
		Required: []string{flagPool, flagIdentity, flagPlatform, flagPush},
		Default:  dispatch.Field("DeviceId"),
		Target:   flagIdentity,
		Flags: []cli.Flag{
			poolFlag(),
			identityFlag(),
			cmdlet.Enum(flagPlatform, "push platform", cmdlet.EnumValues(types.Platform("").Values())),
			cmdlet.String(flagPush, "push token"),
		},
	}, func(p dispatch.Params, r *sdk.RegisterDeviceInput) {
		r.IdentityPoolId = p.String(flagPool)
		r.IdentityId = p.String(flagIdentity)
		r.Platform = dispatch.Enum[types.Platform](p, flagPlatform)
		r.Token = p.String(flagPush)
	})
}
