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
	flagAmount       = "amount"
	flagBreachAction = "breach-action"
	flagPeriod       = "period"
	flagUsageType    = "usage-type"
)

func usageLimitCommands() []cmdlet.Builder[Client] {
	return []cmdlet.Builder[Client]{
		createUsageLimit(),
		deleteUsageLimit(),
		getUsageLimit(),
		listUsageLimits(),
		updateUsageLimit(),
	}
}

func usageLimitFlag() cli.Flag { return cmdlet.String(flagUsageLimit, "usage limit id") }

func breachActionFlag() cli.Flag {
	return cmdlet.Enum(flagBreachAction, "action when the limit is reached",
		cmdlet.EnumValues(types.UsageLimitBreachAction("").Values()))
}

func usageTypeFlag() cli.Flag {
	return cmdlet.Enum(flagUsageType, "usage type",
		cmdlet.EnumValues(types.UsageLimitUsageType("").Values()))
}

func createUsageLimit() cmdlet.Builder[Client] {
	return cmdlet.New(Client.CreateUsageLimit, cmdlet.Def{
		Name:     "create-usage-limit",
		Op:       "CreateUsageLimit",
		Usage:    "limit the compute or data sharing usage of a workgroup",
		Mutating: true,
		Required: []string{flagAmount, flagResourceArn, flagUsageType},
		Default:  dispatch.Field("UsageLimit"),
		Target:   flagResourceArn,
		Flags: []cli.Flag{
			cmdlet.Int64(flagAmount, "limit in RPU-hours or TB"),
			resourceArnFlag(),
			usageTypeFlag(),
			breachActionFlag(),
			cmdlet.Enum(flagPeriod, "period the limit applies to",
				cmdlet.EnumValues(types.UsageLimitPeriod("").Values())),
		},
	}, func(p dispatch.Params, r *sdk.CreateUsageLimitInput) {
		dispatch.SetInt64(&r.Amount, p.Int64(flagAmount))
		r.ResourceArn = p.String(flagResourceArn)
		r.UsageType = dispatch.Enum[types.UsageLimitUsageType](p, flagUsageType)
		r.BreachAction = dispatch.Enum[types.UsageLimitBreachAction](p, flagBreachAction)
		r.Period = dispatch.Enum[types.UsageLimitPeriod](p, flagPeriod)
	})
}

func deleteUsageLimit() cmdlet.Builder[Client] {
	return cmdlet.New(Client.DeleteUsageLimit, cmdlet.Def{
		Name:     "delete-usage-limit",
		Op:       "DeleteUsageLimit",
		Usage:    "delete a usage limit",
		Mutating: true,
		Required: []string{flagUsageLimit},
		Default:  dispatch.Field("UsageLimit"),
		Target:   flagUsageLimit,
		Flags:    []cli.Flag{usageLimitFlag()},
	}, func(p dispatch.Params, r *sdk.DeleteUsageLimitInput) {
		r.UsageLimitId = p.String(flagUsageLimit)
	})
}

func getUsageLimit() cmdlet.Builder[Client] {
	return cmdlet.New(Client.GetUsageLimit, cmdlet.Def{
		Name:     "get-usage-limit",
		Op:       "GetUsageLimit",
		Usage:    "show a usage limit",
		Required: []string{flagUsageLimit},
		Default:  dispatch.Field("UsageLimit"),
		Flags:    []cli.Flag{usageLimitFlag()},
	}, func(p dispatch.Params, r *sdk.GetUsageLimitInput) {
		r.UsageLimitId = p.String(flagUsageLimit)
	})
}

func listUsageLimits() cmdlet.Builder[Client] {
	return cmdlet.New(Client.ListUsageLimits, cmdlet.Def{
		Name:    "list-usage-limits",
		Op:      "ListUsageLimits",
		Usage:   "list usage limits, optionally of one resource",
		Default: dispatch.Field("UsageLimits"),
		Flags:   pageFlags(resourceArnFlag(), usageTypeFlag()),
	}, func(p dispatch.Params, r *sdk.ListUsageLimitsInput) {
		r.ResourceArn = p.String(flagResourceArn)
		r.UsageType = dispatch.Enum[types.UsageLimitUsageType](p, flagUsageType)
		dispatch.SetInt32(&r.MaxResults, p.Int32(flagMax))
		r.NextToken = p.String(flagToken)
	}).WithPager(cmdlet.Pager[sdk.ListUsageLimitsInput, sdk.ListUsageLimitsOutput]{
		SetToken: func(r *sdk.ListUsageLimitsInput, t *string) { r.NextToken = t },
		Token:    func(r *sdk.ListUsageLimitsOutput) *string { return r.NextToken },
		Merge: func(into, page *sdk.ListUsageLimitsOutput) {
			into.UsageLimits = append(into.UsageLimits, page.UsageLimits...)
			into.NextToken = page.NextToken
		},
	})
}

func updateUsageLimit() cmdlet.Builder[Client] {
	return cmdlet.New(Client.UpdateUsageLimit, cmdlet.Def{
		Name:     "update-usage-limit",
		Op:       "UpdateUsageLimit",
		Usage:    "change the amount or breach action of a usage limit",
		Mutating: true,
		Required: []string{flagUsageLimit},
		Default:  dispatch.Field("UsageLimit"),
		Target:   flagUsageLimit,
		Flags: []cli.Flag{
			usageLimitFlag(),
			cmdlet.Int64(flagAmount, "limit in RPU-hours or TB"),
			breachActionFlag(),
		},
	}, func(p dispatch.Params, r *sdk.UpdateUsageLimitInput) {
		r.UsageLimitId = p.String(flagUsageLimit)
		dispatch.SetInt64(&r.Amount, p.Int64(flagAmount))
		r.BreachAction = dispatch.Enum[types.UsageLimitBreachAction](p, flagBreachAction)
	})
}
