// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package redshiftserverless

import (
	"context"
	"encoding/json"

	sdk "github.com/aws/aws-sdk-go-v2/service/redshiftserverless"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/cmdlet"
	"github.com/tfctl/awsctl/internal/dispatch"
)

const flagPolicy = "policy"

func resourcePolicyCommands() []cmdlet.Builder[Client] {
	return []cmdlet.Builder[Client]{
		getResourcePolicy(),
		putResourcePolicy(),
		deleteResourcePolicy(),
	}
}

func getResourcePolicy() cmdlet.Builder[Client] {
	return cmdlet.New(Client.GetResourcePolicy, cmdlet.Def{
		Name:     "get-resource-policy",
		Op:       "GetResourcePolicy",
		Usage:    "show the resource policy of a snapshot",
		Required: []string{flagResourceArn},
		Default:  dispatch.Field("ResourcePolicy"),
		Flags:    []cli.Flag{resourceArnFlag()},
	}, func(p dispatch.Params, r *sdk.GetResourcePolicyInput) {
		r.ResourceArn = p.String(flagResourceArn)
	})
}

func putResourcePolicy() cmdlet.Builder[Client] {
	return cmdlet.New(Client.PutResourcePolicy, cmdlet.Def{
		Name:     "put-resource-policy",
		Op:       "PutResourcePolicy",
		Usage:    "attach a resource policy to a snapshot",
		Mutating: true,
		Required: []string{flagPolicy, flagResourceArn},
		Default:  dispatch.Field("ResourcePolicy"),
		Target:   flagResourceArn,
		Flags: []cli.Flag{
			resourceArnFlag(),
			cmdlet.String(flagPolicy, "policy document as JSON"),
		},
	}, func(p dispatch.Params, r *sdk.PutResourcePolicyInput) {
		r.ResourceArn = p.String(flagResourceArn)
		r.Policy = p.String(flagPolicy)
	}).WithPreLoad(checkPolicy)
}

// checkPolicy rejects a policy that is not a JSON document before anything is
// sent.
func checkPolicy(_ context.Context, p dispatch.Params, _ *sdk.PutResourcePolicyInput) error {
	doc := p.String(flagPolicy)
	if doc == nil || json.Valid([]byte(*doc)) {
		return nil
	}
	return &dispatch.ArgumentError{Param: flagPolicy, Msg: "not a JSON document"}
}

func deleteResourcePolicy() cmdlet.Builder[Client] {
	return cmdlet.New(Client.DeleteResourcePolicy, cmdlet.Def{
		Name:     "delete-resource-policy",
		Op:       "DeleteResourcePolicy",
		Usage:    "remove the resource policy of a snapshot",
		Mutating: true,
		Required: []string{flagResourceArn},
		PassThru: flagResourceArn,
		Target:   flagResourceArn,
		Flags:    []cli.Flag{resourceArnFlag()},
	}, func(p dispatch.Params, r *sdk.DeleteResourcePolicyInput) {
		r.ResourceArn = p.String(flagResourceArn)
	})
}
