// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cognitosync

import (
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/aws/aws-sdk-go-v2/service/cognitosync"
	"github.com/aws/aws-sdk-go-v2/service/cognitosync/types"

	"github.com/tfctl/awsctl/internal/cmdlet"
	"github.com/tfctl/awsctl/internal/dispatch"
)

const (
	flagSyncToken  = "sync-session-token"
	flagPatches    = "record-patches"
	flagLastSync   = "last-sync-count"
	flagClientCtx  = "client-context"
	patchesExample = `[{"Op":"replace","Key":"k","Value":"v","SyncCount":0}]`
)

func listRecords() cmdlet.Builder[Client] {
	return cmdlet.New(Client.ListRecords, cmdlet.Def{
		Name:     "list-records",
		Op:       "ListRecords",
		Usage:    "list the records of a dataset, optionally since a sync count",
		Required: []string{flagPool, flagIdentity, flagDataset},
		Default:  dispatch.Field("Records"),
		Flags: datasetFlags(pageFlags(
			cmdlet.Int64(flagLastSync, "last server sync count seen by the client"),
			cmdlet.String(flagSyncToken, "sync session token"),
		)...),
	}, func(p dispatch.Params, r *sdk.ListRecordsInput) {
		r.IdentityPoolId = p.String(flagPool)
		r.IdentityId = p.String(flagIdentity)
		r.DatasetName = p.String(flagDataset)
		dispatch.SetInt64(&r.LastSyncCount, p.Int64(flagLastSync))
		dispatch.SetInt32(&r.MaxResults, p.Int32(flagMax))
		r.NextToken = p.String(flagToken)
		r.SyncSessionToken = p.String(flagSyncToken)
	}).WithPager(cmdlet.Pager[sdk.ListRecordsInput, sdk.ListRecordsOutput]{
		SetToken: func(r *sdk.ListRecordsInput, t *string) { r.NextToken = t },
		Token:    func(r *sdk.ListRecordsOutput) *string { return r.NextToken },
		Merge: func(into, page *sdk.ListRecordsOutput) {
			into.Records = append(into.Records, page.Records...)
			into.NextToken = page.NextToken
			into.SyncSessionToken = page.SyncSessionToken
		},
	})
}

func updateRecords() cmdlet.Builder[Client] {
	return cmdlet.New(Client.UpdateRecords, cmdlet.Def{
		Name:     "update-records",
		Op:       "UpdateRecords",
		Usage:    "apply record patches to a dataset",
		Mutating: true,
		Required: []string{flagPool, flagIdentity, flagDataset, flagSyncToken},
		Default:  dispatch.Field("Records"),
		Target:   flagDataset,
		Flags: datasetFlags(
			cmdlet.String(flagSyncToken, "sync session token returned by list-records"),
			cmdlet.String(flagPatches, "JSON list of record patches, e.g. "+patchesExample),
			cmdlet.String(flagDevice, "device id the update originates from"),
			cmdlet.String(flagClientCtx, "base64 encoded client context"),
		),
	}, func(p dispatch.Params, r *sdk.UpdateRecordsInput) {
		r.IdentityPoolId = p.String(flagPool)
		r.IdentityId = p.String(flagIdentity)
		r.DatasetName = p.String(flagDataset)
		r.SyncSessionToken = p.String(flagSyncToken)
		r.DeviceId = p.String(flagDevice)
		r.ClientContext = p.String(flagClientCtx)
	}).WithPostLoad(bindPatches)
}

// bindPatches decodes --record-patches into the request.
func bindPatches(_ context.Context, p dispatch.Params, r *sdk.UpdateRecordsInput) error {
	src := p.String(flagPatches)
	if src == nil {
		return nil
	}

	var patches []types.RecordPatch
	if err := json.Unmarshal([]byte(*src), &patches); err != nil {
		return &dispatch.ArgumentError{Param: flagPatches, Msg: fmt.Sprintf("invalid JSON: %v", err)}
	}
	for i, patch := range patches {
		if patch.Key == nil || *patch.Key == "" {
			return &dispatch.ArgumentError{Param: flagPatches, Msg: fmt.Sprintf("patch %d has no Key", i)}
		}
	}

	r.RecordPatches = patches
	return nil
}
