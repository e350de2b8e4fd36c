// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cognitosync

import (
	sdk "github.com/aws/aws-sdk-go-v2/service/cognitosync"

	"github.com/tfctl/awsctl/internal/cmdlet"
	"github.com/tfctl/awsctl/internal/dispatch"
)

func deleteDataset() cmdlet.Builder[Client] {
	return cmdlet.New(Client.DeleteDataset, cmdlet.Def{
		Name:     "delete-dataset",
		Op:       "DeleteDataset",
		Usage:    "delete a dataset and all of its records",
		Mutating: true,
		Required: []string{flagPool, flagIdentity, flagDataset},
		Default:  dispatch.Field("Dataset"),
		Target:   flagDataset,
		Flags:    datasetFlags(),
	}, func(p dispatch.Params, r *sdk.DeleteDatasetInput) {
		r.IdentityPoolId = p.String(flagPool)
		r.IdentityId = p.String(flagIdentity)
		r.DatasetName = p.String(flagDataset)
	})
}

func describeDataset() cmdlet.Builder[Client] {
	return cmdlet.New(Client.DescribeDataset, cmdlet.Def{
		Name:     "describe-dataset",
		Op:       "DescribeDataset",
		Usage:    "show the metadata of a dataset",
		Required: []string{flagPool, flagIdentity, flagDataset},
		Default:  dispatch.Field("Dataset"),
		Flags:    datasetFlags(),
	}, func(p dispatch.Params, r *sdk.DescribeDatasetInput) {
		r.IdentityPoolId = p.String(flagPool)
		r.IdentityId = p.String(flagIdentity)
		r.DatasetName = p.String(flagDataset)
	})
}

func listDatasets() cmdlet.Builder[Client] {
	return cmdlet.New(Client.ListDatasets, cmdlet.Def{
		Name:     "list-datasets",
		Op:       "ListDatasets",
		Usage:    "list the datasets of an identity",
		Required: []string{flagPool, flagIdentity},
		Default:  dispatch.Field("Datasets"),
		Flags:    pageFlags(poolFlag(), identityFlag()),
	}, func(p dispatch.Params, r *sdk.ListDatasetsInput) {
		r.IdentityPoolId = p.String(flagPool)
		r.IdentityId = p.String(flagIdentity)
		dispatch.SetInt32(&r.MaxResults, p.Int32(flagMax))
		r.NextToken = p.String(flagToken)
	}).WithPager(cmdlet.Pager[sdk.ListDatasetsInput, sdk.ListDatasetsOutput]{
		SetToken: func(r *sdk.ListDatasetsInput, t *string) { r.NextToken = t },
		Token:    func(r *sdk.ListDatasetsOutput) *string { return r.NextToken },
		Merge: func(into, page *sdk.ListDatasetsOutput) {
			into.Datasets = append(into.Datasets, page.Datasets...)
			into.NextToken = page.NextToken
		},
	})
}

func subscribeToDataset() cmdlet.Builder[Client] {
	return cmdlet.New(Client.SubscribeToDataset, cmdlet.Def{
		Name:     "subscribe-to-dataset",
		Op:       "SubscribeToDataset",
		Usage:    "subscribe a device to push notifications of dataset changes",
		Mutating: true,
		Required: []string{flagPool, flagIdentity, flagDataset, flagDevice},
		PassThru: flagDataset,
		Target:   flagDataset,
		Flags:    datasetFlags(cmdlet.String(flagDevice, "device id returned by register-device")),
	}, func(p dispatch.Params, r *sdk.SubscribeToDatasetInput) {
		r.IdentityPoolId = p.String(flagPool)
		r.IdentityId = p.String(flagIdentity)
		r.DatasetName = p.String(flagDataset)
		r.DeviceId = p.String(flagDevice)
	})
}

func unsubscribeFromDataset() cmdlet.Builder[Client] {
	return cmdlet.New(Client.UnsubscribeFromDataset, cmdlet.Def{
		Name:     "unsubscribe-from-dataset",
		Op:       "UnsubscribeFromDataset",
		Usage:    "stop push notifications of dataset changes to a device",
		Mutating: true,
		Required: []string{flagPool, flagIdentity, flagDataset, flagDevice},
		PassThru: flagDataset,
		Target:   flagDataset,
		Flags:    datasetFlags(cmdlet.String(flagDevice, "device id returned by register-device")),
	}, func(p dispatch.Params, r *sdk.UnsubscribeFromDatasetInput) {
		r.IdentityPoolId = p.String(flagPool)
		r.IdentityId = p.String(flagIdentity)
		r.DatasetName = p.String(flagDataset)
		r.DeviceId = p.String(flagDevice)
	})
}
