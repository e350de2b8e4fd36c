// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cognitosync

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/cognitosync"

	"github.com/tfctl/awsctl/internal/aws"
	"github.com/tfctl/awsctl/internal/cmdlet"
)

// Client is the subset of the Cognito Sync SDK client used by the commands.
type Client interface {
	BulkPublish(context.Context, *sdk.BulkPublishInput, ...func(*sdk.Options)) (*sdk.BulkPublishOutput, error)
	DeleteDataset(context.Context, *sdk.DeleteDatasetInput, ...func(*sdk.Options)) (*sdk.DeleteDatasetOutput, error)
	DescribeDataset(context.Context, *sdk.DescribeDatasetInput, ...func(*sdk.Options)) (*sdk.DescribeDatasetOutput, error)
	DescribeIdentityPoolUsage(context.Context, *sdk.DescribeIdentityPoolUsageInput, ...func(*sdk.Options)) (*sdk.DescribeIdentityPoolUsageOutput, error)
	DescribeIdentityUsage(context.Context, *sdk.DescribeIdentityUsageInput, ...func(*sdk.Options)) (*sdk.DescribeIdentityUsageOutput, error)
	GetBulkPublishDetails(context.Context, *sdk.GetBulkPublishDetailsInput, ...func(*sdk.Options)) (*sdk.GetBulkPublishDetailsOutput, error)
	GetCognitoEvents(context.Context, *sdk.GetCognitoEventsInput, ...func(*sdk.Options)) (*sdk.GetCognitoEventsOutput, error)
	GetIdentityPoolConfiguration(context.Context, *sdk.GetIdentityPoolConfigurationInput, ...func(*sdk.Options)) (*sdk.GetIdentityPoolConfigurationOutput, error)
	ListDatasets(context.Context, *sdk.ListDatasetsInput, ...func(*sdk.Options)) (*sdk.ListDatasetsOutput, error)
	ListIdentityPoolUsage(context.Context, *sdk.ListIdentityPoolUsageInput, ...func(*sdk.Options)) (*sdk.ListIdentityPoolUsageOutput, error)
	ListRecords(context.Context, *sdk.ListRecordsInput, ...func(*sdk.Options)) (*sdk.ListRecordsOutput, error)
	RegisterDevice(context.Context, *sdk.RegisterDeviceInput, ...func(*sdk.Options)) (*sdk.RegisterDeviceOutput, error)
	SetCognitoEvents(context.Context, *sdk.SetCognitoEventsInput, ...func(*sdk.Options)) (*sdk.SetCognitoEventsOutput, error)
	SetIdentityPoolConfiguration(context.Context, *sdk.SetIdentityPoolConfigurationInput, ...func(*sdk.Options)) (*sdk.SetIdentityPoolConfigurationOutput, error)
	SubscribeToDataset(context.Context, *sdk.SubscribeToDatasetInput, ...func(*sdk.Options)) (*sdk.SubscribeToDatasetOutput, error)
	UnsubscribeFromDataset(context.Context, *sdk.UnsubscribeFromDatasetInput, ...func(*sdk.Options)) (*sdk.UnsubscribeFromDatasetOutput, error)
	UpdateRecords(context.Context, *sdk.UpdateRecordsInput, ...func(*sdk.Options)) (*sdk.UpdateRecordsOutput, error)
}

var _ Client = (*sdk.Client)(nil)

// Service returns the cognito-sync command group backed by the AWS SDK.
func Service() cmdlet.Service[Client] {
	return cmdlet.Service[Client]{
		Name:    aws.CognitoSyncPrefix,
		Aliases: []string{"cgs"},
		Usage:   "Amazon Cognito Sync datasets, records and identity pools",
		Factory: cmdlet.AWSFactory(aws.CognitoSyncPrefix, func(cfg awsv2.Config) Client {
			return aws.NewCognitoSync(cfg)
		}),
		Commands: Commands(),
	}
}

// Commands returns every Cognito Sync operation.
func Commands() []cmdlet.Builder[Client] {
	return []cmdlet.Builder[Client]{
		bulkPublish(),
		deleteDataset(),
		describeDataset(),
		describeIdentityPoolUsage(),
		describeIdentityUsage(),
		getBulkPublishDetails(),
		getCognitoEvents(),
		getIdentityPoolConfiguration(),
		listDatasets(),
		listIdentityPoolUsage(),
		listRecords(),
		registerDevice(),
		setCognitoEvents(),
		setIdentityPoolConfiguration(),
		subscribeToDataset(),
		unsubscribeFromDataset(),
		updateRecords(),
	}
}
