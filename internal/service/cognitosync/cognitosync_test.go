// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cognitosync

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/cognitosync"
	"github.com/aws/aws-sdk-go-v2/service/cognitosync/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/cmdlet"
	"github.com/tfctl/awsctl/internal/dispatch"
	"github.com/tfctl/awsctl/internal/meta"
)

// stub records the last request of every operation.
type stub struct {
	calls    map[string]int
	requests map[string]any
	pages    []*sdk.ListDatasetsOutput
}

func newStub() *stub {
	return &stub{calls: map[string]int{}, requests: map[string]any{}}
}

func (s *stub) record(op string, req any) {
	s.calls[op]++
	s.requests[op] = req
}

func (s *stub) BulkPublish(_ context.Context, in *sdk.BulkPublishInput, _ ...func(*sdk.Options)) (*sdk.BulkPublishOutput, error) {
	s.record("BulkPublish", in)
	return &sdk.BulkPublishOutput{IdentityPoolId: in.IdentityPoolId}, nil
}

func (s *stub) DeleteDataset(_ context.Context, in *sdk.DeleteDatasetInput, _ ...func(*sdk.Options)) (*sdk.DeleteDatasetOutput, error) {
	s.record("DeleteDataset", in)
	return &sdk.DeleteDatasetOutput{Dataset: &types.Dataset{DatasetName: in.DatasetName, IdentityId: in.IdentityId}}, nil
}

func (s *stub) DescribeDataset(_ context.Context, in *sdk.DescribeDatasetInput, _ ...func(*sdk.Options)) (*sdk.DescribeDatasetOutput, error) {
	s.record("DescribeDataset", in)
	return &sdk.DescribeDatasetOutput{Dataset: &types.Dataset{
		DatasetName: in.DatasetName,
		IdentityId:  in.IdentityId,
		NumRecords:  awsv2.Int64(3),
	}}, nil
}

func (s *stub) DescribeIdentityPoolUsage(_ context.Context, in *sdk.DescribeIdentityPoolUsageInput, _ ...func(*sdk.Options)) (*sdk.DescribeIdentityPoolUsageOutput, error) {
	s.record("DescribeIdentityPoolUsage", in)
	return &sdk.DescribeIdentityPoolUsageOutput{IdentityPoolUsage: &types.IdentityPoolUsage{IdentityPoolId: in.IdentityPoolId}}, nil
}

func (s *stub) DescribeIdentityUsage(_ context.Context, in *sdk.DescribeIdentityUsageInput, _ ...func(*sdk.Options)) (*sdk.DescribeIdentityUsageOutput, error) {
	s.record("DescribeIdentityUsage", in)
	return &sdk.DescribeIdentityUsageOutput{IdentityUsage: &types.IdentityUsage{IdentityId: in.IdentityId}}, nil
}

func (s *stub) GetBulkPublishDetails(_ context.Context, in *sdk.GetBulkPublishDetailsInput, _ ...func(*sdk.Options)) (*sdk.GetBulkPublishDetailsOutput, error) {
	s.record("GetBulkPublishDetails", in)
	return &sdk.GetBulkPublishDetailsOutput{
		IdentityPoolId:    in.IdentityPoolId,
		BulkPublishStatus: types.BulkPublishStatusSucceeded,
	}, nil
}

func (s *stub) GetCognitoEvents(_ context.Context, in *sdk.GetCognitoEventsInput, _ ...func(*sdk.Options)) (*sdk.GetCognitoEventsOutput, error) {
	s.record("GetCognitoEvents", in)
	return &sdk.GetCognitoEventsOutput{Events: map[string]string{"SyncTrigger": "arn:aws:lambda:us-east-1:123456789012:function:sync"}}, nil
}

func (s *stub) GetIdentityPoolConfiguration(_ context.Context, in *sdk.GetIdentityPoolConfigurationInput, _ ...func(*sdk.Options)) (*sdk.GetIdentityPoolConfigurationOutput, error) {
	s.record("GetIdentityPoolConfiguration", in)
	return &sdk.GetIdentityPoolConfigurationOutput{IdentityPoolId: in.IdentityPoolId}, nil
}

func (s *stub) ListDatasets(_ context.Context, in *sdk.ListDatasetsInput, _ ...func(*sdk.Options)) (*sdk.ListDatasetsOutput, error) {
	s.record("ListDatasets", in)
	if len(s.pages) > 0 {
		page := s.pages[0]
		s.pages = s.pages[1:]
		return page, nil
	}
	return &sdk.ListDatasetsOutput{}, nil
}

func (s *stub) ListIdentityPoolUsage(_ context.Context, in *sdk.ListIdentityPoolUsageInput, _ ...func(*sdk.Options)) (*sdk.ListIdentityPoolUsageOutput, error) {
	s.record("ListIdentityPoolUsage", in)
	return &sdk.ListIdentityPoolUsageOutput{}, nil
}

func (s *stub) ListRecords(_ context.Context, in *sdk.ListRecordsInput, _ ...func(*sdk.Options)) (*sdk.ListRecordsOutput, error) {
	s.record("ListRecords", in)
	return &sdk.ListRecordsOutput{
		Records:          []types.Record{{Key: awsv2.String("k"), Value: awsv2.String("v")}},
		SyncSessionToken: awsv2.String("session"),
	}, nil
}

func (s *stub) RegisterDevice(_ context.Context, in *sdk.RegisterDeviceInput, _ ...func(*sdk.Options)) (*sdk.RegisterDeviceOutput, error) {
	s.record("RegisterDevice", in)
	return &sdk.RegisterDeviceOutput{DeviceId: awsv2.String("device-1")}, nil
}

func (s *stub) SetCognitoEvents(_ context.Context, in *sdk.SetCognitoEventsInput, _ ...func(*sdk.Options)) (*sdk.SetCognitoEventsOutput, error) {
	s.record("SetCognitoEvents", in)
	return &sdk.SetCognitoEventsOutput{}, nil
}

func (s *stub) SetIdentityPoolConfiguration(_ context.Context, in *sdk.SetIdentityPoolConfigurationInput, _ ...func(*sdk.Options)) (*sdk.SetIdentityPoolConfigurationOutput, error) {
	s.record("SetIdentityPoolConfiguration", in)
	return &sdk.SetIdentityPoolConfigurationOutput{
		IdentityPoolId: in.IdentityPoolId,
		CognitoStreams: in.CognitoStreams,
		PushSync:       in.PushSync,
	}, nil
}

func (s *stub) SubscribeToDataset(_ context.Context, in *sdk.SubscribeToDatasetInput, _ ...func(*sdk.Options)) (*sdk.SubscribeToDatasetOutput, error) {
	s.record("SubscribeToDataset", in)
	return &sdk.SubscribeToDatasetOutput{}, nil
}

func (s *stub) UnsubscribeFromDataset(_ context.Context, in *sdk.UnsubscribeFromDatasetInput, _ ...func(*sdk.Options)) (*sdk.UnsubscribeFromDatasetOutput, error) {
	s.record("UnsubscribeFromDataset", in)
	return &sdk.UnsubscribeFromDatasetOutput{}, nil
}

func (s *stub) UpdateRecords(_ context.Context, in *sdk.UpdateRecordsInput, _ ...func(*sdk.Options)) (*sdk.UpdateRecordsOutput, error) {
	s.record("UpdateRecords", in)
	var records []types.Record
	for _, p := range in.RecordPatches {
		records = append(records, types.Record{Key: p.Key, Value: p.Value})
	}
	return &sdk.UpdateRecordsOutput{Records: records}, nil
}

var _ Client = (*stub)(nil)

// run executes the named operation against s with args.
func run(t *testing.T, s *stub, stdin string, name string, args ...string) (string, error) {
	t.Helper()

	var b cmdlet.Builder[Client]
	for _, c := range Commands() {
		if c.Definition().Name == name {
			b = c
		}
	}
	require.NotNil(t, b, "unknown operation %s", name)

	var out bytes.Buffer
	m := meta.Meta{Stdin: strings.NewReader(stdin), Stdout: &out, Stderr: io.Discard}
	cmd := b.Build(m, "cognito-sync", func(context.Context, *cli.Command) (Client, string, error) {
		return s, "https://cognito-sync.us-east-1.amazonaws.com", nil
	})
	cmd.Writer = io.Discard
	cmd.ErrWriter = io.Discard

	err := cmd.Run(context.Background(), append([]string{name}, args...))
	return out.String(), err
}

func TestCommands_Declarations(t *testing.T) {
	mutating := map[string]bool{
		"bulk-publish":                    true,
		"delete-dataset":                  true,
		"register-device":                 true,
		"set-cognito-events":              true,
		"set-identity-pool-configuration": true,
		"subscribe-to-dataset":            true,
		"unsubscribe-from-dataset":        true,
		"update-records":                  true,
	}

	cmds := Commands()
	require.Len(t, cmds, 17)

	seen := map[string]bool{}
	for _, c := range cmds {
		def := c.Definition()
		t.Run(def.Name, func(t *testing.T) {
			assert.False(t, seen[def.Name], "duplicate command")
			seen[def.Name] = true

			assert.NotEmpty(t, def.Op)
			assert.NotEmpty(t, def.Usage)
			assert.Equal(t, mutating[def.Name], def.Mutating)

			if def.Default.Kind() == dispatch.KindField {
				assert.True(t, dispatch.HasField(c.ResponseType(), def.Default.Name()),
					"%s has no field %s", c.ResponseType().Name(), def.Default.Name())
			}

			declared := map[string]bool{}
			for _, f := range def.Flags {
				declared[f.Names()[0]] = true
			}
			for _, r := range def.Required {
				assert.True(t, declared[r], "required flag %s is not declared", r)
			}
			if def.PassThru != "" {
				assert.True(t, declared[def.PassThru])
			}
			if def.Target != "" {
				assert.True(t, declared[def.Target])
			}
		})
	}
}

func TestService(t *testing.T) {
	svc := Service()
	assert.Equal(t, "cognito-sync", svc.Name)
	assert.Equal(t, []string{"cgs"}, svc.Aliases)
	assert.NotNil(t, svc.Factory)

	cmd := svc.Command(meta.Meta{})
	assert.Len(t, cmd.Commands, 17)
}

func TestDescribeDataset_DefaultProjection(t *testing.T) {
	s := newStub()
	out, err := run(t, s, "", "describe-dataset",
		"--identity-pool-id", "us-east-1:pool",
		"--identity-id", "us-east-1:id",
		"--dataset-name", "prefs",
		"-o", "json")
	require.NoError(t, err)

	assert.JSONEq(t, `{"DatasetName":"prefs","IdentityId":"us-east-1:id","NumRecords":3}`, out)

	req := s.requests["DescribeDataset"].(*sdk.DescribeDatasetInput)
	assert.Equal(t, "us-east-1:pool", *req.IdentityPoolId)
	assert.Equal(t, "us-east-1:id", *req.IdentityId)
	assert.Equal(t, "prefs", *req.DatasetName)
}

func TestDeleteDataset_Declined(t *testing.T) {
	s := newStub()
	out, err := run(t, s, "no\n", "delete-dataset",
		"--identity-pool-id", "p", "--identity-id", "i", "--dataset-name", "prefs")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Zero(t, s.calls["DeleteDataset"])
}

func TestDeleteDataset_Forced(t *testing.T) {
	s := newStub()
	out, err := run(t, s, "", "delete-dataset",
		"--identity-pool-id", "p", "--identity-id", "i", "--dataset-name", "prefs",
		"--force", "--select", "DatasetName")
	require.NoError(t, err)
	assert.Equal(t, "prefs\n", out)
	assert.Equal(t, 1, s.calls["DeleteDataset"])
}

func TestListDatasets_Paginates(t *testing.T) {
	s := newStub()
	s.pages = []*sdk.ListDatasetsOutput{
		{Datasets: []types.Dataset{{DatasetName: awsv2.String("a")}}, NextToken: awsv2.String("t2")},
		{Datasets: []types.Dataset{{DatasetName: awsv2.String("b")}}},
	}

	out, err := run(t, s, "", "list-datasets",
		"--identity-pool-id", "p", "--identity-id", "i", "--max-results", "1",
		"--select", "Datasets.#.DatasetName", "-o", "json")
	require.NoError(t, err)

	assert.JSONEq(t, `["a","b"]`, out)
	assert.Equal(t, 2, s.calls["ListDatasets"])
	req := s.requests["ListDatasets"].(*sdk.ListDatasetsInput)
	assert.Equal(t, "t2", *req.NextToken)
}

func TestListDatasets_NoPaginate(t *testing.T) {
	s := newStub()
	s.pages = []*sdk.ListDatasetsOutput{
		{Datasets: []types.Dataset{{DatasetName: awsv2.String("a")}}, NextToken: awsv2.String("t2")},
		{Datasets: []types.Dataset{{DatasetName: awsv2.String("b")}}},
	}

	_, err := run(t, s, "", "list-datasets",
		"--identity-pool-id", "p", "--identity-id", "i", "--no-paginate")
	require.NoError(t, err)
	assert.Equal(t, 1, s.calls["ListDatasets"])
}

func TestListRecords_Binding(t *testing.T) {
	s := newStub()
	_, err := run(t, s, "", "list-records",
		"--identity-pool-id", "p", "--identity-id", "i", "--dataset-name", "prefs",
		"--last-sync-count", "12", "--sync-session-token", "tok")
	require.NoError(t, err)

	req := s.requests["ListRecords"].(*sdk.ListRecordsInput)
	require.NotNil(t, req.LastSyncCount)
	assert.Equal(t, int64(12), *req.LastSyncCount)
	assert.Equal(t, "tok", *req.SyncSessionToken)
	assert.Nil(t, req.NextToken)
}

func TestUpdateRecords_Patches(t *testing.T) {
	s := newStub()
	out, err := run(t, s, "", "update-records",
		"--identity-pool-id", "p", "--identity-id", "i", "--dataset-name", "prefs",
		"--sync-session-token", "tok", "--force",
		"--record-patches", `[{"Op":"replace","Key":"theme","Value":"dark","SyncCount":4,"DeviceLastModifiedDate":"2024-05-01T10:00:00Z"}]`,
		"-o", "json")
	require.NoError(t, err)

	req := s.requests["UpdateRecords"].(*sdk.UpdateRecordsInput)
	require.Len(t, req.RecordPatches, 1)
	patch := req.RecordPatches[0]
	assert.Equal(t, types.OperationReplace, patch.Op)
	assert.Equal(t, "theme", *patch.Key)
	assert.True(t, patch.DeviceLastModifiedDate.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))
	assert.Contains(t, out, `"theme"`)
}

func TestUpdateRecords_BadPatches(t *testing.T) {
	for _, patches := range []string{`not json`, `[{"Op":"replace"}]`} {
		s := newStub()
		_, err := run(t, s, "", "update-records",
			"--identity-pool-id", "p", "--identity-id", "i", "--dataset-name", "prefs",
			"--sync-session-token", "tok", "--force", "--record-patches", patches)

		var argErr *dispatch.ArgumentError
		require.ErrorAs(t, err, &argErr, patches)
		assert.Equal(t, flagPatches, argErr.Param)
		assert.Zero(t, s.calls["UpdateRecords"])
	}
}

func TestRegisterDevice(t *testing.T) {
	s := newStub()
	out, err := run(t, s, "y\n", "register-device",
		"--identity-pool-id", "p", "--identity-id", "i",
		"--platform", string(types.PlatformGcm), "--token", "push-token")
	require.NoError(t, err)
	assert.Equal(t, "device-1\n", out)

	req := s.requests["RegisterDevice"].(*sdk.RegisterDeviceInput)
	assert.Equal(t, types.PlatformGcm, req.Platform)
	assert.Equal(t, "push-token", *req.Token)
}

func TestRegisterDevice_InvalidPlatform(t *testing.T) {
	s := newStub()
	_, err := run(t, s, "", "register-device",
		"--identity-pool-id", "p", "--identity-id", "i",
		"--platform", "PALM", "--token", "t", "--force")
	require.Error(t, err)
	assert.Zero(t, s.calls["RegisterDevice"])
}

func TestSetCognitoEvents_PassThru(t *testing.T) {
	s := newStub()
	out, err := run(t, s, "", "set-cognito-events",
		"--identity-pool-id", "us-east-1:pool",
		"--events", "SyncTrigger=arn:aws:lambda:us-east-1:123456789012:function:sync",
		"--force", "--pass-thru")
	require.NoError(t, err)
	assert.Equal(t, "us-east-1:pool\n", out)

	req := s.requests["SetCognitoEvents"].(*sdk.SetCognitoEventsInput)
	assert.Equal(t, map[string]string{"SyncTrigger": "arn:aws:lambda:us-east-1:123456789012:function:sync"}, req.Events)
}

func TestSetIdentityPoolConfiguration_NestedStructs(t *testing.T) {
	s := newStub()
	_, err := run(t, s, "", "set-identity-pool-configuration",
		"--identity-pool-id", "p",
		"--cognito-streams-stream-name", "sync-stream",
		"--cognito-streams-streaming-status", string(types.StreamingStatusEnabled),
		"--force")
	require.NoError(t, err)

	req := s.requests["SetIdentityPoolConfiguration"].(*sdk.SetIdentityPoolConfigurationInput)
	require.NotNil(t, req.CognitoStreams)
	assert.Equal(t, "sync-stream", *req.CognitoStreams.StreamName)
	assert.Nil(t, req.CognitoStreams.RoleArn)
	assert.Equal(t, types.StreamingStatusEnabled, req.CognitoStreams.StreamingStatus)
	assert.Nil(t, req.PushSync, "push sync is left alone when none of its flags are set")
}

func TestGetBulkPublishDetails_Whole(t *testing.T) {
	s := newStub()
	out, err := run(t, s, "", "get-bulk-publish-details", "--identity-pool-id", "p", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"BulkPublishStatus":"SUCCEEDED","IdentityPoolId":"p"}`, out)
}

func TestWhatIf(t *testing.T) {
	s := newStub()
	out, err := run(t, s, "", "bulk-publish", "--identity-pool-id", "p", "--what-if", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"IdentityPoolId":"p"}`, out)
	assert.Zero(t, s.calls["BulkPublish"])
}
