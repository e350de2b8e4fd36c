// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/awsctl/internal/attrs"
)

//go:embed testdata/*.yaml
var cases embed.FS

func load[T any](t *testing.T, name string) []T {
	t.Helper()
	data, err := cases.ReadFile("testdata/" + name + ".yaml")
	require.NoError(t, err)
	var out []T
	require.NoError(t, yaml.Unmarshal(data, &out))
	return out
}

func TestBuildFilters(t *testing.T) {
	type buildCase struct {
		Name      string   `yaml:"name"`
		Spec      string   `yaml:"spec"`
		Delimiter string   `yaml:"delimiter"`
		Want      []Filter `yaml:"want"`
	}

	for _, tc := range load[buildCase](t, "build") {
		t.Run(tc.Name, func(t *testing.T) {
			if tc.Delimiter != "" {
				t.Setenv(EnvDelim, tc.Delimiter)
			}

			got := BuildFilters(tc.Spec)
			require.Len(t, got, len(tc.Want))
			for i, want := range tc.Want {
				got[i].re = nil
				assert.Equal(t, want, got[i])
			}
		})
	}
}

func TestBuildFilters_CompilesRegex(t *testing.T) {
	got := BuildFilters("WorkgroupName/^dev-")
	require.Len(t, got, 1)
	require.NotNil(t, got[0].re)
	assert.True(t, got[0].re.MatchString("dev-etl"))
}

func TestFilter_Match(t *testing.T) {
	type matchCase struct {
		Name   string `yaml:"name"`
		Value  string `yaml:"value"`
		Filter string `yaml:"filter"`
		Want   bool   `yaml:"want"`
	}

	for _, tc := range load[matchCase](t, "match") {
		t.Run(tc.Name, func(t *testing.T) {
			filters := BuildFilters(tc.Filter)
			require.Len(t, filters, 1)
			assert.Equal(t, tc.Want, filters[0].Match(gjson.Parse(tc.Value)))
		})
	}
}

func TestFilterDataset(t *testing.T) {
	type datasetCase struct {
		Name string   `yaml:"name"`
		Spec string   `yaml:"spec"`
		Want []string `yaml:"want"`
	}

	workgroups := gjson.Parse(`[
		{"WorkgroupName": "analytics", "Status": "AVAILABLE", "BaseCapacity": 64,
		 "Endpoint": {"Address": "analytics.example.com", "Port": 5439}},
		{"WorkgroupName": "dev-sandbox", "Status": "MODIFYING", "BaseCapacity": 8},
		{"WorkgroupName": "dev-etl", "Status": "AVAILABLE", "BaseCapacity": 32,
		 "Endpoint": {"Address": "dev-etl.example.com", "Port": 5440}}
	]`)

	al := attrs.AttrList{
		{Key: "WorkgroupName", OutputKey: "name", Include: true},
		{Key: "Status", OutputKey: "Status", Include: true},
	}

	for _, tc := range load[datasetCase](t, "dataset") {
		t.Run(tc.Name, func(t *testing.T) {
			rows := FilterDataset(workgroups, al, tc.Spec)

			names := []string{}
			for _, row := range rows {
				assert.Len(t, row, 2, "rows hold only the attrs")
				names = append(names, row["name"].(string))
			}
			assert.Equal(t, append([]string{}, tc.Want...), names)
		})
	}
}

func TestFilterDataset_MissingAttrIsNil(t *testing.T) {
	rows := FilterDataset(gjson.Parse(`[{"DatasetName": "prefs"}]`), attrs.AttrList{
		{Key: "DatasetName", OutputKey: "DatasetName", Include: true},
		{Key: "NumRecords", OutputKey: "NumRecords", Include: true},
	}, "")

	require.Len(t, rows, 1)
	assert.Equal(t, "prefs", rows[0]["DatasetName"])
	assert.Contains(t, rows[0], "NumRecords")
	assert.Nil(t, rows[0]["NumRecords"])
}
