// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package attrs

import (
	"embed"
	"testing"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var cases embed.FS

// load decodes the cases of testdata/<name>.yaml.
func load[T any](t *testing.T, name string) []T {
	t.Helper()
	data, err := cases.ReadFile("testdata/" + name + ".yaml")
	require.NoError(t, err)
	var out []T
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.NotEmpty(t, out, name)
	return out
}

func TestAttrList_Set(t *testing.T) {
	type setCase struct {
		Name      string `yaml:"name"`
		Initial   []Attr `yaml:"initial"`
		Value     string `yaml:"value"`
		WantLen   int    `yaml:"wantLen"`
		WantAttrs []Attr `yaml:"wantAttrs"`
	}

	for _, tc := range load[setCase](t, "set_cases") {
		t.Run(tc.Name, func(t *testing.T) {
			al := AttrList(tc.Initial)
			require.NoError(t, al.Set(tc.Value))
			require.Len(t, al, tc.WantLen)
			for i, want := range tc.WantAttrs {
				assert.Equal(t, want, al[i], "attr %d", i)
			}
		})
	}
}

func TestAttrList_SetGlobalTransformSpec(t *testing.T) {
	type globalCase struct {
		Name      string   `yaml:"name"`
		Initial   []Attr   `yaml:"initial"`
		WantSpecs []string `yaml:"wantSpecs"`
	}

	for _, tc := range load[globalCase](t, "global_transform_cases") {
		t.Run(tc.Name, func(t *testing.T) {
			al := AttrList(tc.Initial)
			require.NoError(t, al.SetGlobalTransformSpec())

			got := make([]string, len(al))
			for i := range al {
				got[i] = al[i].TransformSpec
			}
			assert.Equal(t, append([]string{}, tc.WantSpecs...), got)
		})
	}
}

func TestAttr_Transform(t *testing.T) {
	type transformCase struct {
		Name          string `yaml:"name"`
		TransformSpec string `yaml:"transformSpec"`
		Input         any    `yaml:"input"`
		Want          any    `yaml:"want"`
	}

	for _, tc := range load[transformCase](t, "transform_cases") {
		t.Run(tc.Name, func(t *testing.T) {
			a := Attr{TransformSpec: tc.TransformSpec}
			assert.Equal(t, tc.Want, a.Transform(tc.Input))
		})
	}
}

func TestAttr_Transform_Time(t *testing.T) {
	// CreationDate as the SDK serializes it.
	const created = "2025-03-04T05:06:07.123Z"
	ts, err := time.Parse(time.RFC3339Nano, created)
	require.NoError(t, err)

	local := Attr{TransformSpec: "t"}
	assert.Equal(t, ts.In(time.Local).Format(LocalLayout), local.Transform(created))

	ago := Attr{TransformSpec: "T"}
	assert.Equal(t, humanize.Time(ts), ago.Transform(created))

	// --local appends t, which overrides an earlier T.
	both := Attr{TransformSpec: "T,t"}
	assert.Equal(t, ts.In(time.Local).Format(LocalLayout), both.Transform(created))
}

func TestAttr_Transform_Numbers(t *testing.T) {
	tests := []struct {
		spec string
		in   any
		want any
	}{
		{"n", float64(1234567), "1,234,567"},
		{"n", float64(-2048), "-2,048"},
		{"n", 1536.5, "1,536.5"},
		{"u", float64(32), float64(32)},
		{"n", true, true},
	}

	for _, tt := range tests {
		a := Attr{TransformSpec: tt.spec}
		assert.Equal(t, tt.want, a.Transform(tt.in), "%s %v", tt.spec, tt.in)
	}
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "default", shorten("default", 0))
	assert.Equal(t, "def", shorten("default", 3))
	assert.Equal(t, "wor..ult", shorten("workgroup-default", -8))
	// Too short to elide.
	assert.Equal(t, "wor", shorten("workgroup", -3))
}

func TestAttrList_String(t *testing.T) {
	type stringCase struct {
		Name     string `yaml:"name"`
		AttrList []Attr `yaml:"attrList"`
		Want     string `yaml:"want"`
	}

	for _, tc := range load[stringCase](t, "string_cases") {
		t.Run(tc.Name, func(t *testing.T) {
			al := AttrList(tc.AttrList)
			assert.Equal(t, tc.Want, al.String())
		})
	}
}

func TestAttrList_RoundTrip(t *testing.T) {
	var al AttrList
	require.NoError(t, al.Set("WorkgroupName:name:u,!Status,Endpoint.Port"))

	var again AttrList
	require.NoError(t, again.Set(al.String()))
	assert.Len(t, again, 3)
	assert.Equal(t, "name", again[0].OutputKey)
	assert.Equal(t, "u", again[0].TransformSpec)
	assert.Equal(t, "list", al.Type())
}
