// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package dispatch

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listWidgetsOutput struct {
	Widgets   []widget
	NextToken *string
	Count     *int32
}

func sampleList() *listWidgetsOutput {
	token := "next"
	return &listWidgetsOutput{
		Widgets: []widget{
			{Id: "a", State: "active"},
			{Id: "b", State: "deleted"},
		},
		NextToken: &token,
	}
}

func TestParseSelector(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		wantKind Kind
		wantName string
		wantErr  bool
	}{
		{name: "whole", spec: "*", wantKind: KindWhole},
		{name: "echo", spec: "^namespace-name", wantKind: KindEcho, wantName: "namespace-name"},
		{name: "path", spec: "Widgets.#.Id", wantKind: KindTransform},
		{name: "expression", spec: "=length(response.Widgets)", wantKind: KindTransform},
		{name: "padded", spec: "  *  ", wantKind: KindWhole},
		{name: "empty", spec: "", wantErr: true},
		{name: "echo without name", spec: "^", wantErr: true},
		{name: "bad expression", spec: "=length(", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := ParseSelector(tt.spec)
			if tt.wantErr {
				var argErr *ArgumentError
				assert.ErrorAs(t, err, &argErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, sel.Kind())
			assert.Equal(t, tt.wantName, sel.Name())
		})
	}
}

func TestSelector_Apply(t *testing.T) {
	params := Params{"max-results": 10, "identity-pool-id": "pool"}

	tests := []struct {
		name string
		spec string
		want any
	}{
		{name: "gjson list path", spec: "Widgets.#.Id", want: []any{"a", "b"}},
		{name: "gjson scalar path", spec: "NextToken", want: "next"},
		{name: "gjson missing path", spec: "Nope", want: nil},
		{name: "expression length", spec: "=length(response.Widgets)", want: int64(2)},
		{name: "expression for", spec: "=[for w in response.Widgets : upper(w.Id)]", want: []any{"A", "B"}},
		{name: "expression params", spec: "=params[\"identity-pool-id\"]", want: "pool"},
		{name: "echo", spec: "^max-results", want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := ParseSelector(tt.spec)
			require.NoError(t, err)
			got, err := sel.Apply(sampleList(), params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelector_ApplyField(t *testing.T) {
	got, err := Field("Widgets").Apply(sampleList(), nil)
	require.NoError(t, err)
	assert.Equal(t, sampleList().Widgets, got)

	got, err = Field("NextToken").Apply(sampleList(), nil)
	require.NoError(t, err)
	assert.Equal(t, "next", got)

	got, err = Field("Count").Apply(sampleList(), nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = Field("Missing").Apply(sampleList(), nil)
	assert.Error(t, err)

	_, err = Field("Widgets").Apply("not a struct", nil)
	assert.Error(t, err)

	got, err = Field("Widgets").Apply((*listWidgetsOutput)(nil), nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSelector_ExpressionRuntimeError(t *testing.T) {
	sel, err := ParseSelector("=response.Missing.Thing")
	require.NoError(t, err)

	_, err = sel.Apply(sampleList(), nil)
	assert.Error(t, err)
}

func TestSelector_String(t *testing.T) {
	assert.Equal(t, "Widgets", Field("Widgets").String())
	assert.Equal(t, "*", Whole().String())
	assert.Equal(t, "^name", Echo("name").String())

	sel, err := ParseSelector("Widgets.#.Id")
	require.NoError(t, err)
	assert.Equal(t, "Widgets.#.Id", sel.String())

	assert.True(t, Selector{}.IsZero())
	assert.Equal(t, "none", Selector{}.Kind().String())
}

func TestHasField(t *testing.T) {
	typ := reflect.TypeOf(listWidgetsOutput{})
	assert.True(t, HasField(typ, "Widgets"))
	assert.True(t, HasField(reflect.PointerTo(typ), "NextToken"))
	assert.False(t, HasField(typ, "Nope"))
	assert.False(t, HasField(reflect.TypeOf(""), "Len"))
}
