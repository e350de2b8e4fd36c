// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/tidwall/gjson"
)

// Kind identifies which projection a Selector performs.
type Kind int

const (
	KindNone Kind = iota
	// KindField projects a named top-level field of the response.
	KindField
	// KindWhole projects the entire response.
	KindWhole
	// KindTransform projects through a caller-supplied function.
	KindTransform
	// KindEcho projects the bound value of one input parameter.
	KindEcho
)

func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindWhole:
		return "whole"
	case KindTransform:
		return "transform"
	case KindEcho:
		return "echo"
	}
	return "none"
}

// TransformFunc shapes a response into an output value.
type TransformFunc func(response any, params Params) (any, error)

// Selector is the result projection rule of an invocation. The zero value
// selects nothing and is replaced by the operation's default.
type Selector struct {
	kind   Kind
	name   string
	source string
	fn     TransformFunc
}

// Field selects the response field called name.
func Field(name string) Selector { return Selector{kind: KindField, name: name} }

// Whole selects the entire response.
func Whole() Selector { return Selector{kind: KindWhole} }

// Transform selects the value returned by fn.
func Transform(fn TransformFunc) Selector { return Selector{kind: KindTransform, fn: fn} }

// Echo selects the bound value of the input parameter called param.
func Echo(param string) Selector { return Selector{kind: KindEcho, name: param} }

// Kind returns the projection kind.
func (s Selector) Kind() Kind { return s.kind }

// Name returns the field or parameter name for KindField and KindEcho.
func (s Selector) Name() string { return s.name }

// IsZero reports whether s selects nothing.
func (s Selector) IsZero() bool { return s.kind == KindNone }

func (s Selector) String() string {
	switch s.kind {
	case KindField:
		return s.name
	case KindWhole:
		return "*"
	case KindEcho:
		return "^" + s.name
	case KindTransform:
		if s.source != "" {
			return s.source
		}
		return "<func>"
	}
	return ""
}

// Apply projects response according to the selector.
func (s Selector) Apply(response any, params Params) (any, error) {
	switch s.kind {
	case KindField:
		return fieldValue(response, s.name)
	case KindWhole:
		return response, nil
	case KindTransform:
		return s.fn(response, params)
	case KindEcho:
		return params[s.name], nil
	}
	return nil, fmt.Errorf("no selector")
}

// ParseSelector converts a --select specification into a Selector.
//
//	*        the whole response
//	^param   the value bound to param
//	=expr    an HCL expression over the variables response and params
//	path     a gjson path into the JSON form of the response
func ParseSelector(spec string) (Selector, error) {
	spec = strings.TrimSpace(spec)
	switch {
	case spec == "":
		return Selector{}, &ArgumentError{Param: "select", Msg: "empty selector"}
	case spec == "*":
		return Whole(), nil
	case strings.HasPrefix(spec, "^"):
		name := strings.TrimPrefix(spec, "^")
		if name == "" {
			return Selector{}, &ArgumentError{Param: "select", Msg: "missing parameter name after ^"}
		}
		return Echo(name), nil
	case strings.HasPrefix(spec, "="):
		return exprSelector(strings.TrimPrefix(spec, "="))
	}
	return pathSelector(spec), nil
}

// pathSelector drills into the JSON document of the response with gjson.
// Missing paths project to nil.
func pathSelector(path string) Selector {
	fn := func(response any, _ Params) (any, error) {
		doc, err := json.Marshal(response)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response: %w", err)
		}
		r := gjson.GetBytes(doc, path)
		if !r.Exists() {
			return nil, nil
		}
		return r.Value(), nil
	}
	return Selector{kind: KindTransform, source: path, fn: fn}
}

// fieldValue returns the value of the exported field name of the struct
// behind v. Pointers are dereferenced on both sides; a nil pointer field
// projects to nil.
func fieldValue(v any, name string) (any, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot select field %q from %s", name, rv.Kind())
	}

	f := rv.FieldByName(name)
	if !f.IsValid() {
		return nil, fmt.Errorf("response %s has no field %q", rv.Type().Name(), name)
	}
	if f.Kind() == reflect.Ptr {
		if f.IsNil() {
			return nil, nil
		}
		f = f.Elem()
	}
	return f.Interface(), nil
}

// HasField reports whether the struct type behind t has an exported field
// called name.
func HasField(t reflect.Type, name string) bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	f, ok := t.FieldByName(name)
	return ok && f.IsExported()
}
