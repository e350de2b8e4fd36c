// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"math"
	"reflect"
	"sort"
	"time"
)

// Params is the invocation context. It holds one entry per input parameter
// that was actually bound, keyed by parameter name. Values are one of string,
// int, int32, int64, bool, time.Time, []string or map[string]string.
//
// The typed getters return nil (or an empty value) for absent parameters so
// that request builders can copy them straight into optional request fields.
type Params map[string]any

// Has reports whether name is bound to a non-empty value.
func (p Params) Has(name string) bool {
	v, ok := p[name]
	return ok && !isEmpty(v)
}

// Names returns the bound parameter names in sorted order.
func (p Params) Names() []string {
	names := make([]string, 0, len(p))
	for k := range p {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// String returns a pointer to the string value of name, or nil.
func (p Params) String(name string) *string {
	if s, ok := p[name].(string); ok {
		return &s
	}
	return nil
}

// Int32 returns a pointer to the integer value of name as an int32, or nil.
// A value outside the int32 range is never narrowed and reads as absent.
func (p Params) Int32(name string) *int32 {
	n, ok := toInt64(p[name])
	if !ok || n < math.MinInt32 || n > math.MaxInt32 {
		return nil
	}
	i := int32(n)
	return &i
}

// Int64 returns a pointer to the integer value of name, or nil.
func (p Params) Int64(name string) *int64 {
	n, ok := toInt64(p[name])
	if !ok {
		return nil
	}
	return &n
}

// Bool returns a pointer to the boolean value of name, or nil.
func (p Params) Bool(name string) *bool {
	if b, ok := p[name].(bool); ok {
		return &b
	}
	return nil
}

// Time returns a pointer to the timestamp value of name, or nil.
func (p Params) Time(name string) *time.Time {
	if t, ok := p[name].(time.Time); ok {
		return &t
	}
	return nil
}

// Strings returns the list value of name, or nil.
func (p Params) Strings(name string) []string {
	if s, ok := p[name].([]string); ok && len(s) > 0 {
		return s
	}
	return nil
}

// StringMap returns the map value of name, or nil.
func (p Params) StringMap(name string) map[string]string {
	if m, ok := p[name].(map[string]string); ok && len(m) > 0 {
		return m
	}
	return nil
}

// Enum returns the string value of name converted to the SDK enum type T, or
// the empty enum when name is absent.
func Enum[T ~string](p Params, name string) T {
	if s := p.String(name); s != nil {
		return T(*s)
	}
	return ""
}

// EnumSlice returns the list value of name converted to a slice of the SDK
// enum type T, or nil.
func EnumSlice[T ~string](p Params, name string) []T {
	values := p.Strings(name)
	if values == nil {
		return nil
	}
	result := make([]T, len(values))
	for i, v := range values {
		result[i] = T(v)
	}
	return result
}

// SetInt32 copies v into dst unless v is nil. dst may be a plain or an
// optional request field.
func SetInt32[F int32 | *int32](dst *F, v *int32) {
	if v == nil {
		return
	}
	switch d := any(dst).(type) {
	case *int32:
		*d = *v
	case **int32:
		*d = v
	}
}

// SetInt64 copies v into dst unless v is nil. dst may be a plain or an
// optional request field.
func SetInt64[F int64 | *int64](dst *F, v *int64) {
	if v == nil {
		return
	}
	switch d := any(dst).(type) {
	case *int64:
		*d = *v
	case **int64:
		*d = v
	}
}

// missing returns the names in required that are absent or empty.
func (p Params) missing(required []string) []string {
	var names []string
	for _, name := range required {
		if !p.Has(name) {
			names = append(names, name)
		}
	}
	return names
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}
