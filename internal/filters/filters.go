// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/tfctl/awsctl/internal/attrs"
	"github.com/tfctl/awsctl/internal/driller"
	"github.com/tfctl/awsctl/internal/log"
)

// EnvDelim names the environment variable overriding the filter delimiter.
const EnvDelim = "AWSCTL_FILTER_DELIM"

// expr splits "Key!op Target". The key may not contain operator characters.
var expr = regexp.MustCompile(`^([^!?=^~<>@/]*)(!?[=^~<>@/])?(.*)$`)

// Filter is one parsed --filter expression.
type Filter struct {
	Key     string `yaml:"key" json:"Key"`
	Negate  bool   `yaml:"negate" json:"Negate"`
	Operand string `yaml:"operand" json:"Operand"`
	Value   string `yaml:"value" json:"Value"`

	re *regexp.Regexp
}

// BuildFilters parses spec. Expressions with an empty key or a bad regular
// expression are logged and dropped.
func BuildFilters(spec string) []Filter {
	delim := ","
	if d := os.Getenv(EnvDelim); d != "" {
		delim = d
	}

	var out []Filter
	for _, s := range strings.Split(spec, delim) {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		m := expr.FindStringSubmatch(s)
		f := Filter{Key: strings.TrimSpace(m[1]), Value: m[3]}
		f.Operand, f.Negate = strings.CutPrefix(m[2], "!")
		if f.Key == "" {
			log.Errorf("invalid filter %q: empty key", s)
			continue
		}

		if f.Operand == "/" {
			re, err := regexp.Compile(f.Value)
			if err != nil {
				log.Errorf("invalid filter %q: %v", s, err)
				continue
			}
			f.re = re
		}

		out = append(out, f)
	}

	log.Debugf("filters built: n=%d", len(out))
	return out
}

// Match reports whether v satisfies the filter. Missing and null values never
// match. A filter without an operand only requires v to be present.
func (f Filter) Match(v gjson.Result) bool {
	if !v.Exists() || v.Type == gjson.Null {
		return false
	}
	if f.Operand == "" {
		return true
	}

	var ok bool
	switch {
	case v.Type == gjson.Number:
		ok = f.number(v.Float())
	case v.IsArray(), v.IsObject():
		ok = f.member(v)
	default:
		ok = f.text(v.String())
	}
	return ok != f.Negate
}

// text compares strings. Numeric strings compare as numbers when the target
// is numeric too.
func (f Filter) text(s string) bool {
	if n, err := strconv.ParseFloat(s, 64); err == nil && strings.ContainsAny(f.Operand, "=<>") {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64); err == nil {
			return f.number(n)
		}
	}

	switch f.Operand {
	case "=":
		return s == f.Value
	case "~":
		return strings.EqualFold(s, f.Value)
	case "^":
		return strings.HasPrefix(s, f.Value)
	case "<":
		return s < f.Value
	case ">":
		return s > f.Value
	case "@":
		return strings.Contains(s, f.Value)
	case "/":
		return f.re != nil && f.re.MatchString(s)
	}
	return false
}

func (f Filter) number(n float64) bool {
	target, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64)
	if err != nil {
		log.Errorf("filter %s: %q is not a number", f.Key, f.Value)
		return false
	}

	switch f.Operand {
	case "=":
		return n == target
	case "<":
		return n < target
	case ">":
		return n > target
	}
	log.Errorf("filter %s: %s does not apply to numbers", f.Key, f.Operand)
	return false
}

// member handles @ on lists (element) and objects (key).
func (f Filter) member(v gjson.Result) bool {
	if f.Operand != "@" {
		log.Errorf("filter %s: %s does not apply to lists or objects", f.Key, f.Operand)
		return false
	}
	if v.IsObject() {
		_, found := v.Map()[f.Value]
		return found
	}
	for _, item := range v.Array() {
		if item.String() == f.Value {
			return true
		}
	}
	return false
}

// FilterDataset keeps the rows of candidates matching every filter in spec
// and projects each one onto al, keyed by OutputKey. Values are not
// transformed.
func FilterDataset(candidates gjson.Result, al attrs.AttrList, spec string) []map[string]interface{} {
	filters := BuildFilters(spec)
	keys := resolve(filters, al)

	var rows []map[string]interface{}
	for _, candidate := range candidates.Array() {
		if !matchAll(candidate, filters, keys) {
			continue
		}

		row := make(map[string]interface{}, len(al))
		for _, a := range al {
			row[a.OutputKey] = driller.Driller(candidate.Raw, a.Key).Value()
		}
		rows = append(rows, row)
	}
	return rows
}

// resolve maps each filter key naming an attr's OutputKey to the attr's
// path. Other keys are used as paths into the row.
func resolve(filters []Filter, al attrs.AttrList) []string {
	keys := make([]string, len(filters))
	for i, f := range filters {
		keys[i] = f.Key
		for _, a := range al {
			if strings.EqualFold(a.OutputKey, f.Key) {
				keys[i] = a.Key
				break
			}
		}
	}
	return keys
}

func matchAll(row gjson.Result, filters []Filter, keys []string) bool {
	for i, f := range filters {
		if !f.Match(driller.Driller(row.Raw, keys[i])) {
			return false
		}
	}
	return true
}
