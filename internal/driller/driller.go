// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// step is one dot separated element of a path, e.g. "VpcEndpoints[0]".
type step struct {
	key   string
	index int  // -1 when the step has no index
	all   bool // [*]
}

// parse splits path into steps. ok is false when a step is not a plain key
// with an optional [n] or [*] suffix.
func parse(path string) (steps []step, ok bool) {
	for _, seg := range strings.Split(path, ".") {
		s := step{key: seg, index: -1}
		if open := strings.IndexByte(seg, '['); open >= 0 {
			if !strings.HasSuffix(seg, "]") {
				return nil, false
			}
			s.key = seg[:open]
			switch idx := seg[open+1 : len(seg)-1]; idx {
			case "*":
				s.all = true
			case "":
			default:
				n, err := strconv.Atoi(idx)
				if err != nil || n < 0 {
					return nil, false
				}
				s.index = n
			}
		}
		if !validKey(s.key) {
			return nil, false
		}
		steps = append(steps, s)
	}
	return steps, true
}

func validKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

// Driller returns the value at path in doc, e.g.
// "Endpoint.VpcEndpoints[0].VpcEndpointId". A list holding one element is
// unwrapped unless the step ends in [*]. Keys match exactly first and then
// ignoring case. A bad path or a missing value gives an empty Result.
func Driller(doc string, path string) gjson.Result {
	steps, ok := parse(path)
	if !ok {
		return gjson.Result{}
	}

	cur := gjson.Parse(doc)
	for _, s := range steps {
		cur = member(cur, s.key)
		if !cur.IsArray() || s.all {
			continue
		}

		items := cur.Array()
		switch {
		case s.index >= len(items):
			return gjson.Result{}
		case s.index >= 0:
			cur = items[s.index]
		case len(items) == 1:
			cur = items[0]
		}
	}
	return cur
}

func member(obj gjson.Result, key string) gjson.Result {
	if v := obj.Get(gjson.Escape(key)); v.Exists() || !obj.IsObject() {
		return v
	}

	var v gjson.Result
	obj.ForEach(func(k, val gjson.Result) bool {
		if strings.EqualFold(k.String(), key) {
			v = val
			return false
		}
		return true
	})
	return v
}
