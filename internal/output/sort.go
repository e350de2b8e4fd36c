// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"cmp"
	"slices"
	"strings"
)

type sortKey struct {
	name       string
	descending bool
	exact      bool
}

func parseSortKeys(spec string) []sortKey {
	var keys []sortKey
	for _, f := range strings.Split(spec, ",") {
		f = strings.TrimSpace(f)
		k := sortKey{}
		f, k.descending = strings.CutPrefix(f, "-")
		k.name, k.exact = strings.CutPrefix(f, "!")
		if k.name != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// SortDataset orders rows by the comma separated --sort spec. A leading -
// sorts descending and a leading ! compares text case-sensitively. Numbers
// compare numerically, anything else as text. Rows missing a key sort after
// the rest in either direction.
func SortDataset(rows []map[string]interface{}, spec string) {
	keys := parseSortKeys(spec)
	if len(keys) == 0 {
		return
	}

	slices.SortStableFunc(rows, func(a, b map[string]interface{}) int {
		for _, k := range keys {
			if c := k.compare(a[k.name], b[k.name]); c != 0 {
				return c
			}
		}
		return 0
	})
}

func (k sortKey) compare(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	var c int
	an, aNum := a.(float64)
	bn, bNum := b.(float64)
	if aNum && bNum {
		c = cmp.Compare(an, bn)
	} else {
		as, bs := InterfaceToString(a), InterfaceToString(b)
		if !k.exact {
			as, bs = strings.ToLower(as), strings.ToLower(bs)
		}
		c = strings.Compare(as, bs)
	}

	if k.descending {
		return -c
	}
	return c
}
