// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders operation results. It owns the output shaping flags
// (--output, --attrs, --filter, --sort, --titles, --color, --local, --schema)
// and turns a projected response into a text table, JSON, YAML or raw JSON.
package output
