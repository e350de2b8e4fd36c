// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller resolves the dot paths used by --attrs and --filter
// against the JSON form of a response row.
package driller
