// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package confirm asks the user to approve mutating operations. On a
// terminal it runs a small Bubble Tea prompt; otherwise it reads one answer
// line from the input stream.
package confirm
