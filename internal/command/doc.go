// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command assembles the awsctl CLI: one command group per AWS
// service, the global flags, and shell completion.
package command
