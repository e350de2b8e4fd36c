// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package log configures apex/log for awsctl and provides thin leveled
// helpers, including a trace level below debug.
package log
