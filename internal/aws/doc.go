// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws loads AWS SDK v2 configuration for awsctl and constructs the
// service clients the cmdlets call. Every config it returns carries the
// awsctl user agent and a debug log of each outgoing request URL.
package aws
