// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package cognitosync exposes the Amazon Cognito Sync API as awsctl
// commands under "awsctl cognito-sync" (alias "cgs").
package cognitosync
