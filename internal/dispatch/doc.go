// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package dispatch runs exactly one remote operation per invocation. It owns
// the pipeline shared by every awsctl operation: selector resolution, lenient
// required-parameter checks, the confirmation gate, request construction from
// the bound parameters, the remote call, output projection and error
// translation. It has no knowledge of the CLI; callers hand it a Params bag
// and closures describing the operation.
package dispatch
