// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package cmdlet turns declarative operation specs into urfave/cli commands.
// A Spec pairs one SDK client method with its flags, required parameters and
// default projection. Service groups its specs under one parent command that
// shares a lazily created client.
package cmdlet
