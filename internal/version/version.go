// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other awsctl packages to avoid import cycles.

package version

import "runtime/debug"

// Name is the application name reported in help and the SDK user agent.
const Name = "awsctl"

var Version = func() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "(devel)" && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}()

// UserAgent returns the application token appended to SDK requests.
func UserAgent() string {
	return Name + "/" + Version
}
