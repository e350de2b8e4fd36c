// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for awsctl's user
// configuration. The configuration is a YAML document located either at
// $AWSCTL_CFG_FILE or in the user's configuration directory:
//   - Linux: $XDG_CONFIG_HOME/awsctl.yaml or $HOME/.config/awsctl.yaml
//   - macOS: $HOME/Library/Application Support/awsctl.yaml
//   - Windows: %APPDATA%/awsctl.yaml
//
// Keys may be namespaced by service command name, e.g.
//
//	region: us-east-1
//	redshift-serverless:
//	  region: eu-west-1
//	  defaults: ["--output json"]
package config
