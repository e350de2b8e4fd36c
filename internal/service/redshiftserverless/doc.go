// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package redshiftserverless exposes the Amazon Redshift Serverless API as
// awsctl commands under "awsctl redshift-serverless" (alias "rss").
//
// Commands are grouped by resource: namespaces, workgroups, snapshots,
// endpoint access, recovery points, usage limits, resource policies and tags.
// List commands fetch every page unless --no-paginate or --next-token is
// given.
package redshiftserverless
