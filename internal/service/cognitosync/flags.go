// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cognitosync

import (
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/cmdlet"
)

// Flag names shared by several operations.
const (
	flagPool     = "identity-pool-id"
	flagIdentity = "identity-id"
	flagDataset  = "dataset-name"
	flagDevice   = "device-id"
	flagMax      = "max-results"
	flagToken    = "next-token"
)

func poolFlag() cli.Flag {
	return cmdlet.String(flagPool, "identity pool id, e.g. us-east-1:23EC4050-6AEA-7089-A2DD-08002EXAMPLE")
}

func identityFlag() cli.Flag {
	return cmdlet.String(flagIdentity, "identity id")
}

// datasetFlags identify one dataset of one identity.
func datasetFlags(extra ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		poolFlag(),
		identityFlag(),
		cmdlet.String(flagDataset, "dataset name"),
	}, extra...)
}

// pageFlags are the paging controls of list operations.
func pageFlags(extra ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		cmdlet.Int32(flagMax, "maximum number of results per page"),
		cmdlet.String(flagToken, "token of the page to fetch"),
	}, extra...)
}
