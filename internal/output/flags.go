// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"
)

// Formats lists the values accepted by --output.
var Formats = []string{"text", "json", "raw", "yaml"}

func validFormat(s string) error {
	if slices.Contains(Formats, s) {
		return nil
	}
	return fmt.Errorf("output %q must be one of %s", s, strings.Join(Formats, ", "))
}

// Flags returns the output shaping flags of an operation command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "output",
			Aliases:   []string{"o"},
			Usage:     "output format (" + strings.Join(Formats, ", ") + ")",
			Value:     "text",
			Sources:   cli.NewValueSourceChain(cli.EnvVar("AWSCTL_OUTPUT")),
			Validator: validFormat,
		},
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "attributes to show, key[:title[:transform]],...",
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "keep rows matching every key<op>value expression",
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "sort rows by attributes, - for descending",
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "print column titles in text output",
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "color text output",
		},
		&cli.BoolFlag{
			Name:    "local",
			Aliases: []string{"l"},
			Usage:   "print timestamps in the local zone",
		},
		&cli.IntFlag{
			Name:   "padding",
			Usage:  "spaces between text columns",
			Value:  2,
			Hidden: true,
			Validator: func(n int) error {
				if n < 0 {
					return fmt.Errorf("padding must not be negative")
				}
				return nil
			},
		},
		&cli.BoolFlag{
			Name:        "schema",
			Usage:       "list the attributes of the response and exit",
			HideDefault: true,
		},
	}
}
