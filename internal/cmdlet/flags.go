// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cmdlet

import (
	"fmt"
	"slices"
	"strings"
	"time"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/dispatch"
	"github.com/tfctl/awsctl/internal/output"
)

// TimeFlag is a string flag holding an RFC3339 timestamp. Its value is bound
// as a time.Time.
type TimeFlag struct {
	*cli.StringFlag
}

// String declares an operation parameter taking a string.
func String(name, usage string) cli.Flag {
	return &cli.StringFlag{Name: name, Usage: usage}
}

// Int32 declares an operation parameter bound to an int32 request field.
// Values outside the int32 range are rejected when the flag is parsed.
func Int32(name, usage string) cli.Flag {
	return &cli.Int32Flag{Name: name, Usage: usage}
}

// Int64 declares an operation parameter bound to an int64 request field.
func Int64(name, usage string) cli.Flag {
	return &cli.Int64Flag{Name: name, Usage: usage}
}

// Bool declares an operation parameter switch.
func Bool(name, usage string) cli.Flag {
	return &cli.BoolFlag{Name: name, Usage: usage}
}

// Strings declares a repeatable operation parameter.
func Strings(name, usage string) cli.Flag {
	return &cli.StringSliceFlag{Name: name, Usage: usage}
}

// Map declares an operation parameter taking key=value pairs.
func Map(name, usage string) cli.Flag {
	return &cli.StringMapFlag{Name: name, Usage: usage}
}

// Time declares an operation parameter taking an RFC3339 timestamp.
func Time(name, usage string) cli.Flag {
	return TimeFlag{&cli.StringFlag{
		Name:  name,
		Usage: usage + " (RFC3339)",
		Validator: func(value string) error {
			if _, err := time.Parse(time.RFC3339, value); err != nil {
				return &dispatch.ArgumentError{Param: name, Msg: "not an RFC3339 timestamp"}
			}
			return nil
		},
	}}
}

// Enum declares an operation parameter restricted to the values of an SDK
// enum type.
func Enum(name, usage string, values []string) cli.Flag {
	return &cli.StringFlag{
		Name:  name,
		Usage: fmt.Sprintf("%s (%s)", usage, strings.Join(values, ", ")),
		Validator: func(value string) error {
			return oneOf(name, value, values)
		},
	}
}

// EnumSlice declares a repeatable operation parameter restricted to the
// values of an SDK enum type.
func EnumSlice(name, usage string, values []string) cli.Flag {
	return &cli.StringSliceFlag{
		Name:  name,
		Usage: fmt.Sprintf("%s (%s)", usage, strings.Join(values, ", ")),
		Validator: func(items []string) error {
			for _, v := range items {
				if err := oneOf(name, v, values); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// EnumValues converts the Values() list of an SDK enum to strings.
func EnumValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func oneOf(name, value string, values []string) error {
	if len(values) == 0 || slices.Contains(values, value) {
		return nil
	}
	return &dispatch.ArgumentError{
		Param: name,
		Msg:   fmt.Sprintf("must be one of %s", strings.Join(values, ", ")),
	}
}

// universalFlags returns the flags every operation command carries, in
// addition to its own parameters.
func universalFlags(def Def, paged bool, ns string, cfgPath string) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  "select",
			Usage: "projection of the response: *, ^param, =expr or a path",
		},
		&cli.BoolFlag{
			Name:    "strict",
			Usage:   "fail instead of warning when required parameters are missing",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AWSCTL_STRICT")),
		},
		nameSpaced(ns, "region", cfgPath, &cli.StringFlag{
			Name:    "region",
			Usage:   "AWS region",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AWS_REGION")),
		}),
		nameSpaced(ns, "profile", cfgPath, &cli.StringFlag{
			Name:    "profile",
			Usage:   "shared config profile",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AWS_PROFILE")),
		}),
		nameSpaced(ns, "endpoint_url", cfgPath, &cli.StringFlag{
			Name:    "endpoint-url",
			Usage:   "override the service endpoint",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AWSCTL_ENDPOINT_URL")),
		}),
		&cli.IntFlag{
			Name:  "max-attempts",
			Usage: "maximum attempts per request, 0 for the SDK default",
			Sources: configSources(
				cli.NewValueSourceChain(cli.EnvVar("AWSCTL_MAX_ATTEMPTS")),
				ns, "max_attempts", cfgPath),
			Validator: func(n int) error {
				if n < 0 {
					return &dispatch.ArgumentError{Param: "max-attempts", Msg: "must not be negative"}
				}
				return nil
			},
		},
		&cli.StringSliceFlag{
			Name:  "header",
			Usage: `extra HTTP header, "Key: Value"`,
		},
	}

	if def.PassThru != "" {
		flags = append(flags, &cli.BoolFlag{
			Name:  "pass-thru",
			Usage: fmt.Sprintf("output the value of --%s instead of the response", def.PassThru),
		})
	}

	if paged {
		flags = append(flags, &cli.BoolFlag{
			Name:  "no-paginate",
			Usage: "fetch a single page instead of every page",
		})
	}

	if def.Mutating {
		flags = append(flags,
			&cli.BoolFlag{
				Name:  "force",
				Usage: "skip the confirmation prompt",
			},
			&cli.BoolFlag{
				Name:  "what-if",
				Usage: "show the request that would be sent and exit",
			},
		)
	}

	return append(flags, output.Flags()...)
}

// nameSpaced adds the namespaced and global config file keys to the flag's
// sources.
func nameSpaced(ns, key, path string, flag *cli.StringFlag) *cli.StringFlag {
	flag.Sources = configSources(flag.Sources, ns, key, path)
	return flag
}

// configSources appends <ns>.<key> and <key> from the config file at path to
// chain. A missing path leaves chain unchanged.
func configSources(chain cli.ValueSourceChain, ns, key, path string) cli.ValueSourceChain {
	if path == "" {
		return chain
	}
	if ns != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(ns+"."+key, altsrc.StringSourcer(path)))
	}
	chain.Chain = append(chain.Chain, yaml.YAML(key, altsrc.StringSourcer(path)))
	return chain
}

// collect binds every operation flag that was set on the command line (or
// from a source) into Params.
func collect(cmd *cli.Command, flags []cli.Flag) dispatch.Params {
	params := dispatch.Params{}
	for _, f := range flags {
		name := f.Names()[0]
		if !cmd.IsSet(name) {
			continue
		}

		switch f.(type) {
		case TimeFlag:
			// Already validated.
			t, _ := time.Parse(time.RFC3339, cmd.String(name))
			params[name] = t
		case *cli.StringFlag:
			params[name] = cmd.String(name)
		case *cli.Int32Flag:
			params[name] = cmd.Int32(name)
		case *cli.Int64Flag:
			params[name] = cmd.Int64(name)
		case *cli.BoolFlag:
			params[name] = cmd.Bool(name)
		case *cli.StringSliceFlag:
			params[name] = cmd.StringSlice(name)
		case *cli.StringMapFlag:
			params[name] = cmd.StringMap(name)
		}
	}
	return params
}
