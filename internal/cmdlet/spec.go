// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cmdlet

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/config"
	"github.com/tfctl/awsctl/internal/confirm"
	"github.com/tfctl/awsctl/internal/dispatch"
	"github.com/tfctl/awsctl/internal/log"
	"github.com/tfctl/awsctl/internal/meta"
	"github.com/tfctl/awsctl/internal/output"
)

// Def is the non-generic part of an operation command.
type Def struct {
	// Name is the command name, e.g. "delete-namespace".
	Name string
	// Op is the remote operation name, e.g. "DeleteNamespace".
	Op       string
	Usage    string
	Mutating bool
	// Required lists flag names expected to be set.
	Required []string
	// PassThru names the flag echoed by --pass-thru.
	PassThru string
	Default  dispatch.Selector
	// Target names the flag describing the affected resource in the
	// confirmation prompt.
	Target string
	Flags  []cli.Flag
}

// Factory creates a service client for a command and reports the endpoint it
// talks to.
type Factory[C any] func(ctx context.Context, cmd *cli.Command) (C, string, error)

// Builder builds the cli.Command of one operation.
type Builder[C any] interface {
	Build(m meta.Meta, ns string, factory Factory[C]) *cli.Command
	Definition() Def
	ResponseType() reflect.Type
}

// Spec binds a Def to an SDK client method. C is the client, O its options
// type.
type Spec[C, O, Req, Resp any] struct {
	Def

	call     func(C, context.Context, *Req, ...func(*O)) (*Resp, error)
	bind     func(dispatch.Params, *Req)
	preLoad  dispatch.Hook[Req]
	postLoad dispatch.Hook[Req]
	pager    *Pager[Req, Resp]
}

// New declares an operation calling call, which is normally a method
// expression such as Client.DeleteDataset.
func New[C, O, Req, Resp any](
	call func(C, context.Context, *Req, ...func(*O)) (*Resp, error),
	def Def,
	bind func(dispatch.Params, *Req),
) *Spec[C, O, Req, Resp] {
	return &Spec[C, O, Req, Resp]{Def: def, call: call, bind: bind}
}

// WithPreLoad runs hook before the bound parameters are copied into the
// request.
func (s *Spec[C, O, Req, Resp]) WithPreLoad(hook dispatch.Hook[Req]) *Spec[C, O, Req, Resp] {
	s.preLoad = hook
	return s
}

// WithPostLoad runs hook after the bound parameters are copied into the
// request.
func (s *Spec[C, O, Req, Resp]) WithPostLoad(hook dispatch.Hook[Req]) *Spec[C, O, Req, Resp] {
	s.postLoad = hook
	return s
}

// WithPager makes the operation fetch every page of a NextToken paginated
// list unless --no-paginate or --next-token is given.
func (s *Spec[C, O, Req, Resp]) WithPager(p Pager[Req, Resp]) *Spec[C, O, Req, Resp] {
	s.pager = &p
	return s
}

// Definition returns the operation's declaration.
func (s *Spec[C, O, Req, Resp]) Definition() Def {
	return s.Def
}

// ResponseType returns the SDK output type of the operation.
func (s *Spec[C, O, Req, Resp]) ResponseType() reflect.Type {
	return reflect.TypeOf((*Resp)(nil)).Elem()
}

// Operation returns the dispatcher operation invoking client.
func (s *Spec[C, O, Req, Resp]) Operation(client C) dispatch.Operation[Req, Resp] {
	op := dispatch.Operation[Req, Resp]{
		Name:     s.Op,
		Mutating: s.Mutating,
		Required: s.Required,
		PassThru: s.PassThru,
		Default:  s.Default,
		Bind:     s.bind,
		PreLoad:  s.preLoad,
		PostLoad: s.postLoad,
		Invoke: func(ctx context.Context, req *Req) (*Resp, error) {
			return s.call(client, ctx, req)
		},
	}
	if s.pager != nil {
		op.Invoke = paginate(op.Invoke, *s.pager)
	}
	if s.Target != "" {
		target := s.Target
		op.Target = func(p dispatch.Params) string {
			if v := p.String(target); v != nil {
				return *v
			}
			return ""
		}
	}
	return op
}

// Build returns the cli.Command for the operation. The client is created
// through factory the first time it is needed.
func (s *Spec[C, O, Req, Resp]) Build(m meta.Meta, ns string, factory Factory[C]) *cli.Command {
	flags := append(append([]cli.Flag{}, s.Flags...), universalFlags(s.Def, s.pager != nil, ns, config.Path())...)
	sort.Slice(flags, func(i, j int) bool {
		return flags[i].Names()[0] < flags[j].Names()[0]
	})

	return &cli.Command{
		Name:  s.Name,
		Usage: s.Usage,
		Metadata: map[string]any{
			"meta":      m,
			"operation": s.Op,
			"mutating":  s.Mutating,
		},
		Flags:  flags,
		Action: s.action(m, newLazy(factory)),
	}
}

func (s *Spec[C, O, Req, Resp]) action(m meta.Meta, client *lazy[C]) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if cmd.Bool("schema") {
			output.DumpSchema("", s.ResponseType(), m.Out())
			return nil
		}

		params := collect(cmd, s.Flags)
		log.Debugf("params bound: op=%s names=%v", s.Op, params.Names())

		in := dispatch.Input{
			Params:    params,
			PassThru:  cmd.Bool("pass-thru"),
			Force:     cmd.Bool("force"),
			WhatIf:    cmd.Bool("what-if"),
			Strict:    strict(cmd),
			Confirmer: confirm.New(m.In(), m.ErrOut(), tui()),
		}
		if cmd.IsSet("select") {
			sel, err := dispatch.ParseSelector(cmd.String("select"))
			if err != nil {
				return err
			}
			in.Select = sel
		}

		c, endpoint, err := client.get(ctx, cmd)
		if err != nil {
			return err
		}
		in.Endpoint = endpoint

		op := s.Operation(c)
		if s.pager != nil && (cmd.Bool("no-paginate") || params.Has("next-token")) {
			op.Invoke = func(ctx context.Context, req *Req) (*Resp, error) {
				return s.call(c, ctx, req)
			}
		}

		res := dispatch.Run(ctx, op, in)
		switch {
		case res.Err != nil:
			return res.Err
		case res.Declined:
			return nil
		}

		return output.Emit(m.Out(), res.Output, cmd)
	}
}

// strict reports whether missing required parameters are fatal. The flag
// wins over the config file.
func strict(cmd *cli.Command) bool {
	if cmd.IsSet("strict") {
		return cmd.Bool("strict")
	}
	b, err := config.GetBool("strict", false)
	if err != nil {
		log.Warnf("ignoring config key strict: %v", err)
		return false
	}
	return b
}

func tui() bool {
	b, err := config.GetBool("confirm.tui", true)
	if err != nil {
		return true
	}
	return b
}

// lazy creates a client once and hands the same one out afterwards.
type lazy[C any] struct {
	factory Factory[C]

	once     sync.Once
	client   C
	endpoint string
	err      error
}

func newLazy[C any](factory Factory[C]) *lazy[C] {
	return &lazy[C]{factory: factory}
}

func (l *lazy[C]) get(ctx context.Context, cmd *cli.Command) (C, string, error) {
	l.once.Do(func() {
		l.client, l.endpoint, l.err = l.factory(ctx, cmd)
		if l.err == nil {
			log.Debugf("client ready: endpoint=%s", l.endpoint)
		}
	})
	return l.client, l.endpoint, l.err
}
