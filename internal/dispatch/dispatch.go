// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/apex/log"
)

// Confirmer asks the user to approve a mutating operation.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Hook adjusts the request before or after the bound parameters are copied
// into it. Return an error to abort the invocation.
type Hook[Req any] func(ctx context.Context, params Params, req *Req) error

// Operation describes one remote operation.
type Operation[Req, Resp any] struct {
	// Name is the remote operation name, e.g. "DeleteNamespace".
	Name string
	// Mutating operations pass through the confirmation gate.
	Mutating bool
	// Required lists parameters expected to be bound. Missing ones are
	// reported, not enforced, unless the invocation is strict.
	Required []string
	// PassThru names the parameter echoed by the legacy pass-thru switch.
	PassThru string
	// Default is the projection used when the caller selects nothing.
	Default Selector
	// Target describes the affected resource in the confirmation prompt.
	Target func(Params) string
	// Bind copies the bound parameters into the request. Absent parameters
	// must leave their request fields unset.
	Bind func(Params, *Req)

	PreLoad  Hook[Req]
	PostLoad Hook[Req]

	// Invoke performs the remote call.
	Invoke func(context.Context, *Req) (*Resp, error)
}

// Input carries everything bound for one invocation.
type Input struct {
	Params Params
	// Select is the caller's custom projection. The zero value means none.
	Select Selector
	// PassThru requests the legacy echo of the operation's PassThru
	// parameter.
	PassThru bool
	Force    bool
	WhatIf   bool
	Strict   bool
	// Endpoint identifies the service endpoint in connectivity errors.
	Endpoint  string
	Confirmer Confirmer
}

// Result is the outcome of an invocation. Exactly one of Output (possibly
// nil), Declined or Err describes it.
type Result struct {
	Output   any
	Response any
	Request  any
	Err      error
	Declined bool
	WhatIf   bool
}

// Invocation is a single, cancellable run of an Operation.
type Invocation[Req, Resp any] struct {
	op Operation[Req, Resp]
	in Input

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped bool
}

// NewInvocation prepares op to run with in.
func NewInvocation[Req, Resp any](op Operation[Req, Resp], in Input) *Invocation[Req, Resp] {
	if in.Params == nil {
		in.Params = Params{}
	}
	return &Invocation[Req, Resp]{op: op, in: in}
}

// Run executes op with in and waits for it to complete.
func Run[Req, Resp any](ctx context.Context, op Operation[Req, Resp], in Input) Result {
	return NewInvocation(op, in).Run(ctx)
}

// Stop cancels the in-flight remote call, if any. Calling Stop before Run
// makes Run fail with a cancellation error.
func (inv *Invocation[Req, Resp]) Stop() {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.stopped = true
	if inv.cancel != nil {
		inv.cancel()
	}
}

// Run executes the invocation. It never panics past this boundary; every
// failure is reported through Result.Err.
func (inv *Invocation[Req, Resp]) Run(ctx context.Context) (res Result) {
	op, in := inv.op, inv.in

	defer func() {
		if r := recover(); r != nil {
			res = Result{Err: fmt.Errorf("%s: internal error: %v", op.Name, r)}
		}
	}()

	// Step 1: Resolve the projection.
	sel, err := resolveSelector(op, in)
	if err != nil {
		return Result{Err: err}
	}
	log.Debugf("selector resolved: op=%s kind=%s sel=%s", op.Name, sel.Kind(), sel)

	// Step 2: Lenient required check.
	if missing := in.Params.missing(op.Required); len(missing) > 0 {
		if in.Strict {
			return Result{Err: &ArgumentError{
				Param: missing[0],
				Msg:   fmt.Sprintf("required by %s", op.Name),
			}}
		}
		log.Warnf("%s: required parameter(s) not set: %s", op.Name, strings.Join(missing, ", "))
	}

	// Step 3: Confirmation gate, unless we're only showing what would happen.
	if op.Mutating && !in.WhatIf && !in.Force {
		ok, err := inv.confirm(ctx)
		if err != nil {
			return Result{Err: err}
		}
		if !ok {
			log.Debugf("declined: op=%s", op.Name)
			return Result{Declined: true}
		}
	}

	// Step 4: Build the request.
	req, err := inv.build(ctx)
	if err != nil {
		return Result{Err: err}
	}

	if op.Mutating && in.WhatIf {
		log.Debugf("what-if: op=%s", op.Name)
		return Result{Output: req, Request: req, WhatIf: true}
	}

	// Step 5: Invoke.
	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	inv.mu.Lock()
	inv.cancel = cancel
	if inv.stopped {
		cancel()
	}
	inv.mu.Unlock()

	log.Debugf("invoking: op=%s endpoint=%s", op.Name, in.Endpoint)
	resp, err := op.Invoke(callCtx, req)
	if err != nil {
		return Result{Request: req, Err: translate(err, op.Name, in.Endpoint)}
	}

	// Step 6: Project.
	out, err := sel.Apply(resp, in.Params)
	if err != nil {
		return Result{Request: req, Response: resp, Err: fmt.Errorf("%s: %w", op.Name, err)}
	}

	return Result{Output: out, Response: resp, Request: req}
}

func (inv *Invocation[Req, Resp]) confirm(ctx context.Context) (bool, error) {
	op, in := inv.op, inv.in
	if in.Confirmer == nil {
		return false, &ArgumentError{Param: "force", Msg: fmt.Sprintf("%s requires confirmation", op.Name)}
	}

	target := ""
	if op.Target != nil {
		target = op.Target(in.Params)
	}
	prompt := fmt.Sprintf("Performing %s", op.Name)
	if target != "" {
		prompt += fmt.Sprintf(" on %q", target)
	}

	ok, err := in.Confirmer.Confirm(ctx, prompt)
	if err != nil {
		return false, fmt.Errorf("%s: confirmation failed: %w", op.Name, err)
	}
	return ok, nil
}

func (inv *Invocation[Req, Resp]) build(ctx context.Context) (*Req, error) {
	op, in := inv.op, inv.in
	req := new(Req)

	if op.PreLoad != nil {
		if err := op.PreLoad(ctx, in.Params, req); err != nil {
			return nil, err
		}
	}
	if op.Bind != nil {
		op.Bind(in.Params, req)
	}
	if op.PostLoad != nil {
		if err := op.PostLoad(ctx, in.Params, req); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// resolveSelector picks the active projection: the custom selector, then the
// legacy pass-thru echo, then the operation default.
func resolveSelector[Req, Resp any](op Operation[Req, Resp], in Input) (Selector, error) {
	custom := !in.Select.IsZero()

	switch {
	case in.PassThru && custom:
		return Selector{}, &ArgumentError{Msg: "pass-thru and select cannot be used together"}
	case custom:
		return in.Select, nil
	case in.PassThru:
		if op.PassThru == "" {
			return Selector{}, &ArgumentError{Param: "pass-thru", Msg: fmt.Sprintf("not supported by %s", op.Name)}
		}
		return Echo(op.PassThru), nil
	case op.Default.IsZero():
		return Whole(), nil
	}
	return op.Default, nil
}
