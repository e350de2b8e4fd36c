// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cmdlet

import (
	"context"

	"github.com/tfctl/awsctl/internal/log"
)

// Pager describes how a list operation is paginated.
type Pager[Req, Resp any] struct {
	// SetToken stores the token of the next page in the request.
	SetToken func(*Req, *string)
	// Token returns the token of the page after resp, or nil.
	Token func(*Resp) *string
	// Merge appends the items of page to into and copies its token.
	Merge func(into, page *Resp)
}

// paginate wraps call so that it follows tokens until the last page and
// returns a single merged response. A token seen before ends the walk, so a
// service cycling through tokens cannot loop forever.
func paginate[Req, Resp any](
	call func(context.Context, *Req) (*Resp, error),
	p Pager[Req, Resp],
) func(context.Context, *Req) (*Resp, error) {
	return func(ctx context.Context, req *Req) (*Resp, error) {
		var acc *Resp
		seen := map[string]struct{}{}

		for page := 1; ; page++ {
			resp, err := call(ctx, req)
			if err != nil {
				return nil, err
			}
			if acc == nil {
				acc = resp
			} else {
				p.Merge(acc, resp)
			}

			next := p.Token(resp)
			if next == nil || *next == "" {
				log.Debugf("pagination done: pages=%d", page)
				return acc, nil
			}
			if _, ok := seen[*next]; ok {
				log.Warnf("pagination stopped: token repeated after %d pages", page)
				return acc, nil
			}
			seen[*next] = struct{}{}

			r := *req
			p.SetToken(&r, next)
			req = &r
		}
	}
}
