// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"fmt"
	"strings"

	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/tfctl/awsctl/internal/log"
)

const httpHeaderBoundary = ": "

// NewHTTPHeaderAPIOptions returns a slice of middleware options that adds the
// specified HTTP headers to an API request. Each header should be of the
// format `Header-Key: Header-Value`, the same way curl's -H takes them.
func NewHTTPHeaderAPIOptions(headers []string) ([]func(*middleware.Stack) error, error) {
	var opts []func(*middleware.Stack) error
	for _, header := range headers {
		boundary := strings.Index(header, httpHeaderBoundary)
		if boundary <= 0 {
			return nil, fmt.Errorf("malformed HTTP header: '%s'", header)
		}
		key := header[:boundary]
		val := header[boundary+len(httpHeaderBoundary):]
		opts = append(opts, smithyhttp.AddHeaderValue(key, val))
	}
	return opts, nil
}

// userAgentMiddleware appends token to the User-Agent the SDK computed.
func userAgentMiddleware(token string) middleware.BuildMiddleware {
	return middleware.BuildMiddlewareFunc("AwsctlUserAgent", func(
		ctx context.Context, input middleware.BuildInput, next middleware.BuildHandler,
	) (middleware.BuildOutput, middleware.Metadata, error) {
		if req, ok := input.Request.(*smithyhttp.Request); ok {
			ua := req.Header.Get("User-Agent")
			if ua == "" {
				ua = token
			} else {
				ua += " " + token
			}
			req.Header.Set("User-Agent", ua)
		}
		return next.HandleBuild(ctx, input)
	})
}

// requestLogMiddleware logs the resolved URL of every outgoing request at
// debug level.
func requestLogMiddleware() middleware.FinalizeMiddleware {
	return middleware.FinalizeMiddlewareFunc("AwsctlRequestLog", func(
		ctx context.Context, input middleware.FinalizeInput, next middleware.FinalizeHandler,
	) (middleware.FinalizeOutput, middleware.Metadata, error) {
		if req, ok := input.Request.(*smithyhttp.Request); ok && req.URL != nil {
			log.Debugf("request: service=%s op=%s method=%s url=%s",
				awsmiddleware.GetServiceID(ctx), awsmiddleware.GetOperationName(ctx), req.Method, req.URL)
		}
		return next.HandleFinalize(ctx, input)
	})
}
