// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/apex/log"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

// ArgumentError reports an invalid combination or value of input parameters.
// It is always raised before the remote call is made.
type ArgumentError struct {
	Param string
	Msg   string
}

func (e *ArgumentError) Error() string {
	if e.Param == "" {
		return e.Msg
	}
	return fmt.Sprintf("invalid argument %q: %s", e.Param, e.Msg)
}

// EndpointError is a connectivity failure rewrapped with the operation and the
// endpoint that could not be reached. The cause remains reachable through
// errors.Is and errors.As.
type EndpointError struct {
	Operation string
	Endpoint  string
	Err       error
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("%s: unable to reach endpoint %s: %v",
		nonEmpty(e.Operation, "request"), nonEmpty(e.Endpoint, "<unknown>"), e.Err)
}

func (e *EndpointError) Unwrap() error { return e.Err }

// translate converts an error returned by the remote call. Name resolution
// and connection failures are rewrapped as *EndpointError. Everything else is
// returned unchanged so callers can still inspect the SDK's typed errors.
func translate(err error, operation string, endpoint string) error {
	if err == nil {
		return nil
	}

	if isConnectivity(err) {
		log.Debugf("connectivity failure: op=%s endpoint=%s err=%v", operation, endpoint, err)
		return &EndpointError{Operation: operation, Endpoint: endpoint, Err: err}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		log.Debugf("api error: op=%s code=%s fault=%s", operation, apiErr.ErrorCode(), apiErr.ErrorFault())
	}

	return err
}

// isConnectivity reports whether err stems from failing to resolve or connect
// to the endpoint, as opposed to an error returned by the service.
func isConnectivity(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}

	// The SDK wraps transport failures in a RequestSendError. A bare one
	// without a net cause (e.g. a cancelled context) is not a connectivity
	// problem.
	var sendErr *smithyhttp.RequestSendError
	if errors.As(err, &sendErr) {
		var netErr net.Error
		return errors.As(sendErr.Err, &netErr) &&
			!errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}

	return false
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
