// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitosync"
	"github.com/aws/aws-sdk-go-v2/service/redshiftserverless"

	"github.com/tfctl/awsctl/internal/log"
)

// Endpoint prefixes of the wrapped services.
const (
	CognitoSyncPrefix        = "cognito-sync"
	RedshiftServerlessPrefix = "redshift-serverless"
)

// NewCognitoSync constructs a Cognito Sync client from the provided config.
// Additional service options can be supplied via optFns.
func NewCognitoSync(cfg awsv2.Config, optFns ...func(*cognitosync.Options)) *cognitosync.Client {
	client := cognitosync.NewFromConfig(cfg, optFns...)
	log.Debugf("cognito-sync client created: region=%s", cfg.Region)
	return client
}

// NewRedshiftServerless constructs a Redshift Serverless client from the
// provided config. Additional service options can be supplied via optFns.
func NewRedshiftServerless(cfg awsv2.Config, optFns ...func(*redshiftserverless.Options)) *redshiftserverless.Client {
	client := redshiftserverless.NewFromConfig(cfg, optFns...)
	log.Debugf("redshift-serverless client created: region=%s", cfg.Region)
	return client
}

// Endpoint names the endpoint a client built from cfg talks to, for use in
// diagnostics. An explicit base endpoint wins; otherwise the standard
// regional endpoint is assumed.
func Endpoint(prefix string, cfg awsv2.Config) string {
	if cfg.BaseEndpoint != nil && *cfg.BaseEndpoint != "" {
		return *cfg.BaseEndpoint
	}
	if cfg.Region == "" {
		return fmt.Sprintf("https://%s.amazonaws.com", prefix)
	}
	return fmt.Sprintf("https://%s.%s.amazonaws.com", prefix, cfg.Region)
}
