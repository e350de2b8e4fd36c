// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package redshiftserverless

import (
	sdk "github.com/aws/aws-sdk-go-v2/service/redshiftserverless"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/cmdlet"
	"github.com/tfctl/awsctl/internal/dispatch"
)

const flagTagKeys = "tag-keys"

func tagCommands() []cmdlet.Builder[Client] {
	return []cmdlet.Builder[Client]{
		tagResource(),
		untagResource(),
		listTagsForResource(),
	}
}

func tagResource() cmdlet.Builder[Client] {
	return cmdlet.New(Client.TagResource, cmdlet.Def{
		Name:     "tag-resource",
		Op:       "TagResource",
		Usage:    "add or overwrite tags on a resource",
		Mutating: true,
		Required: []string{flagResourceArn, flagTags},
		PassThru: flagResourceArn,
		Target:   flagResourceArn,
		Flags:    []cli.Flag{resourceArnFlag(), tagsFlag()},
	}, func(p dispatch.Params, r *sdk.TagResourceInput) {
		r.ResourceArn = p.String(flagResourceArn)
		r.Tags = tags(p, flagTags)
	})
}

func untagResource() cmdlet.Builder[Client] {
	return cmdlet.New(Client.UntagResource, cmdlet.Def{
		Name:     "untag-resource",
		Op:       "UntagResource",
		Usage:    "remove tags from a resource",
		Mutating: true,
		Required: []string{flagResourceArn, flagTagKeys},
		PassThru: flagResourceArn,
		Target:   flagResourceArn,
		Flags: []cli.Flag{
			resourceArnFlag(),
			cmdlet.Strings(flagTagKeys, "key of a tag to remove"),
		},
	}, func(p dispatch.Params, r *sdk.UntagResourceInput) {
		r.ResourceArn = p.String(flagResourceArn)
		r.TagKeys = p.Strings(flagTagKeys)
	})
}

func listTagsForResource() cmdlet.Builder[Client] {
	return cmdlet.New(Client.ListTagsForResource, cmdlet.Def{
		Name:     "list-tags-for-resource",
		Op:       "ListTagsForResource",
		Usage:    "list the tags of a resource",
		Required: []string{flagResourceArn},
		Default:  dispatch.Field("Tags"),
		Flags:    []cli.Flag{resourceArnFlag()},
	}, func(p dispatch.Params, r *sdk.ListTagsForResourceInput) {
		r.ResourceArn = p.String(flagResourceArn)
	})
}
