// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/kballard/go-shellquote"

	"github.com/tfctl/awsctl/internal/command"
	"github.com/tfctl/awsctl/internal/config"
	"github.com/tfctl/awsctl/internal/log"
	"github.com/tfctl/awsctl/internal/version"
)

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) ([]string, error) {
	if len(args) > 1 && args[1] == "completion" {
		// Short-circuit completion: pass args directly.
		return args, nil
	}
	return processSetOnly(args, lookupSet)
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(ctx context.Context, args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI
	// handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		var err error
		if args, err = processCommandArgs(args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		log.Debugf("args after set processing: args=%v", args)
	}

	return initAndRunApp(ctx, args)
}

// lookupSet returns the argument set stored under <service>.<set>, where
// service is the canonical service name even when an alias was typed. A set
// is either a list of strings or a single string, each split with shell
// quoting rules.
func lookupSet(service, set string) ([]string, error) {
	key := command.ServiceName(service) + "." + set

	entries, err := config.GetStringSlice(key)
	if err != nil {
		return nil, fmt.Errorf("argument set @%s not found in config: %w", set, err)
	}

	var out []string
	for _, e := range entries {
		words, err := shellquote.Split(e)
		if err != nil {
			return nil, fmt.Errorf("argument set @%s: %w", set, err)
		}
		out = append(out, words...)
	}
	return out, nil
}

// processSetOnly expands the first @set argument after the service name in
// place.
func processSetOnly(args []string, lookup func(service, set string) ([]string, error)) ([]string, error) {
	if len(args) < 3 {
		return args, nil
	}

	for i := 2; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "@") || len(a) == 1 {
			continue
		}

		words, err := lookup(args[1], a[1:])
		if err != nil {
			return nil, err
		}

		out := make([]string, 0, len(args)-1+len(words))
		out = append(out, args[:i]...)
		out = append(out, words...)
		return append(out, args[i+1:]...), nil
	}

	return args, nil
}
