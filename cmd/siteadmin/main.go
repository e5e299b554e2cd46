// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// siteadmin edits the site settings held by the config store.
//
// Usage:
//
//	siteadmin show [--format text|json|yaml]
//	siteadmin set --default-role knight --max-emails 25
//	siteadmin domains add example.org
//	siteadmin export -o settings.yaml
//	siteadmin apply -f settings.yaml --watch
//
// Exit codes:
//   - 0: success
//   - 1: the operation failed (store error, rejected domain, bad snapshot)
//   - 2: usage error (unknown command or flag, invalid flag value)
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintln(stderr, "Run 'siteadmin --help' for usage.")
		return exitUsage
	}
	return exitFailure
}

// usageError marks errors caused by how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}
