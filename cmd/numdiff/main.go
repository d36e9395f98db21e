// Command numdiff compares pairs of numeric text files and reports the
// numbers that are not approximately equal.
//
//	numdiff [flags] LEFT RIGHT [LEFT RIGHT ...]
//
// It exits with 0 when every pair matches, 1 when there are mismatches and
// 2 when the files could not be compared.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
