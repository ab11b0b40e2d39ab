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

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute runs the CLI. Errors already shown to the user as a result line
// wrap errReported and are not printed again.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	return executeApp(ctx, newApp(stdin, stdout, stderr), args)
}

func executeApp(ctx context.Context, a *app, args []string) error {
	root := newRootCmd(a)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
	}
	return err
}
