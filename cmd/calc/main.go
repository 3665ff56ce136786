package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/taicalc/calc"
	"github.com/reusee/taicalc/calcconfigs"
	"github.com/reusee/taicalc/cmds"
	"github.com/reusee/taicalc/logs"
	"github.com/reusee/taicalc/modes"
	"github.com/reusee/taicalc/repl"
)

// expr is set by -e; an empty expression still counts and fails to evaluate.
var expr struct {
	text string
	set  bool
}

func init() {
	cmds.Define("-e", cmds.Func(func(text string) {
		expr.text = text
		expr.set = true
	}).Desc("evaluate an expression and exit"))
}

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		cmds.PrintUsage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var exitCode int
	scope.Call(func(
		logger logs.Logger,
		run repl.Run,
		showAST calcconfigs.ShowAST,
	) {
		if expr.set {
			if err := evalOnce(os.Stdout, expr.text, bool(showAST)); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				exitCode = 1
			}
			return
		}

		stats, err := run(ctx)
		logger.Info("session end",
			"evaluated", stats.Evaluated,
			"failed", stats.Failed,
		)
		if err != nil && ctx.Err() == nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			exitCode = 1
		}
	})

	stop()
	os.Exit(exitCode)
}

func evalOnce(w io.Writer, expr string, showAST bool) error {
	if showAST {
		node, err := calc.Parse(expr)
		if err != nil {
			return calc.WithSource(err, expr)
		}
		fmt.Fprintf(w, "%s\n", node)
	}
	res, err := calc.Evaluate(expr)
	if err != nil {
		return calc.WithSource(err, expr)
	}
	fmt.Fprintf(w, "%s\n", res)
	return nil
}
