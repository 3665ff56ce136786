package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/taicalc/calc"
	"github.com/reusee/taicalc/calcconfigs"
	"github.com/reusee/taicalc/debugs"
	"github.com/reusee/taicalc/logs"
)

type Stats struct {
	Evaluated int
	Failed    int
}

// Run reads lines until the input ends, printing a result or an error for each.
// Evaluation errors are printed and do not stop the loop.
type Run func(ctx context.Context) (Stats, error)

func (Module) Run(
	newLineReader NewLineReader,
	output Output,
	showAST calcconfigs.ShowAST,
	logger logs.Logger,
	newSpan logs.NewSpan,
	tap debugs.Tap,
	terminal Terminal,
) Run {
	return func(ctx context.Context) (stats Stats, err error) {
		reader, err := newLineReader()
		if err != nil {
			return stats, err
		}
		defer reader.Close()

		s := &session{
			output:   output,
			showAST:  bool(showAST),
			logger:   logger,
			tap:      tap,
			terminal: bool(terminal),
		}

		for {
			if err := ctx.Err(); err != nil {
				return s.stats, err
			}

			line, err := reader.Readline()
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return s.stats, nil
			}
			if err != nil {
				return s.stats, wrap(err)
			}
			if strings.TrimSpace(line) == "" {
				continue
			}

			lineCtx, _ := newSpan(ctx, "")
			if strings.HasPrefix(strings.TrimSpace(line), ".") {
				s.command(lineCtx, strings.TrimSpace(line))
				continue
			}
			s.evaluate(lineCtx, line)
		}
	}
}

type session struct {
	output   io.Writer
	showAST  bool
	logger   logs.Logger
	tap      debugs.Tap
	terminal bool

	stats   Stats
	last    *big.Int
	history []string
	errors  []error
}

func (s *session) evaluate(ctx context.Context, line string) {
	s.logger.DebugContext(ctx, "evaluate", "input", line)
	s.history = append(s.history, line)
	s.stats.Evaluated++

	if s.showAST {
		if node, err := calc.Parse(line); err == nil {
			fmt.Fprintf(s.output, "%s\n", node)
		}
	}

	res, err := calc.Evaluate(line)
	if err != nil {
		s.fail(ctx, line, err)
		return
	}
	s.last = res
	fmt.Fprintf(s.output, "%s\n", res)
}

func (s *session) fail(ctx context.Context, line string, err error) {
	s.stats.Failed++
	s.errors = append(s.errors, err)
	s.logger.DebugContext(ctx, "evaluate failed",
		"error", logs.WrapSpan(ctx, err),
	)
	fmt.Fprintf(s.output, "error: %v\n", calc.WithSource(err, line))
}

const helpText = `expressions: integers, + - * / and parentheses; / truncates toward zero
.ast <expr>     print the parsed tree
.tokens <expr>  print the tokens and evaluate them
.tap            inspect the session in a starlark REPL
.help           print this help`

func (s *session) command(ctx context.Context, line string) {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {

	case ".help":
		fmt.Fprintln(s.output, helpText)

	case ".ast":
		node, err := calc.Parse(arg)
		if err != nil {
			s.fail(ctx, arg, err)
			return
		}
		fmt.Fprintf(s.output, "%s\n", node)

	case ".tokens":
		tokens, err := calc.Tokenize(arg)
		if err != nil {
			s.fail(ctx, arg, err)
			return
		}
		strs := make([]string, 0, len(tokens))
		for _, token := range tokens {
			strs = append(strs, token.String())
		}
		fmt.Fprintf(s.output, "%s\n", strings.Join(strs, " "))

		// evaluate the printed tokens, not a second scan of the text
		evaluator, err := calc.NewEvaluator(calc.NewSliceTokenSource(tokens))
		if err != nil {
			s.fail(ctx, arg, err)
			return
		}
		res, err := evaluator.Run()
		if err != nil {
			s.fail(ctx, arg, err)
			return
		}
		fmt.Fprintf(s.output, "%s\n", res)

	case ".tap":
		// the starlark REPL reads stdin itself
		if !s.terminal {
			fmt.Fprintln(s.output, "error: .tap needs an interactive terminal")
			return
		}
		s.tap(ctx, "session", s.globals())

	default:
		fmt.Fprintf(s.output, "error: unknown command %s, try .help\n", name)

	}
}

func (s *session) globals() map[string]any {
	return map[string]any{
		"last":    s.last,
		"history": s.history,
		"errors":  s.errors,
		"stats":   s.stats,
		"eval": func(text string) (string, error) {
			res, err := calc.Evaluate(text)
			if err != nil {
				return "", err
			}
			return res.String(), nil
		},
	}
}
