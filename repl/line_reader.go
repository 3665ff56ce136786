package repl

import (
	"bufio"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/reusee/taicalc/calcconfigs"
	"github.com/reusee/taicalc/logs"
	"github.com/reusee/taicalc/modes"
	"golang.org/x/term"
)

type LineReader interface {
	// Readline returns io.EOF or readline.ErrInterrupt when the user is done.
	Readline() (string, error)
	Close() error
}

var _ LineReader = new(readline.Instance)

// Terminal reports whether lines come from a user at a terminal rather than a pipe.
type Terminal bool

func (Module) Terminal(
	mode modes.Mode,
	input Input,
) Terminal {
	return Terminal(mode.Interactive() &&
		input == Input(os.Stdin) &&
		term.IsTerminal(int(os.Stdin.Fd())))
}

type NewLineReader func() (LineReader, error)

func (Module) NewLineReader(
	terminal Terminal,
	input Input,
	output Output,
	prompt calcconfigs.Prompt,
	historyFile calcconfigs.HistoryFile,
	logger logs.Logger,
) NewLineReader {
	return func() (LineReader, error) {
		if terminal {
			logger.Debug("readline",
				"history", historyFile,
			)
			rl, err := readline.NewEx(&readline.Config{
				Prompt:      string(prompt),
				HistoryFile: string(historyFile),
				Stdout:      output,
			})
			if err != nil {
				return nil, wrap(err)
			}
			return rl, nil
		}
		// piped input, no prompt
		scanner := bufio.NewScanner(input)
		scanner.Buffer(make([]byte, 0, 4096), 1<<20)
		return &scannerLineReader{
			scanner: scanner,
		}, nil
	}
}

type scannerLineReader struct {
	scanner *bufio.Scanner
}

func (s *scannerLineReader) Readline() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (s *scannerLineReader) Close() error {
	return nil
}
