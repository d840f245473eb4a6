// Package console drives a chronometer from line oriented text commands.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"

	"github.com/nowlow/chronometer"
)

// ErrUnknownCommand is reported for input lines that are not a command.
var ErrUnknownCommand = errors.New("unknown command")

const help = `commands:
  start   start or resume counting
  pause   stop counting, keeping the elapsed time
  lap     record the time elapsed since the last start
  reset   discard all elapsed time and laps
  show    print the elapsed milliseconds
  laps    print the recorded laps in milliseconds
  debug   print a diagnostic summary
  help    print this text
  quit    leave
`

// Console reads commands and applies them to a shared chronometer.
type Console struct {
	Chronometer *chronometer.Guarded
	Log         logr.Logger
	Prompt      string
}

type line struct {
	text string
	err  error
}

// Run processes commands from in until EOF, a quit command or cancellation of
// ctx. Only read and write failures are returned.
func (c *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := make(chan line)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		s := bufio.NewScanner(in)
		for s.Scan() {
			select {
			case lines <- line{text: s.Text()}:
			case <-done:
				return
			}
		}
		if err := s.Err(); err != nil {
			select {
			case lines <- line{err: err}:
			case <-done:
			}
		}
	}()

	for {
		if err := c.prompt(out); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			c.Log.V(1).Info("console cancelled")
			return nil
		case l, ok := <-lines:
			if !ok {
				c.Log.V(1).Info("console input closed")
				return nil
			}
			if l.err != nil {
				return fmt.Errorf("reading command: %w", l.err)
			}

			quit, err := c.Execute(l.text, out)
			if errors.Is(err, ErrUnknownCommand) {
				c.Log.Info("ignoring input", "line", l.text)
				if _, err = fmt.Fprintln(out, err); err != nil {
					return err
				}
			} else if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

func (c *Console) prompt(out io.Writer) error {
	if c.Prompt == "" {
		return nil
	}
	_, err := io.WriteString(out, c.Prompt)
	return err
}

// Execute applies a single command line. quit is set when the line asks to
// leave. Blank lines are ignored.
func (c *Console) Execute(cmdline string, out io.Writer) (quit bool, err error) {
	cmd := strings.ToLower(strings.TrimSpace(cmdline))
	switch cmd {
	case "":
	case "start":
		c.Chronometer.Start()
	case "pause":
		c.Chronometer.Pause()
	case "lap":
		c.Chronometer.Lap()
	case "reset":
		c.Chronometer.Reset()
	case "show":
		_, err = fmt.Fprintln(out, c.Chronometer.String())
	case "laps":
		for i, lap := range c.Chronometer.Snapshot().Laps {
			if _, err = fmt.Fprintf(out, "%d: %d\n", i+1, lap.Milliseconds()); err != nil {
				return false, err
			}
		}
	case "debug":
		_, err = fmt.Fprintln(out, c.Chronometer.GoString())
	case "help":
		_, err = io.WriteString(out, help)
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
	return false, err
}
