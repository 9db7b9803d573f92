package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const banner = "Financial Report Generator\nEnter commands (type 'exit' to quit):\n\n"

// REPL reads commands line by line and hands them to a Processor.
type REPL struct {
	processor *Processor
	in        io.Reader
	out       io.Writer
	prompt    string
}

func NewREPL(processor *Processor, in io.Reader, out io.Writer) *REPL {
	return &REPL{processor: processor, in: in, out: out, prompt: "> "}
}

// Run loops until "exit", end of input or ctx cancellation. Commands run
// one at a time on the calling goroutine; only reading happens elsewhere,
// so a blocked read does not keep a cancelled session alive.
func (r *REPL) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprint(r.out, banner)

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		br := bufio.NewReader(r.in)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				select {
				case lines <- strings.TrimRight(line, "\r\n"):
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					readErr <- err
				}
				return
			}
		}
	}()

	for {
		fmt.Fprint(r.out, r.prompt)

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(r.out)
			select {
			case err := <-readErr:
				return err
			default:
				return nil
			}
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(line), "exit") {
			return nil
		}
		r.processor.ProcessCommand(ctx, line)
	}
}
