package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	oerrors "github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/errors"
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/output"
)

// LinePrompter asks questions over a plain line-oriented stream.
// It is used when stdin is not a terminal.
//
// A LinePrompter is also an io.Reader over the rest of its input, so that
// bytes buffered past the last answer still reach whoever reads stdin next.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer

	// pending carries the result of a read still in flight after the
	// context of the Ask that started it was cancelled.
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// NewLinePrompter creates a LinePrompter reading answers from in and
// writing questions to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Ask writes the question, reads one line and re-asks until the answer
// validates. End of input cancels the session.
func (p *LinePrompter) Ask(ctx context.Context, q Question) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("%s: %w", q.Key, oerrors.ErrAborted)
		}

		fmt.Fprint(p.out, formatQuestion(q))

		line, err := p.readLine(ctx)
		if ctx.Err() != nil {
			fmt.Fprintln(p.out)
			return "", fmt.Errorf("%s: %w", q.Key, oerrors.ErrAborted)
		}
		if err != nil && (err != io.EOF || line == "") {
			fmt.Fprintln(p.out)
			if err == io.EOF {
				return "", fmt.Errorf("%s: input closed: %w", q.Key, oerrors.ErrAborted)
			}
			return "", fmt.Errorf("%s: reading answer: %w", q.Key, err)
		}

		answer := strings.TrimSpace(line)
		if answer == "" {
			answer = q.Default
		}

		if q.Validate != nil {
			if verr := q.Validate(answer); verr != nil {
				fmt.Fprintf(p.out, ">> %s\n", verr.Error())
				output.Debug("answer rejected", "question", q.Key, "answer", answer)
				continue
			}
		}

		return answer, nil
	}
}

// readLine reads one line without blocking past ctx. A read interrupted by
// cancellation stays pending and its line is returned by the next call.
func (p *LinePrompter) readLine(ctx context.Context) (string, error) {
	if p.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		p.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-p.pending:
		p.pending = nil
		return r.line, r.err
	}
}

// Read reads input left over after the answers. It must not be called
// while Ask is running.
func (p *LinePrompter) Read(b []byte) (int, error) {
	if p.pending != nil {
		r := <-p.pending
		p.pending = nil
		if r.line != "" {
			n := copy(b, r.line)
			if n < len(r.line) {
				p.in = bufio.NewReader(io.MultiReader(strings.NewReader(r.line[n:]), p.in))
			}
			return n, nil
		}
		if r.err != nil {
			return 0, r.err
		}
	}
	return p.in.Read(b)
}

func formatQuestion(q Question) string {
	s := "? " + q.Message
	if q.Default != "" {
		s += " (" + q.Default + ")"
	}
	return s + " "
}
