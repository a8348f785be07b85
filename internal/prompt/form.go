package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	oerrors "github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/errors"
)

// FormPrompter asks each question as an interactive huh input field.
// It is used when stdin is a terminal.
type FormPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewFormPrompter creates a FormPrompter on the given terminal streams.
func NewFormPrompter(in io.Reader, out io.Writer) *FormPrompter {
	return &FormPrompter{in: in, out: out}
}

// Ask runs a single-field form. The field starts pre-filled with the
// default; huh keeps the form open until Validate accepts the value.
func (p *FormPrompter) Ask(ctx context.Context, q Question) (string, error) {
	value := q.Default

	input := huh.NewInput().
		Key(q.Key).
		Title(q.Message).
		Value(&value)
	if q.Validate != nil {
		input = input.Validate(func(s string) error {
			if s == "" {
				s = q.Default
			}
			return q.Validate(s)
		})
	}

	form := huh.NewForm(huh.NewGroup(input)).
		WithInput(p.in).
		WithOutput(p.out).
		WithShowHelp(false)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return "", fmt.Errorf("%s: %w", q.Key, oerrors.ErrAborted)
		}
		return "", fmt.Errorf("%s: %w", q.Key, err)
	}

	if value == "" {
		value = q.Default
	}
	return value, nil
}
