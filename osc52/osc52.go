// Package osc52 copies text to the system clipboard by writing an OSC 52
// escape sequence to the terminal. The terminal emulator performs the copy,
// so it also works over SSH.
package osc52

import (
	"errors"
	"fmt"
	"io"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/fwojciec/docconv"
)

var _ docconv.Clipboard = (*Clipboard)(nil)

// ErrTooLarge indicates text longer than the configured limit.
var ErrTooLarge = errors.New("text exceeds clipboard limit")

// Clipboard writes copy requests to a terminal.
type Clipboard struct {
	w     io.Writer
	mode  osc52.Mode
	limit int
}

// Option configures a Clipboard.
type Option func(*Clipboard)

// WithTmux wraps the sequence in tmux passthrough. tmux needs
// "allow-passthrough on".
func WithTmux() Option {
	return func(c *Clipboard) {
		c.mode = osc52.TmuxMode
	}
}

// WithScreen wraps the sequence in a DCS string for GNU screen.
func WithScreen() Option {
	return func(c *Clipboard) {
		c.mode = osc52.ScreenMode
	}
}

// WithLimit rejects text longer than n bytes. Zero disables the limit.
func WithLimit(n int) Option {
	return func(c *Clipboard) {
		c.limit = max(n, 0)
	}
}

// New returns a Clipboard writing to w, usually the controlling terminal.
func New(w io.Writer, opts ...Option) *Clipboard {
	c := &Clipboard{w: w, mode: osc52.DefaultMode}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Copy places text on the system clipboard.
func (c *Clipboard) Copy(text string) error {
	if text == "" {
		return fmt.Errorf("copy: %w", docconv.ErrEmptyInput)
	}
	if c.limit > 0 && len(text) > c.limit {
		return fmt.Errorf("copy %d bytes: %w", len(text), ErrTooLarge)
	}
	seq := osc52.New(text).Mode(c.mode)
	if _, err := seq.WriteTo(c.w); err != nil {
		return fmt.Errorf("writing clipboard sequence: %w", err)
	}
	return nil
}
