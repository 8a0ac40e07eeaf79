// Package console is the thin transport shim used when the assistant is
// driven from a terminal: raw lines come from a reader, sends go to a
// writer. Real deployments replace this with their channel's client.
package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/gookit/color"

	"chat-courier/errors"
)

type Transport struct {
	mu           sync.Mutex
	out          io.Writer
	colours      bool
	allowPrivate bool
}

func NewTransport(out io.Writer, colours, allowPrivate bool) *Transport {
	return &Transport{out: out, colours: colours, allowPrivate: allowPrivate}
}

func (t *Transport) SendPublic(text string) error {
	line := fmt.Sprintf("[chat] %s", text)
	if t.colours {
		line = color.FgGreen.Render(line)
	}
	return t.write(line)
}

// SendPrivate degrades on purpose when direct messages are disabled, so the
// public fallback path stays exercised even on a terminal.
func (t *Transport) SendPrivate(recipient, text string) error {
	if !t.allowPrivate {
		return errors.ErrPrivateUnavailable
	}
	line := fmt.Sprintf("[dm -> %s] %s", recipient, text)
	if t.colours {
		line = color.FgMagenta.Render(line)
	}
	return t.write(line)
}

func (t *Transport) write(line string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := fmt.Fprintln(t.out, line)
	return err
}
