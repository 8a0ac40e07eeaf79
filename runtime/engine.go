// Package runtime joins the two event sources of the assistant: inbound
// chat lines and presence edges. One goroutine owns both, so a chat handler
// and a delivery pass never overlap and mailbox mutations cannot race.
package runtime

import (
	"context"
	"log/slog"

	"chat-courier/contract"
	"chat-courier/domain"
	"chat-courier/parser"
)

type Engine struct {
	log         *slog.Logger
	lines       chan string
	appearances chan domain.Participant
	commands    contract.LineHandler
	deliverer   contract.Deliverer
}

func NewEngine(log *slog.Logger, commands contract.LineHandler,
	deliverer contract.Deliverer, bufferSize int) *Engine {
	return &Engine{
		log:         log,
		lines:       make(chan string, bufferSize),
		appearances: make(chan domain.Participant, bufferSize),
		commands:    commands,
		deliverer:   deliverer,
	}
}

// Lines is the inbound side for the transport shim.
func (e *Engine) Lines() chan<- string {
	return e.lines
}

// Appearances is the inbound side for the presence worker.
func (e *Engine) Appearances() chan<- domain.Participant {
	return e.appearances
}

// Run processes events to completion one at a time until the context ends
// or the line source closes.
func (e *Engine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case raw, ok := <-e.lines:
			if !ok {
				e.log.Debug("Line source closed")
				return nil
			}
			line, ok := parser.Parse(raw)
			if !ok {
				// Not a message this system understands, drop it.
				continue
			}
			e.commands.Handle(line)
		case p := <-e.appearances:
			e.log.Debug("Presence edge", "name", p.Name)
			e.deliverer.DeliverTo(p.Name)
		}
	}
}
