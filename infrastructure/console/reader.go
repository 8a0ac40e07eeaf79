package console

import (
	"bufio"
	"context"
	"io"
	"log/slog"
)

// Reader feeds raw lines from a reader into the engine. It is a Worker so
// the supervisor owns its lifecycle like everything else.
type Reader struct {
	log   *slog.Logger
	in    io.Reader
	lines chan<- string
}

func NewReader(log *slog.Logger, in io.Reader, lines chan<- string) *Reader {
	return &Reader{log: log, in: in, lines: lines}
}

// Run scans until EOF or cancellation. Only a clean EOF closes the line
// channel: a read error leaves it open so a supervised restart can resume.
func (r *Reader) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(r.in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case r.lines <- scanner.Text():
		}
	}
	if err := scanner.Err(); err != nil {
		r.log.Error("Line source failed", "error", err)
		return err
	}
	// EOF: let the engine drain and finish cleanly
	close(r.lines)
	return nil
}
