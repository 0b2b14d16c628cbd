// Package console reads orders from an interactive terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/ports"
)

const (
	Prompt       = "Enter order details (name delay): "
	InvalidInput = "Invalid input. Please enter the order details in the format: <name> <delay>"
)

// MaxDelaySeconds is the largest delay whose duration fits in a time.Duration.
const MaxDelaySeconds = math.MaxInt64 / int64(time.Second)

var ErrInvalidInput = errors.New("invalid order line")

// Reader turns "<name> <delay>" lines into scheduled orders. Delay is whole seconds.
type Reader struct {
	handler commands.ScheduleOrderCommandHandler
	clock   ports.Clock
	out     io.Writer
	logger  *slog.Logger
}

func NewReader(
	handler commands.ScheduleOrderCommandHandler,
	clock ports.Clock,
	out io.Writer,
	logger *slog.Logger,
) *Reader {
	return &Reader{
		handler: handler,
		clock:   clock,
		out:     out,
		logger:  logger.With("component", "console"),
	}
}

// Run prompts for and schedules orders until in reaches EOF or ctx is cancelled.
// Malformed lines are reported on out and reading continues.
func (r *Reader) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	r.prompt()
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			r.handleLine(ctx, line)
			r.prompt()
		}
	}
}

func (r *Reader) handleLine(ctx context.Context, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}

	name, delay, err := ParseLine(line)
	if err != nil {
		fmt.Fprintln(r.out, InvalidInput)
		return
	}

	cmd, err := commands.NewScheduleOrderCommand(name, r.clock.Now().Add(delay))
	if err != nil {
		fmt.Fprintln(r.out, InvalidInput)
		return
	}

	if err = r.handler.Handle(ctx, cmd); err != nil {
		r.logger.ErrorContext(ctx, "Failed to schedule order", "order", name, "error", err)
	}
}

func (r *Reader) prompt() {
	fmt.Fprint(r.out, Prompt)
}

// ParseLine splits "<name> <delay>" into the order name and its delay.
// The delay must be a non-negative integer number of seconds, at most MaxDelaySeconds.
func ParseLine(line string) (string, time.Duration, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", 0, fmt.Errorf("%w: want 2 fields, got %d", ErrInvalidInput, len(fields))
	}

	seconds, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", 0, fmt.Errorf("%w: delay %q: %w", ErrInvalidInput, fields[1], err)
	}
	if seconds < 0 {
		return "", 0, fmt.Errorf("%w: delay %d is negative", ErrInvalidInput, seconds)
	}
	if int64(seconds) > MaxDelaySeconds {
		return "", 0, fmt.Errorf("%w: delay %d exceeds %d seconds", ErrInvalidInput, seconds, MaxDelaySeconds)
	}

	return fields[0], time.Duration(seconds) * time.Second, nil
}
