// Package engine drives a game frame by frame: input, clock, step, render.
// Platforms feed it key events; it owns no terminal or window state.
package engine

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-miner/internal/core"
	"github.com/vovakirdan/tui-miner/internal/registry"
)

// Renderer presents a game after each step. A failing renderer is
// reported but never stops the loop or touches game state.
type Renderer interface {
	Render(g registry.Game) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(g registry.Game) error

// Render calls f(g).
func (f RendererFunc) Render(g registry.Game) error { return f(g) }

// EventSource yields the key events for the next frame.
// It returns io.EOF when there are no more frames.
type EventSource interface {
	Next(ctx context.Context) ([]core.KeyEvent, error)
}

// Loop runs one game with a fixed per-frame order.
type Loop struct {
	game     registry.Game
	input    *core.InputState
	clock    *core.Clock
	renderer Renderer
	logger   *log.Logger
	interval time.Duration

	last   core.StepResult
	frames uint64
	done   bool
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces the wall clock.
func WithClock(c *core.Clock) Option {
	return func(l *Loop) { l.clock = c }
}

// WithFrameInterval paces Run to one frame per d.
func WithFrameInterval(d time.Duration) Option {
	return func(l *Loop) { l.interval = d }
}

// NewLoop creates a loop for a game that has already been Reset.
// A nil renderer skips presentation; a nil logger uses the default logger.
func NewLoop(game registry.Game, renderer Renderer, logger *log.Logger, opts ...Option) *Loop {
	if logger == nil {
		logger = log.Default()
	}
	l := &Loop{
		game:     game,
		renderer: renderer,
		logger:   logger,
		clock:    core.NewClock(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.input = core.NewInputState(game.Bindings(), logger)
	return l
}

// Frame applies events, measures dt, steps the game and renders it.
// After the game ends, Frame returns the final result without doing anything.
func (l *Loop) Frame(events []core.KeyEvent) core.StepResult {
	if l.done {
		return l.last
	}

	for _, ev := range events {
		l.input.Apply(ev)
	}
	dt := l.clock.Tick()

	l.last = l.game.Step(l.input.State(), dt)
	l.frames++

	if l.renderer != nil {
		if err := l.renderer.Render(l.game); err != nil {
			l.logger.Error("render failed", "game", l.game.ID(), "frame", l.frames, "err", err)
		}
	}

	if l.last.State.GameOver {
		l.done = true
		l.logger.Info("run ended",
			"game", l.game.ID(),
			"reason", l.last.State.Reason,
			"score", l.last.State.Score,
			"fuel", l.last.State.Fuel,
			"ticks", l.last.Tick,
		)
	}
	return l.last
}

// Run pulls frames from src until the game ends, src is exhausted or ctx
// is cancelled. It returns the last step result.
func (l *Loop) Run(ctx context.Context, src EventSource) (core.StepResult, error) {
	var ticker *time.Ticker
	if l.interval > 0 {
		ticker = time.NewTicker(l.interval)
		defer ticker.Stop()
	}

	for !l.done {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return l.last, ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return l.last, err
		}

		events, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			return l.last, nil
		}
		if err != nil {
			return l.last, err
		}
		l.Frame(events)
	}
	return l.last, nil
}

// Input returns the loop's input state. Terminal platforms use it to
// release all commands after each frame.
func (l *Loop) Input() *core.InputState { return l.input }

// Done reports whether the game has ended.
func (l *Loop) Done() bool { return l.done }

// Result returns the most recent step result.
func (l *Loop) Result() core.StepResult { return l.last }

// Frames returns the number of frames stepped.
func (l *Loop) Frames() uint64 { return l.frames }
