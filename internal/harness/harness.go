// Package harness supervises a single bot decision call: it enforces a
// wall-clock deadline and an approximate memory ceiling, and falls back to a
// safe default action if the bot times out, panics, or otherwise misbehaves.
// It knows nothing about poker; Invoke is generic over whatever the caller's
// action type is, so the engine supplies the closure that actually asks a
// bots.Bot for a decision.
package harness

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Mode selects how a seat's bot is supervised.
type Mode int

const (
	// Unrestricted trusts the bot and calls it synchronously, in-process.
	// Intended for the engine's own reference bots and local development.
	Unrestricted Mode = iota
	// Restricted wraps every call with a deadline, panic recovery, and a
	// best-effort memory ceiling, falling back to a safe default on any
	// violation. Intended for untrusted or third-party bot code.
	Restricted
)

// Supervisor enforces Mode's guarantees around a single seat's decisions and
// logs every violation it corrects.
type Supervisor struct {
	Mode             Mode
	TimeLimit        time.Duration
	MemoryLimitBytes uint64

	IllegalLog *zerolog.Logger // one line per corrected/illegal bot action
	ExecLog    *zerolog.Logger // one line per timeout/panic/crash
}

// Violation describes why a bot's call was overridden.
type Violation struct {
	Seat   int
	Reason string
}

// Invoke runs fn under the supervisor's mode, returning fn's result or, on a
// violation under Restricted mode, the provided fallback. Unrestricted mode
// always runs fn synchronously and returns its result verbatim; a panic
// there is expected to be a programmer error and is allowed to propagate.
func Invoke[T any](ctx context.Context, s *Supervisor, seat int, fn func() T, fallback T) T {
	if s == nil || s.Mode == Unrestricted {
		return fn()
	}

	deadline := s.TimeLimit
	if deadline <= 0 {
		deadline = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	var memBefore runtime.MemStats
	runtime.ReadMemStats(&memBefore)

	result := make(chan T, 1)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("bot panicked: %v", r)
			}
		}()
		result <- fn()
		return nil
	})

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case <-ctx.Done():
		s.logViolation(seat, "deadline exceeded")
		return fallback
	case err := <-done:
		if err != nil {
			s.logViolation(seat, err.Error())
			return fallback
		}
		select {
		case v := <-result:
			if s.MemoryLimitBytes > 0 {
				var memAfter runtime.MemStats
				runtime.ReadMemStats(&memAfter)
				if memAfter.HeapAlloc > memBefore.HeapAlloc &&
					memAfter.HeapAlloc-memBefore.HeapAlloc > s.MemoryLimitBytes {
					s.logExec(seat, "memory ceiling exceeded")
					return fallback
				}
			}
			return v
		default:
			// g.Wait() returned nil but nothing was sent; treat as a crash.
			s.logViolation(seat, "bot returned without a result")
			return fallback
		}
	}
}

func (s *Supervisor) logViolation(seat int, reason string) {
	if s.IllegalLog != nil {
		s.IllegalLog.Warn().Int("seat", seat).Str("reason", reason).Msg("bot call overridden")
	}
	s.logExec(seat, reason)
}

func (s *Supervisor) logExec(seat int, reason string) {
	if s.ExecLog != nil {
		s.ExecLog.Error().Int("seat", seat).Str("reason", reason).Msg("bot execution violation")
	}
}
