package api

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/picsart/creative-apis-go/types"
)

// PollPolicy bounds one poll loop: a one-time delay before the first check,
// a fixed delay between repeats, and the maximum number of repeats after the
// first check. MaxRepeats = N allows exactly N+1 checks in total.
type PollPolicy struct {
	FirstDelay  time.Duration
	RepeatDelay time.Duration
	MaxRepeats  int
}

// CheckFunc issues one status check and returns the classified response.
// A returned error aborts the poll loop immediately.
type CheckFunc func(ctx context.Context) (*RawResponse, error)

// TerminalFunc reports whether a successfully classified check response is
// terminal.
type TerminalFunc func(*RawResponse) bool

// Poll gives the server-side job a head start of FirstDelay, then invokes
// check until isTerminal matches. Errors from check propagate unchanged.
// When the repeat budget runs out, Poll returns *types.PollExhaustedError
// carrying the metadata of the last observed response, and issues no further
// checks. Cancelling ctx releases any pending sleep promptly.
func Poll(ctx context.Context, check CheckFunc, isTerminal TerminalFunc, policy PollPolicy, logger *zap.Logger) (*RawResponse, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := sleep(ctx, policy.FirstDelay); err != nil {
		return nil, err
	}
	for repeat := 0; ; repeat++ {
		resp, err := check(ctx)
		if err != nil {
			return nil, err
		}
		if isTerminal(resp) {
			return resp, nil
		}
		if repeat >= policy.MaxRepeats {
			logger.Debug("poll budget exhausted", zap.Int("checks", repeat+1))
			return nil, &types.PollExhaustedError{Metadata: resp.Metadata()}
		}
		logger.Debug("operation still in progress",
			zap.Int("repeat", repeat+1),
			zap.Duration("delay", policy.RepeatDelay))
		if err := sleep(ctx, policy.RepeatDelay); err != nil {
			return nil, err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
