// Package mock provides a recording driver for testing without a real UI.
package mock

import (
	"context"
	"fmt"
	"time"

	"github.com/devicelab-dev/robot-runner/pkg/element"
)

// Op identifies a driver call.
type Op string

// Driver operations
const (
	OpSetText Op = "setText"
	OpTap     Op = "tap"
)

// Call is one recorded driver call.
type Call struct {
	Op    Op
	Key   string
	Kind  element.Kind
	Value string // setText only
}

// String renders the call as op(key) or op(key, "value").
func (c Call) String() string {
	if c.Op == OpSetText {
		return fmt.Sprintf("%s(%s, %q)", c.Op, c.Key, c.Value)
	}
	return fmt.Sprintf("%s(%s)", c.Op, c.Key)
}

// Config configures mock driver behavior.
type Config struct {
	// FailOnCall makes call N fail (1-indexed). 0 = never fail.
	FailOnCall int
	// FailErr is returned by the failing call. Defaults to a generic error.
	FailErr error
	// CallDelay blocks each call, returning early if ctx is done.
	CallDelay time.Duration
}

// Driver is a mock implementation of action.Driver. Every call is recorded,
// including calls that fail.
type Driver struct {
	Config Config

	calls []Call
}

// New creates a new mock driver.
func New(cfg Config) *Driver {
	return &Driver{Config: cfg}
}

// SetText records a setText call.
func (d *Driver) SetText(ctx context.Context, id element.Identifier, value string) error {
	return d.do(ctx, Call{Op: OpSetText, Key: id.Key, Kind: id.Kind, Value: value})
}

// Tap records a tap call.
func (d *Driver) Tap(ctx context.Context, id element.Identifier) error {
	return d.do(ctx, Call{Op: OpTap, Key: id.Key, Kind: id.Kind})
}

// Calls returns the recorded calls in order.
func (d *Driver) Calls() []Call {
	out := make([]Call, len(d.calls))
	copy(out, d.calls)
	return out
}

// Reset clears recorded calls.
func (d *Driver) Reset() {
	d.calls = nil
}

func (d *Driver) do(ctx context.Context, call Call) error {
	d.calls = append(d.calls, call)
	n := len(d.calls)

	if d.Config.CallDelay > 0 {
		timer := time.NewTimer(d.Config.CallDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if d.Config.FailOnCall > 0 && n == d.Config.FailOnCall {
		if d.Config.FailErr != nil {
			return d.Config.FailErr
		}
		return fmt.Errorf("mock failure on call %d (%s %s)", n, call.Op, call.Key)
	}
	return nil
}
