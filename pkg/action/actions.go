// Package action provides the two primitives every screen robot is built
// from: typing text into a text field and activating a control.
package action

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/devicelab-dev/robot-runner/pkg/core"
	"github.com/devicelab-dev/robot-runner/pkg/element"
	"github.com/devicelab-dev/robot-runner/pkg/logger"
)

// Driver performs UI interaction on a single session. Both calls may block
// until the UI settles or ctx is done.
type Driver interface {
	SetText(ctx context.Context, id element.Identifier, value string) error
	Tap(ctx context.Context, id element.Identifier) error
}

// Options configures an Actions.
type Options struct {
	// Timeout bounds each driver call. Zero means the scenario context alone.
	Timeout time.Duration
	// OnStep is called after every primitive, including skipped ones.
	OnStep func(step core.StepResult)
}

// redacted replaces secret values in recorded steps.
const redacted = "******"

var (
	textKinds     = []element.Kind{element.KindTextField}
	activateKinds = []element.Kind{element.KindButton, element.KindCell, element.KindStaticText}
)

// Actions runs primitives against one driver session. It is not safe for
// concurrent use: actions run strictly one after another.
//
// The first error is sticky. Once a primitive fails every later primitive
// is recorded as skipped, makes no driver call and returns that error.
type Actions struct {
	ctx      context.Context
	registry *element.Registry
	driver   Driver
	opts     Options

	err   error
	steps []core.StepResult
}

// New creates Actions bound to ctx. A nil registry means element.Default().
func New(ctx context.Context, registry *element.Registry, driver Driver, opts Options) *Actions {
	if registry == nil {
		registry = element.Default()
	}
	return &Actions{
		ctx:      ctx,
		registry: registry,
		driver:   driver,
		opts:     opts,
	}
}

// TypeText types value into target, which must be a text field.
func (a *Actions) TypeText(value string, target element.Name) error {
	return a.perform(core.CommandTypeText, target, value, value, textKinds,
		func(ctx context.Context, id element.Identifier) error {
			return a.driver.SetText(ctx, id, value)
		})
}

// TypeSecret behaves like TypeText but keeps value out of logs and results.
func (a *Actions) TypeSecret(value string, target element.Name) error {
	return a.perform(core.CommandTypeText, target, redacted, value, textKinds,
		func(ctx context.Context, id element.Identifier) error {
			return a.driver.SetText(ctx, id, value)
		})
}

// Activate taps target, which must be a button, cell or static text.
func (a *Actions) Activate(target element.Name) error {
	return a.perform(core.CommandActivate, target, "", "", activateKinds,
		func(ctx context.Context, id element.Identifier) error {
			return a.driver.Tap(ctx, id)
		})
}

// Err returns the first error raised by any primitive, or nil.
func (a *Actions) Err() error {
	return a.err
}

// Steps returns the recorded results in execution order.
func (a *Actions) Steps() []core.StepResult {
	out := make([]core.StepResult, len(a.steps))
	copy(out, a.steps)
	return out
}

func (a *Actions) perform(command string, target element.Name, shown, value string, allowed []element.Kind,
	call func(ctx context.Context, id element.Identifier) error) error {
	step := core.StepResult{
		Index:     len(a.steps),
		Command:   command,
		Element:   target.String(),
		Value:     shown,
		StartTime: time.Now(),
	}

	if a.err != nil {
		step.Status = core.StatusSkipped
		step.Error = a.err.Error()
		a.record(step)
		return a.err
	}

	err := a.execute(&step, command, target, value, allowed, call)
	step.Duration = time.Since(step.StartTime)
	step.Status = core.StatusFor(err)
	if err != nil {
		a.err = err
		step.Category = core.CategoryOf(err)
		step.Error = err.Error()
		logger.Error("%s %s failed: %v", command, target, err)
	} else {
		logger.Info("%s %s (%s) done in %v", command, target, step.Key, step.Duration)
	}
	a.record(step)
	return err
}

func (a *Actions) execute(step *core.StepResult, command string, target element.Name, value string, allowed []element.Kind,
	call func(ctx context.Context, id element.Identifier) error) error {
	if err := a.ctx.Err(); err != nil {
		return core.ErrCancelled.WithCause(err)
	}

	id, err := a.registry.Lookup(target)
	if err != nil {
		return err
	}
	step.Key = id.Key

	if !kindAllowed(id.Kind, allowed) {
		return core.ErrInvalidElementKind.
			WithMessage(fmt.Sprintf("%s not allowed on %s element %s", command, id.Kind, target)).
			WithDetails(map[string]interface{}{
				"element": target.String(),
				"kind":    id.Kind.String(),
				"command": command,
			})
	}

	ctx := a.ctx
	if a.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.opts.Timeout)
		defer cancel()
	}

	logger.Debug("%s %s -> %s", command, target, id)
	if err := call(ctx, id); err != nil {
		return a.classify(ctx, err, target, id)
	}
	return nil
}

// classify turns a driver error into the error reported for the step.
func (a *Actions) classify(ctx context.Context, err error, target element.Name, id element.Identifier) error {
	details := map[string]interface{}{
		"element": target.String(),
		"key":     id.Key,
	}
	switch {
	case a.ctx.Err() != nil:
		return core.ErrCancelled.WithCause(err).WithDetails(details)
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		details["timeout"] = a.opts.Timeout.String()
		return core.ErrTimeout.WithCause(err).WithDetails(details)
	default:
		return core.ErrDriverAction.WithCause(err).WithDetails(details)
	}
}

func (a *Actions) record(step core.StepResult) {
	a.steps = append(a.steps, step)
	if a.opts.OnStep != nil {
		a.opts.OnStep(step)
	}
}

func kindAllowed(kind element.Kind, allowed []element.Kind) bool {
	for _, k := range allowed {
		if k == kind {
			return true
		}
	}
	return false
}
