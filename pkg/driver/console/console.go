// Package console provides a driver that prints each action instead of
// touching a UI. Useful for dry runs of a scenario.
package console

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/devicelab-dev/robot-runner/pkg/element"
)

// Driver writes one line per action to its writer.
type Driver struct {
	w io.Writer
}

// New creates a console driver. A nil writer means stdout.
func New(w io.Writer) *Driver {
	if w == nil {
		w = os.Stdout
	}
	return &Driver{w: w}
}

// SetText prints the text entry.
func (d *Driver) SetText(ctx context.Context, id element.Identifier, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(d.w, "Entering text: %s in to %s %s\n", value, id.Kind, id.Key)
	return err
}

// Tap prints the press.
func (d *Driver) Tap(ctx context.Context, id element.Identifier) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(d.w, "Pressing %s %s\n", id.Kind, id.Key)
	return err
}
