package console

import (
	"bytes"
	"context"
	"testing"

	"github.com/devicelab-dev/robot-runner/pkg/element"
)

func TestDriver_Output(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)
	ctx := context.Background()

	if err := d.SetText(ctx, element.Identifier{Key: "userNameID", Kind: element.KindTextField}, "user1"); err != nil {
		t.Fatal(err)
	}
	if err := d.Tap(ctx, element.Identifier{Key: "loginButtonID", Kind: element.KindButton}); err != nil {
		t.Fatal(err)
	}

	want := "Entering text: user1 in to textField userNameID\nPressing button loginButtonID\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestDriver_CancelledContext(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := d.Tap(ctx, element.Identifier{Key: "x", Kind: element.KindButton}); err == nil {
		t.Error("Tap() should fail on a cancelled context")
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want nothing", buf.String())
	}
}
