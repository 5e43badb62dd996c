package appium

import (
	"context"
	"fmt"
	"time"

	"github.com/devicelab-dev/robot-runner/pkg/core"
	"github.com/devicelab-dev/robot-runner/pkg/element"
	"github.com/devicelab-dev/robot-runner/pkg/logger"
)

// DefaultStrategy locates elements by accessibility identifier.
const DefaultStrategy = "accessibility id"

// closeTimeout bounds session teardown.
const closeTimeout = 30 * time.Second

// Config configures an Appium session.
type Config struct {
	ServerURL    string                 // e.g. http://127.0.0.1:4723
	Capabilities map[string]interface{} // W3C capabilities sent on session creation
	Strategy     string                 // Locator strategy (default: accessibility id)
}

// Driver is one Appium session. It implements action.Driver and io.Closer.
type Driver struct {
	client   *Client
	strategy string
}

// New creates a session on the Appium server.
func New(ctx context.Context, cfg Config) (*Driver, error) {
	if cfg.ServerURL == "" {
		return nil, core.ErrMissingRequired.WithMessage("appium driver requires a server URL")
	}
	if cfg.Strategy == "" {
		cfg.Strategy = DefaultStrategy
	}

	client := NewClient(cfg.ServerURL)
	if err := client.Connect(ctx, cfg.Capabilities); err != nil {
		return nil, err
	}
	logger.Info("Appium session %s (%s) on %s", client.SessionID(), client.Platform(), cfg.ServerURL)

	return &Driver{client: client, strategy: cfg.Strategy}, nil
}

// SetText clears the element and types value into it.
func (d *Driver) SetText(ctx context.Context, id element.Identifier, value string) error {
	elemID, err := d.find(ctx, id)
	if err != nil {
		return err
	}
	if err := d.client.ClearElement(ctx, elemID); err != nil {
		return fmt.Errorf("clear %s: %w", id.Key, err)
	}
	if err := d.client.SendElementKeys(ctx, elemID, value); err != nil {
		return fmt.Errorf("type into %s: %w", id.Key, err)
	}
	return nil
}

// Tap clicks the element.
func (d *Driver) Tap(ctx context.Context, id element.Identifier) error {
	elemID, err := d.find(ctx, id)
	if err != nil {
		return err
	}
	if err := d.client.ClickElement(ctx, elemID); err != nil {
		return fmt.Errorf("click %s: %w", id.Key, err)
	}
	return nil
}

// Close ends the session.
func (d *Driver) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	return d.client.Disconnect(ctx)
}

func (d *Driver) find(ctx context.Context, id element.Identifier) (string, error) {
	elemID, err := d.client.FindElement(ctx, d.strategy, id.Key)
	if err != nil {
		return "", fmt.Errorf("find %s %q: %w", id.Kind, id.Key, err)
	}
	return elemID, nil
}
