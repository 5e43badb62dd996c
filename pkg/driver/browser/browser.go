// Package browser drives a web UI through Chromium using go-rod. Elements
// are located by a test-id attribute whose value is the registry lookup key.
package browser

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/devicelab-dev/robot-runner/pkg/core"
	"github.com/devicelab-dev/robot-runner/pkg/element"
	"github.com/devicelab-dev/robot-runner/pkg/logger"
)

// DefaultAttribute is the element attribute matched against lookup keys.
const DefaultAttribute = "data-testid"

// Config configures the browser driver.
type Config struct {
	URL        string // Page to open (required)
	Headless   bool
	Attribute  string // Attribute holding the lookup key (default data-testid)
	ControlURL string // DevTools URL of a running browser; empty launches one
}

// Driver implements action.Driver on a single page.
type Driver struct {
	browser   *rod.Browser
	page      *rod.Page
	attribute string
	launched  *launcher.Launcher
}

// New connects to (or launches) a browser and opens cfg.URL.
func New(ctx context.Context, cfg Config) (*Driver, error) {
	if cfg.URL == "" {
		return nil, core.ErrMissingRequired.WithMessage("browser driver requires a URL")
	}
	attr := cfg.Attribute
	if attr == "" {
		attr = DefaultAttribute
	}

	d := &Driver{attribute: attr}

	controlURL := cfg.ControlURL
	if controlURL == "" {
		d.launched = launcher.New().Headless(cfg.Headless).Context(ctx)
		u, err := d.launched.Launch()
		if err != nil {
			return nil, fmt.Errorf("failed to launch browser: %w", err)
		}
		controlURL = u
	}
	logger.Info("Connecting to browser at %s", controlURL)

	d.browser = rod.New().ControlURL(controlURL).Context(ctx)
	if err := d.browser.Connect(); err != nil {
		d.cleanup()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := d.browser.Page(proto.TargetCreateTarget{URL: cfg.URL})
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to open %s: %w", cfg.URL, err)
	}
	if err := page.WaitLoad(); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to load %s: %w", cfg.URL, err)
	}
	d.page = page

	return d, nil
}

// SetText replaces the content of a text field.
func (d *Driver) SetText(ctx context.Context, id element.Identifier, value string) error {
	el, err := d.element(ctx, id)
	if err != nil {
		return err
	}
	if err := el.SelectAllText(); err != nil {
		return fmt.Errorf("select text in %s: %w", id.Key, err)
	}
	if err := el.Input(value); err != nil {
		return fmt.Errorf("input into %s: %w", id.Key, err)
	}
	return nil
}

// Tap left-clicks an element once.
func (d *Driver) Tap(ctx context.Context, id element.Identifier) error {
	el, err := d.element(ctx, id)
	if err != nil {
		return err
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click %s: %w", id.Key, err)
	}
	return nil
}

// Close closes the browser connection and any browser it launched.
func (d *Driver) Close() error {
	var err error
	if d.browser != nil {
		err = d.browser.Close()
	}
	d.cleanup()
	return err
}

func (d *Driver) cleanup() {
	if d.launched != nil {
		d.launched.Kill()
		d.launched = nil
	}
}

// element waits until an element with the identifier's key is attached.
func (d *Driver) element(ctx context.Context, id element.Identifier) (*rod.Element, error) {
	el, err := d.page.Context(ctx).Element(Selector(d.attribute, id.Key))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", id.Key, err)
	}
	return el, nil
}

// Selector returns the CSS selector matching attr="key".
func Selector(attr, key string) string {
	return "[" + attr + "=" + cssString(key) + "]"
}

// cssString quotes s as a CSS string token. Quotes and backslashes are
// escaped, control characters become hex escapes and NUL becomes U+FFFD.
func cssString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == 0:
			b.WriteRune(utf8.RuneError)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, "\\%x ", r)
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
