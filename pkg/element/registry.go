// Package element maps logical UI element names to the identifiers a
// driver uses to find them.
package element

import (
	"fmt"
	"sync"

	"github.com/devicelab-dev/robot-runner/pkg/core"
)

// Identifier is how a driver locates an element: a lookup key (accessibility
// identifier, test id) and the kind of control it is.
type Identifier struct {
	Key  string `yaml:"id"`
	Kind Kind   `yaml:"kind"`
}

// String returns "key (kind)".
func (i Identifier) String() string {
	return fmt.Sprintf("%s (%s)", i.Key, i.Kind)
}

// Entry is one registry row.
type Entry struct {
	Name Name   `yaml:"name"`
	Key  string `yaml:"id"`
	Kind Kind   `yaml:"kind"`
}

// Registry is an immutable mapping from Name to Identifier. It is total
// over the Name enumeration.
type Registry struct {
	ids map[Name]Identifier
}

// defaultEntries is the built-in element table.
var defaultEntries = []Entry{
	{Name: LoginButton, Key: "loginButtonID", Kind: KindButton},
	{Name: UserNameTextField, Key: "userNameID", Kind: KindTextField},
	{Name: PasswordTextField, Key: "passwordID", Kind: KindTextField},
	{Name: UserIcon, Key: "userIconCell", Kind: KindCell},
	{Name: SettingsIcon, Key: "settingsIconID", Kind: KindButton},
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the built-in registry. It panics on first use if the
// built-in table does not cover every Name.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := New(defaultEntries)
		if err != nil {
			panic(fmt.Sprintf("element: built-in registry: %v", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// New builds a registry and verifies it is total over Names().
func New(entries []Entry) (*Registry, error) {
	ids := make(map[Name]Identifier, len(entries))
	keys := make(map[string]Name, len(entries))

	for _, e := range entries {
		if e.Name == nameUnset {
			return nil, core.ErrInvalidConfig.WithMessage(
				fmt.Sprintf("registry row with lookup key %q has no element name", e.Key))
		}
		if !e.Name.Valid() {
			return nil, core.ErrUnknownElement.WithDetails(map[string]interface{}{"element": int(e.Name)})
		}
		if e.Key == "" {
			return nil, core.ErrInvalidConfig.WithMessage("empty lookup key for " + e.Name.String())
		}
		if !e.Kind.Valid() {
			return nil, core.ErrInvalidConfig.WithMessage("invalid element kind for " + e.Name.String())
		}
		if _, dup := ids[e.Name]; dup {
			return nil, core.ErrInvalidConfig.WithMessage("duplicate element " + e.Name.String())
		}
		if other, dup := keys[e.Key]; dup {
			return nil, core.ErrInvalidConfig.WithMessage(
				fmt.Sprintf("lookup key %q used by both %s and %s", e.Key, other, e.Name))
		}
		ids[e.Name] = Identifier{Key: e.Key, Kind: e.Kind}
		keys[e.Key] = e.Name
	}

	var missing []string
	for _, n := range Names() {
		if _, ok := ids[n]; !ok {
			missing = append(missing, n.String())
		}
	}
	if len(missing) > 0 {
		return nil, core.ErrUnknownElement.
			WithMessage(fmt.Sprintf("registry is missing %d element(s)", len(missing))).
			WithDetails(map[string]interface{}{"missing": missing})
	}

	return &Registry{ids: ids}, nil
}

// Lookup returns the identifier registered for name.
func (r *Registry) Lookup(name Name) (Identifier, error) {
	id, ok := r.ids[name]
	if !ok {
		return Identifier{}, core.ErrUnknownElement.WithDetails(map[string]interface{}{"element": name.String()})
	}
	return id, nil
}

// Entries returns the registry rows in Name order.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.ids))
	for _, n := range Names() {
		id := r.ids[n]
		entries = append(entries, Entry{Name: n, Key: id.Key, Kind: id.Kind})
	}
	return entries
}
