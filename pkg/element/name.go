package element

import (
	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/robot-runner/pkg/core"
)

// Name is a logical UI element. The set is closed: every Name must have
// an Identifier in any Registry.
type Name int

// Logical elements
const (
	nameUnset Name = iota // zero value; a registry row without a name
	LoginButton
	UserNameTextField
	PasswordTextField
	UserIcon
	SettingsIcon

	nameCount // keep last
)

var nameStrings = [...]string{
	LoginButton:       "loginButton",
	UserNameTextField: "userNameTextField",
	PasswordTextField: "passwordTextField",
	UserIcon:          "userIcon",
	SettingsIcon:      "settingsIcon",
}

// Names returns every logical element in declaration order.
func Names() []Name {
	names := make([]Name, 0, nameCount-1)
	for n := LoginButton; n < nameCount; n++ {
		names = append(names, n)
	}
	return names
}

// String returns the logical name, e.g. "loginButton".
func (n Name) String() string {
	if n.Valid() {
		return nameStrings[n]
	}
	return "unknown"
}

// Valid reports whether n belongs to the enumeration.
func (n Name) Valid() bool {
	return n > nameUnset && n < nameCount
}

// ParseName looks up a logical element by name.
func ParseName(s string) (Name, error) {
	for n := LoginButton; n < nameCount; n++ {
		if nameStrings[n] == s {
			return n, nil
		}
	}
	return nameUnset, core.ErrUnknownElement.WithDetails(map[string]interface{}{"element": s})
}

// UnmarshalYAML decodes a logical element from its name.
func (n *Name) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseName(node.Value)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalYAML encodes a logical element by name.
func (n Name) MarshalYAML() (interface{}, error) {
	return n.String(), nil
}
