package element

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/robot-runner/pkg/core"
)

// Kind is the type of UI control an identifier points at.
type Kind int

// Kind values
const (
	KindButton Kind = iota + 1
	KindTextField
	KindCell
	KindTable // registered for completeness; no robot drives a table yet
	KindStaticText
)

var kindNames = map[Kind]string{
	KindButton:     "button",
	KindTextField:  "textField",
	KindCell:       "cell",
	KindTable:      "table",
	KindStaticText: "staticText",
}

// String returns the registry spelling of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind parses a kind name. Matching ignores case, dashes and underscores,
// so "textField", "text-field" and "TEXT_FIELD" are the same kind.
func ParseKind(s string) (Kind, error) {
	want := normalize(s)
	for k, name := range kindNames {
		if normalize(name) == want {
			return k, nil
		}
	}
	return 0, core.ErrInvalidConfig.WithMessage("unknown element kind \"" + s + "\"")
}

// UnmarshalYAML decodes a kind from its name.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseKind(node.Value)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalYAML encodes a kind by name.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, "_", "")
}
