package scenario

import (
	"fmt"
	"strings"

	"github.com/devicelab-dev/robot-runner/pkg/core"
)

// Case is a named scenario.
type Case struct {
	Name        string
	Description string
	Run         func(s *Scenario)
}

var catalog = []Case{
	{
		Name:        "first-test",
		Description: "Log in, then open the user menu and settings from the dashboard",
		Run:         FirstTest,
	},
	{
		Name:        "login",
		Description: "Log in with the fixture credentials",
		Run:         LoginOnly,
	},
}

// FirstTest logs in and navigates through the dashboard.
func FirstTest(s *Scenario) {
	s.Login().
		EnterCredentials(s.Fixtures().Credentials).
		PressLoginButton()
	s.Dashboard().
		PressUserIcon().
		PressSettingsIcon()
}

// LoginOnly performs the login step of FirstTest.
func LoginOnly(s *Scenario) {
	s.Login().
		EnterCredentials(s.Fixtures().Credentials).
		PressLoginButton()
}

// Catalog returns every built-in case.
func Catalog() []Case {
	out := make([]Case, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a case by name.
func Lookup(name string) (Case, error) {
	for _, c := range catalog {
		if c.Name == name {
			return c, nil
		}
	}
	return Case{}, core.ErrInvalidConfig.WithMessage(
		fmt.Sprintf("unknown scenario %q (available: %s)", name, strings.Join(names(), ", ")))
}

// Select resolves names to cases, keeping their order. No names selects all.
func Select(names []string) ([]Case, error) {
	if len(names) == 0 {
		return Catalog(), nil
	}
	cases := make([]Case, 0, len(names))
	for _, n := range names {
		c, err := Lookup(n)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func names() []string {
	out := make([]string, len(catalog))
	for i, c := range catalog {
		out[i] = c.Name
	}
	return out
}
