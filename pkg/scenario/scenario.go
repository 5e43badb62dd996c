// Package scenario composes robots into user journeys.
package scenario

import (
	"github.com/devicelab-dev/robot-runner/pkg/action"
	"github.com/devicelab-dev/robot-runner/pkg/robot"
)

// Fixtures are the inputs a scenario reads.
type Fixtures struct {
	Credentials robot.Credentials
}

// DefaultFixtures returns the sample test user.
func DefaultFixtures() Fixtures {
	return Fixtures{
		Credentials: robot.Credentials{UserName: "user1", Password: "abcd123"},
	}
}

// Scenario owns one robot per screen, created on first use, plus fixtures.
// It lives for a single run and is then discarded.
type Scenario struct {
	actions  *action.Actions
	fixtures Fixtures

	login     *robot.LoginRobot
	dashboard *robot.DashboardRobot
}

// New creates a scenario over a driver session.
func New(actions *action.Actions, fixtures Fixtures) *Scenario {
	return &Scenario{actions: actions, fixtures: fixtures}
}

// Login returns the login screen robot.
func (s *Scenario) Login() *robot.LoginRobot {
	if s.login == nil {
		s.login = robot.NewLoginRobot(s.actions)
	}
	return s.login
}

// Dashboard returns the dashboard robot.
func (s *Scenario) Dashboard() *robot.DashboardRobot {
	if s.dashboard == nil {
		s.dashboard = robot.NewDashboardRobot(s.actions)
	}
	return s.dashboard
}

// Fixtures returns the scenario inputs.
func (s *Scenario) Fixtures() Fixtures {
	return s.fixtures
}

// Err reports the first failure. A scenario passed when Err is nil.
func (s *Scenario) Err() error {
	return s.actions.Err()
}
