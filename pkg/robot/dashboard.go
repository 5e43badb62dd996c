package robot

import (
	"github.com/devicelab-dev/robot-runner/pkg/action"
	"github.com/devicelab-dev/robot-runner/pkg/element"
)

// DashboardRobot drives the dashboard shown after login.
type DashboardRobot struct {
	actions *action.Actions
}

// NewDashboardRobot creates a dashboard robot on top of actions.
func NewDashboardRobot(actions *action.Actions) *DashboardRobot {
	return &DashboardRobot{actions: actions}
}

// PressUserIcon opens the user menu.
func (r *DashboardRobot) PressUserIcon() *DashboardRobot {
	_ = r.actions.Activate(element.UserIcon)
	return r
}

// PressSettingsIcon opens settings.
func (r *DashboardRobot) PressSettingsIcon() *DashboardRobot {
	_ = r.actions.Activate(element.SettingsIcon)
	return r
}

// Err returns the first error of the session, or nil.
func (r *DashboardRobot) Err() error {
	return r.actions.Err()
}
