package robot

import (
	"github.com/devicelab-dev/robot-runner/pkg/action"
	"github.com/devicelab-dev/robot-runner/pkg/element"
)

// LoginRobot drives the login screen.
type LoginRobot struct {
	actions *action.Actions
}

// NewLoginRobot creates a login robot on top of actions.
func NewLoginRobot(actions *action.Actions) *LoginRobot {
	return &LoginRobot{actions: actions}
}

// EnterCredentials types the user name and then the password.
func (r *LoginRobot) EnterCredentials(c Credentials) *LoginRobot {
	_ = r.actions.TypeText(c.UserName, element.UserNameTextField)
	_ = r.actions.TypeSecret(c.Password, element.PasswordTextField)
	return r
}

// PressLoginButton submits the login form.
func (r *LoginRobot) PressLoginButton() *LoginRobot {
	_ = r.actions.Activate(element.LoginButton)
	return r
}

// Err returns the first error of the session, or nil.
func (r *LoginRobot) Err() error {
	return r.actions.Err()
}
