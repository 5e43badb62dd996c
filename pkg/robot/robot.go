// Package robot holds one robot per app screen. A robot exposes the
// user-visible actions of its screen as chainable methods; element lookup
// and driver calls stay hidden behind action.Actions.
//
// Robot methods return the robot itself so a journey reads as one
// statement:
//
//	login.EnterCredentials(creds).PressLoginButton()
//
// Errors do not break the chain. The first failure is kept by the shared
// Actions, later calls become no-ops, and Err reports it.
package robot

// Credentials are the login inputs for a test user.
type Credentials struct {
	UserName string `yaml:"userName" json:"userName"`
	Password string `yaml:"password" json:"password"`
}
