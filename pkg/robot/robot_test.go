package robot

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/devicelab-dev/robot-runner/pkg/action"
	"github.com/devicelab-dev/robot-runner/pkg/core"
	"github.com/devicelab-dev/robot-runner/pkg/driver/mock"
)

func newSession(cfg mock.Config) (*action.Actions, *mock.Driver) {
	drv := mock.New(cfg)
	return action.New(context.Background(), nil, drv, action.Options{}), drv
}

func callStrings(calls []mock.Call) []string {
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.String()
	}
	return out
}

func TestLoginRobot_EnterCredentialsThenLogin(t *testing.T) {
	a, drv := newSession(mock.Config{})
	login := NewLoginRobot(a)

	got := login.
		EnterCredentials(Credentials{UserName: "user1", Password: "abcd123"}).
		PressLoginButton()

	if got != login {
		t.Error("chain should return the same robot instance")
	}
	if err := got.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}

	want := []string{
		`setText(userNameID, "user1")`,
		`setText(passwordID, "abcd123")`,
		"tap(loginButtonID)",
	}
	if calls := callStrings(drv.Calls()); !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestDashboardRobot_Order(t *testing.T) {
	a, drv := newSession(mock.Config{})
	dash := NewDashboardRobot(a)

	if got := dash.PressUserIcon().PressSettingsIcon(); got != dash {
		t.Error("chain should return the same robot instance")
	}

	want := []string{"tap(userIconCell)", "tap(settingsIconID)"}
	if calls := callStrings(drv.Calls()); !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestLoginRobot_FailureAbortsChain(t *testing.T) {
	a, drv := newSession(mock.Config{FailOnCall: 1})
	login := NewLoginRobot(a)

	login.EnterCredentials(Credentials{UserName: "user1", Password: "abcd123"}).PressLoginButton()

	if !errors.Is(login.Err(), core.ErrDriverAction) {
		t.Errorf("Err() = %v, want ErrDriverAction", login.Err())
	}
	if len(drv.Calls()) != 1 {
		t.Errorf("driver called %d times, want 1", len(drv.Calls()))
	}
}

func TestRobots_ShareSessionError(t *testing.T) {
	a, drv := newSession(mock.Config{FailOnCall: 3})
	login := NewLoginRobot(a)
	dash := NewDashboardRobot(a)

	login.EnterCredentials(Credentials{UserName: "u", Password: "p"}).PressLoginButton()
	dash.PressUserIcon()

	if dash.Err() == nil {
		t.Fatal("dashboard should see the login failure")
	}
	if len(drv.Calls()) != 3 {
		t.Errorf("driver called %d times, want 3", len(drv.Calls()))
	}
}
