package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/metricsimple/metricsimple/sdk/authx"
)

// guardedAction is a command action that runs with an assembled appEnv.
type guardedAction func(c *cli.Context, env *appEnv) error

// requireLogin wraps an action so it only runs with an established session.
// This is a UX-level check; the server independently rejects unauthenticated
// requests.
func requireLogin(action guardedAction) cli.ActionFunc {
	return func(c *cli.Context) error {
		env, err := getAppEnv(c)
		if err != nil {
			return err
		}
		if !env.sessions.IsAuthenticated() {
			return errors.New(
				"you are not logged in; use `metrics login` to continue",
			)
		}
		return action(c, env)
	}
}

// requireAdmin additionally requires the Metrics.Admin role. Like
// requireLogin, it exists to fail fast with a useful message; the server is
// the authority.
func requireAdmin(action guardedAction) cli.ActionFunc {
	return requireLogin(func(c *cli.Context, env *appEnv) error {
		if !env.sessions.HasRole(authx.RoleAdmin) {
			return errors.New(
				"this action requires the Metrics.Admin role",
			)
		}
		return action(c, env)
	})
}
