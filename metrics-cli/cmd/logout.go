package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func logout(c *cli.Context) error {
	if c.Args().Len() != 0 {
		return errors.New("logout requires no arguments")
	}

	env, err := getAppEnv(c)
	if err != nil {
		return err
	}

	// Logout is local-only and cannot fail: the token is simply destroyed.
	env.sessions.Logout()

	fmt.Println("Logout was successful.")

	return nil
}
