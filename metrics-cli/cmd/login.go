package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/metricsimple/metricsimple/sdk/meta"
)

func login(c *cli.Context) error {
	if c.Args().Len() != 0 {
		return errors.New("login requires no arguments")
	}

	username := c.String(flagUsername)
	password := c.String(flagPassword)
	reader := bufio.NewReader(os.Stdin)
	if username == "" {
		fmt.Print("Username: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return errors.Wrap(err, "error reading username")
		}
		username = strings.TrimSpace(line)
	}
	if password == "" {
		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return errors.Wrap(err, "error reading password")
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if username == "" || password == "" {
		return errors.New("both a username and a password are required")
	}

	env, err := getAppEnv(c)
	if err != nil {
		return err
	}

	session, err := env.sessions.Login(c.Context, username, password)
	if err != nil {
		if _, ok := err.(*meta.ErrAuthentication); ok {
			return errors.New("invalid username or password")
		}
		return err
	}

	if err := saveConfig(
		&config{APIAddress: env.cfg.APIAddress},
	); err != nil {
		return errors.Wrap(err, "error persisting configuration")
	}

	who := username
	if session.User != nil {
		if session.User.DisplayName != "" {
			who = session.User.DisplayName
		} else {
			who = session.User.Sub
		}
	}
	fmt.Printf("Logged in as %s.\n", who)
	if !env.cfg.Production {
		fmt.Fprintf(
			os.Stderr,
			"Note: connected to non-production environment %q.\n",
			env.cfg.EnvName,
		)
	}

	return nil
}
