package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func whoami(c *cli.Context, env *appEnv) error {
	if c.Args().Len() != 0 {
		return errors.New("whoami requires no arguments")
	}
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	user := env.sessions.CurrentUser()
	if user == nil {
		return errors.New("no user is associated with the current session")
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		roles := make([]string, len(user.Roles))
		for i, role := range user.Roles {
			roles[i] = string(role)
		}
		table.AddRow("SUBJECT", "NAME", "EMAIL", "ROLES")
		table.AddRow(
			user.Sub,
			user.DisplayName,
			user.Email,
			strings.Join(roles, ", "),
		)
		fmt.Println(table)

	case "json":
		prettyJSON, err := json.MarshalIndent(user, "", "  ")
		if err != nil {
			return errors.Wrap(err, "error formatting output from whoami")
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
