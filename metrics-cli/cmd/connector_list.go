package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func connectorList(c *cli.Context, env *appEnv) error {
	if c.Args().Len() != 0 {
		return errors.New("connector list requires no arguments")
	}
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	connectors, err := env.client.Connectors().List(c.Context)
	if err != nil {
		return err
	}

	if len(connectors) == 0 {
		fmt.Println("No connectors found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "BASE URL", "AUTH", "ENABLED")
		for _, connector := range connectors {
			enabled := true
			if connector.Enabled != nil {
				enabled = *connector.Enabled
			}
			table.AddRow(
				connector.ID,
				connector.Name,
				connector.BaseURL,
				connector.AuthType,
				enabled,
			)
		}
		fmt.Println(table)

	case "json":
		prettyJSON, err := json.MarshalIndent(connectors, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list connectors operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
