package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func connectorGet(c *cli.Context, env *appEnv) error {
	if c.Args().Len() != 1 {
		return errors.New(
			"connector get requires one argument-- a connector ID",
		)
	}
	id := c.Args().Get(0)
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	connector, err := env.client.Connectors().Get(c.Context, id)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", connector.ID)
		table.AddRow("NAME", connector.Name)
		table.AddRow("BASE URL", connector.BaseURL)
		table.AddRow("TIMEOUT", fmt.Sprintf("%ds", connector.TimeoutSeconds))
		table.AddRow("AUTH TYPE", connector.AuthType)
		// Secrets are write-only; only their presence is reportable
		table.AddRow("HAS API TOKEN", connector.HasAPIToken)
		table.AddRow("HAS API KEY", connector.HasAPIKey)
		table.AddRow("HAS BASIC PASSWORD", connector.HasBasicPassword)
		fmt.Println(table)

	case "json":
		prettyJSON, err := json.MarshalIndent(connector, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from get connector operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
