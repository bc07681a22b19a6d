package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func processList(c *cli.Context, env *appEnv) error {
	if c.Args().Len() != 0 {
		return errors.New("process list requires no arguments")
	}
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	processes, err := env.client.Processes().List(c.Context)
	if err != nil {
		return err
	}

	if len(processes) == 0 {
		fmt.Println("No processes found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "STATUS", "CONNECTOR", "TAGS")
		for _, process := range processes {
			table.AddRow(
				process.ID,
				process.Name,
				process.Status,
				process.ConnectorID,
				strings.Join(process.Tags, ", "),
			)
		}
		fmt.Println(table)

	case "json":
		prettyJSON, err := json.MarshalIndent(processes, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list processes operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
