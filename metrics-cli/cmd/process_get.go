package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func processGet(c *cli.Context, env *appEnv) error {
	if c.Args().Len() != 1 {
		return errors.New("process get requires one argument-- a process ID")
	}
	id := c.Args().Get(0)
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	process, err := env.client.Processes().Get(c.Context, id)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", process.ID)
		table.AddRow("NAME", process.Name)
		if process.Description != nil {
			table.AddRow("DESCRIPTION", *process.Description)
		}
		table.AddRow("STATUS", process.Status)
		table.AddRow("CONNECTOR", process.ConnectorID)
		table.AddRow("TAGS", strings.Join(process.Tags, ", "))
		for _, destination := range process.OutputDestinations {
			switch {
			case destination.Local != nil:
				table.AddRow("DESTINATION", fmt.Sprintf(
					"%s %s", destination.Type, destination.Local.BasePath,
				))
			case destination.Blob != nil:
				table.AddRow("DESTINATION", fmt.Sprintf(
					"%s %s/%s",
					destination.Type,
					destination.Blob.ConnectionStringRef,
					destination.Blob.Container,
				))
			}
		}
		fmt.Println(table)

	case "json":
		prettyJSON, err := json.MarshalIndent(process, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from get process operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
