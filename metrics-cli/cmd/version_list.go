package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func versionList(c *cli.Context, env *appEnv) error {
	if c.Args().Len() != 1 {
		return errors.New("version list requires one argument-- a process ID")
	}
	processID := c.Args().Get(0)
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	versions, err := env.client.Versions().List(c.Context, processID)
	if err != nil {
		return err
	}

	if len(versions) == 0 {
		fmt.Printf("No versions found for process %q.\n", processID)
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("VERSION", "ENABLED", "PROFILE", "SOURCE")
		for _, version := range versions {
			table.AddRow(
				version.Version,
				version.Enabled,
				version.Dsl.Profile,
				fmt.Sprintf(
					"%s %s",
					version.SourceRequest.Method,
					version.SourceRequest.Path,
				),
			)
		}
		fmt.Println(table)

	case "json":
		prettyJSON, err := json.MarshalIndent(versions, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list versions operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
