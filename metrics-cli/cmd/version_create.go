package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/metricsimple/metricsimple/sdk/core"
)

func versionCreate(c *cli.Context, env *appEnv) error {
	if c.Args().Len() != 2 {
		return errors.New(
			"version create requires two arguments-- a process ID and a path " +
				"to a file containing a version definition",
		)
	}
	processID := c.Args().Get(0)
	filename := c.Args().Get(1)

	version := core.ProcessVersion{}
	if err := readDefinition(filename, &version); err != nil {
		return err
	}
	if len(version.OutputSchema) > 0 {
		if err := core.ValidateOutputSchema(version.OutputSchema); err != nil {
			return err
		}
	}

	created, err := env.client.Versions().Create(c.Context, processID, version)
	if err != nil {
		return presentAPIError(err)
	}

	fmt.Printf(
		"Created version %d of process %q.\n",
		created.Version,
		processID,
	)

	return nil
}
