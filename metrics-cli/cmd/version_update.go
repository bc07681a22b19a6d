package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/metricsimple/metricsimple/sdk/core"
)

func versionUpdate(c *cli.Context, env *appEnv) error {
	if c.Args().Len() != 3 {
		return errors.New(
			"version update requires three arguments-- a process ID, a " +
				"version number, and a path to a file containing a version " +
				"definition",
		)
	}
	processID := c.Args().Get(0)
	versionNumber, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return errors.Errorf(
			"%q is not a valid version number",
			c.Args().Get(1),
		)
	}
	filename := c.Args().Get(2)

	version := core.ProcessVersion{}
	if err := readDefinition(filename, &version); err != nil {
		return err
	}
	if len(version.OutputSchema) > 0 {
		if err := core.ValidateOutputSchema(version.OutputSchema); err != nil {
			return err
		}
	}

	updated, err := env.client.Versions().Update(
		c.Context,
		processID,
		versionNumber,
		version,
	)
	if err != nil {
		return presentAPIError(err)
	}

	fmt.Printf(
		"Updated version %d of process %q.\n",
		updated.Version,
		processID,
	)

	return nil
}
