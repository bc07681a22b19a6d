package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/metricsimple/metricsimple/sdk/core"
)

func processUpdate(c *cli.Context, env *appEnv) error {
	if c.Args().Len() != 2 {
		return errors.New(
			"process update requires two arguments-- a process ID and a path " +
				"to a file containing a process definition",
		)
	}
	id := c.Args().Get(0)
	filename := c.Args().Get(1)

	process := core.Process{}
	if err := readDefinition(filename, &process); err != nil {
		return err
	}

	updated, err := env.client.Processes().Update(c.Context, id, process)
	if err != nil {
		return presentAPIError(err)
	}

	fmt.Printf("Updated process %q.\n", updated.ID)

	return nil
}
