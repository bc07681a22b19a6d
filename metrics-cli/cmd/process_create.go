package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/metricsimple/metricsimple/sdk/core"
)

func processCreate(c *cli.Context, env *appEnv) error {
	if c.Args().Len() != 1 {
		return errors.New(
			"process create requires one argument-- a path to a file " +
				"containing a process definition",
		)
	}
	filename := c.Args().Get(0)

	process := core.Process{}
	if err := readDefinition(filename, &process); err != nil {
		return err
	}

	created, err := env.client.Processes().Create(c.Context, process)
	if err != nil {
		return presentAPIError(err)
	}

	fmt.Printf("Created process %q.\n", created.ID)

	return nil
}
