package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func processDelete(c *cli.Context, env *appEnv) error {
	if c.Args().Len() != 1 {
		return errors.New(
			"process delete requires one argument-- a process ID",
		)
	}
	id := c.Args().Get(0)

	if err := env.client.Processes().Delete(c.Context, id); err != nil {
		return err
	}

	fmt.Printf("Deleted process %q.\n", id)

	return nil
}
