package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func connectorDelete(c *cli.Context, env *appEnv) error {
	if c.Args().Len() != 1 {
		return errors.New(
			"connector delete requires one argument-- a connector ID",
		)
	}
	id := c.Args().Get(0)

	if err := env.client.Connectors().Delete(c.Context, id); err != nil {
		return err
	}

	fmt.Printf("Deleted connector %q.\n", id)

	return nil
}
