package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func versionDelete(c *cli.Context, env *appEnv) error {
	processID, versionNumber, err := versionArgs(c, "delete")
	if err != nil {
		return err
	}

	if err := env.client.Versions().Delete(
		c.Context,
		processID,
		versionNumber,
	); err != nil {
		return err
	}

	fmt.Printf("Deleted version %d of process %q.\n", versionNumber, processID)

	return nil
}
