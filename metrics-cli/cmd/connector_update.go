package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/metricsimple/metricsimple/sdk/core"
)

func connectorUpdate(c *cli.Context, env *appEnv) error {
	if c.Args().Len() != 1 {
		return errors.New(
			"connector update requires one argument-- a connector ID",
		)
	}
	id := c.Args().Get(0)

	var connector core.Connector
	if filename := c.String(flagFile); filename != "" {
		if err := readDefinition(filename, &connector); err != nil {
			return err
		}
	} else {
		// Without a definition file, the current server-side state is the
		// base the secret flags modify.
		var err error
		if connector, err =
			env.client.Connectors().Get(c.Context, id); err != nil {
			return err
		}
	}
	applySecretFlags(c, &connector)

	updated, err := env.client.Connectors().Update(c.Context, id, connector)
	if err != nil {
		return presentAPIError(err)
	}

	fmt.Printf("Updated connector %q.\n", updated.ID)

	return nil
}
