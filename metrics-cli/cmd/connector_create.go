package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/metricsimple/metricsimple/sdk/core"
)

func connectorCreate(c *cli.Context, env *appEnv) error {
	if c.Args().Len() != 1 {
		return errors.New(
			"connector create requires one argument-- a path to a file " +
				"containing a connector definition",
		)
	}
	filename := c.Args().Get(0)

	connector := core.Connector{}
	if err := readDefinition(filename, &connector); err != nil {
		return err
	}
	applySecretFlags(c, &connector)

	created, err := env.client.Connectors().Create(c.Context, connector)
	if err != nil {
		return presentAPIError(err)
	}

	fmt.Printf("Created connector %q.\n", created.ID)

	return nil
}

// applySecretFlags overlays command line secret flags onto a connector
// definition. Each flag sets the value AND its specified sentinel; a
// definition file that wants to submit a secret without flags must carry the
// sentinel itself.
func applySecretFlags(c *cli.Context, connector *core.Connector) {
	if c.IsSet(flagAPIToken) {
		token := c.String(flagAPIToken)
		connector.APIToken = &token
		connector.APITokenSpecified = true
	}
	if c.Bool(flagClearAPIToken) {
		connector.APIToken = nil
		connector.APITokenSpecified = true
	}
	if c.IsSet(flagAPIKeyValue) {
		key := c.String(flagAPIKeyValue)
		connector.APIKeyValue = &key
		connector.APIKeySpecified = true
	}
	if c.Bool(flagClearAPIKey) {
		connector.APIKeyValue = nil
		connector.APIKeySpecified = true
	}
	if c.IsSet(flagBasicPassword) {
		password := c.String(flagBasicPassword)
		connector.BasicPassword = &password
		connector.BasicPasswordSpecified = true
	}
	if c.Bool(flagClearBasicPassword) {
		connector.BasicPassword = nil
		connector.BasicPasswordSpecified = true
	}
}
