package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// versionArgs parses the PROCESS_ID VERSION argument pair shared by the
// version subcommands.
func versionArgs(c *cli.Context, command string) (string, int, error) {
	if c.Args().Len() != 2 {
		return "", 0, errors.Errorf(
			"version %s requires two arguments-- a process ID and a version "+
				"number",
			command,
		)
	}
	processID := c.Args().Get(0)
	versionNumber, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return "", 0, errors.Errorf(
			"%q is not a valid version number",
			c.Args().Get(1),
		)
	}
	return processID, versionNumber, nil
}

func versionGet(c *cli.Context, env *appEnv) error {
	processID, versionNumber, err := versionArgs(c, "get")
	if err != nil {
		return err
	}

	version, err := env.client.Versions().Get(
		c.Context,
		processID,
		versionNumber,
	)
	if err != nil {
		return err
	}

	// Version detail is structured (raw DSL text, schema, sample input), so
	// JSON is the only sensible rendering.
	prettyJSON, err := json.MarshalIndent(version, "", "  ")
	if err != nil {
		return errors.Wrap(
			err,
			"error formatting output from get version operation",
		)
	}
	fmt.Println(string(prettyJSON))

	return nil
}
