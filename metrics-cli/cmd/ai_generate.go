package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/metricsimple/metricsimple/sdk/core"
)

func aiGenerate(c *cli.Context, env *appEnv) error {
	if !env.cfg.AIEnabled {
		return errors.New(
			"AI-assisted generation is disabled in this environment",
		)
	}
	if c.Args().Len() != 1 {
		return errors.New(
			"ai generate requires one argument-- a natural language " +
				"description of the desired output",
		)
	}
	goalText := c.Args().Get(0)

	sampleInput, err := os.ReadFile(c.String(flagSampleFile))
	if err != nil {
		return errors.Wrap(err, "error reading sample input file")
	}

	req := core.DslGenerateRequest{
		GoalText:    goalText,
		SampleInput: sampleInput,
		DslProfile:  c.String(flagProfile),
		Constraints: core.DefaultDslGenerateConstraints(),
		Engine:      c.String(flagEngine),
	}
	if columns := c.String(flagColumns); columns != "" {
		req.Hints = &core.DslGenerateHints{Columns: columns}
	}

	result, err := env.client.AI().GenerateDsl(c.Context, req)
	if err != nil {
		return presentAPIError(err)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}
	if result.Rationale != "" {
		fmt.Fprintf(os.Stderr, "%s\n\n", result.Rationale)
	}

	output := struct {
		Dsl          core.Dsl        `json:"dsl"`
		OutputSchema json.RawMessage `json:"outputSchema"`
		Plan         json.RawMessage `json:"plan,omitempty"`
	}{
		Dsl:          result.Dsl,
		OutputSchema: result.OutputSchema,
		Plan:         result.Plan,
	}
	prettyJSON, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return errors.Wrap(err, "error formatting generation result")
	}
	fmt.Println(string(prettyJSON))

	return nil
}
