package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/metricsimple/metricsimple/sdk/core"
)

func preview(c *cli.Context, env *appEnv) error {
	if c.Args().Len() != 0 {
		return errors.New("preview requires no arguments; use flags")
	}

	sampleInput, err := os.ReadFile(c.String(flagSampleFile))
	if err != nil {
		return errors.Wrap(err, "error reading sample input file")
	}
	dslText, err := os.ReadFile(c.String(flagDslFile))
	if err != nil {
		return errors.Wrap(err, "error reading dsl file")
	}
	outputSchema, err := os.ReadFile(c.String(flagSchemaFile))
	if err != nil {
		return errors.Wrap(err, "error reading output schema file")
	}
	// Fail on schema mistakes before burning a server round-trip
	if err := core.ValidateOutputSchema(outputSchema); err != nil {
		return err
	}

	profile := c.String(flagProfile)
	req := core.PreviewTransformRequest{
		SampleInput:  sampleInput,
		Dsl:          core.Dsl{Profile: profile, Text: string(dslText)},
		OutputSchema: outputSchema,
	}
	if plan := core.TryExtractPlan(profile, string(dslText)); plan != nil {
		planBytes, err := json.Marshal(plan)
		if err != nil {
			return errors.Wrap(err, "error marshaling plan")
		}
		req.Plan = planBytes
	}

	resp, err := env.client.Preview().Transform(c.Context, req)
	if err != nil {
		return presentAPIError(err)
	}

	if !resp.IsValid {
		fmt.Println("The transform output failed validation:")
		for _, item := range resp.Errors {
			if item.Path != "" {
				fmt.Printf("  %s: %s\n", item.Path, item.Message)
			} else {
				fmt.Printf("  %s\n", item.Message)
			}
		}
	}

	if len(resp.Output) > 0 {
		prettyJSON, err := json.MarshalIndent(resp.Output, "", "  ")
		if err != nil {
			return errors.Wrap(err, "error formatting preview output")
		}
		fmt.Println(string(prettyJSON))
	}
	if resp.PreviewCsv != "" {
		fmt.Println(resp.PreviewCsv)
	}

	return nil
}
