package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/metricsimple/metricsimple/internal/signals"
	"github.com/metricsimple/metricsimple/sdk/core"
)

func main() {
	app := cli.NewApp()
	app.Name = "metrics"
	app.Usage = "Manage MetricsSimple connectors, processes, and versions"
	app.Commands = []*cli.Command{
		{
			Name:  "login",
			Usage: "Log in to the MetricsSimple API server",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  flagAPIAddress,
					Usage: "The address of the API server",
				},
				&cli.StringFlag{
					Name:    flagUsername,
					Aliases: []string{"u"},
					Usage:   "The username to log in with",
				},
				&cli.StringFlag{
					Name:    flagPassword,
					Aliases: []string{"p"},
					Usage: "The password to log in with (prompted when " +
						"omitted; passing it here may leak into shell history)",
				},
			},
			Action: login,
		},
		{
			Name:   "logout",
			Usage:  "Destroy the local session",
			Action: logout,
		},
		{
			Name:  "whoami",
			Usage: "Show the currently logged in user",
			Flags: []cli.Flag{
				cliFlagOutput,
			},
			Action: requireLogin(whoami),
		},
		{
			Name:  "connector",
			Usage: "Manage connectors",
			Subcommands: []*cli.Command{
				{
					Name:  "list",
					Usage: "List connectors",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: requireLogin(connectorList),
				},
				{
					Name:      "get",
					Usage:     "Get a connector",
					ArgsUsage: "CONNECTOR_ID",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: requireLogin(connectorGet),
				},
				{
					Name:      "create",
					Usage:     "Create a new connector",
					ArgsUsage: "FILE",
					Flags:     connectorSecretFlags(),
					Action:    requireAdmin(connectorCreate),
				},
				{
					Name:      "update",
					Usage:     "Update an existing connector",
					ArgsUsage: "CONNECTOR_ID",
					Flags: append(
						connectorSecretFlags(),
						&cli.StringFlag{
							Name:    flagFile,
							Aliases: []string{"f"},
							Usage: "A file containing the connector " +
								"definition (the current server-side state " +
								"is used when omitted)",
						},
					),
					Action: requireAdmin(connectorUpdate),
				},
				{
					Name:      "delete",
					Usage:     "Delete a connector",
					ArgsUsage: "CONNECTOR_ID",
					Action:    requireAdmin(connectorDelete),
				},
			},
		},
		{
			Name:  "process",
			Usage: "Manage processes",
			Subcommands: []*cli.Command{
				{
					Name:  "list",
					Usage: "List processes",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: requireLogin(processList),
				},
				{
					Name:      "get",
					Usage:     "Get a process",
					ArgsUsage: "PROCESS_ID",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: requireLogin(processGet),
				},
				{
					Name:      "create",
					Usage:     "Create a new process",
					ArgsUsage: "FILE",
					Action:    requireAdmin(processCreate),
				},
				{
					Name:      "update",
					Usage:     "Update an existing process",
					ArgsUsage: "PROCESS_ID FILE",
					Action:    requireAdmin(processUpdate),
				},
				{
					Name:      "delete",
					Usage:     "Delete a process",
					ArgsUsage: "PROCESS_ID",
					Action:    requireAdmin(processDelete),
				},
			},
		},
		{
			Name:  "version",
			Usage: "Manage process versions",
			Subcommands: []*cli.Command{
				{
					Name:      "list",
					Usage:     "List versions of a process",
					ArgsUsage: "PROCESS_ID",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: requireLogin(versionList),
				},
				{
					Name:      "get",
					Usage:     "Get a version of a process",
					ArgsUsage: "PROCESS_ID VERSION",
					Action:    requireLogin(versionGet),
				},
				{
					Name:      "create",
					Usage:     "Create a new version of a process",
					ArgsUsage: "PROCESS_ID FILE",
					Action:    requireAdmin(versionCreate),
				},
				{
					Name:      "update",
					Usage:     "Update a version of a process",
					ArgsUsage: "PROCESS_ID VERSION FILE",
					Action:    requireAdmin(versionUpdate),
				},
				{
					Name:      "delete",
					Usage:     "Delete a version of a process",
					ArgsUsage: "PROCESS_ID VERSION",
					Action:    requireAdmin(versionDelete),
				},
			},
		},
		{
			Name:  "preview",
			Usage: "Run a transform against sample input without saving anything",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagSampleFile,
					Usage:    "A file containing the sample input",
					Required: true,
				},
				&cli.StringFlag{
					Name:     flagDslFile,
					Usage:    "A file containing the DSL text",
					Required: true,
				},
				&cli.StringFlag{
					Name:     flagSchemaFile,
					Usage:    "A file containing the output JSON Schema",
					Required: true,
				},
				&cli.StringFlag{
					Name:  flagProfile,
					Usage: "The DSL profile",
					Value: core.DslProfileIR,
				},
			},
			Action: requireLogin(preview),
		},
		{
			Name:  "ai",
			Usage: "AI-assisted authoring",
			Subcommands: []*cli.Command{
				{
					Name:      "generate",
					Usage:     "Generate a DSL and output schema from a goal",
					ArgsUsage: "GOAL",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:     flagSampleFile,
							Usage:    "A file containing the sample input",
							Required: true,
						},
						&cli.StringFlag{
							Name:  flagColumns,
							Usage: "Comma separated column hints",
						},
						&cli.StringFlag{
							Name:  flagEngine,
							Usage: "The generation engine to use",
						},
						&cli.StringFlag{
							Name:  flagProfile,
							Usage: "The DSL profile",
							Value: core.DslProfileIR,
						},
					},
					Action: requireLogin(aiGenerate),
				},
			},
		},
	}
	if err := app.RunContext(signals.Context(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "\n%s\n\n", err)
		os.Exit(1)
	}
}

func connectorSecretFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  flagAPIToken,
			Usage: "Set the bearer token secret",
		},
		&cli.BoolFlag{
			Name:  flagClearAPIToken,
			Usage: "Remove the bearer token secret",
		},
		&cli.StringFlag{
			Name:  flagAPIKeyValue,
			Usage: "Set the API key secret",
		},
		&cli.BoolFlag{
			Name:  flagClearAPIKey,
			Usage: "Remove the API key secret",
		},
		&cli.StringFlag{
			Name:  flagBasicPassword,
			Usage: "Set the basic auth password secret",
		},
		&cli.BoolFlag{
			Name:  flagClearBasicPassword,
			Usage: "Remove the basic auth password secret",
		},
	}
}
