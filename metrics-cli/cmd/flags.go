package main

import "github.com/urfave/cli/v2"

const (
	flagAPIAddress         = "api-address"
	flagAPIKeyValue        = "api-key-value"
	flagAPIToken           = "api-token"
	flagBasicPassword      = "basic-password"
	flagClearAPIKey        = "clear-api-key"
	flagClearAPIToken      = "clear-api-token"
	flagClearBasicPassword = "clear-basic-password"
	flagColumns            = "columns"
	flagDslFile            = "dsl-file"
	flagEngine             = "engine"
	flagFile               = "file"
	flagOutput             = "output"
	flagPassword           = "password"
	flagProfile            = "profile"
	flagSampleFile         = "sample-file"
	flagSchemaFile         = "schema-file"
	flagUsername           = "username"
)

var cliFlagOutput = &cli.StringFlag{
	Name:    flagOutput,
	Aliases: []string{"o"},
	Usage:   "Return output in another format. Supported formats: table, json",
	Value:   "table",
}
