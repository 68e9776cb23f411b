// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package command

import (
	"context"
	"os"

	"github.com/Azure/azwebapp/cmd/azwebapp/command/cmdutil"
	"github.com/Azure/azwebapp/cmd/azwebapp/command/create"
	"github.com/Azure/azwebapp/cmd/azwebapp/command/show"
	"github.com/Azure/azwebapp/cmd/azwebapp/command/stacks"
	"github.com/spf13/cobra"
)

var version = "dev"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "azwebapp",
	Version: version,
	Short:   "A cli tool for creating and inspecting Azure App Service web apps",
	Long: `A cli tool for creating and inspecting Azure App Service web apps.

This tool can:

- Create a web app from a JSON, YAML or TOML description.
- Show the properties and full site config of a web app.
- List the runtime stacks available to web apps.

Credentials are read from the environment, see ARM_* and AZURE_* variables.
Settings can also be supplied in an azwebapp.yaml file or with AZWEBAPP_* variables.
`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cmdutil.AddPersistentFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(&create.CreateCmd)
	rootCmd.AddCommand(&show.ShowCmd)
	rootCmd.AddCommand(&stacks.StacksCmd)
}
