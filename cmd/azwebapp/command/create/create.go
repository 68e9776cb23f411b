// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package create

import (
	"context"
	"io"
	"os"

	"github.com/Azure/azwebapp"
	"github.com/Azure/azwebapp/cmd/azwebapp/command/cmdutil"
	"github.com/Azure/azwebapp/internal/input"
	"github.com/Azure/azwebapp/internal/prepare"
	"github.com/spf13/cobra"
)

// CreateCmd creates a web app from an input file.
var CreateCmd = cobra.Command{
	Use:   "create -f file",
	Short: "Creates a web app from a JSON, YAML or TOML description.",
	Long: `Creates a web app from a JSON, YAML or TOML description.

The App Service plan and resource group must already exist.
The created web app is written to stdout as JSON.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := runCreate(cmd); err != nil {
			cmd.PrintErrf("%s create command: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
	},
}

func init() {
	CreateCmd.Flags().StringP("file", "f", "", "The web app description file (.json, .yaml, .yml or .toml)")
	CreateCmd.MarkFlagRequired("file") // nolint: errcheck
}

func runCreate(cmd *cobra.Command) error {
	ctx := cmd.Context()
	file, _ := cmd.Flags().GetString("file")

	w, err := input.ReadFile(file)
	if err != nil {
		return err
	}

	env, err := cmdutil.NewEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Logger.Sync() // nolint: errcheck

	if w.SubscriptionID != "" {
		env.SubscriptionID = w.SubscriptionID
	}
	web, err := env.WebAppsClients()
	if err != nil {
		return err
	}
	res, err := env.ResourcesClients()
	if err != nil {
		return err
	}
	stacksClient, err := env.StacksClient()
	if err != nil {
		return err
	}

	rgClient := res.NewResourceGroupsClient()
	return createWebApp(ctx, cmd.OutOrStdout(), w, env.SubscriptionID, clients{
		plans:          web.NewPlansClient(),
		resourceGroups: rgClient,
		providers:      res.NewProvidersClient(),
		webApps:        web.NewWebAppsClient(),
		stacks:         stacksClient,
	}, &azwebapp.WebAppCreateStepOptions{
		Credential:    env.Credential,
		Cloud:         env.Cloud,
		Telemetry:     azwebapp.NewLoggerTelemetry(env.Logger),
		Logger:        env.Logger,
		PollFrequency: env.Settings.PollFrequency,
	})
}

// clients are the Azure clients used to create a web app.
type clients struct {
	plans          prepare.PlansClient
	resourceGroups azwebapp.ResourceGroupsClient
	providers      azwebapp.ProvidersClient
	webApps        azwebapp.WebAppsClient
	stacks         prepare.StacksLister
}

// createWebApp resolves w, creates the web app and writes it to out as JSON.
// opts.Locations is set from the clients.
func createWebApp(ctx context.Context, out io.Writer, w *input.WebApp, subscriptionID string, c clients, opts *azwebapp.WebAppCreateStepOptions) error {
	resolver := prepare.NewResolver(subscriptionID, c.plans, c.resourceGroups, c.stacks, opts.Logger)
	wctx, err := resolver.WizardContext(ctx, w)
	if err != nil {
		return err
	}

	opts.Locations = azwebapp.NewProviderLocationResolver(c.providers, c.resourceGroups)
	step, err := azwebapp.NewWebAppCreateStep(c.webApps, opts)
	if err != nil {
		return err
	}

	if step.ShouldExecute(wctx) {
		if err := step.Execute(ctx, wctx); err != nil {
			return err
		}
	}
	return cmdutil.WriteJSON(out, wctx.Site)
}
