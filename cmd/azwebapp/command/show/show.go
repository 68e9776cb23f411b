// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package show

import (
	"context"
	"io"
	"os"

	"github.com/Azure/azwebapp"
	"github.com/Azure/azwebapp/cmd/azwebapp/command/cmdutil"
	"github.com/Azure/azwebapp/internal/doc"
	"github.com/spf13/cobra"
)

// ShowCmd shows a web app and its full site config.
var ShowCmd = cobra.Command{
	Use:   "show -g resource-group -n name",
	Short: "Shows the properties of a web app.",
	Long:  `Shows the properties of a web app, including its full site config, as JSON or Markdown.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := runShow(cmd); err != nil {
			cmd.PrintErrf("%s show command: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
	},
}

func init() {
	ShowCmd.Flags().StringP("resource-group", "g", "", "The resource group of the web app")
	ShowCmd.Flags().StringP("name", "n", "", "The name of the web app")
	ShowCmd.Flags().Bool("markdown", false, "Write Markdown instead of JSON")
	ShowCmd.MarkFlagRequired("resource-group") // nolint: errcheck
	ShowCmd.MarkFlagRequired("name")           // nolint: errcheck
}

func runShow(cmd *cobra.Command) error {
	rg, _ := cmd.Flags().GetString("resource-group")
	name, _ := cmd.Flags().GetString("name")
	md, _ := cmd.Flags().GetBool("markdown")

	env, err := cmdutil.NewEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Logger.Sync() // nolint: errcheck

	web, err := env.WebAppsClients()
	if err != nil {
		return err
	}

	return showSite(cmd.Context(), cmd.OutOrStdout(), web.NewWebAppsClient(), rg, name, md)
}

func showSite(ctx context.Context, w io.Writer, client azwebapp.SiteReader, rg, name string, md bool) error {
	site, err := azwebapp.ViewProperties(ctx, client, rg, name)
	if err != nil {
		return err
	}

	if md {
		return doc.SiteMd(w, site)
	}
	return cmdutil.WriteJSON(w, site)
}
