// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package stacks

import (
	"fmt"
	"os"
	"strings"

	"github.com/Azure/azwebapp/cmd/azwebapp/command/cmdutil"
	"github.com/Azure/azwebapp/internal/doc"
	"github.com/Azure/azwebapp/stacks"
	"github.com/spf13/cobra"
)

// StacksCmd lists the web app stacks.
var StacksCmd = cobra.Command{
	Use:   "stacks",
	Short: "Lists the runtime stacks available to web apps.",
	Long:  `Lists the runtime stacks available to web apps, as Markdown or JSON.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := runStacks(cmd); err != nil {
			cmd.PrintErrf("%s stacks command: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
	},
}

func init() {
	StacksCmd.Flags().String("os", "all", "Only list stacks for this operating system: linux, windows or all")
	StacksCmd.Flags().Bool("json", false, "Write JSON instead of Markdown")
}

func parseOS(s string) (stacks.OS, error) {
	switch strings.ToLower(s) {
	case "", "all":
		return stacks.OSAll, nil
	case "linux":
		return stacks.OSLinux, nil
	case "windows":
		return stacks.OSWindows, nil
	}
	return "", fmt.Errorf("invalid os %q, must be one of linux, windows or all", s)
}

func runStacks(cmd *cobra.Command) error {
	osFlag, _ := cmd.Flags().GetString("os")
	asJSON, _ := cmd.Flags().GetBool("json")

	stackOS, err := parseOS(osFlag)
	if err != nil {
		return err
	}

	env, err := cmdutil.NewEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Logger.Sync() // nolint: errcheck

	c, err := env.StacksClient()
	if err != nil {
		return err
	}
	all, err := c.List(cmd.Context(), stackOS)
	if err != nil {
		return err
	}

	if asJSON {
		return cmdutil.WriteJSON(cmd.OutOrStdout(), all)
	}
	return doc.StacksMd(cmd.OutOrStdout(), all, stackOS)
}
