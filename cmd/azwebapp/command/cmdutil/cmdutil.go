// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package cmdutil builds the settings, logger and Azure clients shared by the commands.
package cmdutil

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azwebapp/internal/auth"
	"github.com/Azure/azwebapp/internal/environment"
	"github.com/Azure/azwebapp/internal/logging"
	"github.com/Azure/azwebapp/stacks"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const configPathFlag = "config-path"

// AddPersistentFlags adds the flags shared by every command.
func AddPersistentFlags(flags *pflag.FlagSet) {
	flags.String(environment.KeySubscriptionID, "", "The subscription ID, defaults to ARM_SUBSCRIPTION_ID or AZURE_SUBSCRIPTION_ID")
	flags.String(environment.KeyEnvironment, "", "The Azure cloud: public, usgovernment or china")
	flags.String(environment.KeyLogLevel, "info", "The log level: debug, info, warn or error")
	flags.Duration(environment.KeyPollFrequency, 0, "How often to poll long running operations")
	flags.String(configPathFlag, ".", "The directory containing the azwebapp config file")
}

// Env holds everything a command needs to talk to Azure.
type Env struct {
	Settings       *environment.Settings
	Logger         *zap.Logger
	Credential     azcore.TokenCredential
	Cloud          cloud.Configuration
	SubscriptionID string
}

// NewEnv loads settings for cmd and creates the logger and credential.
func NewEnv(cmd *cobra.Command) (*Env, error) {
	configPath, _ := cmd.Flags().GetString(configPathFlag)
	s, err := environment.Load(cmd.Flags(), configPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(s.LogLevel)
	if err != nil {
		return nil, err
	}

	cld := auth.GetCloudFromEnv()
	if s.Environment != "" {
		c, ok := auth.CloudFromName(s.Environment)
		if !ok {
			return nil, fmt.Errorf("unknown environment %q", s.Environment)
		}
		cld = c
	}

	cred, err := auth.NewToken(cld)
	if err != nil {
		return nil, err
	}

	sub := s.SubscriptionID
	if sub == "" {
		sub = auth.SubscriptionIDFromEnv()
	}

	return &Env{
		Settings:       s,
		Logger:         logger,
		Credential:     cred,
		Cloud:          cld,
		SubscriptionID: sub,
	}, nil
}

// ClientOptions returns the ARM client options for the selected cloud.
func (e *Env) ClientOptions() *arm.ClientOptions {
	return &arm.ClientOptions{
		ClientOptions: policy.ClientOptions{Cloud: e.Cloud},
	}
}

// WebAppsClients returns the App Service clients for the subscription.
func (e *Env) WebAppsClients() (*armappservice.ClientFactory, error) {
	if e.SubscriptionID == "" {
		return nil, fmt.Errorf("subscription ID is required, set --%s", environment.KeySubscriptionID)
	}
	return armappservice.NewClientFactory(e.SubscriptionID, e.Credential, e.ClientOptions())
}

// ResourcesClients returns the resource manager clients for the subscription.
func (e *Env) ResourcesClients() (*armresources.ClientFactory, error) {
	if e.SubscriptionID == "" {
		return nil, fmt.Errorf("subscription ID is required, set --%s", environment.KeySubscriptionID)
	}
	return armresources.NewClientFactory(e.SubscriptionID, e.Credential, e.ClientOptions())
}

// StacksClient returns a client for the webAppStacks API.
func (e *Env) StacksClient() (*stacks.Client, error) {
	return stacks.NewClient(e.Credential, &stacks.ClientOptions{
		ClientOptions: *e.ClientOptions(),
		Logger:        e.Logger,
	})
}
