// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package auth

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// environmentToCloud maps environment names to their corresponding cloud configurations.
var environmentToCloud = map[string]cloud.Configuration{
	"public":       cloud.AzurePublic,
	"usgovernment": cloud.AzureGovernment,
	"china":        cloud.AzureChina,
}

// CloudFromName returns the cloud configuration for an environment name such as "usgovernment".
func CloudFromName(name string) (cloud.Configuration, bool) {
	cfg, ok := environmentToCloud[strings.ToLower(name)]
	return cfg, ok
}

// GetCloudFromEnv returns the cloud selected by ARM_ENVIRONMENT or AZURE_ENVIRONMENT, defaulting to Azure public cloud.
func GetCloudFromEnv() cloud.Configuration {
	if env := getFirstSetEnvVar("ARM_ENVIRONMENT", "AZURE_ENVIRONMENT"); env != "" {
		if cfg, ok := CloudFromName(env); ok {
			return cfg
		}
	}
	return cloud.AzurePublic
}

// SubscriptionIDFromEnv returns the subscription ID from ARM_SUBSCRIPTION_ID or AZURE_SUBSCRIPTION_ID.
func SubscriptionIDFromEnv() string {
	return getFirstSetEnvVar("ARM_SUBSCRIPTION_ID", "AZURE_SUBSCRIPTION_ID")
}

// NewToken creates a new Entra token credential for the given cloud.
// It uses well-known Terraform ARM environment variables to configure the token acquisition.
// Credentials are tried in order: client secret, workload identity, managed identity, Azure CLI.
func NewToken(cld cloud.Configuration) (azcore.TokenCredential, error) {
	clientOpts := azcore.ClientOptions{Cloud: cld}
	tenantID := getFirstSetEnvVar("ARM_TENANT_ID", "AZURE_TENANT_ID")
	clientID := getFirstSetEnvVar("ARM_CLIENT_ID", "AZURE_CLIENT_ID")
	creds := make([]azcore.TokenCredential, 0, 4)

	if secret := getFirstSetEnvVar("ARM_CLIENT_SECRET", "AZURE_CLIENT_SECRET"); secret != "" {
		c, err := azidentity.NewClientSecretCredential(tenantID, clientID, secret, &azidentity.ClientSecretCredentialOptions{
			ClientOptions: clientOpts,
		})
		if err != nil {
			return nil, fmt.Errorf("auth.NewToken: client secret credential: %w", err)
		}
		creds = append(creds, c)
	}

	if updateBoolValueAnyTrue(false, "ARM_USE_OIDC", "ARM_USE_AKS_WORKLOAD_IDENTITY") {
		c, err := azidentity.NewWorkloadIdentityCredential(&azidentity.WorkloadIdentityCredentialOptions{
			ClientOptions: clientOpts,
			ClientID:      clientID,
			TenantID:      tenantID,
			TokenFilePath: getFirstSetEnvVar("ARM_OIDC_TOKEN_FILE_PATH", "AZURE_FEDERATED_TOKEN_FILE"),
		})
		if err != nil {
			return nil, fmt.Errorf("auth.NewToken: workload identity credential: %w", err)
		}
		creds = append(creds, c)
	}

	if updateBoolValueAnyTrue(false, "ARM_USE_MSI") {
		opts := &azidentity.ManagedIdentityCredentialOptions{ClientOptions: clientOpts}
		if clientID != "" {
			opts.ID = azidentity.ClientID(clientID)
		}
		c, err := azidentity.NewManagedIdentityCredential(opts)
		if err != nil {
			return nil, fmt.Errorf("auth.NewToken: managed identity credential: %w", err)
		}
		creds = append(creds, c)
	}

	if useCLI() {
		c, err := azidentity.NewAzureCLICredential(&azidentity.AzureCLICredentialOptions{TenantID: tenantID})
		if err != nil {
			return nil, fmt.Errorf("auth.NewToken: azure cli credential: %w", err)
		}
		creds = append(creds, c)
	}

	if len(creds) == 0 {
		return nil, fmt.Errorf("auth.NewToken: no credential configured, set ARM_USE_CLI, ARM_USE_MSI, ARM_USE_OIDC or ARM_CLIENT_SECRET")
	}
	return azidentity.NewChainedTokenCredential(creds, nil)
}

// Scope returns the token scope for the Resource Manager audience of the cloud.
func Scope(cld cloud.Configuration) policy.TokenRequestOptions {
	audience := cld.Services[cloud.ResourceManager].Audience
	return policy.TokenRequestOptions{Scopes: []string{strings.TrimSuffix(audience, "/") + "/.default"}}
}

// useCLI is true unless ARM_USE_CLI is set to a false value.
func useCLI() bool {
	cli := getFirstSetEnvVar("ARM_USE_CLI")
	if cli == "" {
		return true
	}
	// if env var is set only disable if we can definitively say we are not using the CLI
	b, err := strconv.ParseBool(cli)
	if err != nil {
		return true
	}
	return b
}

func getFirstSetEnvVar(vars ...string) string {
	for _, v := range vars {
		if val := os.Getenv(v); val != "" {
			return val
		}
	}

	return ""
}

func updateBoolValueAnyTrue(current bool, vars ...string) bool {
	if current {
		return true
	}

	for _, v := range vars {
		if val := os.Getenv(v); val != "" {
			b, _ := strconv.ParseBool(val)
			if b {
				return true
			}
		}
	}

	return false
}
