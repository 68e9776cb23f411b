// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

/*
Package auth creates an azcore.TokenCredential from well-known Azure/Terraform environment
variables using azidentity.

Usage

	cred, err := auth.NewToken(auth.GetCloudFromEnv())
	if err != nil {
	    // handle error
	}

# Environment variables

  - ARM_ENVIRONMENT, AZURE_ENVIRONMENT ("public", "usgovernment", "china")
  - ARM_SUBSCRIPTION_ID, AZURE_SUBSCRIPTION_ID
  - ARM_CLIENT_ID, AZURE_CLIENT_ID
  - ARM_CLIENT_SECRET, AZURE_CLIENT_SECRET
  - ARM_TENANT_ID, AZURE_TENANT_ID
  - ARM_OIDC_TOKEN_FILE_PATH, AZURE_FEDERATED_TOKEN_FILE
  - ARM_USE_CLI, ARM_USE_MSI, ARM_USE_OIDC, ARM_USE_AKS_WORKLOAD_IDENTITY

The Azure CLI is used by default; set ARM_USE_CLI=false to disable it.
*/
package auth
