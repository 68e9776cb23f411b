// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package auth

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFirstSetEnvVar(t *testing.T) {
	t.Setenv("TEST_AUTH_VAR_1", "")
	t.Setenv("TEST_AUTH_VAR_2", "")
	assert.Empty(t, getFirstSetEnvVar("TEST_AUTH_VAR_1", "TEST_AUTH_VAR_2"))
	assert.Empty(t, getFirstSetEnvVar())

	t.Setenv("TEST_AUTH_VAR_2", "second")
	assert.Equal(t, "second", getFirstSetEnvVar("TEST_AUTH_VAR_1", "TEST_AUTH_VAR_2"))

	t.Setenv("TEST_AUTH_VAR_1", "first")
	assert.Equal(t, "first", getFirstSetEnvVar("TEST_AUTH_VAR_1", "TEST_AUTH_VAR_2"))
}

func TestUpdateBoolValueAnyTrue(t *testing.T) {
	t.Setenv("TEST_BOOL_VAR_1", "")
	assert.True(t, updateBoolValueAnyTrue(true, "TEST_BOOL_VAR_1"))

	t.Setenv("TEST_BOOL_VAR_1", "notabool")
	assert.False(t, updateBoolValueAnyTrue(false, "TEST_BOOL_VAR_1"))

	t.Setenv("TEST_BOOL_VAR_2", "1")
	assert.True(t, updateBoolValueAnyTrue(false, "TEST_BOOL_VAR_1", "TEST_BOOL_VAR_2"))
}

func TestGetCloudFromEnv(t *testing.T) {
	t.Setenv("ARM_ENVIRONMENT", "")
	t.Setenv("AZURE_ENVIRONMENT", "")
	assert.Equal(t, cloud.AzurePublic, GetCloudFromEnv())

	t.Setenv("AZURE_ENVIRONMENT", "China")
	assert.Equal(t, cloud.AzureChina, GetCloudFromEnv())

	t.Setenv("ARM_ENVIRONMENT", "usgovernment")
	assert.Equal(t, cloud.AzureGovernment, GetCloudFromEnv())

	t.Setenv("ARM_ENVIRONMENT", "mars")
	assert.Equal(t, cloud.AzurePublic, GetCloudFromEnv())
}

func TestScope(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"https://management.core.windows.net/.default"}, Scope(cloud.AzurePublic).Scopes)
}

func TestNewTokenNoCredential(t *testing.T) {
	t.Setenv("ARM_USE_CLI", "false")
	t.Setenv("ARM_USE_MSI", "")
	t.Setenv("ARM_USE_OIDC", "")
	t.Setenv("ARM_USE_AKS_WORKLOAD_IDENTITY", "")
	t.Setenv("ARM_CLIENT_SECRET", "")
	t.Setenv("AZURE_CLIENT_SECRET", "")

	_, err := NewToken(cloud.AzurePublic)
	assert.Error(t, err)
}

func TestNewTokenClientSecret(t *testing.T) {
	t.Setenv("ARM_USE_CLI", "false")
	t.Setenv("ARM_USE_MSI", "")
	t.Setenv("ARM_USE_OIDC", "")
	t.Setenv("ARM_USE_AKS_WORKLOAD_IDENTITY", "")
	t.Setenv("ARM_TENANT_ID", "00000000-0000-0000-0000-000000000001")
	t.Setenv("ARM_CLIENT_ID", "00000000-0000-0000-0000-000000000002")
	t.Setenv("ARM_CLIENT_SECRET", "secret")

	cred, err := NewToken(cloud.AzurePublic)
	require.NoError(t, err)
	assert.NotNil(t, cred)
}

func TestCloudFromName(t *testing.T) {
	t.Parallel()

	c, ok := CloudFromName("USGovernment")
	assert.True(t, ok)
	assert.Equal(t, cloud.AzureGovernment, c)

	_, ok = CloudFromName("mars")
	assert.False(t, ok)
}
