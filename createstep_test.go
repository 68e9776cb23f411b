// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azwebapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/fake"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
	"github.com/Azure/azwebapp/to"
	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	testEndpoint = "https://management.azure.com"
	testSitePath = "/subscriptions/" + testSubscriptionID + "/resourceGroups/" + testResourceGroup + "/providers/Microsoft.Web/sites/" + testSiteName
)

type locationFunc func(ctx context.Context, wctx *WizardContext, provider string) (string, error)

func (f locationFunc) Location(ctx context.Context, wctx *WizardContext, provider string) (string, error) {
	return f(ctx, wctx, provider)
}

func staticLocation(loc string) LocationResolver {
	return locationFunc(func(context.Context, *WizardContext, string) (string, error) {
		return loc, nil
	})
}

type testStep struct {
	step      *WebAppCreateStep
	telemetry *MapTelemetry
	logs      *observer.ObservedLogs
}

// newTestStep returns a step whose SDK client and direct requests both go through gock.
func newTestStep(t *testing.T, locations LocationResolver) *testStep {
	t.Helper()

	hc := &http.Client{}
	gock.InterceptClient(hc)
	t.Cleanup(func() {
		gock.RestoreClient(hc)
		gock.Off()
	})

	cred := &fake.TokenCredential{}
	client, err := armappservice.NewWebAppsClient(testSubscriptionID, cred, &arm.ClientOptions{
		ClientOptions: policy.ClientOptions{
			Transport: hc,
			Retry:     policy.RetryOptions{MaxRetries: -1},
		},
	})
	require.NoError(t, err)

	core, logs := observer.New(zapcore.InfoLevel)
	tel := NewMapTelemetry()
	step, err := NewWebAppCreateStep(client, &WebAppCreateStepOptions{
		Credential:    cred,
		Locations:     locations,
		Transport:     hc,
		Telemetry:     tel,
		Logger:        zap.New(core),
		PollFrequency: time.Millisecond,
	})
	require.NoError(t, err)
	return &testStep{step: step, telemetry: tel, logs: logs}
}

func testSiteResponse(hostName string) map[string]any {
	return map[string]any{
		"id":       testSitePath,
		"name":     testSiteName,
		"kind":     "app,linux",
		"location": "West Europe",
		"properties": map[string]any{
			"defaultHostName": hostName,
			"reserved":        true,
		},
	}
}

func readBody(req *http.Request) (map[string]any, error) {
	data, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	req.Body = io.NopCloser(bytes.NewReader(data))
	result := make(map[string]any)
	return result, json.Unmarshal(data, &result)
}

func TestNewWebAppCreateStepValidation(t *testing.T) {
	t.Parallel()

	_, err := NewWebAppCreateStep(nil, &WebAppCreateStepOptions{})
	assert.Error(t, err)
	_, err = NewWebAppCreateStep(&armappservice.WebAppsClient{}, nil)
	assert.Error(t, err)
	_, err = NewWebAppCreateStep(&armappservice.WebAppsClient{}, &WebAppCreateStepOptions{Credential: &fake.TokenCredential{}})
	assert.Error(t, err)
}

func TestWebAppCreateStepShouldExecute(t *testing.T) {
	t.Parallel()

	step, err := NewWebAppCreateStep(&armappservice.WebAppsClient{}, &WebAppCreateStepOptions{
		Credential: &fake.TokenCredential{},
		Locations:  staticLocation("westeurope"),
	})
	require.NoError(t, err)
	assert.Equal(t, 140, step.Priority())

	wctx := &WizardContext{}
	assert.True(t, step.ShouldExecute(wctx))
	wctx.Site = &armappservice.Site{}
	assert.False(t, step.ShouldExecute(wctx))
}

// The following tests use the global gock registry so they do not run in parallel.
func TestWebAppCreateStepGlobal(t *testing.T) {
	ts := newTestStep(t, staticLocation("westeurope"))

	gock.New(testEndpoint).
		Put(testSitePath).
		MatchHeader("Authorization", "Bearer fake_token").
		AddMatcher(func(req *http.Request, _ *gock.Request) (bool, error) {
			body, err := readBody(req)
			if err != nil {
				return false, err
			}
			props, ok := body["properties"].(map[string]any)
			if !ok {
				return false, nil
			}
			_, scoped := props["autoGeneratedDomainNameLabelScope"]
			return body["kind"] == "app,linux" && body["location"] == "westeurope" && props["reserved"] == true && !scoped, nil
		}).
		Reply(http.StatusOK).
		JSON(testSiteResponse("site1.azurewebsites.net"))

	wctx := newTestWizardContext(WebsiteOSLinux, newTestStack("node", "18", "18-lts", "Node 18 LTS", "NODE|18-lts", "~18"))
	require.NoError(t, ts.step.Execute(context.Background(), wctx))
	assert.True(t, gock.IsDone())

	require.NotNil(t, wctx.Site)
	assert.Equal(t, "site1.azurewebsites.net", to.ValOrZero(wctx.Site.Properties.DefaultHostName))
	assert.False(t, ts.step.ShouldExecute(wctx))

	props := ts.telemetry.Properties()
	assert.Equal(t, "linux", props["newSiteOS"])
	assert.Equal(t, "node", props["newSiteStack"])
	assert.Equal(t, "18", props["newSiteMajorVersion"])
	assert.Equal(t, "18-lts", props["newSiteMinorVersion"])
	assert.Equal(t, "Basic", props["planSkuTier"])

	assert.Equal(t, 1, ts.logs.FilterMessage("Creating new web app").Len())
	assert.Equal(t, 1, ts.logs.FilterMessage(`Successfully created web app "site1": site1.azurewebsites.net`).Len())
}

func TestWebAppCreateStepScoped(t *testing.T) {
	ts := newTestStep(t, staticLocation("westeurope"))

	gock.New(testEndpoint).
		Put(testSitePath).
		MatchParam("api-version", DomainNameLabelScopeAPIVersion).
		MatchHeader("Authorization", "Bearer fake_token").
		MatchHeader("Content-Type", "application/json").
		AddMatcher(func(req *http.Request, _ *gock.Request) (bool, error) {
			body, err := readBody(req)
			if err != nil {
				return false, err
			}
			props, ok := body["properties"].(map[string]any)
			if !ok {
				return false, nil
			}
			return props["autoGeneratedDomainNameLabelScope"] == "TenantReuse" &&
				props["serverFarmId"] == testPlanID &&
				props["clientAffinityEnabled"] == true, nil
		}).
		Reply(http.StatusAccepted).
		JSON(map[string]any{"shape": "ignored"})
	gock.New(testEndpoint).
		Get(testSitePath).
		Reply(http.StatusOK).
		JSON(testSiteResponse("site1-abcdef.westeurope-01.azurewebsites.net"))

	wctx := newTestWizardContext(WebsiteOSLinux, newTestStack("python", "3", "3.11", "Python 3.11", "PYTHON|3.11", ""))
	wctx.NewSiteDomainNameLabelScope = DomainNameLabelScopeTenant
	require.NoError(t, ts.step.Execute(context.Background(), wctx))
	assert.True(t, gock.IsDone())
	assert.Equal(t, "site1-abcdef.westeurope-01.azurewebsites.net", to.ValOrZero(wctx.Site.Properties.DefaultHostName))
}

func TestWebAppCreateStepScopedError(t *testing.T) {
	ts := newTestStep(t, staticLocation("westeurope"))

	gock.New(testEndpoint).
		Put(testSitePath).
		MatchParam("api-version", DomainNameLabelScopeAPIVersion).
		Reply(http.StatusConflict).
		JSON(map[string]any{"error": map[string]any{"code": "Conflict", "message": "name taken"}})

	wctx := newTestWizardContext(WebsiteOSWindows, newTestStack("php", "8", "8.2", "PHP 8.2", "", "8.2"))
	wctx.NewSiteDomainNameLabelScope = DomainNameLabelScopeResourceGroup
	err := ts.step.Execute(context.Background(), wctx)

	var respErr *azcore.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusConflict, respErr.StatusCode)
	assert.Equal(t, "Conflict", respErr.ErrorCode)
	assert.Nil(t, wctx.Site)
	assert.Equal(t, 1, ts.logs.FilterMessage(`Failed to create web app "site1"`).Len())
}

func TestWebAppCreateStepPreconditions(t *testing.T) {
	ts := newTestStep(t, staticLocation("westeurope"))

	wctx := newTestWizardContext(WebsiteOSLinux, newTestStack("node", "18", "18-lts", "Node 18 LTS", "NODE|18-lts", "~18"))
	wctx.NewSiteName = ""
	err := ts.step.Execute(context.Background(), wctx)
	assert.ErrorIs(t, err, ErrPrecondition)

	wctx = newTestWizardContext(WebsiteOSLinux, newTestStack("node", "18", "18-lts", "Node 18 LTS", "NODE|18-lts", "~18"))
	wctx.ResourceGroup.Name = nil
	err = ts.step.Execute(context.Background(), wctx)
	assert.ErrorIs(t, err, ErrPrecondition)

	wctx = newTestWizardContext(WebsiteOSLinux, nil)
	err = ts.step.Execute(context.Background(), wctx)
	assert.ErrorIs(t, err, ErrPrecondition)
	// telemetry is recorded before validation
	assert.Equal(t, "linux", ts.telemetry.Properties()["newSiteOS"])
}

func TestWebAppCreateStepLocationFirst(t *testing.T) {
	boom := errors.New("location unavailable")
	ts := newTestStep(t, locationFunc(func(context.Context, *WizardContext, string) (string, error) {
		return "", boom
	}))

	wctx := newTestWizardContext(WebsiteOSLinux, nil)
	err := ts.step.Execute(context.Background(), wctx)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, wctx.Site)
}
