// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azwebapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
	"github.com/Azure/azwebapp/to"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	moduleName    = "github.com/Azure/azwebapp"
	moduleVersion = "v0.1.0"

	// DomainNameLabelScopeAPIVersion is the Microsoft.Web API version that accepts autoGeneratedDomainNameLabelScope.
	DomainNameLabelScopeAPIVersion = "2024-04-01"

	// WebAppCreateStepPriority orders the step within a creation wizard.
	WebAppCreateStepPriority = 140

	defaultPollFrequency = 5 * time.Second
)

// WebAppsClient is the subset of *armappservice.WebAppsClient used to create and read sites.
type WebAppsClient interface {
	BeginCreateOrUpdate(ctx context.Context, resourceGroupName string, name string, siteEnvelope armappservice.Site, options *armappservice.WebAppsClientBeginCreateOrUpdateOptions) (*runtime.Poller[armappservice.WebAppsClientCreateOrUpdateResponse], error)
	Get(ctx context.Context, resourceGroupName string, name string, options *armappservice.WebAppsClientGetOptions) (armappservice.WebAppsClientGetResponse, error)
}

// WebAppCreateStepOptions are the dependencies of a WebAppCreateStep.
type WebAppCreateStepOptions struct {
	// Credential authenticates the direct request made for non-global domain name label scopes. Required.
	Credential azcore.TokenCredential
	// Locations resolves the deployment location. Required.
	Locations LocationResolver
	// Cloud selects the Resource Manager endpoint, defaults to Azure public cloud.
	Cloud cloud.Configuration
	// Transport sends the direct request, defaults to the azcore HTTP client.
	Transport policy.Transporter
	// Telemetry receives the selections made in the wizard.
	Telemetry Telemetry
	Logger    *zap.Logger
	// PollFrequency is the polling interval for the SDK create operation.
	PollFrequency time.Duration
}

// WebAppCreateStep creates a web app from a WizardContext.
// Do not create this directly, use NewWebAppCreateStep instead.
type WebAppCreateStep struct {
	client    WebAppsClient
	locations LocationResolver
	telemetry Telemetry
	logger    *zap.Logger
	global    siteEnvelope
	scoped    *scopedEnvelope
}

// NewWebAppCreateStep returns a new WebAppCreateStep.
func NewWebAppCreateStep(client WebAppsClient, opts *WebAppCreateStepOptions) (*WebAppCreateStep, error) {
	if client == nil {
		return nil, errors.New("NewWebAppCreateStep: client must not be nil")
	}
	if opts == nil || opts.Credential == nil {
		return nil, errors.New("NewWebAppCreateStep: credential must not be nil")
	}
	if opts.Locations == nil {
		return nil, errors.New("NewWebAppCreateStep: location resolver must not be nil")
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	telemetry := opts.Telemetry
	if telemetry == nil {
		telemetry = NewMapTelemetry()
	}
	freq := opts.PollFrequency
	if freq == 0 {
		freq = defaultPollFrequency
	}

	cld := opts.Cloud
	rm, ok := cld.Services[cloud.ResourceManager]
	if !ok {
		cld = cloud.AzurePublic
		rm = cld.Services[cloud.ResourceManager]
	}

	pl := runtime.NewPipeline(moduleName, moduleVersion, runtime.PipelineOptions{}, &policy.ClientOptions{
		Cloud:     cld,
		Transport: opts.Transport,
		Retry:     policy.RetryOptions{MaxRetries: -1},
	})

	return &WebAppCreateStep{
		client:    client,
		locations: opts.Locations,
		telemetry: telemetry,
		logger:    logger,
		global: &globalEnvelope{
			client:        client,
			pollFrequency: freq,
		},
		scoped: &scopedEnvelope{
			client:   client,
			cred:     opts.Credential,
			pipeline: pl,
			endpoint: rm.Endpoint,
			audience: rm.Audience,
			logger:   logger,
		},
	}, nil
}

// Priority returns the position of the step within a creation wizard.
func (s *WebAppCreateStep) Priority() int {
	return WebAppCreateStepPriority
}

// ShouldExecute returns false if the site has already been created.
func (s *WebAppCreateStep) ShouldExecute(wctx *WizardContext) bool {
	return wctx.Site == nil
}

// Execute creates the web app and stores it in wctx.Site.
// Errors from Azure are returned as is and the step does not retry.
func (s *WebAppCreateStep) Execute(ctx context.Context, wctx *WizardContext) error {
	s.recordTelemetry(wctx)

	if wctx.NewSiteName == "" {
		return NewErrPropertyMustNotBeNil("NewSiteName")
	}
	if wctx.ResourceGroup == nil || to.ValOrZero(wctx.ResourceGroup.Name) == "" {
		return NewErrPropertyMustNotBeNil("ResourceGroup.Name")
	}
	rgName := *wctx.ResourceGroup.Name

	s.logger.Info("Creating new web app", zap.String("name", wctx.NewSiteName), zap.String("resourceGroup", rgName))

	site, err := s.createWebApp(ctx, wctx, rgName)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to create web app %q", wctx.NewSiteName), zap.Error(err))
		return err
	}

	wctx.Site = site
	var host string
	if site.Properties != nil {
		host = to.ValOrZero(site.Properties.DefaultHostName)
	}
	s.logger.Info(fmt.Sprintf("Successfully created web app %q: %s", wctx.NewSiteName, host))
	return nil
}

func (s *WebAppCreateStep) createWebApp(ctx context.Context, wctx *WizardContext, rgName string) (*armappservice.Site, error) {
	envelope := s.envelope(wctx)

	location, err := s.locations.Location(ctx, wctx, WebProvider)
	if err != nil {
		return nil, err
	}
	if location == "" {
		return nil, NewErrPropertyMustNotBeNil("Location")
	}

	cfg, err := NewSiteConfig(wctx)
	if err != nil {
		return nil, err
	}

	return envelope.create(ctx, rgName, newSiteDescriptor(wctx, location, cfg))
}

// envelope selects the request shape. It is chosen once per execution.
func (s *WebAppCreateStep) envelope(wctx *WizardContext) siteEnvelope {
	if wctx.NewSiteDomainNameLabelScope == DomainNameLabelScopeGlobal {
		return s.global
	}
	return s.scoped.withScope(wctx.SubscriptionID, wctx.NewSiteDomainNameLabelScope)
}

func (s *WebAppCreateStep) recordTelemetry(wctx *WizardContext) {
	s.telemetry.SetProperty("newSiteOS", string(wctx.NewSiteOS))
	if st := wctx.NewSiteStack; st != nil {
		s.telemetry.SetProperty("newSiteStack", st.Stack.Properties.Value)
		s.telemetry.SetProperty("newSiteMajorVersion", st.MajorVersion.Value)
		s.telemetry.SetProperty("newSiteMinorVersion", st.MinorVersion.Value)
	}
	if js := wctx.NewSiteJavaStack; js != nil {
		s.telemetry.SetProperty("newSiteJavaStack", js.Stack.Properties.Value)
		s.telemetry.SetProperty("newSiteJavaMajorVersion", js.MajorVersion.Value)
		s.telemetry.SetProperty("newSiteJavaMinorVersion", js.MinorVersion.Value)
	}
	if wctx.Plan != nil && wctx.Plan.SKU != nil {
		s.telemetry.SetProperty("planSkuTier", to.ValOrZero(wctx.Plan.SKU.Tier))
	}
}

// globalEnvelope creates the site through the SDK.
type globalEnvelope struct {
	client        WebAppsClient
	pollFrequency time.Duration
}

func (e *globalEnvelope) create(ctx context.Context, rgName string, d *siteDescriptor) (*armappservice.Site, error) {
	poller, err := e.client.BeginCreateOrUpdate(ctx, rgName, d.name, d.site(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{Frequency: e.pollFrequency})
	if err != nil {
		return nil, err
	}
	return &resp.Site, nil
}

// scopedEnvelope creates the site with a direct PUT because the SDK does not support
// DomainNameLabelScopeAPIVersion. The response of the PUT has a different shape than the SDK model,
// so it is discarded and the site is read back through the SDK.
type scopedEnvelope struct {
	client         WebAppsClient
	cred           azcore.TokenCredential
	pipeline       runtime.Pipeline
	endpoint       string
	audience       string
	logger         *zap.Logger
	subscriptionID string
	scope          DomainNameLabelScope
}

func (e *scopedEnvelope) withScope(subscriptionID string, scope DomainNameLabelScope) *scopedEnvelope {
	cpy := *e
	cpy.subscriptionID = subscriptionID
	cpy.scope = scope
	return &cpy
}

func (e *scopedEnvelope) create(ctx context.Context, rgName string, d *siteDescriptor) (*armappservice.Site, error) {
	if e.subscriptionID == "" {
		return nil, NewErrPropertyMustNotBeNil("SubscriptionID")
	}
	if err := e.put(ctx, rgName, d.name, d.payload(e.scope)); err != nil {
		return nil, err
	}
	resp, err := e.client.Get(ctx, rgName, d.name, nil)
	if err != nil {
		return nil, err
	}
	return &resp.Site, nil
}

func (e *scopedEnvelope) put(ctx context.Context, rgName, siteName string, payload *SitePayload) error {
	urlPath := fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Web/sites/%s",
		url.PathEscape(e.subscriptionID),
		url.PathEscape(rgName),
		url.PathEscape(siteName),
	)
	req, err := runtime.NewRequest(ctx, http.MethodPut, runtime.JoinPaths(e.endpoint, urlPath))
	if err != nil {
		return err
	}
	q := req.Raw().URL.Query()
	q.Set("api-version", DomainNameLabelScopeAPIVersion)
	req.Raw().URL.RawQuery = q.Encode()

	token, err := e.cred.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{strings.TrimSuffix(e.audience, "/") + "/.default"},
	})
	if err != nil {
		return err
	}

	if err := runtime.MarshalAsJSON(req, payload); err != nil {
		return fmt.Errorf("scopedEnvelope.put: marshaling payload: %w", err)
	}
	requestID := uuid.NewString()
	req.Raw().Header.Set("Content-Type", "application/json")
	req.Raw().Header.Set("Authorization", "Bearer "+token.Token)
	req.Raw().Header.Set("x-ms-client-request-id", requestID)

	e.logger.Debug("sending site payload",
		zap.String("site", siteName),
		zap.String("scope", string(payload.Properties.AutoGeneratedDomainNameLabelScope)),
		zap.String("clientRequestId", requestID),
	)

	resp, err := e.pipeline.Do(req)
	if err != nil {
		return err
	}
	if !runtime.HasStatusCode(resp, http.StatusOK, http.StatusCreated, http.StatusAccepted) {
		return runtime.NewResponseError(resp)
	}
	runtime.Drain(resp)
	return nil
}
