// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package prepare turns an input.WebApp into an azwebapp.WizardContext by looking up the
// referenced resources in Azure.
package prepare

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azwebapp"
	"github.com/Azure/azwebapp/internal/input"
	"github.com/Azure/azwebapp/stacks"
	"github.com/Azure/azwebapp/to"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrPlanOSMismatch is returned when the App Service plan does not host the requested OS.
var ErrPlanOSMismatch = errors.New("plan operating system does not match")

// PlansClient is the subset of *armappservice.PlansClient used to read the plan.
type PlansClient interface {
	Get(ctx context.Context, resourceGroupName string, name string, options *armappservice.PlansClientGetOptions) (armappservice.PlansClientGetResponse, error)
}

// StacksLister lists the available web app stacks, e.g. *stacks.Client.
type StacksLister interface {
	List(ctx context.Context, os stacks.OS) ([]stacks.AppStack, error)
}

// Resolver looks up the resources referenced by an input.WebApp.
type Resolver struct {
	subscriptionID string
	plans          PlansClient
	resourceGroups azwebapp.ResourceGroupsClient
	stacks         StacksLister
	logger         *zap.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(subscriptionID string, plans PlansClient, resourceGroups azwebapp.ResourceGroupsClient, lister StacksLister, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		subscriptionID: subscriptionID,
		plans:          plans,
		resourceGroups: resourceGroups,
		stacks:         lister,
		logger:         logger,
	}
}

// WizardContext validates w and returns a populated WizardContext.
// The plan, resource group and stacks are fetched concurrently.
func (r *Resolver) WizardContext(ctx context.Context, w *input.WebApp) (*azwebapp.WizardContext, error) {
	if err := w.Validate(r.logger); err != nil {
		return nil, fmt.Errorf("prepare.WizardContext: %w", err)
	}

	subscriptionID := r.subscriptionID
	if w.SubscriptionID != "" {
		subscriptionID = w.SubscriptionID
	}
	if subscriptionID == "" {
		return nil, azwebapp.NewErrPropertyMustNotBeNil("SubscriptionID")
	}

	var (
		plan *armappservice.Plan
		rg   *armresources.ResourceGroup
		all  []stacks.AppStack
	)
	os := stackOS(w.OS)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := r.plans.Get(gctx, w.Plan.ResourceGroup, w.Plan.Name, nil)
		if err != nil {
			return fmt.Errorf("getting plan %s/%s: %w", w.Plan.ResourceGroup, w.Plan.Name, err)
		}
		plan = &resp.Plan
		return nil
	})
	g.Go(func() error {
		resp, err := r.resourceGroups.Get(gctx, w.ResourceGroup, nil)
		if err != nil {
			return fmt.Errorf("getting resource group %s: %w", w.ResourceGroup, err)
		}
		rg = &resp.ResourceGroup
		return nil
	})
	g.Go(func() error {
		var err error
		all, err = r.stacks.List(gctx, os)
		if err != nil {
			return fmt.Errorf("listing stacks: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("prepare.WizardContext: %w", err)
	}

	if err := checkPlanOS(plan, azwebapp.WebsiteOS(w.OS)); err != nil {
		return nil, fmt.Errorf("prepare.WizardContext: %w", err)
	}

	stack, err := stacks.Find(all, os, w.Stack.Name, w.Stack.MajorVersion, w.Stack.MinorVersion)
	if err != nil {
		return nil, fmt.Errorf("prepare.WizardContext: %w", err)
	}

	wctx := &azwebapp.WizardContext{
		SubscriptionID:              subscriptionID,
		ResourceGroup:               rg,
		NewSiteName:                 w.Name,
		NewSiteKind:                 w.Kind,
		NewSiteOS:                   azwebapp.WebsiteOS(w.OS),
		NewSiteStack:                stack,
		NewSiteDomainNameLabelScope: azwebapp.DomainNameLabelScope(w.DomainNameLabelScope),
		Plan:                        plan,
	}
	if w.Location != "" {
		wctx.Location = azwebapp.NormalizeLocation(w.Location)
	}

	if w.IsJava() {
		js, err := stacks.FindJava(all, os, w.JavaContainer.MajorVersion, w.JavaContainer.MinorVersion)
		if err != nil {
			return nil, fmt.Errorf("prepare.WizardContext: java container: %w", err)
		}
		wctx.NewSiteJavaStack = js
	}
	if ai := w.AppInsights; ai != nil {
		wctx.AppInsightsComponent = &azwebapp.AppInsightsComponent{
			ID:               ai.ID,
			Name:             ai.Name,
			ConnectionString: ai.ConnectionString,
		}
	}
	if cl := w.CustomLocation; cl != nil {
		wctx.CustomLocation = &azwebapp.CustomLocation{
			ID:       cl.ID,
			Name:     cl.Name,
			Location: cl.Location,
		}
	}

	r.logger.Debug("prepared wizard context",
		zap.String("name", wctx.NewSiteName),
		zap.String("stack", stack.Stack.Properties.Value),
		zap.String("minorVersion", stack.MinorVersion.Value),
		zap.String("plan", to.ValOrZero(plan.ID)),
	)
	return wctx, nil
}

func stackOS(os string) stacks.OS {
	if azwebapp.WebsiteOS(os) == azwebapp.WebsiteOSLinux {
		return stacks.OSLinux
	}
	return stacks.OSWindows
}

// checkPlanOS compares the plan's reserved flag, which is set for Linux plans, with the requested OS.
func checkPlanOS(plan *armappservice.Plan, os azwebapp.WebsiteOS) error {
	if plan == nil || plan.Properties == nil || plan.Properties.Reserved == nil {
		return nil
	}
	linux := *plan.Properties.Reserved
	if linux != (os == azwebapp.WebsiteOSLinux) {
		return fmt.Errorf("plan %s, web app %s: %w", planOS(linux), os, ErrPlanOSMismatch)
	}
	return nil
}

func planOS(linux bool) string {
	if linux {
		return string(azwebapp.WebsiteOSLinux)
	}
	return string(azwebapp.WebsiteOSWindows)
}
