// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azwebapp

import (
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azwebapp/stacks"
)

// WebsiteOS is the operating system of a web app.
type WebsiteOS string

const (
	WebsiteOSLinux   WebsiteOS = "linux"
	WebsiteOSWindows WebsiteOS = "windows"
)

// DomainNameLabelScope controls the uniqueness scope of the generated default host name.
type DomainNameLabelScope string

const (
	DomainNameLabelScopeGlobal        DomainNameLabelScope = "NoReuse" // DomainNameLabelScopeGlobal selects the globally unique host name, created through the SDK.
	DomainNameLabelScopeTenant        DomainNameLabelScope = "TenantReuse"
	DomainNameLabelScopeSubscription  DomainNameLabelScope = "SubscriptionReuse"
	DomainNameLabelScopeResourceGroup DomainNameLabelScope = "ResourceGroupReuse"
)

// DomainNameLabelScopes lists the valid DomainNameLabelScope values.
func DomainNameLabelScopes() []DomainNameLabelScope {
	return []DomainNameLabelScope{
		DomainNameLabelScopeGlobal,
		DomainNameLabelScopeTenant,
		DomainNameLabelScopeSubscription,
		DomainNameLabelScopeResourceGroup,
	}
}

const (
	// DefaultSiteKind is the base kind of a web app.
	DefaultSiteKind = "app"

	// WebProvider is the resource provider namespace of App Service.
	WebProvider = "Microsoft.Web"
)

// AppInsightsComponent is the Application Insights component the web app reports to.
type AppInsightsComponent struct {
	ID               string
	Name             string
	ConnectionString string
}

// CustomLocation is an Azure Arc custom location the web app is deployed to.
type CustomLocation struct {
	ID       string
	Name     string
	Location string
}

// WizardContext holds the selections used to create a web app.
// It is populated before WebAppCreateStep runs; the step only sets Site.
type WizardContext struct {
	SubscriptionID string
	ResourceGroup  *armresources.ResourceGroup
	Location       string // Location is the selected location name, e.g. `westeurope`. If empty the resource group location is used.

	NewSiteName                 string
	NewSiteKind                 string // NewSiteKind is the base kind, DefaultSiteKind if empty.
	NewSiteOS                   WebsiteOS
	NewSiteStack                *stacks.FullWebAppStack
	NewSiteJavaStack            *stacks.FullJavaStack // NewSiteJavaStack is the Java container, required when NewSiteStack is Java.
	NewSiteDomainNameLabelScope DomainNameLabelScope

	Plan                 *armappservice.Plan
	AppInsightsComponent *AppInsightsComponent
	CustomLocation       *CustomLocation

	// Site is the created web app.
	Site *armappservice.Site
}

func (c *WizardContext) isLinux() bool {
	return c.NewSiteOS == WebsiteOSLinux
}

func (c *WizardContext) stackValue() string {
	if c.NewSiteStack == nil {
		return ""
	}
	return c.NewSiteStack.Stack.Properties.Value
}
