// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azwebapp

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
)

// SiteReader is the subset of *armappservice.WebAppsClient used to view a site.
type SiteReader interface {
	Get(ctx context.Context, resourceGroupName string, name string, options *armappservice.WebAppsClientGetOptions) (armappservice.WebAppsClientGetResponse, error)
	GetConfiguration(ctx context.Context, resourceGroupName string, name string, options *armappservice.WebAppsClientGetConfigurationOptions) (armappservice.WebAppsClientGetConfigurationResponse, error)
}

// ViewProperties returns the site with its complete site config.
// The site config returned by Get only has a subset of the properties.
func ViewProperties(ctx context.Context, client SiteReader, rgName, name string) (*armappservice.Site, error) {
	if client == nil {
		return nil, NewErrPropertyMustNotBeNil("client")
	}
	site, err := client.Get(ctx, rgName, name, nil)
	if err != nil {
		return nil, err
	}
	cfg, err := client.GetConfiguration(ctx, rgName, name, nil)
	if err != nil {
		return nil, fmt.Errorf("ViewProperties: getting configuration of %s: %w", name, err)
	}
	result := site.Site
	if result.Properties == nil {
		result.Properties = &armappservice.SiteProperties{}
	}
	result.Properties.SiteConfig = cfg.Properties
	return &result, nil
}
