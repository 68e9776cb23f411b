// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azwebapp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azwebapp/to"
	sets "github.com/deckarep/golang-set/v2"
)

// LocationResolver returns the location a resource from the given provider namespace is deployed to.
type LocationResolver interface {
	Location(ctx context.Context, wctx *WizardContext, provider string) (string, error)
}

// ProvidersClient is the subset of *armresources.ProvidersClient used to look up supported locations.
type ProvidersClient interface {
	Get(ctx context.Context, resourceProviderNamespace string, options *armresources.ProvidersClientGetOptions) (armresources.ProvidersClientGetResponse, error)
}

// ResourceGroupsClient is the subset of *armresources.ResourceGroupsClient used to look up the resource group location.
type ResourceGroupsClient interface {
	Get(ctx context.Context, resourceGroupName string, options *armresources.ResourceGroupsClientGetOptions) (armresources.ResourceGroupsClientGetResponse, error)
}

// providerResourceTypes maps a lowercased provider namespace to the resource type whose locations are checked.
var providerResourceTypes = map[string]string{
	strings.ToLower(WebProvider): "sites",
}

var _ LocationResolver = (*ProviderLocationResolver)(nil)

// ProviderLocationResolver resolves the location from the wizard context and checks that the
// provider supports it.
// The selected location is used if set, otherwise the location of the resource group.
// Either client may be nil, in which case that lookup is skipped.
type ProviderLocationResolver struct {
	providers      ProvidersClient
	resourceGroups ResourceGroupsClient
	supported      map[string]sets.Set[string]
	mu             sync.Mutex
}

// NewProviderLocationResolver creates a new ProviderLocationResolver.
func NewProviderLocationResolver(providers ProvidersClient, resourceGroups ResourceGroupsClient) *ProviderLocationResolver {
	return &ProviderLocationResolver{
		providers:      providers,
		resourceGroups: resourceGroups,
		supported:      make(map[string]sets.Set[string]),
	}
}

// Location implements LocationResolver.
// Extended (custom) locations are not checked against the provider.
func (r *ProviderLocationResolver) Location(ctx context.Context, wctx *WizardContext, provider string) (string, error) {
	loc, err := r.selectedLocation(ctx, wctx)
	if err != nil {
		return "", err
	}
	loc = NormalizeLocation(loc)

	if wctx.CustomLocation != nil || provider == "" || r.providers == nil {
		return loc, nil
	}

	supported, err := r.supportedLocations(ctx, provider)
	if err != nil {
		return "", err
	}
	if supported.Cardinality() != 0 && !supported.Contains(loc) {
		return "", fmt.Errorf("ProviderLocationResolver.Location: %s in %s: %w", provider, loc, ErrLocationNotSupported)
	}
	return loc, nil
}

func (r *ProviderLocationResolver) selectedLocation(ctx context.Context, wctx *WizardContext) (string, error) {
	if wctx.Location != "" {
		return wctx.Location, nil
	}
	// a site on a custom location is placed in the custom location's region
	if wctx.CustomLocation != nil && wctx.CustomLocation.Location != "" {
		return wctx.CustomLocation.Location, nil
	}
	if wctx.ResourceGroup == nil {
		return "", NewErrPropertyMustNotBeNil("Location")
	}
	if loc := to.ValOrZero(wctx.ResourceGroup.Location); loc != "" {
		return loc, nil
	}
	if r.resourceGroups == nil || to.ValOrZero(wctx.ResourceGroup.Name) == "" {
		return "", NewErrPropertyMustNotBeNil("Location")
	}
	resp, err := r.resourceGroups.Get(ctx, *wctx.ResourceGroup.Name, nil)
	if err != nil {
		return "", err
	}
	if to.ValOrZero(resp.Location) == "" {
		return "", NewErrPropertyMustNotBeNil("ResourceGroup.Location")
	}
	return *resp.Location, nil
}

func (r *ProviderLocationResolver) supportedLocations(ctx context.Context, provider string) (sets.Set[string], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(provider)
	if s, ok := r.supported[key]; ok {
		return s, nil
	}

	resp, err := r.providers.Get(ctx, provider, nil)
	if err != nil {
		return nil, err
	}

	rt, ok := providerResourceTypes[key]
	result := sets.NewSet[string]()
	for _, t := range resp.ResourceTypes {
		if t == nil || (ok && !strings.EqualFold(to.ValOrZero(t.ResourceType), rt)) {
			continue
		}
		for _, l := range t.Locations {
			if l != nil {
				result.Add(NormalizeLocation(*l))
			}
		}
	}
	r.supported[key] = result
	return result, nil
}

// NormalizeLocation converts a location display name such as `West Europe` into its name, `westeurope`.
func NormalizeLocation(loc string) string {
	return strings.ToLower(strings.ReplaceAll(loc, " ", ""))
}
