// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azwebapp

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
	"github.com/Azure/azwebapp/to"
)

const extendedLocationTypeCustomLocation = "customLocation"

// siteDescriptor holds the values shared by both request shapes.
type siteDescriptor struct {
	name             string
	kind             string
	location         string
	serverFarmID     *string
	reserved         bool
	siteConfig       *armappservice.SiteConfig
	extendedLocation *armappservice.ExtendedLocation
}

// siteEnvelope creates a site from a descriptor using one request shape.
type siteEnvelope interface {
	create(ctx context.Context, rgName string, d *siteDescriptor) (*armappservice.Site, error)
}

// SitePayload is the site request body used with DomainNameLabelScopeAPIVersion.
// It mirrors armappservice.Site, which does not have AutoGeneratedDomainNameLabelScope.
type SitePayload struct {
	Name             string                          `json:"name"`
	Kind             string                          `json:"kind"`
	Location         string                          `json:"location"`
	Properties       SitePayloadProperties           `json:"properties"`
	ExtendedLocation *armappservice.ExtendedLocation `json:"extendedLocation,omitempty"`
}

// SitePayloadProperties are the properties of a SitePayload.
type SitePayloadProperties struct {
	AutoGeneratedDomainNameLabelScope DomainNameLabelScope      `json:"autoGeneratedDomainNameLabelScope,omitempty"`
	ClientAffinityEnabled             bool                      `json:"clientAffinityEnabled"`
	ServerFarmID                      *string                   `json:"serverFarmId,omitempty"`
	Reserved                          bool                      `json:"reserved"`
	SiteConfig                        *armappservice.SiteConfig `json:"siteConfig,omitempty"`
}

func newSiteDescriptor(wctx *WizardContext, location string, cfg *armappservice.SiteConfig) *siteDescriptor {
	d := &siteDescriptor{
		name:     wctx.NewSiteName,
		kind:     Kind(wctx),
		location: location,
		// reserved must be true for Linux. The API does not document this, the owning team confirmed it.
		reserved:   wctx.isLinux(),
		siteConfig: cfg,
	}
	if wctx.Plan != nil {
		d.serverFarmID = wctx.Plan.ID
	}
	if wctx.CustomLocation != nil {
		d.extendedLocation = &armappservice.ExtendedLocation{
			Name: to.Ptr(wctx.CustomLocation.ID),
			Type: to.Ptr(extendedLocationTypeCustomLocation),
		}
	}
	return d
}

// site returns the flat SDK request body.
func (d *siteDescriptor) site() armappservice.Site {
	return armappservice.Site{
		Name:     to.Ptr(d.name),
		Kind:     to.Ptr(d.kind),
		Location: to.Ptr(d.location),
		Properties: &armappservice.SiteProperties{
			ServerFarmID:          d.serverFarmID,
			ClientAffinityEnabled: to.Ptr(true),
			SiteConfig:            d.siteConfig,
			Reserved:              to.Ptr(d.reserved),
		},
		ExtendedLocation: d.extendedLocation,
	}
}

// payload returns the nested request body carrying the domain name label scope.
func (d *siteDescriptor) payload(scope DomainNameLabelScope) *SitePayload {
	return &SitePayload{
		Name:     d.name,
		Kind:     d.kind,
		Location: d.location,
		Properties: SitePayloadProperties{
			AutoGeneratedDomainNameLabelScope: scope,
			ClientAffinityEnabled:             true,
			ServerFarmID:                      d.serverFarmID,
			Reserved:                          d.reserved,
			SiteConfig:                        d.siteConfig,
		},
		ExtendedLocation: d.extendedLocation,
	}
}
