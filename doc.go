// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package azwebapp builds and submits Azure App Service web app creation requests.
//
// A WizardContext collects the choices made while creating a web app: name, resource group,
// operating system, runtime stack, App Service plan, Application Insights component,
// custom location and the domain name label scope.
// WebAppCreateStep turns that context into a Microsoft.Web/sites payload and creates the
// site through Azure Resource Manager.
//
// Two request shapes exist. When the domain name label scope is global the Azure SDK is used.
// Otherwise the payload is nested under `properties` and sent with a newer API version than the
// SDK supports, after which the site is read back through the SDK so that callers always receive
// an SDK-shaped armappservice.Site.
//
// Kind, NewSiteConfig and AppSettings are exported so that the payload can be inspected
// without talking to Azure.
package azwebapp
