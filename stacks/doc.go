// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package stacks models the App Service web app stacks returned by the
// Microsoft.Web/webAppStacks provider API.
//
// The Azure SDK models for this API lag behind the service (for example they
// carry no Java 17 or Java 21 Linux runtime), so the types here decode the raw
// service JSON directly.
// Use Client to fetch the stacks, Find to resolve a user selection into a
// FullWebAppStack, and JavaLinuxRuntime to compute a Linux Java runtime string.
package stacks
