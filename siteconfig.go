// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azwebapp

import (
	"fmt"
	"regexp"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
	"github.com/Azure/azwebapp/stacks"
	"github.com/Azure/azwebapp/to"
)

// dotnetCoreRegex matches .NET Core display texts.
// netFrameworkVersion is a .NET Framework property, so Core stacks must not set it.
// The display text is the only signal the stacks API gives us.
var dotnetCoreRegex = regexp.MustCompile(`(?i)core`)

// NewSiteConfig returns the site configuration for a new web app: the app settings plus the
// runtime fields for the selected OS and stack.
// Stacks without a dedicated Windows field produce no runtime field.
func NewSiteConfig(wctx *WizardContext) (*armappservice.SiteConfig, error) {
	appSettings, err := AppSettings(wctx)
	if err != nil {
		return nil, err
	}
	cfg := &armappservice.SiteConfig{
		AppSettings: appSettings,
	}

	stack := wctx.NewSiteStack
	settings := stack.MinorVersion.StackSettings

	if wctx.isLinux() {
		if stack.Stack.Properties.Value == stacks.StackJava {
			if wctx.NewSiteJavaStack == nil {
				return nil, NewErrPropertyMustNotBeNil("NewSiteJavaStack")
			}
			fx, err := stacks.JavaLinuxRuntime(stack.MajorVersion.Value, wctx.NewSiteJavaStack.MinorVersion)
			if err != nil {
				return nil, fmt.Errorf("NewSiteConfig: %w", err)
			}
			cfg.LinuxFxVersion = to.Ptr(fx)
			return cfg, nil
		}
		if settings.LinuxRuntimeSettings == nil {
			return nil, NewErrPropertyMustNotBeNil("NewSiteStack.MinorVersion.StackSettings.LinuxRuntimeSettings")
		}
		cfg.LinuxFxVersion = to.Ptr(settings.LinuxRuntimeSettings.RuntimeVersion)
		return cfg, nil
	}

	if settings.WindowsRuntimeSettings == nil {
		return nil, NewErrPropertyMustNotBeNil("NewSiteStack.MinorVersion.StackSettings.WindowsRuntimeSettings")
	}
	runtimeVersion := settings.WindowsRuntimeSettings.RuntimeVersion

	switch stack.Stack.Properties.Value {
	case stacks.StackDotnet:
		if !dotnetCoreRegex.MatchString(stack.MinorVersion.DisplayText) {
			cfg.NetFrameworkVersion = to.Ptr(runtimeVersion)
		}
	case stacks.StackPHP:
		cfg.PhpVersion = to.Ptr(runtimeVersion)
	case stacks.StackNode:
		cfg.NodeVersion = to.Ptr(runtimeVersion)
		cfg.AppSettings = append(cfg.AppSettings, nameValue(AppSettingNodeDefaultVersion, runtimeVersion))
	case stacks.StackJava:
		cfg.JavaVersion = to.Ptr(runtimeVersion)
		if wctx.NewSiteJavaStack == nil {
			return nil, NewErrPropertyMustNotBeNil("NewSiteJavaStack")
		}
		container := wctx.NewSiteJavaStack.MinorVersion.StackSettings.WindowsContainerSettings
		if container == nil {
			return nil, NewErrPropertyMustNotBeNil("NewSiteJavaStack.MinorVersion.StackSettings.WindowsContainerSettings")
		}
		cfg.JavaContainer = to.Ptr(container.JavaContainer)
		cfg.JavaContainerVersion = to.Ptr(container.JavaContainerVersion)
	case stacks.StackPython:
		cfg.PythonVersion = to.Ptr(runtimeVersion)
	}

	return cfg, nil
}
