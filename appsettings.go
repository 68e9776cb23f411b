// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azwebapp

import (
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
	"github.com/Azure/azwebapp/stacks"
	"github.com/Azure/azwebapp/to"
	"github.com/samber/lo"
)

// App setting names.
const (
	AppSettingBuildDuringDeployment   = "SCM_DO_BUILD_DURING_DEPLOYMENT"
	AppSettingNodeDefaultVersion      = "WEBSITE_NODE_DEFAULT_VERSION"
	AppSettingAIConnectionString      = "APPLICATIONINSIGHTS_CONNECTION_STRING"
	AppSettingAIAgentExtensionVersion = "ApplicationInsightsAgent_EXTENSION_VERSION"
	AppSettingAIAgentExtensionEnabled = "APPLICATIONINSIGHTSAGENT_EXTENSION_ENABLED"
	AppSettingAIProfilerFeature       = "APPINSIGHTS_PROFILERFEATURE_VERSION"
	AppSettingAISnapshotFeature       = "APPINSIGHTS_SNAPSHOTFEATURE_VERSION"
	AppSettingDiagnosticServices      = "DiagnosticServices_EXTENSION_VERSION"
	AppSettingInstrumentationEngine   = "InstrumentationEngine_EXTENSION_VERSION"
	AppSettingSnapshotDebugger        = "SnapshotDebugger_EXTENSION_VERSION"
	AppSettingAIBaseExtensions        = "XDT_MicrosoftApplicationInsights_BaseExtensions"
	AppSettingAIMode                  = "XDT_MicrosoftApplicationInsights_Mode"
)

const (
	settingTrue     = "true"
	settingDisabled = "disabled"

	aiAgentVersionWindows = "~2"
	aiAgentVersionLinux   = "~3"
)

// AppSettings returns the app settings for a new web app, in a fixed order.
func AppSettings(wctx *WizardContext) ([]*armappservice.NameValuePair, error) {
	if wctx.NewSiteStack == nil {
		return nil, NewErrPropertyMustNotBeNil("NewSiteStack")
	}

	settings := make([]*armappservice.NameValuePair, 0)
	runtime := wctx.stackValue()
	if wctx.isLinux() && (runtime == stacks.StackNode || runtime == stacks.StackPython) {
		settings = append(settings, nameValue(AppSettingBuildDuringDeployment, settingTrue))
	}

	if wctx.AppInsightsComponent == nil {
		return settings, nil
	}

	settings = append(settings,
		nameValue(AppSettingAIConnectionString, wctx.AppInsightsComponent.ConnectionString),
		nameValue(AppSettingAIAgentExtensionVersion, lo.Ternary(wctx.NewSiteOS == WebsiteOSWindows, aiAgentVersionWindows, aiAgentVersionLinux)),
	)

	// The portal sets all of these when Application Insights is enabled for a Windows app.
	if wctx.NewSiteOS == WebsiteOSWindows {
		settings = append(settings,
			nameValue(AppSettingAIProfilerFeature, settingDisabled),
			nameValue(AppSettingAISnapshotFeature, settingDisabled),
			nameValue(AppSettingDiagnosticServices, settingDisabled),
			nameValue(AppSettingInstrumentationEngine, settingDisabled),
			nameValue(AppSettingSnapshotDebugger, settingDisabled),
			nameValue(AppSettingAIBaseExtensions, settingDisabled),
			nameValue(AppSettingAIMode, "default"),
		)
	} else {
		settings = append(settings, nameValue(AppSettingAIAgentExtensionEnabled, settingTrue))
	}

	return settings, nil
}

func nameValue(name, value string) *armappservice.NameValuePair {
	return &armappservice.NameValuePair{
		Name:  to.Ptr(name),
		Value: to.Ptr(value),
	}
}
