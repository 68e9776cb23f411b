// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azwebapp

import (
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azwebapp/stacks"
	"github.com/Azure/azwebapp/to"
)

const (
	testSubscriptionID = "00000000-0000-0000-0000-000000000000"
	testResourceGroup  = "rg1"
	testSiteName       = "site1"
	testPlanID         = "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg1/providers/Microsoft.Web/serverfarms/plan1"
)

func newTestStack(value, major, minor, displayText string, linux, windows string) *stacks.FullWebAppStack {
	mv := stacks.MinorVersion{
		DisplayText: displayText,
		Value:       minor,
	}
	if linux != "" {
		mv.StackSettings.LinuxRuntimeSettings = &stacks.RuntimeSettings{RuntimeVersion: linux}
	}
	if windows != "" {
		mv.StackSettings.WindowsRuntimeSettings = &stacks.RuntimeSettings{RuntimeVersion: windows}
	}
	return &stacks.FullWebAppStack{
		Stack: stacks.AppStack{
			Name:       value,
			Properties: stacks.AppStackProperties{Value: value, DisplayText: value},
		},
		MajorVersion: stacks.MajorVersion{Value: major, DisplayText: major},
		MinorVersion: mv,
	}
}

func newTestJavaStack() *stacks.FullJavaStack {
	return &stacks.FullJavaStack{
		Stack: stacks.AppStack{
			Name:       stacks.StackJavaContainers,
			Properties: stacks.AppStackProperties{Value: stacks.StackJavaContainers},
		},
		MajorVersion: stacks.MajorVersion{Value: "tomcat10.0", DisplayText: "Apache Tomcat 10.0"},
		MinorVersion: stacks.MinorVersion{
			Value:       "10.0",
			DisplayText: "Apache Tomcat 10.0",
			StackSettings: stacks.StackSettings{
				LinuxContainerSettings: &stacks.LinuxJavaContainerSettings{
					Java8Runtime:  "TOMCAT|10.0-jre8",
					Java11Runtime: "TOMCAT|10.0-java11",
					Java17Runtime: "TOMCAT|10.0-java17",
				},
				WindowsContainerSettings: &stacks.WindowsJavaContainerSettings{
					JavaContainer:        "TOMCAT",
					JavaContainerVersion: "10.0",
				},
			},
		},
	}
}

func newTestWizardContext(os WebsiteOS, stack *stacks.FullWebAppStack) *WizardContext {
	return &WizardContext{
		SubscriptionID: testSubscriptionID,
		ResourceGroup: &armresources.ResourceGroup{
			Name:     to.Ptr(testResourceGroup),
			Location: to.Ptr("westeurope"),
		},
		NewSiteName:                 testSiteName,
		NewSiteOS:                   os,
		NewSiteStack:                stack,
		NewSiteDomainNameLabelScope: DomainNameLabelScopeGlobal,
		Plan: &armappservice.Plan{
			ID:  to.Ptr(testPlanID),
			SKU: &armappservice.SKUDescription{Tier: to.Ptr("Basic"), Name: to.Ptr("B1")},
		},
	}
}

func settingNames(settings []*armappservice.NameValuePair) []string {
	result := make([]string, len(settings))
	for i, s := range settings {
		result[i] = to.ValOrZero(s.Name)
	}
	return result
}

func settingValue(settings []*armappservice.NameValuePair, name string) (string, bool) {
	for _, s := range settings {
		if to.ValOrZero(s.Name) == name {
			return to.ValOrZero(s.Value), true
		}
	}
	return "", false
}
