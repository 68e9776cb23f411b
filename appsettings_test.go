// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azwebapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppSettingsNoStack(t *testing.T) {
	t.Parallel()

	wctx := newTestWizardContext(WebsiteOSLinux, nil)
	_, err := AppSettings(wctx)
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestAppSettingsBuildDuringDeployment(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		os     WebsiteOS
		stack  string
		expect bool
	}{
		{"linux node", WebsiteOSLinux, "node", true},
		{"linux python", WebsiteOSLinux, "python", true},
		{"linux dotnet", WebsiteOSLinux, "dotnet", false},
		{"windows node", WebsiteOSWindows, "node", false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			wctx := newTestWizardContext(tc.os, newTestStack(tc.stack, "1", "1", "1", "X|1", "1"))
			settings, err := AppSettings(wctx)
			require.NoError(t, err)
			if !tc.expect {
				assert.Empty(t, settings)
				return
			}
			require.Len(t, settings, 1)
			v, ok := settingValue(settings, AppSettingBuildDuringDeployment)
			assert.True(t, ok)
			assert.Equal(t, "true", v)
		})
	}
}

func TestAppSettingsAppInsightsWindows(t *testing.T) {
	t.Parallel()

	wctx := newTestWizardContext(WebsiteOSWindows, newTestStack("dotnet", "8", "8", ".NET 8 (LTS)", "", "v8.0"))
	wctx.AppInsightsComponent = &AppInsightsComponent{ConnectionString: "InstrumentationKey=abc"}

	settings, err := AppSettings(wctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		AppSettingAIConnectionString,
		AppSettingAIAgentExtensionVersion,
		AppSettingAIProfilerFeature,
		AppSettingAISnapshotFeature,
		AppSettingDiagnosticServices,
		AppSettingInstrumentationEngine,
		AppSettingSnapshotDebugger,
		AppSettingAIBaseExtensions,
		AppSettingAIMode,
	}, settingNames(settings))

	v, _ := settingValue(settings, AppSettingAIConnectionString)
	assert.Equal(t, "InstrumentationKey=abc", v)
	v, _ = settingValue(settings, AppSettingAIAgentExtensionVersion)
	assert.Equal(t, "~2", v)
	v, _ = settingValue(settings, AppSettingSnapshotDebugger)
	assert.Equal(t, "disabled", v)
	v, _ = settingValue(settings, AppSettingAIMode)
	assert.Equal(t, "default", v)
}

func TestAppSettingsAppInsightsLinux(t *testing.T) {
	t.Parallel()

	wctx := newTestWizardContext(WebsiteOSLinux, newTestStack("node", "18", "18-lts", "Node 18 LTS", "NODE|18-lts", "~18"))
	wctx.AppInsightsComponent = &AppInsightsComponent{ConnectionString: "cs"}

	settings, err := AppSettings(wctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		AppSettingBuildDuringDeployment,
		AppSettingAIConnectionString,
		AppSettingAIAgentExtensionVersion,
		AppSettingAIAgentExtensionEnabled,
	}, settingNames(settings))

	v, _ := settingValue(settings, AppSettingAIAgentExtensionVersion)
	assert.Equal(t, "~3", v)
	v, _ = settingValue(settings, AppSettingAIAgentExtensionEnabled)
	assert.Equal(t, "true", v)
}

func TestAppSettingsAppInsightsLinuxWithoutBuild(t *testing.T) {
	t.Parallel()

	wctx := newTestWizardContext(WebsiteOSLinux, newTestStack("dotnet", "8", "8.0", ".NET 8 (LTS)", "DOTNETCORE|8.0", ""))
	wctx.AppInsightsComponent = &AppInsightsComponent{ConnectionString: "cs"}

	settings, err := AppSettings(wctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		AppSettingAIConnectionString,
		AppSettingAIAgentExtensionVersion,
		AppSettingAIAgentExtensionEnabled,
	}, settingNames(settings))
}
