// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package stacks

// Well-known stack values.
const (
	StackDotnet         = "dotnet"
	StackJava           = "java"
	StackJavaContainers = "javacontainers"
	StackNode           = "node"
	StackPHP            = "php"
	StackPython         = "python"
)

// OS is the operating system filter accepted by the webAppStacks API.
type OS string

const (
	OSAll     OS = "All"
	OSLinux   OS = "Linux"
	OSWindows OS = "Windows"
)

// AppStack is a single stack, e.g. Node or Python.
type AppStack struct {
	ID         string             `json:"id,omitempty"`
	Name       string             `json:"name,omitempty"`
	Type       string             `json:"type,omitempty"`
	Properties AppStackProperties `json:"properties"`
}

// AppStackProperties holds the stack identity and its major versions.
type AppStackProperties struct {
	DisplayText   string         `json:"displayText"`
	Value         string         `json:"value"`
	PreferredOs   string         `json:"preferredOs,omitempty"`
	MajorVersions []MajorVersion `json:"majorVersions"`
}

// MajorVersion is a major version of a stack, e.g. Node 18.
type MajorVersion struct {
	DisplayText   string         `json:"displayText"`
	Value         string         `json:"value"`
	MinorVersions []MinorVersion `json:"minorVersions"`
}

// MinorVersion is the leaf of the stack tree and carries the runtime settings.
type MinorVersion struct {
	DisplayText   string        `json:"displayText"`
	Value         string        `json:"value"`
	StackSettings StackSettings `json:"stackSettings"`
}

// StackSettings contains the per-OS settings of a minor version.
// Web stacks populate the runtime settings, the javacontainers stack populates the container settings.
type StackSettings struct {
	LinuxRuntimeSettings     *RuntimeSettings              `json:"linuxRuntimeSettings,omitempty"`
	WindowsRuntimeSettings   *RuntimeSettings              `json:"windowsRuntimeSettings,omitempty"`
	LinuxContainerSettings   *LinuxJavaContainerSettings   `json:"linuxContainerSettings,omitempty"`
	WindowsContainerSettings *WindowsJavaContainerSettings `json:"windowsContainerSettings,omitempty"`
}

// Lifecycle holds the flags shared by every settings type.
type Lifecycle struct {
	IsPreview     bool   `json:"isPreview,omitempty"`
	IsDeprecated  bool   `json:"isDeprecated,omitempty"`
	IsHidden      bool   `json:"isHidden,omitempty"`
	IsAutoUpdate  bool   `json:"isAutoUpdate,omitempty"`
	IsEarlyAccess bool   `json:"isEarlyAccess,omitempty"`
	EndOfLifeDate string `json:"endOfLifeDate,omitempty"`
}

// RuntimeSettings are the settings of a web stack on one OS.
type RuntimeSettings struct {
	Lifecycle
	RuntimeVersion           string `json:"runtimeVersion"`
	RemoteDebuggingSupported bool   `json:"remoteDebuggingSupported,omitempty"`
}

// LinuxJavaContainerSettings maps Java major versions to the Linux runtime of a Java container.
type LinuxJavaContainerSettings struct {
	Lifecycle
	Java8Runtime  string `json:"java8Runtime,omitempty"`
	Java11Runtime string `json:"java11Runtime,omitempty"`
	Java17Runtime string `json:"java17Runtime,omitempty"`
	Java21Runtime string `json:"java21Runtime,omitempty"`
}

// WindowsJavaContainerSettings names the Java container used on Windows.
type WindowsJavaContainerSettings struct {
	Lifecycle
	JavaContainer        string `json:"javaContainer"`
	JavaContainerVersion string `json:"javaContainerVersion"`
}

// FullWebAppStack is a resolved selection of stack, major and minor version.
type FullWebAppStack struct {
	Stack        AppStack
	MajorVersion MajorVersion
	MinorVersion MinorVersion
}

// FullJavaStack is a resolved selection from the javacontainers stack.
type FullJavaStack FullWebAppStack

// hidden reports whether the minor version should not be offered for the given OS.
func (m MinorVersion) hidden(os OS) bool {
	var l []Lifecycle
	s := m.StackSettings
	if os != OSWindows {
		if s.LinuxRuntimeSettings != nil {
			l = append(l, s.LinuxRuntimeSettings.Lifecycle)
		}
		if s.LinuxContainerSettings != nil {
			l = append(l, s.LinuxContainerSettings.Lifecycle)
		}
	}
	if os != OSLinux {
		if s.WindowsRuntimeSettings != nil {
			l = append(l, s.WindowsRuntimeSettings.Lifecycle)
		}
		if s.WindowsContainerSettings != nil {
			l = append(l, s.WindowsContainerSettings.Lifecycle)
		}
	}
	if len(l) == 0 {
		return true
	}
	for _, lc := range l {
		if !lc.IsHidden && !lc.IsDeprecated {
			return false
		}
	}
	return true
}
