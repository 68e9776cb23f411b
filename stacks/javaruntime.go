// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package stacks

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoLinuxJavaRuntime is returned when a Java container has no Linux runtime for the requested Java version.
var ErrNoLinuxJavaRuntime = errors.New("no Linux runtime for Java version")

// JavaLinuxRuntime returns the Linux runtime string (e.g. `TOMCAT|10.0-java17`) for the given Java major version
// running in the supplied Java container minor version.
// The Java major version is the value of the java stack major version, "1.8" is accepted as an alias of "8".
func JavaLinuxRuntime(javaMajorVersion string, containerMinorVersion MinorVersion) (string, error) {
	settings := containerMinorVersion.StackSettings.LinuxContainerSettings
	if settings == nil {
		return "", fmt.Errorf("JavaLinuxRuntime: container %q has no Linux container settings", containerMinorVersion.Value)
	}

	var runtime string
	switch strings.TrimPrefix(javaMajorVersion, "1.") {
	case "8":
		runtime = settings.Java8Runtime
	case "11":
		runtime = settings.Java11Runtime
	case "17":
		runtime = settings.Java17Runtime
	case "21":
		runtime = settings.Java21Runtime
	}

	if runtime == "" {
		return "", fmt.Errorf("JavaLinuxRuntime: container %q, Java %q: %w", containerMinorVersion.Value, javaMajorVersion, ErrNoLinuxJavaRuntime)
	}
	return runtime, nil
}
