// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package input reads the declarative description of a web app from a JSON, YAML or TOML file.
package input
