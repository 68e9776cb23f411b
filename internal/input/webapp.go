// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Azure/azwebapp"
	"github.com/Azure/azwebapp/internal/checker"
	"github.com/Azure/azwebapp/stacks"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ErrInvalidInput is wrapped by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

var siteNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,58}[a-zA-Z0-9]$`)

// WebApp is the declarative description of a web app to create.
type WebApp struct {
	Name                 string          `json:"name" yaml:"name" toml:"name"`
	SubscriptionID       string          `json:"subscriptionId,omitempty" yaml:"subscriptionId,omitempty" toml:"subscriptionId,omitempty"`
	ResourceGroup        string          `json:"resourceGroup" yaml:"resourceGroup" toml:"resourceGroup"`
	Location             string          `json:"location,omitempty" yaml:"location,omitempty" toml:"location,omitempty"`
	Kind                 string          `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`
	OS                   string          `json:"os" yaml:"os" toml:"os"`
	Stack                Stack           `json:"stack" yaml:"stack" toml:"stack"`
	JavaContainer        *Stack          `json:"javaContainer,omitempty" yaml:"javaContainer,omitempty" toml:"javaContainer,omitempty"`
	Plan                 Plan            `json:"plan" yaml:"plan" toml:"plan"`
	DomainNameLabelScope string          `json:"domainNameLabelScope,omitempty" yaml:"domainNameLabelScope,omitempty" toml:"domainNameLabelScope,omitempty"`
	AppInsights          *AppInsights    `json:"appInsights,omitempty" yaml:"appInsights,omitempty" toml:"appInsights,omitempty"`
	CustomLocation       *CustomLocation `json:"customLocation,omitempty" yaml:"customLocation,omitempty" toml:"customLocation,omitempty"`
}

// Stack selects a stack by value, major and optional minor version.
// An empty minor version selects the latest supported one.
type Stack struct {
	Name         string `json:"name" yaml:"name" toml:"name"`
	MajorVersion string `json:"majorVersion" yaml:"majorVersion" toml:"majorVersion"`
	MinorVersion string `json:"minorVersion,omitempty" yaml:"minorVersion,omitempty" toml:"minorVersion,omitempty"`
}

// Plan references an existing App Service plan. ResourceGroup defaults to the web app resource group.
type Plan struct {
	Name          string `json:"name" yaml:"name" toml:"name"`
	ResourceGroup string `json:"resourceGroup,omitempty" yaml:"resourceGroup,omitempty" toml:"resourceGroup,omitempty"`
}

// AppInsights references an existing Application Insights component.
type AppInsights struct {
	ID               string `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Name             string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	ConnectionString string `json:"connectionString" yaml:"connectionString" toml:"connectionString"`
}

// CustomLocation references an Azure Arc custom location.
type CustomLocation struct {
	ID       string `json:"id" yaml:"id" toml:"id"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty" toml:"location,omitempty"`
}

// ReadFile reads a WebApp from a .json, .yaml, .yml or .toml file and applies defaults.
func ReadFile(path string) (*WebApp, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input.ReadFile: %w", err)
	}
	w := new(WebApp)
	if err := newUnmarshaler(data, filepath.Ext(path)).unmarshal(w); err != nil {
		return nil, fmt.Errorf("input.ReadFile: %s: %w", path, err)
	}
	w.SetDefaults()
	return w, nil
}

// SetDefaults fills in optional values.
func (w *WebApp) SetDefaults() {
	w.OS = strings.ToLower(w.OS)
	if w.DomainNameLabelScope == "" {
		w.DomainNameLabelScope = string(azwebapp.DomainNameLabelScopeGlobal)
	}
	if w.Plan.ResourceGroup == "" {
		w.Plan.ResourceGroup = w.ResourceGroup
	}
}

// IsJava reports whether the selected stack requires a Java container.
func (w *WebApp) IsJava() bool {
	return strings.EqualFold(w.Stack.Name, stacks.StackJava)
}

// Validate checks the WebApp and returns all failures.
// Check progress is logged when logger is not nil.
func (w *WebApp) Validate(logger *zap.Logger) error {
	checks := []checker.ValidatorCheck{
		checker.NewValidatorCheck("name", w.checkName),
		checker.NewValidatorCheck("resource group", required("resourceGroup", w.ResourceGroup)),
		checker.NewValidatorCheck("os", w.checkOS),
		checker.NewValidatorCheck("stack", w.checkStack),
		checker.NewValidatorCheck("plan", required("plan.name", w.Plan.Name)),
		checker.NewValidatorCheck("domain name label scope", w.checkDomainNameLabelScope),
		checker.NewValidatorCheck("custom location", w.checkCustomLocation),
	}
	if logger == nil {
		return checker.NewValidatorQuiet(checks...).Validate()
	}
	return checker.NewValidator(logger, checks...).Validate()
}

func required(name, value string) checker.ValidateFunc {
	return func() error {
		if value == "" {
			return fmt.Errorf("%s is required: %w", name, ErrInvalidInput)
		}
		return nil
	}
}

func (w *WebApp) checkName() error {
	if !siteNameRegex.MatchString(w.Name) {
		return fmt.Errorf("name %q must be 2-60 alphanumeric characters or hyphens, and must not start or end with a hyphen: %w", w.Name, ErrInvalidInput)
	}
	return nil
}

func (w *WebApp) checkOS() error {
	switch azwebapp.WebsiteOS(w.OS) {
	case azwebapp.WebsiteOSLinux, azwebapp.WebsiteOSWindows:
		return nil
	}
	return fmt.Errorf("os %q must be one of linux, windows: %w", w.OS, ErrInvalidInput)
}

func (w *WebApp) checkStack() error {
	if w.Stack.Name == "" || w.Stack.MajorVersion == "" {
		return fmt.Errorf("stack.name and stack.majorVersion are required: %w", ErrInvalidInput)
	}
	if w.IsJava() && (w.JavaContainer == nil || w.JavaContainer.MajorVersion == "") {
		return fmt.Errorf("javaContainer.majorVersion is required for the java stack: %w", ErrInvalidInput)
	}
	return nil
}

func (w *WebApp) checkDomainNameLabelScope() error {
	if lo.Contains(azwebapp.DomainNameLabelScopes(), azwebapp.DomainNameLabelScope(w.DomainNameLabelScope)) {
		return nil
	}
	return fmt.Errorf("domainNameLabelScope %q must be one of %v: %w", w.DomainNameLabelScope, azwebapp.DomainNameLabelScopes(), ErrInvalidInput)
}

func (w *WebApp) checkCustomLocation() error {
	if w.CustomLocation != nil && w.CustomLocation.ID == "" {
		return fmt.Errorf("customLocation.id is required: %w", ErrInvalidInput)
	}
	return nil
}
