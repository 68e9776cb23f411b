// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package checker runs a list of named checks and aggregates their errors.
package checker

import (
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

// Validator is a struct that holds a list of checks to be performed.
type Validator struct {
	checks []ValidatorCheck
	logger *zap.Logger // logs check start/finish messages when not nil
}

// ValidatorCheck is a struct that holds the name and function of a check to be performed.
// The function should return an error if the check fails.
// Use closures to capture the context of the check, such as the input value.
type ValidatorCheck struct {
	name string
	f    ValidateFunc
}

// NewValidatorCheck creates a new ValidatorCheck with the given name and function.
func NewValidatorCheck(name string, f ValidateFunc) ValidatorCheck {
	return ValidatorCheck{
		name: name,
		f:    f,
	}
}

// Name returns the name of the check.
func (c ValidatorCheck) Name() string {
	return c.name
}

// ValidateFunc is a function type that returns an error if the validation fails.
type ValidateFunc func() error

// NewValidator creates a new Validator with the given checks, which logs check start/finish messages.
func NewValidator(logger *zap.Logger, c ...ValidatorCheck) Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Validator{
		checks: c,
		logger: logger,
	}
}

// NewValidatorQuiet creates a new Validator with the given checks, which suppresses check start/finish messages.
func NewValidatorQuiet(c ...ValidatorCheck) Validator {
	return Validator{
		checks: c,
	}
}

// AddChecks adds additional checks to the Validator.
func (v Validator) AddChecks(c ...ValidatorCheck) Validator {
	v.checks = append(v.checks, c...)
	return v
}

// Validate runs all the checks and returns a *multierror.Error with every failure, or nil.
func (v Validator) Validate() error {
	var errs error

	for _, c := range v.checks {
		if v.logger != nil {
			v.logger.Debug("starting check", zap.String("check", c.name))
		}

		if err := c.f(); err != nil {
			errs = multierror.Append(errs, err)
		}

		if v.logger != nil {
			v.logger.Debug("finished check", zap.String("check", c.name))
		}
	}

	return errs
}
