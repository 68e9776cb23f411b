// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azwebapp

import (
	"errors"
	"fmt"
)

// ErrPrecondition is wrapped by all errors that indicate the WizardContext was not populated correctly
// by the caller. These are programming errors and should not be retried.
var ErrPrecondition = errors.New("precondition failed")

// ErrLocationNotSupported is returned when the selected location does not support the resource type.
var ErrLocationNotSupported = errors.New("location not supported")

var _ error = (*ErrPropertyMustNotBeNil)(nil)

// ErrPropertyMustNotBeNil is an error type that indicates a required property is nil or empty.
type ErrPropertyMustNotBeNil struct {
	PropertyName string
}

// Error implements the error interface for type ErrPropertyMustNotBeNil.
func (e *ErrPropertyMustNotBeNil) Error() string {
	return fmt.Sprintf("property '%s' must not be nil", e.PropertyName)
}

// Unwrap allows errors.Is(err, ErrPrecondition).
func (e *ErrPropertyMustNotBeNil) Unwrap() error {
	return ErrPrecondition
}

// NewErrPropertyMustNotBeNil creates a new ErrPropertyMustNotBeNil error.
func NewErrPropertyMustNotBeNil(propertyName string) error {
	return &ErrPropertyMustNotBeNil{PropertyName: propertyName}
}
