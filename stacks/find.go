// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package stacks

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/samber/lo"
)

// ErrStackNotFound is returned when a selection does not match any stack, major or minor version.
var ErrStackNotFound = errors.New("stack not found")

// Find resolves a stack selection into a FullWebAppStack.
// Values are matched case-insensitively.
// If minor is empty, the newest minor version that is neither hidden nor deprecated for os is selected.
func Find(all []AppStack, os OS, stack, major, minor string) (*FullWebAppStack, error) {
	s, ok := lo.Find(all, func(s AppStack) bool {
		return strings.EqualFold(s.Properties.Value, stack)
	})
	if !ok {
		return nil, fmt.Errorf("stacks.Find: stack %q: %w", stack, ErrStackNotFound)
	}

	mj, ok := lo.Find(s.Properties.MajorVersions, func(m MajorVersion) bool {
		return strings.EqualFold(m.Value, major)
	})
	if !ok {
		return nil, fmt.Errorf("stacks.Find: stack %q major version %q: %w", stack, major, ErrStackNotFound)
	}

	var mn MinorVersion
	if minor == "" {
		candidates := lo.Filter(mj.MinorVersions, func(m MinorVersion, _ int) bool {
			return !m.hidden(os)
		})
		if len(candidates) == 0 {
			return nil, fmt.Errorf("stacks.Find: stack %q major version %q has no available minor versions for %s: %w", stack, major, os, ErrStackNotFound)
		}
		SortMinorVersions(candidates)
		mn = candidates[0]
	} else {
		mn, ok = lo.Find(mj.MinorVersions, func(m MinorVersion) bool {
			return strings.EqualFold(m.Value, minor)
		})
		if !ok {
			return nil, fmt.Errorf("stacks.Find: stack %q version %q/%q: %w", stack, major, minor, ErrStackNotFound)
		}
	}

	return &FullWebAppStack{
		Stack:        s,
		MajorVersion: mj,
		MinorVersion: mn,
	}, nil
}

// FindJava resolves a selection in the javacontainers stack.
func FindJava(all []AppStack, os OS, container, minor string) (*FullJavaStack, error) {
	fs, err := Find(all, os, StackJavaContainers, container, minor)
	if err != nil {
		return nil, err
	}
	return (*FullJavaStack)(fs), nil
}

// SortMinorVersions sorts minor versions newest first.
// Values that do not parse as a version sort after those that do, in reverse lexical order.
func SortMinorVersions(mvs []MinorVersion) {
	sort.SliceStable(mvs, func(i, j int) bool {
		return versionGreater(mvs[i].Value, mvs[j].Value)
	})
}

// SortMajorVersions sorts major versions newest first.
func SortMajorVersions(mvs []MajorVersion) {
	sort.SliceStable(mvs, func(i, j int) bool {
		return versionGreater(mvs[i].Value, mvs[j].Value)
	})
}

func versionGreater(a, b string) bool {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	switch {
	case errA == nil && errB == nil:
		if va.Equal(vb) {
			return a > b
		}
		return va.GreaterThan(vb)
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a > b
}
