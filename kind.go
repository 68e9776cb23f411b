// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azwebapp

const (
	kindLinux      = ",linux"
	kindKubernetes = ",kubernetes"
)

// Kind returns the site kind, e.g. `app,linux,kubernetes`.
func Kind(wctx *WizardContext) string {
	kind := wctx.NewSiteKind
	if kind == "" {
		kind = DefaultSiteKind
	}
	if wctx.isLinux() {
		kind += kindLinux
	}
	if wctx.CustomLocation != nil {
		kind += kindKubernetes
	}
	return kind
}
