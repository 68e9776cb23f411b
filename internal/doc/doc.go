// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package doc renders web apps and stacks in Markdown format.
package doc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
	"github.com/Azure/azwebapp/stacks"
	"github.com/Azure/azwebapp/to"
	"github.com/nao1215/markdown"
)

var (
	ErrSiteMdGenerationFailed   = fmt.Errorf("failed to generate web app document")
	ErrStacksMdGenerationFailed = fmt.Errorf("failed to generate stacks document")
)

// SiteMd writes a Markdown summary of the web app, followed by its site config as JSON.
func SiteMd(w io.Writer, site *armappservice.Site) error {
	if site == nil {
		return errors.Join(ErrSiteMdGenerationFailed, errors.New("site is nil"))
	}

	md := markdown.NewMarkdown(w)
	md = siteMdTitle(md, site)
	md = siteMdOverview(md, site)

	props := site.Properties
	if props != nil && props.SiteConfig != nil {
		md = siteMdAppSettings(md, props.SiteConfig.AppSettings)
		// app setting values may be secrets, only their names are listed above
		redacted := *props.SiteConfig
		redacted.AppSettings = nil
		cfg, err := json.MarshalIndent(&redacted, "", "  ")
		if err != nil {
			return errors.Join(ErrSiteMdGenerationFailed, err)
		}
		md = md.H2("Site config").LF().
			CodeBlocks(markdown.SyntaxHighlight("json"), string(cfg)).LF()
	}

	if err := md.Build(); err != nil {
		return errors.Join(ErrSiteMdGenerationFailed, err)
	}
	return nil
}

func siteMdTitle(md *markdown.Markdown, site *armappservice.Site) *markdown.Markdown {
	name := to.ValOrDefault(site.Name, "No name")
	return md.H1f("%s (%s)", name, to.ValOrDefault(site.Kind, "app")).LF().
		PlainText(to.ValOrZero(site.ID)).LF()
}

func siteMdOverview(md *markdown.Markdown, site *armappservice.Site) *markdown.Markdown {
	t := markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Location", to.ValOrZero(site.Location)},
		},
	}
	if p := site.Properties; p != nil {
		t.Rows = append(t.Rows,
			[]string{"Default host name", to.ValOrZero(p.DefaultHostName)},
			[]string{"State", to.ValOrZero(p.State)},
			[]string{"App Service plan", to.ValOrZero(p.ServerFarmID)},
			[]string{"Linux", fmt.Sprintf("%t", to.ValOrZero(p.Reserved))},
		)
	}
	if site.ExtendedLocation != nil {
		t.Rows = append(t.Rows, []string{"Custom location", to.ValOrZero(site.ExtendedLocation.Name)})
	}
	return md.H2("Overview").LF().Table(t).LF()
}

// siteMdAppSettings lists app setting names only, values may be secrets.
func siteMdAppSettings(md *markdown.Markdown, settings []*armappservice.NameValuePair) *markdown.Markdown {
	if len(settings) == 0 {
		return md
	}
	names := make([]string, 0, len(settings))
	for _, s := range settings {
		if s != nil {
			names = append(names, to.ValOrZero(s.Name))
		}
	}
	slices.Sort(names)
	return md.H2("App settings").LF().
		Details(fmt.Sprintf("%d app settings", len(names)), "\n- "+strings.Join(names, "\n- ")).
		LF()
}

// StacksMd writes a Markdown table per stack listing the runtime of every visible minor version for os.
func StacksMd(w io.Writer, all []stacks.AppStack, os stacks.OS) error {
	md := markdown.NewMarkdown(w)
	md = md.H1f("Web app stacks (%s)", os).LF()

	for _, s := range all {
		t := markdown.TableSet{
			Header: []string{"Major version", "Minor version", "Runtime"},
			Rows:   [][]string{},
		}
		majors := slices.Clone(s.Properties.MajorVersions)
		stacks.SortMajorVersions(majors)
		for _, mj := range majors {
			minors := slices.Clone(mj.MinorVersions)
			stacks.SortMinorVersions(minors)
			for _, mn := range minors {
				rt := runtimeVersion(mn, os)
				if rt == "" {
					continue
				}
				t.Rows = append(t.Rows, []string{mj.Value, mn.Value, "`" + rt + "`"})
			}
		}
		if len(t.Rows) == 0 {
			continue
		}
		md = md.H2f("%s (`%s`)", to.ValOrDefault(&s.Properties.DisplayText, s.Properties.Value), s.Properties.Value).LF().
			Table(t).LF()
	}

	if err := md.Build(); err != nil {
		return errors.Join(ErrStacksMdGenerationFailed, err)
	}
	return nil
}

func runtimeVersion(mn stacks.MinorVersion, os stacks.OS) string {
	st := mn.StackSettings
	var versions []string
	if os != stacks.OSWindows {
		if st.LinuxRuntimeSettings != nil && !st.LinuxRuntimeSettings.IsHidden {
			versions = append(versions, st.LinuxRuntimeSettings.RuntimeVersion)
		}
		if st.LinuxContainerSettings != nil && !st.LinuxContainerSettings.IsHidden {
			c := st.LinuxContainerSettings
			versions = append(versions, slices.DeleteFunc([]string{c.Java8Runtime, c.Java11Runtime, c.Java17Runtime, c.Java21Runtime}, func(s string) bool { return s == "" })...)
		}
	}
	if os != stacks.OSLinux {
		if st.WindowsRuntimeSettings != nil && !st.WindowsRuntimeSettings.IsHidden {
			versions = append(versions, st.WindowsRuntimeSettings.RuntimeVersion)
		}
		if st.WindowsContainerSettings != nil && !st.WindowsContainerSettings.IsHidden {
			c := st.WindowsContainerSettings
			versions = append(versions, c.JavaContainer+" "+c.JavaContainerVersion)
		}
	}
	return strings.Join(versions, "`, `")
}
