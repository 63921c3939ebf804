package cmd

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/pacfind/pacfind/alpm"
	"github.com/pacfind/pacfind/pacfind"
	"github.com/pacfind/pacfind/utils"
)

// Output modes of search
const (
	outputDefault = iota
	outputQuiet
	outputInfo
	outputTemplate
)

type packagePrinter struct {
	mode      int
	infoLevel int
	tmpl      *template.Template
	registry  *alpm.Registry
}

func newPackagePrinter(quiet bool, infoLevel int, format string, registry *alpm.Registry) (*packagePrinter, error) {
	printer := &packagePrinter{mode: outputDefault, infoLevel: infoLevel, registry: registry}

	switch {
	case format != "":
		var err error
		printer.tmpl, err = template.New("format").Funcs(template.FuncMap{
			"join":  strings.Join,
			"bytes": utils.HumanBytes,
		}).Parse(format)
		if err != nil {
			return nil, fmt.Errorf("error parsing -format template: %s", err)
		}
		printer.mode = outputTemplate
	case infoLevel > 0:
		printer.mode = outputInfo
	case quiet:
		printer.mode = outputQuiet
	}

	return printer, nil
}

// Print outputs the list, empty list prints nothing
func (printer *packagePrinter) Print(progress pacfind.Progress, list *alpm.PackageList) error {
	return list.ForEach(func(p *alpm.Package) error {
		switch printer.mode {
		case outputQuiet:
			progress.Printf("%s\n", p.Name)
		case outputInfo:
			progress.Printf("%s\n", formatPackageInfo(p, printer.registry, printer.infoLevel))
		case outputTemplate:
			buf := &bytes.Buffer{}
			if err := printer.tmpl.Execute(buf, p); err != nil {
				return fmt.Errorf("error applying template: %s", err)
			}
			progress.Printf("%s\n", buf.String())
		default:
			progress.ColoredPrintf("@{!m}%s/@{!w}%s @{!g}%s@|%s", p.Repository, p.Name, p.Version, packageTags(p, printer.registry))
			if p.Description != "" {
				progress.Printf("    %s\n", p.Description)
			}
		}
		return nil
	})
}

// packageTags builds " (group1 group2) [installed]" suffix of search line
func packageTags(p *alpm.Package, registry *alpm.Registry) string {
	result := ""
	if len(p.Groups) > 0 {
		result += " (" + strings.Join(p.Groups, " ") + ")"
	}

	if p.Repository == alpm.LocalRepository || registry == nil {
		return result
	}

	for _, installed := range registry.ByName(p.Name) {
		if installed.Repository != alpm.LocalRepository {
			continue
		}
		if installed.Version == p.Version {
			result += " [installed]"
		} else {
			result += " [installed: " + installed.Version + "]"
		}
		break
	}

	return result
}

func infoList(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, "  ")
}

func infoDate(timestamp int64) string {
	if timestamp == 0 {
		return "None"
	}
	return time.Unix(timestamp, 0).UTC().Format(time.RFC1123)
}

// formatPackageInfo produces pacman -Qi style description of the package
//
// Level 2 adds checksums and validation.
func formatPackageInfo(p *alpm.Package, registry *alpm.Registry, level int) string {
	var buf strings.Builder

	line := func(name, value string) {
		fmt.Fprintf(&buf, "%-15s : %s\n", name, value)
	}

	if p.Repository != alpm.LocalRepository && p.Repository != alpm.FileRepository {
		line("Repository", p.Repository)
	}
	if p.Repository == alpm.FileRepository {
		line("Filename", p.Filename)
	}
	line("Name", p.Name)
	line("Version", p.Version)
	line("Description", p.Description)
	line("Architecture", p.Architecture)
	line("URL", p.URL)
	line("Licenses", infoList(p.Licenses))
	line("Groups", infoList(p.Groups))
	line("Provides", infoList(p.Provides))
	line("Depends On", infoList(p.Depends))

	optDepends := make([]string, len(p.OptDepends))
	for i, spec := range p.OptDepends {
		optDepends[i] = spec
		dep := alpm.ParseDependency(spec)
		dep.Description = ""
		if registry != nil {
			if satisfier := registry.FindSatisfier(dep.String()); satisfier != nil && satisfier.Repository == alpm.LocalRepository {
				optDepends[i] += " [installed]"
			}
		}
	}
	if len(optDepends) == 0 {
		line("Optional Deps", "None")
	} else {
		line("Optional Deps", optDepends[0])
		for _, spec := range optDepends[1:] {
			fmt.Fprintf(&buf, "%-15s   %s\n", "", spec)
		}
	}

	if p.Repository == alpm.LocalRepository {
		line("Required By", infoList(p.RequiredBy))
	}
	line("Conflicts With", infoList(p.Conflicts))
	line("Replaces", infoList(p.Replaces))

	if p.Repository != alpm.LocalRepository {
		line("Download Size", utils.HumanBytes(p.Size))
	}
	line("Installed Size", utils.HumanBytes(p.InstalledSize))
	line("Packager", p.Packager)
	line("Build Date", infoDate(p.BuildDate))

	if p.Repository == alpm.LocalRepository {
		line("Install Date", infoDate(p.InstallDate))
		if p.IsExplicit() {
			line("Install Reason", "Explicitly installed")
		} else {
			line("Install Reason", "Installed as a dependency for another package")
		}
	}

	if level > 1 {
		line("MD5 Sum", p.MD5Sum)
		line("SHA-256 Sum", p.SHA256Sum)
		line("Validated By", infoList(p.Validation))
	}

	return buf.String()
}
