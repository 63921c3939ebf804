package alpm

import (
	"fmt"
	"strconv"
	"strings"
)

// Special repository names
const (
	// LocalRepository holds installed packages
	LocalRepository = "local"
	// FileRepository holds packages read directly from package archives
	FileRepository = "file"
)

// Install reasons
const (
	ReasonExplicit = iota
	ReasonDepend
)

// Package is single instance of pacman package metadata
//
// Packages are owned by Registry and handled by pointer: two *Package
// values are the same package iff pointers are equal.
type Package struct {
	// Repository package was loaded from ("local" for installed ones)
	Repository string
	// Basic package properties
	Filename      string
	Name          string
	Base          string
	Version       string
	Description   string
	URL           string
	Architecture  string
	Packager      string
	MD5Sum        string
	SHA256Sum     string
	BuildDate     int64
	InstallDate   int64
	Size          int64
	InstalledSize int64
	Reason        int
	Validation    []string
	// Lists
	Licenses []string
	Groups   []string
	// Relations, as dependency specifiers
	Depends    []string
	OptDepends []string
	Provides   []string
	Conflicts  []string
	Replaces   []string
	// Reverse dependencies, calculated by Registry
	RequiredBy []string `codec:"-" json:"-"`
}

// NewPackageFromDesc creates Package from parsed desc file of local or sync database
func NewPackageFromDesc(input Stanza, repository string) *Package {
	result := &Package{
		Repository:    repository,
		Filename:      input.Get("FILENAME"),
		Name:          input.Get("NAME"),
		Base:          input.Get("BASE"),
		Version:       input.Get("VERSION"),
		Description:   input.Get("DESC"),
		URL:           input.Get("URL"),
		Architecture:  input.Get("ARCH"),
		Packager:      input.Get("PACKAGER"),
		MD5Sum:        input.Get("MD5SUM"),
		SHA256Sum:     input.Get("SHA256SUM"),
		BuildDate:     parseInt(input.Get("BUILDDATE")),
		InstallDate:   parseInt(input.Get("INSTALLDATE")),
		Size:          parseInt(input.Get("CSIZE")),
		InstalledSize: parseInt(input.Get("ISIZE")),
		Reason:        int(parseInt(input.Get("REASON"))),
		Validation:    input["VALIDATION"],
		Licenses:      input["LICENSE"],
		Groups:        input["GROUPS"],
		Depends:       input["DEPENDS"],
		OptDepends:    input["OPTDEPENDS"],
		Provides:      input["PROVIDES"],
		Conflicts:     input["CONFLICTS"],
		Replaces:      input["REPLACES"],
	}

	// %SIZE% is installed size in local database, download size in old sync databases
	if size, ok := input["SIZE"]; ok && len(size) > 0 {
		if repository == LocalRepository {
			result.InstalledSize = parseInt(size[0])
		} else if result.Size == 0 {
			result.Size = parseInt(size[0])
		}
	}

	return result
}

// NewPackageFromPkgInfo creates Package from .PKGINFO of a package archive
func NewPackageFromPkgInfo(input Stanza, filename string) *Package {
	return &Package{
		Repository:    FileRepository,
		Filename:      filename,
		Name:          input.Get("pkgname"),
		Base:          input.Get("pkgbase"),
		Version:       input.Get("pkgver"),
		Description:   input.Get("pkgdesc"),
		URL:           input.Get("url"),
		Architecture:  input.Get("arch"),
		Packager:      input.Get("packager"),
		BuildDate:     parseInt(input.Get("builddate")),
		InstalledSize: parseInt(input.Get("size")),
		Licenses:      input["license"],
		Groups:        input["group"],
		Depends:       input["depend"],
		OptDepends:    input["optdepend"],
		Provides:      input["provides"],
		Conflicts:     input["conflict"],
		Replaces:      input["replaces"],
	}
}

func parseInt(value string) int64 {
	result, _ := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	return result
}

// String creates readable representation
func (p *Package) String() string {
	return fmt.Sprintf("%s-%s", p.Name, p.Version)
}

// FullName returns name qualified with repository, like "extra/firefox"
func (p *Package) FullName() string {
	if p.Repository == "" {
		return p.Name
	}
	return p.Repository + "/" + p.Name
}

// IsExplicit is true for packages installed explicitly
func (p *Package) IsExplicit() bool {
	return p.Reason == ReasonExplicit
}

// OptDependNames returns names of optional dependencies (descriptions stripped)
func (p *Package) OptDependNames() []string {
	return DependencyNames(p.OptDepends)
}
