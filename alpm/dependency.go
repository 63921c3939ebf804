package alpm

import (
	"strings"
)

// Version relations
const (
	VersionDontCare = iota
	VersionLess
	VersionLessOrEqual
	VersionEqual
	VersionGreaterOrEqual
	VersionGreater
)

// Dependency is a parsed dependency specifier, like "glibc>=2.38"
//
// The same format is used for depends, optdepends, provides, conflicts and
// replaces lists.
type Dependency struct {
	Name        string
	Relation    int
	Version     string
	Description string
}

// ParseDependency parses specifier in format "pkg>=1.35" (optionally followed by ": description")
func ParseDependency(spec string) (d Dependency) {
	// ": " with the space, so that an epoch is never taken for a description
	if i := strings.Index(spec, ": "); i != -1 {
		d.Description = strings.TrimSpace(spec[i+2:])
		spec = spec[:i]
	}

	if i := strings.IndexByte(spec, '<'); i != -1 {
		d.Name = spec[:i]
		if i+1 < len(spec) && spec[i+1] == '=' {
			d.Relation, d.Version = VersionLessOrEqual, spec[i+2:]
		} else {
			d.Relation, d.Version = VersionLess, spec[i+1:]
		}
	} else if i = strings.IndexByte(spec, '>'); i != -1 {
		d.Name = spec[:i]
		if i+1 < len(spec) && spec[i+1] == '=' {
			d.Relation, d.Version = VersionGreaterOrEqual, spec[i+2:]
		} else {
			d.Relation, d.Version = VersionGreater, spec[i+1:]
		}
	} else if i = strings.IndexByte(spec, '='); i != -1 {
		d.Name = spec[:i]
		d.Relation, d.Version = VersionEqual, spec[i+1:]
	} else {
		d.Name = spec
		d.Relation = VersionDontCare
	}

	d.Name = strings.TrimSpace(d.Name)
	d.Version = strings.TrimSpace(d.Version)
	return
}

// DependencyNames returns names of all specifiers in the list
func DependencyNames(specs []string) []string {
	result := make([]string, len(specs))
	for i, spec := range specs {
		result[i] = ParseDependency(spec).Name
	}
	return result
}

// VersionMatches checks whether version satisfies the relation of dependency
func (d *Dependency) VersionMatches(version string) bool {
	if d.Relation == VersionDontCare {
		return true
	}

	r := VersionCompare(version, d.Version)
	switch d.Relation {
	case VersionLess:
		return r < 0
	case VersionLessOrEqual:
		return r <= 0
	case VersionEqual:
		return r == 0
	case VersionGreaterOrEqual:
		return r >= 0
	case VersionGreater:
		return r > 0
	}
	panic("unknown relation")
}

// SatisfiedByName checks whether package satisfies dependency by its own name and version
func (d *Dependency) SatisfiedByName(p *Package) bool {
	return p.Name == d.Name && d.VersionMatches(p.Version)
}

// SatisfiedByProvides checks whether any of package provisions satisfies the dependency
//
// Unversioned provision never satisfies versioned dependency.
func (d *Dependency) SatisfiedByProvides(p *Package) bool {
	for _, spec := range p.Provides {
		provision := ParseDependency(spec)
		if provision.Name != d.Name {
			continue
		}
		if d.Relation == VersionDontCare {
			return true
		}
		if provision.Relation == VersionDontCare {
			continue
		}
		if d.VersionMatches(provision.Version) {
			return true
		}
	}
	return false
}

// SatisfiedBy checks whether package satisfies dependency either by name or by provides
func (d *Dependency) SatisfiedBy(p *Package) bool {
	return d.SatisfiedByName(p) || d.SatisfiedByProvides(p)
}

// String produces specifier representation
func (d *Dependency) String() string {
	var rel string
	switch d.Relation {
	case VersionEqual:
		rel = "="
	case VersionGreater:
		rel = ">"
	case VersionLess:
		rel = "<"
	case VersionGreaterOrEqual:
		rel = ">="
	case VersionLessOrEqual:
		rel = "<="
	}

	result := d.Name
	if d.Relation != VersionDontCare {
		result += rel + d.Version
	}
	if d.Description != "" {
		result += ": " + d.Description
	}
	return result
}
