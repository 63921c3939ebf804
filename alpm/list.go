package alpm

import (
	"sort"
)

// PackageList is ordered list of packages
//
// Unlike Registry, list may contain the same package several times: it is
// the result of filtering, concatenation, difference, etc. Unique() brings
// it back to a set.
type PackageList struct {
	packages []*Package
}

// Verify interface
var (
	_ sort.Interface = &PackageList{}
)

// NewPackageList creates empty package list
func NewPackageList() *PackageList {
	return &PackageList{packages: make([]*Package, 0, 64)}
}

// NewPackageListFromSlice creates package list with packages in specified order
func NewPackageListFromSlice(packages []*Package) *PackageList {
	result := &PackageList{packages: make([]*Package, len(packages))}
	copy(result.packages, packages)
	return result
}

// Add appends package to package list
func (l *PackageList) Add(p *Package) {
	l.packages = append(l.packages, p)
}

// Append adds content from one package list to another, keeping duplicates
func (l *PackageList) Append(pl *PackageList) {
	l.packages = append(l.packages, pl.packages...)
}

// Len returns number of packages in the list
func (l *PackageList) Len() int {
	return len(l.packages)
}

// ForEach calls handler for each package in list order
func (l *PackageList) ForEach(handler func(*Package) error) error {
	for _, p := range l.packages {
		if err := handler(p); err != nil {
			return err
		}
	}
	return nil
}

// Packages returns copy of underlying slice
func (l *PackageList) Packages() []*Package {
	result := make([]*Package, len(l.packages))
	copy(result, l.packages)
	return result
}

// Copy creates shallow copy of the list
func (l *PackageList) Copy() *PackageList {
	return NewPackageListFromSlice(l.packages)
}

// Contains checks whether package (by identity) is in the list
func (l *PackageList) Contains(p *Package) bool {
	for _, pkg := range l.packages {
		if pkg == p {
			return true
		}
	}
	return false
}

// Filter returns new list with packages accepted by the predicate, order preserved
func (l *PackageList) Filter(accept func(*Package) bool) *PackageList {
	result := NewPackageList()
	for _, p := range l.packages {
		if accept(p) {
			result.Add(p)
		}
	}
	return result
}

// Difference returns packages of the list not present (by identity) in other list
func (l *PackageList) Difference(other *PackageList) *PackageList {
	exclude := make(map[*Package]struct{}, other.Len())
	for _, p := range other.packages {
		exclude[p] = struct{}{}
	}

	return l.Filter(func(p *Package) bool {
		_, found := exclude[p]
		return !found
	})
}

// Unique returns list with duplicates removed, first occurrence wins
func (l *PackageList) Unique() *PackageList {
	seen := make(map[*Package]struct{}, len(l.packages))

	return l.Filter(func(p *Package) bool {
		if _, found := seen[p]; found {
			return false
		}
		seen[p] = struct{}{}
		return true
	})
}

// Swap swaps two packages in the list
func (l *PackageList) Swap(i, j int) {
	l.packages[i], l.packages[j] = l.packages[j], l.packages[i]
}

// Less compares two packages by name (lexographical) and version (latest to oldest)
func (l *PackageList) Less(i, j int) bool {
	iPkg, jPkg := l.packages[i], l.packages[j]
	if iPkg.Name == jPkg.Name {
		return VersionCompare(iPkg.Version, jPkg.Version) > 0
	}
	return iPkg.Name < jPkg.Name
}

// Sort orders the list by name and version, stable for equal packages
func (l *PackageList) Sort() {
	sort.Stable(l)
}

// Strings builds list of "name-version" strings
func (l *PackageList) Strings() []string {
	result := make([]string, len(l.packages))
	for i, p := range l.packages {
		result[i] = p.String()
	}
	return result
}
