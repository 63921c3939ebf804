package alpm

import (
	"sort"
)

// Registry is the catalog of all loaded packages
//
// Packages are kept in load order (sync repositories in pacman.conf order,
// then local database, then package files). Registry is read-only after
// loading, so it's safe to share between goroutines for lookups.
type Registry struct {
	packages      []*Package
	repos         []string
	nameIndex     map[string][]*Package
	providesIndex map[string][]*Package
}

// RepoInfo is summary of single repository in registry
type RepoInfo struct {
	Name     string `json:"Name"`
	Packages int    `json:"Packages"`
}

// NewRegistry creates empty registry
func NewRegistry() *Registry {
	return &Registry{
		packages:      make([]*Package, 0, 1024),
		nameIndex:     make(map[string][]*Package, 1024),
		providesIndex: make(map[string][]*Package, 256),
	}
}

// Add registers packages, keeping their order
func (r *Registry) Add(packages ...*Package) {
	for _, p := range packages {
		r.packages = append(r.packages, p)
		r.nameIndex[p.Name] = append(r.nameIndex[p.Name], p)

		for _, provides := range p.Provides {
			name := ParseDependency(provides).Name
			r.providesIndex[name] = append(r.providesIndex[name], p)
		}

		found := false
		for _, repo := range r.repos {
			if repo == p.Repository {
				found = true
				break
			}
		}
		if !found {
			r.repos = append(r.repos, p.Repository)
		}
	}
}

// AddList registers all packages from the list
func (r *Registry) AddList(list *PackageList) {
	r.Add(list.packages...)
}

// Len returns number of packages in registry
func (r *Registry) Len() int {
	return len(r.packages)
}

// Packages returns list of all packages in registry order
func (r *Registry) Packages() *PackageList {
	return NewPackageListFromSlice(r.packages)
}

// Repository returns list of packages from single repository
func (r *Registry) Repository(name string) *PackageList {
	result := NewPackageList()
	for _, p := range r.packages {
		if p.Repository == name {
			result.Add(p)
		}
	}
	return result
}

// Repos returns repository names in load order with package counts
func (r *Registry) Repos() []RepoInfo {
	counts := make(map[string]int, len(r.repos))
	for _, p := range r.packages {
		counts[p.Repository]++
	}

	result := make([]RepoInfo, len(r.repos))
	for i, repo := range r.repos {
		result[i] = RepoInfo{Name: repo, Packages: counts[repo]}
	}
	return result
}

// ByName returns all packages with exact name, in registry order
func (r *Registry) ByName(name string) []*Package {
	return r.nameIndex[name]
}

// FindSatisfier looks up first package satisfying dependency specifier
//
// Literal name (with version constraint) is checked first over the whole
// registry, then provisions. nil is returned when nothing satisfies.
func (r *Registry) FindSatisfier(spec string) *Package {
	dep := ParseDependency(spec)

	for _, p := range r.nameIndex[dep.Name] {
		if dep.SatisfiedByName(p) {
			return p
		}
	}

	for _, p := range r.providesIndex[dep.Name] {
		if dep.SatisfiedByProvides(p) {
			return p
		}
	}

	return nil
}

// ComputeRequiredBy fills RequiredBy of local packages
//
// A package is required by every local package which has a dependency
// satisfied by it, same as pacman reports for installed packages. Sync
// packages are left with empty RequiredBy.
func (r *Registry) ComputeRequiredBy() {
	local := r.Repository(LocalRepository)

	for _, p := range local.packages {
		p.RequiredBy = nil
	}

	for _, p := range local.packages {
		for _, spec := range p.Depends {
			dep := ParseDependency(spec)
			for _, candidate := range local.packages {
				if dep.SatisfiedBy(candidate) && !containsString(candidate.RequiredBy, p.Name) {
					candidate.RequiredBy = append(candidate.RequiredBy, p.Name)
				}
			}
		}
	}

	for _, p := range local.packages {
		sort.Strings(p.RequiredBy)
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
