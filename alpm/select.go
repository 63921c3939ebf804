package alpm

// Selection narrows down starting package set before query is evaluated
//
// All enabled criteria must hold. Criteria based on install reason and
// reverse dependencies are meaningful only for installed packages, sync
// packages never pass them.
type Selection struct {
	// Explicit keeps packages installed explicitly
	Explicit bool
	// Deps keeps packages installed as dependencies
	Deps bool
	// Unrequired keeps installed packages not required by other packages
	Unrequired bool
	// Foreign keeps installed packages not found in any sync repository
	Foreign bool
	// Upgrades keeps installed packages with newer version in sync repositories
	Upgrades bool
	// Groups keeps packages belonging to any of the groups
	Groups []string
	// Repos keeps packages from any of the repositories
	Repos []string
}

// IsEmpty checks whether selection doesn't filter anything
func (s *Selection) IsEmpty() bool {
	return !s.Explicit && !s.Deps && !s.Unrequired && !s.Foreign && !s.Upgrades &&
		len(s.Groups) == 0 && len(s.Repos) == 0
}

// Apply filters the list, order is preserved
func (s *Selection) Apply(list *PackageList, registry *Registry) *PackageList {
	if s.IsEmpty() {
		return list.Copy()
	}

	return list.Filter(func(p *Package) bool {
		return s.Matches(p, registry)
	})
}

// Matches checks single package against selection
func (s *Selection) Matches(p *Package, registry *Registry) bool {
	local := p.Repository == LocalRepository

	if (s.Explicit || s.Deps || s.Unrequired || s.Foreign || s.Upgrades) && !local {
		return false
	}

	if s.Explicit && p.Reason != ReasonExplicit {
		return false
	}

	if s.Deps && p.Reason != ReasonDepend {
		return false
	}

	if s.Unrequired && len(p.RequiredBy) > 0 {
		return false
	}

	if s.Foreign || s.Upgrades {
		// first repository in configuration order wins, same as pacman -Qu
		var syncPkg *Package
		for _, candidate := range registry.ByName(p.Name) {
			if candidate.Repository != LocalRepository && candidate.Repository != FileRepository {
				syncPkg = candidate
				break
			}
		}

		if s.Foreign && syncPkg != nil {
			return false
		}

		if s.Upgrades && (syncPkg == nil || VersionCompare(syncPkg.Version, p.Version) <= 0) {
			return false
		}
	}

	if len(s.Groups) > 0 && !intersects(s.Groups, p.Groups) {
		return false
	}

	if len(s.Repos) > 0 && !containsString(s.Repos, p.Repository) {
		return false
	}

	return true
}

func intersects(a, b []string) bool {
	for _, x := range a {
		if containsString(b, x) {
			return true
		}
	}
	return false
}
