package alpm

import (
	"bufio"
	"io"
	"strings"
)

// NameFilter restricts packages to explicit list of names
//
// Each entry is either "name" (any repository) or "repo/name".
type NameFilter struct {
	names     map[string]struct{}
	fullNames map[string]struct{}
}

// NewNameFilter builds filter from list of entries, empty entries are ignored
func NewNameFilter(entries []string) *NameFilter {
	result := &NameFilter{
		names:     make(map[string]struct{}, len(entries)),
		fullNames: make(map[string]struct{}),
	}

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			result.fullNames[entry] = struct{}{}
		} else {
			result.names[entry] = struct{}{}
		}
	}

	return result
}

// ParseNameFilter reads filter entries separated by newlines or whitespace
func ParseNameFilter(r io.Reader) (*NameFilter, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	entries := []string{}
	for scanner.Scan() {
		entries = append(entries, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return NewNameFilter(entries), nil
}

// Len returns number of entries in filter
func (f *NameFilter) Len() int {
	return len(f.names) + len(f.fullNames)
}

// Matches checks whether package is listed
func (f *NameFilter) Matches(p *Package) bool {
	if _, ok := f.names[p.Name]; ok {
		return true
	}
	_, ok := f.fullNames[p.FullName()]
	return ok
}

// Apply keeps only listed packages, order preserved
func (f *NameFilter) Apply(list *PackageList) *PackageList {
	return list.Filter(f.Matches)
}
