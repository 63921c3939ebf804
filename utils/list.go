package utils

import (
	"fmt"
	"strings"
)

// StringsIsSubset checks that every item of subset is present in full, and returns
// error formatted with errorFmt for the first missing item otherwise
func StringsIsSubset(subset []string, full []string, errorFmt string) error {
	known := make(map[string]struct{}, len(full))
	for _, s := range full {
		known[s] = struct{}{}
	}

	for _, checked := range subset {
		if _, found := known[checked]; !found {
			return fmt.Errorf(errorFmt, checked)
		}
	}
	return nil
}

// StrSliceDeduplicate removes duplicates, keeping order of first occurrences
func StrSliceDeduplicate(s []string) []string {
	seen := make(map[string]struct{}, len(s))
	result := make([]string, 0, len(s))

	for _, item := range s {
		if _, found := seen[item]; found {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

// SplitList splits comma separated flag value, dropping empty items
func SplitList(value string) []string {
	result := []string{}
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return StrSliceDeduplicate(result)
}
