package alpm

import (
	"strings"
)

// Version ordering follows libalpm's alpm_pkg_vercmp: versions are
// [epoch:]version[-release], epoch defaults to 0, and each part is
// compared with the rpmvercmp segment algorithm.

// VersionCompare compares two package versions, returning -1, 0 or 1
func VersionCompare(ver1, ver2 string) int {
	if ver1 == ver2 {
		return 0
	}

	e1, v1, r1 := parseVersion(ver1)
	e2, v2, r2 := parseVersion(ver2)

	r := compareVersionPart(e1, e2)
	if r != 0 {
		return r
	}

	r = compareVersionPart(v1, v2)
	if r != 0 {
		return r
	}

	// release is compared only when both sides have one
	if r1 != "" && r2 != "" {
		return compareVersionPart(r1, r2)
	}

	return 0
}

// parseVersion breaks down full version to components (release possibly empty)
func parseVersion(ver string) (epoch, version, release string) {
	s := 0
	for s < len(ver) && isDigit(ver[s]) {
		s++
	}

	rest := ver
	if s < len(ver) && ver[s] == ':' {
		epoch, rest = ver[:s], ver[s+1:]
	}
	if epoch == "" {
		epoch = "0"
	}

	if i := strings.LastIndex(rest, "-"); i != -1 {
		rest, release = rest[:i], rest[i+1:]
	}

	version = rest
	return
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isDigit(c) || isAlpha(c)
}

// compareVersionPart compares parts of full version
//
// Both strings are split into alternating runs of digits and letters,
// everything else acting as separator. Runs are compared pairwise: numeric
// runs numerically (ignoring leading zeroes), alpha runs lexically, and a
// numeric run is always newer than an alpha one. A longer separator wins,
// and once one string is exhausted the other is newer unless its remainder
// starts with a letter (so "1.0" > "1.0a" is false, "1.0.1" > "1.0").
func compareVersionPart(part1, part2 string) int {
	if part1 == part2 {
		return 0
	}

	one, two := 0, 0
	l1, l2 := len(part1), len(part2)
	isNum := false

	for one < l1 && two < l2 {
		p1, p2 := one, two
		for one < l1 && !isAlnum(part1[one]) {
			one++
		}
		for two < l2 && !isAlnum(part2[two]) {
			two++
		}

		if one >= l1 || two >= l2 {
			break
		}

		if one-p1 != two-p2 {
			if one-p1 < two-p2 {
				return -1
			}
			return 1
		}

		p1, p2 = one, two

		if isDigit(part1[p1]) {
			for p1 < l1 && isDigit(part1[p1]) {
				p1++
			}
			for p2 < l2 && isDigit(part2[p2]) {
				p2++
			}
			isNum = true
		} else {
			for p1 < l1 && isAlpha(part1[p1]) {
				p1++
			}
			for p2 < l2 && isAlpha(part2[p2]) {
				p2++
			}
			isNum = false
		}

		// segment of part1 can't be empty here, part2 can be of the other type
		if two == p2 {
			if isNum {
				return 1
			}
			return -1
		}

		s1, s2 := part1[one:p1], part2[two:p2]

		if isNum {
			s1 = strings.TrimLeft(s1, "0")
			s2 = strings.TrimLeft(s2, "0")
			if len(s1) > len(s2) {
				return 1
			}
			if len(s2) > len(s1) {
				return -1
			}
		}

		if r := strings.Compare(s1, s2); r != 0 {
			return r
		}

		one, two = p1, p2
	}

	if one >= l1 && two >= l2 {
		return 0
	}

	if (one >= l1 && !isAlpha(part2[two])) || (one < l1 && isAlpha(part1[one])) {
		return -1
	}
	return 1
}
