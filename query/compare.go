package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pacfind/pacfind/alpm"
)

// Comparator is the comparison applied by Predicate
type Comparator int

// Comparators, Default is resolved by field kind at evaluation time
const (
	Default Comparator = iota
	Equal
	NotEqual
	Greater
	GreaterOrEqual
	Less
	LessOrEqual
	Regexp
	NotRegexp
)

// String returns keyword form of comparator
func (c Comparator) String() string {
	switch c {
	case Default:
		return ""
	case Equal:
		return "-eq"
	case NotEqual:
		return "-ne"
	case Greater:
		return "-gt"
	case GreaterOrEqual:
		return "-ge"
	case Less:
		return "-lt"
	case LessOrEqual:
		return "-le"
	case Regexp:
		return "-re"
	case NotRegexp:
		return "-nr"
	}
	panic(fmt.Sprintf("unknown comparator %d", int(c)))
}

// resolve replaces Default with the comparator implied by field kind
func (c Comparator) resolve(kind Kind) Comparator {
	if c != Default {
		return c
	}

	switch kind {
	case KindString:
		return Regexp
	case KindVersion, KindInteger:
		return Equal
	}
	panic(fmt.Sprintf("unknown kind %d", int(kind)))
}

// ordered checks result of three-way comparison against relational comparator
func (c Comparator) ordered(r int) bool {
	switch c {
	case Equal:
		return r == 0
	case NotEqual:
		return r != 0
	case Greater:
		return r > 0
	case GreaterOrEqual:
		return r >= 0
	case Less:
		return r < 0
	case LessOrEqual:
		return r <= 0
	case Default, Regexp, NotRegexp:
	}
	panic(fmt.Sprintf("comparator %s is not relational", c))
}

// matcher is compiled comparison of a field value against the operand
type matcher struct {
	kind    Kind
	cmp     Comparator
	operand string
	number  int64
	re      *regexp.Regexp
}

func newMatcher(kind Kind, cmp Comparator, operand string) (*matcher, error) {
	m := &matcher{
		kind:    kind,
		cmp:     cmp.resolve(kind),
		operand: operand,
	}

	switch m.cmp {
	case Regexp, NotRegexp:
		// POSIX extended regexp, REG_ICASE | REG_NEWLINE
		re, err := regexp.Compile("(?im)" + operand)
		if err != nil {
			return nil, &ComparisonError{Operand: operand, Err: err}
		}
		re.Longest()
		m.re = re
	case Default, Equal, NotEqual, Greater, GreaterOrEqual, Less, LessOrEqual:
		if kind == KindInteger {
			m.number = parseNumber(operand)
		}
	}

	return m, nil
}

// matchString compares string (or version) value, empty values never match
func (m *matcher) matchString(value string) bool {
	if value == "" {
		return false
	}

	switch m.cmp {
	case Regexp:
		return m.re.MatchString(value)
	case NotRegexp:
		return !m.re.MatchString(value)
	case Default, Equal, NotEqual, Greater, GreaterOrEqual, Less, LessOrEqual:
	}

	switch m.kind {
	case KindVersion:
		return m.cmp.ordered(alpm.VersionCompare(value, m.operand))
	case KindString, KindInteger:
	}
	return m.cmp.ordered(strings.Compare(value, m.operand))
}

// matchInteger compares numeric value, regexps match its decimal form
func (m *matcher) matchInteger(value int64) bool {
	switch m.cmp {
	case Regexp:
		return m.re.MatchString(strconv.FormatInt(value, 10))
	case NotRegexp:
		return !m.re.MatchString(strconv.FormatInt(value, 10))
	case Default, Equal, NotEqual, Greater, GreaterOrEqual, Less, LessOrEqual:
	}

	switch {
	case value < m.number:
		return m.cmp.ordered(-1)
	case value > m.number:
		return m.cmp.ordered(1)
	}
	return m.cmp.ordered(0)
}

// parseNumber takes leading integer of operand: optional whitespace and sign,
// then digits up to the first non-digit; 0 if there are none
func parseNumber(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	var result int64
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		result = result*10 + int64(s[i]-'0')
	}

	if negative {
		return -result
	}
	return result
}
