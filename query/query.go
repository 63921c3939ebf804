// Package query implements query language for package search
package query

import (
	"strings"

	"github.com/mattn/go-shellwords"
)

/*

  Query language of find(1) flavor, one token per command line argument:

  Query := Term | Query [Join] Term              left-associative, Join defaults to -and
  Term := Not Term | GroupOpen Query GroupClose | Predicate
  Predicate := value                            OR over name, desc, provides, group
             | Comparator value                 OR over name, desc
             | Field [Comparator] value
  Join := -and | & | -or | '|' | -xor | ^
  Not := -not | !
  GroupOpen := -go | (
  GroupClose := -gc | )
  Comparator := -eq | == | -ne | != | -gt | < | -ge | <= | -lt | > | -le | >= | -re | =~ | -nr | !~
  Field := -name | -desc | -depends.name | -depends%.name | ...

  Omitted comparator is regexp match for string fields and equality for
  version and numeric fields.
*/

// Parse parses query tokens into Node tree ready for evaluation
//
// Empty query results in nil Node, which matches everything.
func Parse(tokens []string) (Node, error) {
	return parse(tokens)
}

// ParseString splits query into tokens by shell rules and parses it
func ParseString(query string) (Node, error) {
	tokens, err := Split(query)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Split splits query string into tokens by shell rules
//
// Unquoted |, &, ;, <, <=, > and >= are separate tokens even when attached
// to a word, as they are combinators and comparators of the query language.
// Unquoted parentheses are literal: standing alone they are group tokens,
// inside a word they belong to it, e.g. -re fire(fox).
func Split(query string) ([]string, error) {
	return shellwords.NewParser().Parse(escapeOperators(query))
}

// escapeOperators rewrites query so that shellwords neither stops at shell
// operators nor fails on parentheses
func escapeOperators(query string) string {
	var b strings.Builder
	var escaped, singleQuoted, doubleQuoted bool

	runes := []rune(query)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case escaped:
			escaped = false
		case singleQuoted:
			singleQuoted = r != '\''
		case r == '\\':
			escaped = true
		case r == '"':
			doubleQuoted = !doubleQuoted
		case doubleQuoted:
		case r == '\'':
			singleQuoted = true
		case r == '(' || r == ')' || r == '`':
			b.WriteRune('\\')
		case strings.ContainsRune(";&|<>", r):
			b.WriteString(" \\")
			b.WriteRune(r)
			if (r == '<' || r == '>') && i+1 < len(runes) && runes[i+1] == '=' {
				b.WriteRune('=')
				i++
			}
			b.WriteRune(' ')
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
