package query

import (
	"fmt"
	"strings"
)

// TokenKind identifies the class of a query token
type TokenKind int

// Token classes
const (
	TokenValue TokenKind = iota // bare value, no leading '-'
	TokenField                  // -name, -depends.name, ...
	TokenAnd                    // -and, &
	TokenOr                     // -or, |
	TokenXor                    // -xor, ^
	TokenNot                    // -not, !
	TokenGroupOpen              // -go, (
	TokenGroupClose             // -gc, )
	TokenComparator             // -eq, ==, -re, =~, ...
)

var tokenKindNames = map[TokenKind]string{
	TokenValue:      "value",
	TokenField:      "field",
	TokenAnd:        "-and",
	TokenOr:         "-or",
	TokenXor:        "-xor",
	TokenNot:        "-not",
	TokenGroupOpen:  "-go",
	TokenGroupClose: "-gc",
	TokenComparator: "comparator",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// IsJoin is true for binary combinators
func (k TokenKind) IsJoin() bool {
	return k == TokenAnd || k == TokenOr || k == TokenXor
}

var combinatorTable = map[string]TokenKind{
	"-and": TokenAnd,
	"-or":  TokenOr,
	"-xor": TokenXor,
	"-not": TokenNot,
	"-go":  TokenGroupOpen,
	"-gc":  TokenGroupClose,

	"&": TokenAnd,
	"|": TokenOr,
	"^": TokenXor,
	"!": TokenNot,
	"(": TokenGroupOpen,
	")": TokenGroupClose,
}

// symbolic ordering aliases are reversed against their keyword forms:
// "<" is "-gt", ">" is "-lt"; kept as is for compatibility with existing
// query scripts
var comparatorTable = map[string]Comparator{
	"-eq": Equal,
	"-ne": NotEqual,
	"-gt": Greater,
	"-ge": GreaterOrEqual,
	"-lt": Less,
	"-le": LessOrEqual,
	"-re": Regexp,
	"-nr": NotRegexp,

	"==": Equal,
	"!=": NotEqual,
	"<":  Greater,
	"<=": GreaterOrEqual,
	">":  Less,
	">=": LessOrEqual,
	"=~": Regexp,
	"!~": NotRegexp,
}

// Classify maps raw token to its class
//
// Lookup is exact, without abbreviations or case folding.
func Classify(token string) TokenKind {
	if kind, ok := combinatorTable[token]; ok {
		return kind
	}
	if _, ok := comparatorTable[token]; ok {
		return TokenComparator
	}
	if strings.HasPrefix(token, "-") {
		return TokenField
	}
	return TokenValue
}

// LookupComparator returns comparator for comparator token
func LookupComparator(token string) (Comparator, bool) {
	cmp, ok := comparatorTable[token]
	return cmp, ok
}
