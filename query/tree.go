package query

import (
	"fmt"
	"strings"
)

// Op is logical operation of Combinator
type Op int

// Logical operations
const (
	OpAnd Op = iota
	OpOr
	OpXor
	OpNot
)

func (op Op) String() string {
	switch op {
	case OpAnd:
		return "-and"
	case OpOr:
		return "-or"
	case OpXor:
		return "-xor"
	case OpNot:
		return "-not"
	}
	panic(fmt.Sprintf("unknown op %d", int(op)))
}

// Node is element of query tree: either *Combinator or *Predicate
type Node interface {
	fmt.Stringer
	node()
}

// Combinator is logical operation over subtrees, Right is nil for OpNot
type Combinator struct {
	Op          Op
	Left, Right Node
}

// Predicate compares field of package with the value
type Predicate struct {
	// Field is field path without leading '-', like "name" or "depends%.name"
	Field      string
	Comparator Comparator
	Value      string
}

func (*Combinator) node() {}
func (*Predicate) node()  {}

// String serializes subtree back into query tokens, binary operations are
// always grouped explicitly
func (c *Combinator) String() string {
	if c.Op == OpNot {
		return "-not " + c.Left.String()
	}
	return fmt.Sprintf("-go %s %s %s -gc", c.Left, c.Op, c.Right)
}

// String serializes predicate back into query tokens
func (p *Predicate) String() string {
	result := "-" + p.Field
	if p.Comparator != Default {
		result += " " + p.Comparator.String()
	}
	return result + " " + quote(p.Value)
}

// quote protects value from shell-style splitting
func quote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$`;&|<>()*?[]#~=%!{}") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
